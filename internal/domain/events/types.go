package events

// EventType discrimina la variante del evento. Cada tipo lleva su propio
// detalle obligatorio (ver model.go).
type EventType string

const (
	EventTypeMating     EventType = "mating"
	EventTypeEgg        EventType = "egg"
	EventTypeChangeMate EventType = "change_mate"
)

func ValidEventType(t EventType) bool {
	switch t {
	case EventTypeMating, EventTypeEgg, EventTypeChangeMate:
		return true
	default:
		return false
	}
}

// CycleStatus es el estado del ciclo de cría de una hembra.
type CycleStatus string

const (
	CycleNormal     CycleStatus = "normal"
	CycleNeedMating CycleStatus = "need_mating"
	CycleWarning    CycleStatus = "warning"
)
