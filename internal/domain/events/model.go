package events

import "time"

// MatingDetail acompaña a los eventos de tipo mating.
type MatingDetail struct {
	MaleCode string
}

// EggDetail acompaña a los eventos de tipo egg. Count es siempre un entero
// positivo (se valida al construir, nunca se coercea).
type EggDetail struct {
	Count int
}

// ChangeMateDetail acompaña a los eventos de tipo change_mate.
type ChangeMateDetail struct {
	OldMateCode string
	NewMateCode string
}

// BreederEvent es un evento fechado del historial de un reproductor.
// El tipo discriminado se refleja en que exactamente uno de los punteros de
// detalle está seteado, según Type; los eventos se construyen solo vía
// Service.Append, que garantiza esa invariante.
//
// El orden del timeline es (EventDate desc, RecordedAt desc, ID desc):
// EventDate tiene semántica de día calendario; RecordedAt es el instante de
// inserción y, junto con el ID, desempata de forma total y determinista.
type BreederEvent struct {
	ID        string
	BreederID string

	Type EventType

	EventDate  time.Time
	RecordedAt time.Time

	Note string

	Mating     *MatingDetail
	Egg        *EggDetail
	ChangeMate *ChangeMateDetail
}

// Page es una página del timeline. NextCursor solo viene cuando HasMore.
type Page struct {
	Items      []BreederEvent
	HasMore    bool
	NextCursor string
}
