package events

import "context"

// ListFilter filtra el timeline de un reproductor. Type vacío = todos los
// tipos. Cursor nil = primera página. Limit es la cantidad exacta de filas a
// devolver (el service pide limit+1 para saber si hay más).
type ListFilter struct {
	Type   EventType
	Limit  int
	Cursor *Cursor
}

type Repository interface {
	Append(ctx context.Context, e BreederEvent) error

	// ListByBreeder devuelve eventos en orden (EventDate desc, RecordedAt
	// desc, ID desc), aplicando filtro de tipo y cursor keyset.
	ListByBreeder(ctx context.Context, breederID string, filter ListFilter) ([]BreederEvent, error)

	// ListBreederIDsByMatingMale devuelve los IDs de reproductores con al
	// menos un evento mating cuyo MaleCode coincide con el dado.
	ListBreederIDsByMatingMale(ctx context.Context, maleCode string) ([]string, error)
}
