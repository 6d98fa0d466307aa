package series

import "time"

// Series es una línea de cría del catálogo: agrupa reproductores para el
// listado público. SortOrder controla el orden de presentación; IsActive en
// false la saca del listado sin borrar los reproductores asociados.
type Series struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
