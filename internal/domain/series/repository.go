package series

import "context"

type ListFilter struct {
	// IncludeInactive incluye series desactivadas (vista admin).
	IncludeInactive bool
}

type Repository interface {
	Create(ctx context.Context, s Series) error
	Update(ctx context.Context, s Series) error
	GetByID(ctx context.Context, id string) (Series, error)

	// GetByCode busca por código ya normalizado.
	GetByCode(ctx context.Context, code string) (Series, error)

	// List devuelve series ordenadas por (SortOrder asc, Code asc).
	List(ctx context.Context, filter ListFilter) ([]Series, error)
}
