package breeders

import "context"

type ListFilter struct {
	SeriesID string
	Sex      Sex
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, b Breeder) error
	Update(ctx context.Context, b Breeder) error
	GetByID(ctx context.Context, id string) (Breeder, error)

	// GetByCode busca por código ya normalizado (ver NormalizeCode).
	GetByCode(ctx context.Context, code string) (Breeder, error)

	List(ctx context.Context, filter ListFilter) ([]Breeder, error)

	// ListByParents devuelve los registros cuyo sire Y dam (normalizados)
	// coinciden con los dados. Ambos códigos deben venir no vacíos.
	ListByParents(ctx context.Context, sireCode, damCode string) ([]Breeder, error)

	// ListChildrenByParentCode devuelve los registros cuyo sire O dam
	// (normalizados) coinciden con el código dado.
	ListChildrenByParentCode(ctx context.Context, code string) ([]Breeder, error)

	// ListFemalesByMateCode devuelve las hembras cuyo MateCode normalizado
	// coincide con alguno de los candidatos.
	ListFemalesByMateCode(ctx context.Context, codes []string) ([]Breeder, error)
}
