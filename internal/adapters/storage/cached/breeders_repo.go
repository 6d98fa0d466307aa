package cached

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"breeder-album/internal/domain/breeders"
)

const defaultSize = 2048

// BreedersRepo es un decorador read-through sobre breeders.Repository. El
// armado de un árbol genealógico repite lookups por id y por código; acá se
// absorben sin tocar el store. Solo se cachean aciertos: un código sin
// resolver se consulta siempre, así un alta nueva aparece al instante.
type BreedersRepo struct {
	inner breeders.Repository

	byID   *lru.Cache[string, breeders.Breeder]
	byCode *lru.Cache[string, breeders.Breeder]
}

func NewBreedersRepo(inner breeders.Repository, size int) (*BreedersRepo, error) {
	if size <= 0 {
		size = defaultSize
	}
	byID, err := lru.New[string, breeders.Breeder](size)
	if err != nil {
		return nil, err
	}
	byCode, err := lru.New[string, breeders.Breeder](size)
	if err != nil {
		return nil, err
	}
	return &BreedersRepo{inner: inner, byID: byID, byCode: byCode}, nil
}

func (r *BreedersRepo) Create(ctx context.Context, b breeders.Breeder) error {
	if err := r.inner.Create(ctx, b); err != nil {
		return err
	}
	r.invalidate(b)
	return nil
}

func (r *BreedersRepo) Update(ctx context.Context, b breeders.Breeder) error {
	if err := r.inner.Update(ctx, b); err != nil {
		return err
	}
	r.invalidate(b)
	return nil
}

func (r *BreedersRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	if b, ok := r.byID.Get(id); ok {
		return b, nil
	}
	b, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return breeders.Breeder{}, err
	}
	r.store(b)
	return b, nil
}

func (r *BreedersRepo) GetByCode(ctx context.Context, code string) (breeders.Breeder, error) {
	if b, ok := r.byCode.Get(code); ok {
		return b, nil
	}
	b, err := r.inner.GetByCode(ctx, code)
	if err != nil {
		return breeders.Breeder{}, err
	}
	r.store(b)
	return b, nil
}

// Los listados dependen de campos de otras filas (padres, parejas), así que
// pasan directo al store; cachearlos pediría invalidación por predicado.
func (r *BreedersRepo) List(ctx context.Context, filter breeders.ListFilter) ([]breeders.Breeder, error) {
	return r.inner.List(ctx, filter)
}

func (r *BreedersRepo) ListByParents(ctx context.Context, sireCode, damCode string) ([]breeders.Breeder, error) {
	return r.inner.ListByParents(ctx, sireCode, damCode)
}

func (r *BreedersRepo) ListChildrenByParentCode(ctx context.Context, code string) ([]breeders.Breeder, error) {
	return r.inner.ListChildrenByParentCode(ctx, code)
}

func (r *BreedersRepo) ListFemalesByMateCode(ctx context.Context, codes []string) ([]breeders.Breeder, error) {
	return r.inner.ListFemalesByMateCode(ctx, codes)
}

func (r *BreedersRepo) store(b breeders.Breeder) {
	r.byID.Add(b.ID, b)
	r.byCode.Add(breeders.NormalizeCode(b.Code), b)
}

func (r *BreedersRepo) invalidate(b breeders.Breeder) {
	r.byID.Remove(b.ID)
	r.byCode.Remove(breeders.NormalizeCode(b.Code))
}
