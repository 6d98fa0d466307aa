package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"breeder-album/internal/domain/breeders"
)

type breederRepo struct {
	mu     sync.RWMutex
	byID   map[string]breeders.Breeder
	byCode map[string]string // código normalizado -> id
}

func NewBreederRepo() breeders.Repository {
	return &breederRepo{
		byID:   make(map[string]breeders.Breeder),
		byCode: make(map[string]string),
	}
}

func (r *breederRepo) Create(ctx context.Context, b breeders.Breeder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("breeder id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("breeder already exists")
	}

	code := breeders.NormalizeCode(b.Code)
	if code == "" {
		return errors.New("breeder code required")
	}
	if _, taken := r.byCode[code]; taken {
		return errors.New("breeder code already in use")
	}

	r.byID[b.ID] = b
	r.byCode[code] = b.ID
	return nil
}

func (r *breederRepo) Update(ctx context.Context, b breeders.Breeder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.byID[b.ID]
	if !exists {
		return breeders.ErrNotFound
	}

	// El código no cambia vía Update; el índice se mantiene por las dudas.
	oldCode := breeders.NormalizeCode(prev.Code)
	newCode := breeders.NormalizeCode(b.Code)
	if oldCode != newCode {
		delete(r.byCode, oldCode)
		r.byCode[newCode] = b.ID
	}

	r.byID[b.ID] = b
	return nil
}

func (r *breederRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return b, nil
}

func (r *breederRepo) GetByCode(ctx context.Context, code string) (breeders.Breeder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[code]
	if !ok {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *breederRepo) List(ctx context.Context, filter breeders.ListFilter) ([]breeders.Breeder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeders.Breeder, 0)
	for _, b := range r.byID {
		if filter.SeriesID != "" && b.SeriesID != filter.SeriesID {
			continue
		}
		if filter.Sex != "" && b.Sex != filter.Sex {
			continue
		}
		out = append(out, b)
	}

	sortByCode(out)

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *breederRepo) ListByParents(ctx context.Context, sireCode, damCode string) ([]breeders.Breeder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeders.Breeder, 0)
	for _, b := range r.byID {
		if breeders.NormalizeCode(b.SireCode) == sireCode && breeders.NormalizeCode(b.DamCode) == damCode {
			out = append(out, b)
		}
	}
	sortByCode(out)
	return out, nil
}

func (r *breederRepo) ListChildrenByParentCode(ctx context.Context, code string) ([]breeders.Breeder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeders.Breeder, 0)
	for _, b := range r.byID {
		if breeders.NormalizeCode(b.SireCode) == code || breeders.NormalizeCode(b.DamCode) == code {
			out = append(out, b)
		}
	}
	sortByCode(out)
	return out, nil
}

func (r *breederRepo) ListFemalesByMateCode(ctx context.Context, codes []string) ([]breeders.Breeder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(codes))
	for _, c := range codes {
		wanted[c] = true
	}

	out := make([]breeders.Breeder, 0)
	for _, b := range r.byID {
		if b.Sex != breeders.SexFemale {
			continue
		}
		if wanted[breeders.NormalizeCode(b.MateCode)] {
			out = append(out, b)
		}
	}
	sortByCode(out)
	return out, nil
}

// Orden estable por código (solo para consistencia en dev)
func sortByCode(out []breeders.Breeder) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
}
