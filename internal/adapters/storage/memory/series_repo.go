package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"breeder-album/internal/domain/series"
)

type seriesRepo struct {
	mu   sync.RWMutex
	byID map[string]series.Series
}

func NewSeriesRepo() series.Repository {
	return &seriesRepo{
		byID: make(map[string]series.Series),
	}
}

func (r *seriesRepo) Create(ctx context.Context, s series.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("series id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("series already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *seriesRepo) Update(ctx context.Context, s series.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return series.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *seriesRepo) GetByID(ctx context.Context, id string) (series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return series.Series{}, series.ErrNotFound
	}
	return s, nil
}

func (r *seriesRepo) GetByCode(ctx context.Context, code string) (series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.byID {
		if s.Code == code {
			return s, nil
		}
	}
	return series.Series{}, series.ErrNotFound
}

func (r *seriesRepo) List(ctx context.Context, filter series.ListFilter) ([]series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]series.Series, 0)
	for _, s := range r.byID {
		if !filter.IncludeInactive && !s.IsActive {
			continue
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}
