package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"breeder-album/internal/domain/events"
)

type eventRepo struct {
	mu   sync.RWMutex
	byID map[string]events.BreederEvent
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.BreederEvent),
	}
}

func (r *eventRepo) Append(ctx context.Context, e events.BreederEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *eventRepo) ListByBreeder(ctx context.Context, breederID string, filter events.ListFilter) ([]events.BreederEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.BreederEvent, 0)
	for _, e := range r.byID {
		if e.BreederID != breederID {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		// Keyset: solo filas estrictamente posteriores al cursor en el
		// orden descendente.
		if filter.Cursor != nil && !filter.Cursor.Before(e) {
			continue
		}
		out = append(out, e)
	}

	// Mismo orden que el adaptador SQL: (event_date, created_at, id) desc.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.EventDate.Equal(b.EventDate) {
			return a.EventDate.After(b.EventDate)
		}
		if !a.RecordedAt.Equal(b.RecordedAt) {
			return a.RecordedAt.After(b.RecordedAt)
		}
		return a.ID > b.ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *eventRepo) ListBreederIDsByMatingMale(ctx context.Context, maleCode string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, e := range r.byID {
		if e.Type != events.EventTypeMating || e.Mating == nil {
			continue
		}
		if e.Mating.MaleCode != maleCode || seen[e.BreederID] {
			continue
		}
		seen[e.BreederID] = true
		out = append(out, e.BreederID)
	}
	sort.Strings(out)
	return out, nil
}
