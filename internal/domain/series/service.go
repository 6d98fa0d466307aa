package series

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("series not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Los códigos de serie siguen la misma convención que los de reproductor:
// se comparan sin espacios y sin distinguir mayúsculas.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *Service) List(ctx context.Context, includeInactive bool) ([]Series, error) {
	return s.repo.List(ctx, ListFilter{IncludeInactive: includeInactive})
}

func (s *Service) GetByID(ctx context.Context, id string) (Series, error) {
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Code        string
	Name        string
	Description string
	SortOrder   int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Series, error) {
	code := normalizeCode(in.Code)
	if code == "" {
		return Series{}, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return Series{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if _, err := s.repo.GetByCode(ctx, code); err == nil {
		return Series{}, fmt.Errorf("%w: code %q already in use", ErrInvalidInput, code)
	} else if !errors.Is(err, ErrNotFound) {
		return Series{}, err
	}

	now := s.now()
	sr := Series{
		ID:          uuid.NewString(),
		Code:        code,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		SortOrder:   in.SortOrder,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, sr); err != nil {
		return Series{}, err
	}
	return sr, nil
}

type UpdateInput struct {
	Name        *string
	Description *string
	SortOrder   *int
	IsActive    *bool
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Series, error) {
	sr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Series{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Series{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		sr.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		sr.Description = strings.TrimSpace(*in.Description)
	}
	if in.SortOrder != nil {
		sr.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		sr.IsActive = *in.IsActive
	}

	sr.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, sr); err != nil {
		return Series{}, err
	}
	return sr, nil
}
