package breeders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound lo devuelven los repositorios cuando el reproductor no
	// existe. Vive en el dominio (y no solo en storage) porque el resolver
	// necesita distinguir "no existe" de una falla de IO.
	ErrNotFound = errors.New("breeder not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Code         string
	Name         string
	Sex          string
	SireCode     string
	DamCode      string
	MateCode     string
	ThumbnailURL string
	SeriesID     string
	Notes        string
}

func parseSex(s string) (Sex, bool) {
	switch Sex(strings.TrimSpace(s)) {
	case SexMale:
		return SexMale, true
	case SexFemale:
		return SexFemale, true
	case SexUnknown, "":
		return SexUnknown, true
	default:
		return "", false
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Breeder, error) {
	code := NormalizeCode(in.Code)
	if code == "" {
		return Breeder{}, ErrInvalidInput
	}
	sex, ok := parseSex(in.Sex)
	if !ok {
		return Breeder{}, ErrInvalidInput
	}

	// El código debe ser único (módulo normalización).
	if _, err := s.repo.GetByCode(ctx, code); err == nil {
		return Breeder{}, ErrInvalidInput
	} else if !errors.Is(err, ErrNotFound) {
		return Breeder{}, err
	}

	now := s.now()
	b := Breeder{
		ID:           uuid.NewString(),
		Code:         code,
		Name:         strings.TrimSpace(in.Name),
		Sex:          sex,
		SireCode:     NormalizeCode(in.SireCode),
		DamCode:      NormalizeCode(in.DamCode),
		MateCode:     NormalizeCode(in.MateCode),
		ThumbnailURL: strings.TrimSpace(in.ThumbnailURL),
		SeriesID:     strings.TrimSpace(in.SeriesID),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Breeder{}, err
	}
	return b, nil
}

type UpdateInput struct {
	Name         *string
	Sex          *string
	SireCode     *string
	DamCode      *string
	MateCode     *string
	ThumbnailURL *string
	SeriesID     *string
	Notes        *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Breeder, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Breeder{}, err
	}

	if in.Name != nil {
		b.Name = strings.TrimSpace(*in.Name)
	}
	if in.Sex != nil {
		sex, ok := parseSex(*in.Sex)
		if !ok {
			return Breeder{}, ErrInvalidInput
		}
		b.Sex = sex
	}
	if in.SireCode != nil {
		b.SireCode = NormalizeCode(*in.SireCode)
	}
	if in.DamCode != nil {
		b.DamCode = NormalizeCode(*in.DamCode)
	}
	if in.MateCode != nil {
		b.MateCode = NormalizeCode(*in.MateCode)
	}
	if in.ThumbnailURL != nil {
		b.ThumbnailURL = strings.TrimSpace(*in.ThumbnailURL)
	}
	if in.SeriesID != nil {
		b.SeriesID = strings.TrimSpace(*in.SeriesID)
	}
	if in.Notes != nil {
		b.Notes = strings.TrimSpace(*in.Notes)
	}
	b.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, b); err != nil {
		return Breeder{}, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Breeder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Breeder{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByCode(ctx context.Context, code string) (Breeder, error) {
	norm := NormalizeCode(code)
	if norm == "" {
		return Breeder{}, ErrNotFound
	}
	return s.repo.GetByCode(ctx, norm)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Breeder, error) {
	if filter.Limit <= 0 {
		filter.Limit = 200
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	return s.repo.List(ctx, filter)
}
