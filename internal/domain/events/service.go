package events

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"breeder-album/internal/domain/breeders"

	"github.com/google/uuid"
)

var (
	// ErrValidation cubre entrada malformada en el append (fecha inválida,
	// egg_count no positivo, campos de variante faltantes). Se rechaza antes
	// de persistir, nunca se coercea en silencio.
	ErrValidation = errors.New("validation error")
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	defaultMateLoadLimit = 80
)

type Service struct {
	repo     Repository
	breeders breeders.Repository
	now      func() time.Time
}

func NewService(repo Repository, breederRepo breeders.Repository) *Service {
	return &Service{
		repo:     repo,
		breeders: breederRepo,
		now:      time.Now,
	}
}

// ListOptions son los parámetros de paginado del timeline. Type vacío o
// "all" devuelve todos los tipos. Cursor es el token opaco de la página
// anterior.
type ListOptions struct {
	Type   string
	Limit  int
	Cursor string
}

// List devuelve una página del timeline de un reproductor, de más reciente a
// más antiguo. Falla con breeders.ErrNotFound si el reproductor no existe;
// un timeline vacío no es un error.
func (s *Service) List(ctx context.Context, breederID string, opts ListOptions) (Page, error) {
	if _, err := s.breeders.GetByID(ctx, breederID); err != nil {
		return Page{}, err
	}

	filter := ListFilter{Limit: opts.Limit}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	if t := strings.TrimSpace(opts.Type); t != "" && t != "all" {
		et := EventType(t)
		if !ValidEventType(et) {
			return Page{}, fmt.Errorf("%w: invalid event type %q", ErrValidation, t)
		}
		filter.Type = et
	}

	if strings.TrimSpace(opts.Cursor) != "" {
		c, err := decodeCursor(opts.Cursor)
		if err != nil {
			return Page{}, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		filter.Cursor = &c
	}

	// Se pide una fila de más para saber si hay otra página.
	limit := filter.Limit
	filter.Limit = limit + 1

	rows, err := s.repo.ListByBreeder(ctx, breederID, filter)
	if err != nil {
		return Page{}, err
	}

	page := Page{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		page.HasMore = true
		page.NextCursor = encodeCursor(page.Items[limit-1])
	}
	return page, nil
}

// LatestOfType es el caso degenerado de List con limit=1 y filtro de tipo.
// Devuelve nil cuando no hay ningún evento de ese tipo.
func (s *Service) LatestOfType(ctx context.Context, breederID string, t EventType) (*BreederEvent, error) {
	if !ValidEventType(t) {
		return nil, fmt.Errorf("%w: invalid event type %q", ErrValidation, t)
	}

	rows, err := s.repo.ListByBreeder(ctx, breederID, ListFilter{Type: t, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	e := rows[0]
	return &e, nil
}

type AppendInput struct {
	BreederID string
	Type      EventType
	EventDate time.Time
	Note      string

	MaleCode    string // mating
	EggCount    *int   // egg
	OldMateCode string // change_mate
	NewMateCode string // change_mate
}

// Append registra un evento nuevo. Es la única mutación del timeline: no hay
// edición ni borrado. La variante se arma acá, con sus campos obligatorios
// por tipo; un evento nunca queda con detalles de un tipo que no es el suyo.
func (s *Service) Append(ctx context.Context, in AppendInput) (BreederEvent, error) {
	if _, err := s.breeders.GetByID(ctx, in.BreederID); err != nil {
		return BreederEvent{}, err
	}
	if in.EventDate.IsZero() {
		return BreederEvent{}, fmt.Errorf("%w: event_date is required", ErrValidation)
	}

	e := BreederEvent{
		ID:         uuid.NewString(),
		BreederID:  in.BreederID,
		Type:       in.Type,
		EventDate:  in.EventDate,
		RecordedAt: s.now(),
		Note:       strings.TrimSpace(in.Note),
	}

	switch in.Type {
	case EventTypeMating:
		e.Mating = &MatingDetail{MaleCode: breeders.NormalizeCode(in.MaleCode)}
	case EventTypeEgg:
		if in.EggCount == nil {
			return BreederEvent{}, fmt.Errorf("%w: egg_count is required", ErrValidation)
		}
		if *in.EggCount <= 0 {
			return BreederEvent{}, fmt.Errorf("%w: egg_count must be a positive integer", ErrValidation)
		}
		e.Egg = &EggDetail{Count: *in.EggCount}
	case EventTypeChangeMate:
		e.ChangeMate = &ChangeMateDetail{
			OldMateCode: breeders.NormalizeCode(in.OldMateCode),
			NewMateCode: breeders.NormalizeCode(in.NewMateCode),
		}
	default:
		return BreederEvent{}, fmt.Errorf("%w: invalid event type %q", ErrValidation, in.Type)
	}

	if err := s.repo.Append(ctx, e); err != nil {
		return BreederEvent{}, err
	}
	return e, nil
}

// CycleSummary es el estado del ciclo junto con las dos fechas de las que se
// derivó, para que la UI pueda mostrarlas.
type CycleSummary struct {
	Status       CycleStatus
	LastEggAt    *time.Time
	LastMatingAt *time.Time
	DaysSinceEgg *int
}

func (s *Service) CycleStatus(ctx context.Context, breederID string) (CycleSummary, error) {
	if _, err := s.breeders.GetByID(ctx, breederID); err != nil {
		return CycleSummary{}, err
	}
	return s.cycleSummary(ctx, breederID)
}

func (s *Service) cycleSummary(ctx context.Context, breederID string) (CycleSummary, error) {
	lastEgg, err := s.LatestOfType(ctx, breederID, EventTypeEgg)
	if err != nil {
		return CycleSummary{}, err
	}
	lastMating, err := s.LatestOfType(ctx, breederID, EventTypeMating)
	if err != nil {
		return CycleSummary{}, err
	}

	out := CycleSummary{}
	if lastEgg != nil {
		t := lastEgg.EventDate
		out.LastEggAt = &t
		days := DaysSince(s.now(), t)
		out.DaysSinceEgg = &days
	}
	if lastMating != nil {
		t := lastMating.EventDate
		out.LastMatingAt = &t
	}
	out.Status = ComputeCycleStatus(s.now(), out.LastEggAt, out.LastMatingAt)
	return out, nil
}

type MateLoadItem struct {
	FemaleID   string
	FemaleCode string

	LastEggAt            *time.Time
	LastMatingAt         *time.Time
	LastMatingWithMaleAt *time.Time
	DaysSinceEgg         *int

	Status CycleStatus
}

type MateLoadTotals struct {
	RelatedFemales int
	NeedMating     int
	Warning        int
}

// MateLoad es la carga de trabajo de un macho: las hembras relacionadas con
// él y el estado de ciclo de cada una.
type MateLoad struct {
	MaleID   string
	MaleCode string
	Totals   MateLoadTotals
	Items    []MateLoadItem
}

// MateLoadFor arma la carga de un macho. Las hembras relacionadas salen de
// dos fuentes: eventos mating que llevan su código, y el MateCode declarado
// de cada hembra (con y sin el sufijo 公 que traen los datos importados).
func (s *Service) MateLoadFor(ctx context.Context, maleID string, limit int) (MateLoad, error) {
	male, err := s.breeders.GetByID(ctx, maleID)
	if err != nil {
		return MateLoad{}, err
	}
	if male.Sex != breeders.SexMale {
		return MateLoad{}, fmt.Errorf("%w: mate-load only supported for male breeders", ErrValidation)
	}
	if limit <= 0 {
		limit = defaultMateLoadLimit
	}

	femaleIDs := map[string]bool{}

	ids, err := s.repo.ListBreederIDsByMatingMale(ctx, male.Code)
	if err != nil {
		return MateLoad{}, err
	}
	for _, id := range ids {
		femaleIDs[id] = true
	}

	declared, err := s.breeders.ListFemalesByMateCode(ctx, breeders.MateCodeCandidates(male.Code))
	if err != nil {
		return MateLoad{}, err
	}
	for _, f := range declared {
		femaleIDs[f.ID] = true
	}

	out := MateLoad{MaleID: male.ID, MaleCode: male.Code, Items: make([]MateLoadItem, 0, len(femaleIDs))}

	for id := range femaleIDs {
		female, err := s.breeders.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, breeders.ErrNotFound) {
				continue
			}
			return MateLoad{}, err
		}
		if female.Sex != breeders.SexFemale {
			continue
		}

		summary, err := s.cycleSummary(ctx, id)
		if err != nil {
			return MateLoad{}, err
		}

		item := MateLoadItem{
			FemaleID:     female.ID,
			FemaleCode:   female.Code,
			LastEggAt:    summary.LastEggAt,
			LastMatingAt: summary.LastMatingAt,
			DaysSinceEgg: summary.DaysSinceEgg,
			Status:       summary.Status,
		}
		if t, err := s.latestMatingWith(ctx, id, male.Code); err != nil {
			return MateLoad{}, err
		} else if t != nil {
			item.LastMatingWithMaleAt = t
		}

		out.Items = append(out.Items, item)
		switch summary.Status {
		case CycleNeedMating:
			out.Totals.NeedMating++
		case CycleWarning:
			out.Totals.Warning++
		}
	}

	// Más urgente primero: warning, need_mating, normal; dentro del mismo
	// estado, la puesta más vieja primero; el código desempata.
	severity := map[CycleStatus]int{CycleWarning: 2, CycleNeedMating: 1, CycleNormal: 0}
	sort.Slice(out.Items, func(i, j int) bool {
		a, b := out.Items[i], out.Items[j]
		if severity[a.Status] != severity[b.Status] {
			return severity[a.Status] > severity[b.Status]
		}
		da, db := -1, -1
		if a.DaysSinceEgg != nil {
			da = *a.DaysSinceEgg
		}
		if b.DaysSinceEgg != nil {
			db = *b.DaysSinceEgg
		}
		if da != db {
			return da > db
		}
		return a.FemaleCode > b.FemaleCode
	})

	out.Totals.RelatedFemales = len(out.Items)
	if len(out.Items) > limit {
		out.Items = out.Items[:limit]
	}
	return out, nil
}

func (s *Service) latestMatingWith(ctx context.Context, femaleID, maleCode string) (*time.Time, error) {
	rows, err := s.repo.ListByBreeder(ctx, femaleID, ListFilter{Type: EventTypeMating, Limit: maxPageSize})
	if err != nil {
		return nil, err
	}
	for _, e := range rows {
		if e.Mating != nil && e.Mating.MaleCode == maleCode {
			t := e.EventDate
			return &t, nil
		}
	}
	return nil, nil
}
