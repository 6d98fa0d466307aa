package events

import (
	"context"
	"sort"
	"testing"
	"time"

	"breeder-album/internal/domain/breeders"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testBreederRepo struct {
	byID map[string]breeders.Breeder
}

func newTestBreederRepo(bs ...breeders.Breeder) *testBreederRepo {
	r := &testBreederRepo{byID: map[string]breeders.Breeder{}}
	for _, b := range bs {
		r.byID[b.ID] = b
	}
	return r
}

func (r *testBreederRepo) Create(ctx context.Context, b breeders.Breeder) error {
	r.byID[b.ID] = b
	return nil
}

func (r *testBreederRepo) Update(ctx context.Context, b breeders.Breeder) error {
	r.byID[b.ID] = b
	return nil
}

func (r *testBreederRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	b, ok := r.byID[id]
	if !ok {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return b, nil
}

func (r *testBreederRepo) GetByCode(ctx context.Context, code string) (breeders.Breeder, error) {
	for _, b := range r.byID {
		if b.Code == code {
			return b, nil
		}
	}
	return breeders.Breeder{}, breeders.ErrNotFound
}

func (r *testBreederRepo) List(ctx context.Context, f breeders.ListFilter) ([]breeders.Breeder, error) {
	return nil, nil
}

func (r *testBreederRepo) ListByParents(ctx context.Context, sire, dam string) ([]breeders.Breeder, error) {
	return nil, nil
}

func (r *testBreederRepo) ListChildrenByParentCode(ctx context.Context, code string) ([]breeders.Breeder, error) {
	return nil, nil
}

func (r *testBreederRepo) ListFemalesByMateCode(ctx context.Context, codes []string) ([]breeders.Breeder, error) {
	out := make([]breeders.Breeder, 0)
	for _, b := range r.byID {
		if b.Sex != breeders.SexFemale {
			continue
		}
		for _, c := range codes {
			if b.MateCode == c {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

type testEventRepo struct {
	events []BreederEvent
}

func (r *testEventRepo) Append(ctx context.Context, e BreederEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *testEventRepo) ListByBreeder(ctx context.Context, breederID string, f ListFilter) ([]BreederEvent, error) {
	out := make([]BreederEvent, 0)
	for _, e := range r.events {
		if e.BreederID != breederID {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.Cursor != nil && !f.Cursor.Before(e) {
			continue
		}
		out = append(out, e)
	}
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
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *testEventRepo) ListBreederIDsByMatingMale(ctx context.Context, maleCode string) ([]string, error) {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, e := range r.events {
		if e.Type == EventTypeMating && e.Mating != nil && e.Mating.MaleCode == maleCode && !seen[e.BreederID] {
			seen[e.BreederID] = true
			out = append(out, e.BreederID)
		}
	}
	return out, nil
}

func newTestService(bs ...breeders.Breeder) (*Service, *testEventRepo) {
	repo := &testEventRepo{}
	return NewService(repo, newTestBreederRepo(bs...)), repo
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.Local)
}

// -------------------------
// Tests
// -------------------------

func TestService_Append_VariantFields(t *testing.T) {
	svc, _ := newTestService(breeders.Breeder{ID: "f1", Code: "A-01", Sex: breeders.SexFemale})
	ctx := context.Background()

	count := 3
	e, err := svc.Append(ctx, AppendInput{
		BreederID: "f1",
		Type:      EventTypeEgg,
		EventDate: day(5),
		EggCount:  &count,
	})
	if err != nil {
		t.Fatalf("Append egg error: %v", err)
	}
	if e.Egg == nil || e.Egg.Count != 3 {
		t.Fatalf("expected egg detail count=3, got %#v", e.Egg)
	}
	if e.Mating != nil || e.ChangeMate != nil {
		t.Fatalf("egg event must not carry other variant details")
	}

	m, err := svc.Append(ctx, AppendInput{
		BreederID: "f1",
		Type:      EventTypeMating,
		EventDate: day(6),
		MaleCode:  " xt-d ",
	})
	if err != nil {
		t.Fatalf("Append mating error: %v", err)
	}
	if m.Mating == nil || m.Mating.MaleCode != "XT-D" {
		t.Fatalf("expected normalized male code XT-D, got %#v", m.Mating)
	}
}

func TestService_Append_Rejections(t *testing.T) {
	svc, _ := newTestService(breeders.Breeder{ID: "f1", Code: "A-01", Sex: breeders.SexFemale})
	ctx := context.Background()

	// Reproductor inexistente: NotFound, no ValidationError.
	if _, err := svc.Append(ctx, AppendInput{BreederID: "ghost", Type: EventTypeEgg, EventDate: day(1)}); err != breeders.ErrNotFound {
		t.Fatalf("expected breeders.ErrNotFound, got %v", err)
	}

	bad := []AppendInput{
		{BreederID: "f1", Type: EventTypeEgg, EventDate: day(1)},                       // sin egg_count
		{BreederID: "f1", Type: EventTypeEgg, EventDate: day(1), EggCount: intPtr(0)},  // cero
		{BreederID: "f1", Type: EventTypeEgg, EventDate: day(1), EggCount: intPtr(-2)}, // negativo
		{BreederID: "f1", Type: "hatch", EventDate: day(1)},                            // tipo desconocido
		{BreederID: "f1", Type: EventTypeMating},                                       // sin fecha
	}
	for i, in := range bad {
		if _, err := svc.Append(ctx, in); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestService_LatestOfType(t *testing.T) {
	svc, _ := newTestService(breeders.Breeder{ID: "f1", Code: "A-01", Sex: breeders.SexFemale})
	ctx := context.Background()

	got, err := svc.LatestOfType(ctx, "f1", EventTypeEgg)
	if err != nil {
		t.Fatalf("LatestOfType error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on empty timeline")
	}

	for _, d := range []int{3, 9, 6} {
		count := 2
		if _, err := svc.Append(ctx, AppendInput{BreederID: "f1", Type: EventTypeEgg, EventDate: day(d), EggCount: &count}); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}
	if _, err := svc.Append(ctx, AppendInput{BreederID: "f1", Type: EventTypeMating, EventDate: day(20), MaleCode: "M-1"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	got, err = svc.LatestOfType(ctx, "f1", EventTypeEgg)
	if err != nil {
		t.Fatalf("LatestOfType error: %v", err)
	}
	if got == nil || !got.EventDate.Equal(day(9)) {
		t.Fatalf("expected latest egg on day 9, got %#v", got)
	}
}

func TestService_List_PaginationIsStableUnderAppend(t *testing.T) {
	svc, _ := newTestService(breeders.Breeder{ID: "f1", Code: "A-01", Sex: breeders.SexFemale})
	ctx := context.Background()

	// 11 eventos, con fechas repetidas para ejercitar el desempate.
	recorded := time.Date(2025, 3, 30, 10, 0, 0, 0, time.Local)
	for i := 0; i < 11; i++ {
		svc.now = func() time.Time { return recorded.Add(time.Duration(i) * time.Minute) }
		count := 1
		if _, err := svc.Append(ctx, AppendInput{
			BreederID: "f1",
			Type:      EventTypeEgg,
			EventDate: day(1 + i/2), // pares de eventos comparten fecha
			EggCount:  &count,
		}); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	full, err := svc.List(ctx, "f1", ListOptions{Limit: 100})
	if err != nil {
		t.Fatalf("full List error: %v", err)
	}
	if len(full.Items) != 11 || full.HasMore {
		t.Fatalf("expected 11 items single page, got %d hasMore=%v", len(full.Items), full.HasMore)
	}

	// Paginar de a 4, insertando un evento nuevo entre página 1 y 2: el
	// cursor es keyset, así que las páginas viejas no se corren.
	var paged []BreederEvent
	cursor := ""
	page := 0
	for {
		p, err := svc.List(ctx, "f1", ListOptions{Limit: 4, Cursor: cursor})
		if err != nil {
			t.Fatalf("page List error: %v", err)
		}
		paged = append(paged, p.Items...)

		if page == 0 {
			svc.now = func() time.Time { return recorded.Add(time.Hour) }
			count := 1
			if _, err := svc.Append(ctx, AppendInput{
				BreederID: "f1",
				Type:      EventTypeEgg,
				EventDate: day(25), // más reciente que todo lo paginado
				EggCount:  &count,
			}); err != nil {
				t.Fatalf("concurrent Append error: %v", err)
			}
		}
		page++

		if !p.HasMore {
			break
		}
		if p.NextCursor == "" {
			t.Fatalf("hasMore sin nextCursor")
		}
		cursor = p.NextCursor
	}

	if len(paged) != len(full.Items) {
		t.Fatalf("paged %d items, full fetch %d", len(paged), len(full.Items))
	}
	seen := map[string]bool{}
	for i, e := range paged {
		if seen[e.ID] {
			t.Fatalf("duplicate event %s in paged result", e.ID)
		}
		seen[e.ID] = true
		if e.ID != full.Items[i].ID {
			t.Fatalf("order mismatch at %d: %s vs %s", i, e.ID, full.Items[i].ID)
		}
	}
}

func TestService_List_TypeFilterAndBadCursor(t *testing.T) {
	svc, _ := newTestService(breeders.Breeder{ID: "f1", Code: "A-01", Sex: breeders.SexFemale})
	ctx := context.Background()

	count := 2
	mustAppend := func(in AppendInput) {
		t.Helper()
		if _, err := svc.Append(ctx, in); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}
	mustAppend(AppendInput{BreederID: "f1", Type: EventTypeEgg, EventDate: day(2), EggCount: &count})
	mustAppend(AppendInput{BreederID: "f1", Type: EventTypeMating, EventDate: day(3), MaleCode: "M-1"})
	mustAppend(AppendInput{BreederID: "f1", Type: EventTypeChangeMate, EventDate: day(4), OldMateCode: "M-1", NewMateCode: "M-2"})

	p, err := svc.List(ctx, "f1", ListOptions{Type: "mating", Limit: 10})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(p.Items) != 1 || p.Items[0].Type != EventTypeMating {
		t.Fatalf("type filter failed: %#v", p.Items)
	}

	// "all" equivale a sin filtro.
	p, err = svc.List(ctx, "f1", ListOptions{Type: "all", Limit: 10})
	if err != nil {
		t.Fatalf("List all error: %v", err)
	}
	if len(p.Items) != 3 {
		t.Fatalf("expected 3 items for all, got %d", len(p.Items))
	}

	if _, err := svc.List(ctx, "f1", ListOptions{Type: "hatch"}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	if _, err := svc.List(ctx, "f1", ListOptions{Cursor: "no-un-cursor"}); err == nil {
		t.Fatalf("expected error for malformed cursor")
	}
}

func TestService_CycleStatus(t *testing.T) {
	svc, _ := newTestService(breeders.Breeder{ID: "f1", Code: "A-01", Sex: breeders.SexFemale})
	ctx := context.Background()

	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	s, err := svc.CycleStatus(ctx, "f1")
	if err != nil {
		t.Fatalf("CycleStatus error: %v", err)
	}
	if s.Status != CycleNormal || s.LastEggAt != nil || s.DaysSinceEgg != nil {
		t.Fatalf("empty timeline: expected bare normal, got %#v", s)
	}

	count := 4
	if _, err := svc.Append(ctx, AppendInput{BreederID: "f1", Type: EventTypeEgg, EventDate: day(8), EggCount: &count}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	s, err = svc.CycleStatus(ctx, "f1")
	if err != nil {
		t.Fatalf("CycleStatus error: %v", err)
	}
	if s.Status != CycleWarning {
		t.Fatalf("12 days since egg: expected warning, got %s", s.Status)
	}
	if s.DaysSinceEgg == nil || *s.DaysSinceEgg != 12 {
		t.Fatalf("expected 12 days since egg, got %v", s.DaysSinceEgg)
	}

	if _, err := svc.Append(ctx, AppendInput{BreederID: "f1", Type: EventTypeMating, EventDate: day(15), MaleCode: "M-1"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	s, err = svc.CycleStatus(ctx, "f1")
	if err != nil {
		t.Fatalf("CycleStatus error: %v", err)
	}
	if s.Status != CycleNormal {
		t.Fatalf("re-mated after egg: expected normal, got %s", s.Status)
	}
	if s.LastEggAt == nil || s.LastMatingAt == nil {
		t.Fatalf("summary must keep both source dates")
	}
}

func TestService_MateLoad(t *testing.T) {
	male := breeders.Breeder{ID: "m1", Code: "XT-D", Sex: breeders.SexMale}
	f1 := breeders.Breeder{ID: "f1", Code: "A-01", Sex: breeders.SexFemale}               // relacionada por evento
	f2 := breeders.Breeder{ID: "f2", Code: "A-02", Sex: breeders.SexFemale, MateCode: "XT-D公"} // por MateCode con sufijo
	other := breeders.Breeder{ID: "f3", Code: "A-03", Sex: breeders.SexFemale, MateCode: "ZZ-9"}

	svc, _ := newTestService(male, f1, f2, other)
	ctx := context.Background()

	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	if _, err := svc.Append(ctx, AppendInput{BreederID: "f1", Type: EventTypeMating, EventDate: day(2), MaleCode: "XT-D"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	count := 3
	if _, err := svc.Append(ctx, AppendInput{BreederID: "f1", Type: EventTypeEgg, EventDate: day(9), EggCount: &count}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	load, err := svc.MateLoadFor(ctx, "m1", 0)
	if err != nil {
		t.Fatalf("MateLoadFor error: %v", err)
	}
	if load.Totals.RelatedFemales != 2 {
		t.Fatalf("expected 2 related females, got %d", load.Totals.RelatedFemales)
	}
	// f1 tiene puesta sin responder hace 11 días: warning y primera en el
	// orden de urgencia.
	if load.Items[0].FemaleID != "f1" || load.Items[0].Status != CycleWarning {
		t.Fatalf("expected f1 warning first, got %#v", load.Items[0])
	}
	if load.Items[0].LastMatingWithMaleAt == nil || !load.Items[0].LastMatingWithMaleAt.Equal(day(2)) {
		t.Fatalf("expected last mating with male on day 2, got %v", load.Items[0].LastMatingWithMaleAt)
	}
	if load.Totals.Warning != 1 || load.Totals.NeedMating != 0 {
		t.Fatalf("unexpected totals %#v", load.Totals)
	}

	// Solo machos.
	if _, err := svc.MateLoadFor(ctx, "f1", 0); err == nil {
		t.Fatalf("expected error for female mate-load")
	}
}
