package familytree

import (
	"context"
	"testing"

	"breeder-album/internal/domain/breeders"
)

type treeRepo struct {
	byID map[string]breeders.Breeder
}

func newTreeRepo(bs ...breeders.Breeder) *treeRepo {
	r := &treeRepo{byID: map[string]breeders.Breeder{}}
	for _, b := range bs {
		r.byID[b.ID] = b
	}
	return r
}

func (r *treeRepo) Create(ctx context.Context, b breeders.Breeder) error { r.byID[b.ID] = b; return nil }
func (r *treeRepo) Update(ctx context.Context, b breeders.Breeder) error { r.byID[b.ID] = b; return nil }

func (r *treeRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	b, ok := r.byID[id]
	if !ok {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return b, nil
}

func (r *treeRepo) GetByCode(ctx context.Context, code string) (breeders.Breeder, error) {
	for _, b := range r.byID {
		if breeders.NormalizeCode(b.Code) == code {
			return b, nil
		}
	}
	return breeders.Breeder{}, breeders.ErrNotFound
}

func (r *treeRepo) List(ctx context.Context, f breeders.ListFilter) ([]breeders.Breeder, error) {
	return nil, nil
}

func (r *treeRepo) ListByParents(ctx context.Context, sire, dam string) ([]breeders.Breeder, error) {
	out := make([]breeders.Breeder, 0)
	for _, b := range r.byID {
		if breeders.NormalizeCode(b.SireCode) == sire && breeders.NormalizeCode(b.DamCode) == dam {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *treeRepo) ListChildrenByParentCode(ctx context.Context, code string) ([]breeders.Breeder, error) {
	out := make([]breeders.Breeder, 0)
	for _, b := range r.byID {
		if breeders.NormalizeCode(b.SireCode) == code || breeders.NormalizeCode(b.DamCode) == code {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *treeRepo) ListFemalesByMateCode(ctx context.Context, codes []string) ([]breeders.Breeder, error) {
	return nil, nil
}

func b(id, code, sire, dam string) breeders.Breeder {
	return breeders.Breeder{ID: id, Code: code, SireCode: sire, DamCode: dam}
}

func TestBuilder_FullThreeGenerations(t *testing.T) {
	repo := newTreeRepo(
		b("cur", "A-01", "F-1", "M-1"),
		b("sib", "A-02", "F-1", "M-1"),
		b("f", "F-1", "PGF-1", "PGM-1"),
		b("m", "M-1", "MGF-1", "MGM-1"),
		b("pgf", "PGF-1", "PPG-F", "PPG-M"),
		b("pgm", "PGM-1", "PMG-F", "PMG-M"),
		b("mgf", "MGF-1", "MPG-F", "MPG-M"),
		b("mgm", "MGM-1", "MMG-F", "MMG-M"),
		b("ppgf", "PPG-F", "", ""),
		b("ppgm", "PPG-M", "", ""),
		b("pmgf", "PMG-F", "", ""),
		b("pmgm", "PMG-M", "", ""),
		b("mpgf", "MPG-F", "", ""),
		b("mpgm", "MPG-M", "", ""),
		b("mmgf", "MMG-F", "", ""),
		b("mmgm", "MMG-M", "", ""),
		b("kid", "K-1", "A-01", "X-9"),
	)

	tree, err := NewBuilder(repo).Build(context.Background(), "cur", Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	a := tree.Ancestors
	slots := map[string]*FamilyTreeNode{
		"F-1":   a.Father,
		"M-1":   a.Mother,
		"PGF-1": a.PaternalGrandfather,
		"PGM-1": a.PaternalGrandmother,
		"MGF-1": a.MaternalGrandfather,
		"MGM-1": a.MaternalGrandmother,
		"PPG-F": a.PaternalPaternalGreatGrandfather,
		"PPG-M": a.PaternalPaternalGreatGrandmother,
		"PMG-F": a.PaternalMaternalGreatGrandfather,
		"PMG-M": a.PaternalMaternalGreatGrandmother,
		"MPG-F": a.MaternalPaternalGreatGrandfather,
		"MPG-M": a.MaternalPaternalGreatGrandmother,
		"MMG-F": a.MaternalMaternalGreatGrandfather,
		"MMG-M": a.MaternalMaternalGreatGrandmother,
	}
	for code, n := range slots {
		if !n.Resolved() || n.Code != code {
			t.Fatalf("slot %s: expected resolved node, got %#v", code, n)
		}
	}

	if len(tree.Siblings) != 1 || tree.Siblings[0].Code != "A-02" {
		t.Fatalf("expected sibling A-02, got %#v", tree.Siblings)
	}
	if len(tree.Offspring) != 1 || tree.Offspring[0].Code != "K-1" {
		t.Fatalf("expected offspring K-1, got %#v", tree.Offspring)
	}
}

func TestBuilder_UnresolvedCodeTruncates(t *testing.T) {
	repo := newTreeRepo(
		b("cur", "A-01", "F-1", ""),
		b("f", "F-1", "GHOST-9", "PGM-1"),
		b("pgm", "PGM-1", "PMG-F", ""),
		b("pmgf", "PMG-F", "", ""),
	)

	tree, err := NewBuilder(repo).Build(context.Background(), "cur", Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	a := tree.Ancestors
	if a.Mother != nil {
		t.Fatalf("empty dam code must yield nil mother")
	}
	if !a.Father.Resolved() {
		t.Fatalf("father must resolve")
	}

	// El código fantasma aparece como nodo sin id y corta su propia rama.
	gf := a.PaternalGrandfather
	if gf == nil || gf.Resolved() || gf.Code != "GHOST-9" {
		t.Fatalf("expected unresolved GHOST-9 node, got %#v", gf)
	}
	if a.PaternalPaternalGreatGrandfather != nil || a.PaternalPaternalGreatGrandmother != nil {
		t.Fatalf("unresolved grandfather must not expand great-grandparents")
	}

	// La rama de la abuela paterna sigue viva.
	if !a.PaternalGrandmother.Resolved() || !a.PaternalMaternalGreatGrandfather.Resolved() {
		t.Fatalf("resolved branch must keep expanding")
	}
	if a.PaternalMaternalGreatGrandmother != nil {
		t.Fatalf("missing dam of grandmother must be nil")
	}
}

func TestBuilder_SiblingRuleIsStrict(t *testing.T) {
	repo := newTreeRepo(
		b("a", "A-01", "F-1", "M-1"),
		b("b", "A-02", "F-1", "M-1"), // mismos dos padres: hermanos
		b("c", "A-03", "F-1", ""),    // dam vacío: no
		b("d", "A-04", "", ""),       // sin padres: no
		b("e", "A-05", "", ""),       // dos vacíos tampoco se emparejan entre sí
	)
	builder := NewBuilder(repo)
	ctx := context.Background()

	for _, pair := range [][2]string{{"a", "A-02"}, {"b", "A-01"}} {
		tree, err := builder.Build(ctx, pair[0], Options{})
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if len(tree.Siblings) != 1 || tree.Siblings[0].Code != pair[1] {
			t.Fatalf("%s: expected sole sibling %s, got %#v", pair[0], pair[1], tree.Siblings)
		}
	}

	for _, id := range []string{"c", "d", "e"} {
		tree, err := builder.Build(ctx, id, Options{})
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if len(tree.Siblings) != 0 {
			t.Fatalf("%s: expected no siblings, got %#v", id, tree.Siblings)
		}
	}
}

func TestBuilder_CyclicCodesAreHarmless(t *testing.T) {
	// A es su propio ancestro vía códigos: la expansión es de profundidad
	// fija, así que termina igual.
	repo := newTreeRepo(
		b("a", "A-01", "B-01", ""),
		b("bb", "B-01", "A-01", ""),
	)

	tree, err := NewBuilder(repo).Build(context.Background(), "a", Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	a := tree.Ancestors
	if a.Father == nil || a.Father.Code != "B-01" {
		t.Fatalf("expected father B-01, got %#v", a.Father)
	}
	if a.PaternalGrandfather == nil || a.PaternalGrandfather.Code != "A-01" {
		t.Fatalf("expected grandfather A-01, got %#v", a.PaternalGrandfather)
	}
	if a.PaternalPaternalGreatGrandfather == nil || a.PaternalPaternalGreatGrandfather.Code != "B-01" {
		t.Fatalf("expected great-grandfather B-01, got %#v", a.PaternalPaternalGreatGrandfather)
	}
}

func TestBuilder_CurrentNotFound(t *testing.T) {
	_, err := NewBuilder(newTreeRepo()).Build(context.Background(), "nope", Options{})
	if err != breeders.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBuilder_Mate(t *testing.T) {
	repo := newTreeRepo(
		breeders.Breeder{ID: "f1", Code: "A-01", Sex: breeders.SexFemale, MateCode: "XT-D公"},
		breeders.Breeder{ID: "f2", Code: "A-02", Sex: breeders.SexFemale, MateCode: "ZZ-99"},
		breeders.Breeder{ID: "m1", Code: "XT-D", Sex: breeders.SexMale},
		breeders.Breeder{ID: "m2", Code: "YT-B", Sex: breeders.SexMale},
	)
	builder := NewBuilder(repo)
	ctx := context.Background()

	// El sufijo 公 del dato importado no impide resolver al macho.
	tree, err := builder.Build(ctx, "f1", Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tree.CurrentMate == nil || !tree.CurrentMate.Node.Resolved() || tree.CurrentMate.Code != "XT-D" {
		t.Fatalf("expected resolved mate XT-D, got %#v", tree.CurrentMate)
	}

	// Pareja declarada que no existe: se expone igual, sin nodo.
	tree, err = builder.Build(ctx, "f2", Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tree.CurrentMate == nil || tree.CurrentMate.Node != nil || tree.CurrentMate.Code != "ZZ-99" {
		t.Fatalf("expected unresolved mate ZZ-99, got %#v", tree.CurrentMate)
	}

	// El override pisa el MateCode declarado.
	tree, err = builder.Build(ctx, "f1", Options{MateCodeOverride: "yt-b"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tree.CurrentMate == nil || !tree.CurrentMate.Node.Resolved() || tree.CurrentMate.Code != "YT-B" {
		t.Fatalf("expected override mate YT-B, got %#v", tree.CurrentMate)
	}

	// Los machos no llevan pareja actual.
	tree, err = builder.Build(ctx, "m1", Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tree.CurrentMate != nil {
		t.Fatalf("male must not carry current mate, got %#v", tree.CurrentMate)
	}
}
