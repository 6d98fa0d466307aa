package familytree

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"breeder-album/internal/domain/breeders"
)

// Options ajusta un armado puntual del árbol. MateCodeOverride reemplaza el
// MateCode declarado de la hembra sin persistir nada (preview de pareja).
type Options struct {
	MateCodeOverride string
}

// Builder arma árboles genealógicos de profundidad fija: tres generaciones
// hacia arriba (14 posiciones de ancestros), hermanos, crías y pareja actual.
// La expansión está desenrollada a propósito: los códigos sire/dam los carga
// el operador a mano y pueden formar ciclos, así que acá no hay recursión que
// pueda seguirlos.
type Builder struct {
	repo breeders.Repository
}

func NewBuilder(repo breeders.Repository) *Builder {
	return &Builder{repo: repo}
}

// Build arma el árbol de un reproductor. Solo la carga del reproductor raíz
// puede fallar con breeders.ErrNotFound; cualquier genealogía faltante
// degrada a slots null o nodos sin resolver, nunca a un error. Las ramas se
// cargan en paralelo y comparten un Resolver memoizado, así un código que
// aparece en varias ramas (padres compartidos de mellizos) se busca una sola
// vez.
func (b *Builder) Build(ctx context.Context, breederID string, opts Options) (FamilyTree, error) {
	current, err := b.repo.GetByID(ctx, breederID)
	if err != nil {
		return FamilyTree{}, err
	}

	res := breeders.NewResolver(b.repo)
	tree := FamilyTree{
		Current:   node(current),
		Siblings:  []FamilyTreeNode{},
		Offspring: []FamilyTreeNode{},
	}

	g, gctx := errgroup.WithContext(ctx)

	// Cada goroutine escribe campos disjuntos del árbol.
	g.Go(func() error {
		l, err := b.expandLine(gctx, res, current.SireCode)
		if err != nil {
			return err
		}
		tree.Ancestors.Father = l.parent
		tree.Ancestors.PaternalGrandfather = l.grandfather
		tree.Ancestors.PaternalGrandmother = l.grandmother
		tree.Ancestors.PaternalPaternalGreatGrandfather = l.grandfatherSire
		tree.Ancestors.PaternalPaternalGreatGrandmother = l.grandfatherDam
		tree.Ancestors.PaternalMaternalGreatGrandfather = l.grandmotherSire
		tree.Ancestors.PaternalMaternalGreatGrandmother = l.grandmotherDam
		return nil
	})

	g.Go(func() error {
		l, err := b.expandLine(gctx, res, current.DamCode)
		if err != nil {
			return err
		}
		tree.Ancestors.Mother = l.parent
		tree.Ancestors.MaternalGrandfather = l.grandfather
		tree.Ancestors.MaternalGrandmother = l.grandmother
		tree.Ancestors.MaternalPaternalGreatGrandfather = l.grandfatherSire
		tree.Ancestors.MaternalPaternalGreatGrandmother = l.grandfatherDam
		tree.Ancestors.MaternalMaternalGreatGrandfather = l.grandmotherSire
		tree.Ancestors.MaternalMaternalGreatGrandmother = l.grandmotherDam
		return nil
	})

	g.Go(func() error {
		sibs, err := b.siblingsOf(gctx, current)
		if err != nil {
			return err
		}
		if sibs != nil {
			tree.Siblings = sibs
		}
		return nil
	})

	g.Go(func() error {
		children, err := b.repo.ListChildrenByParentCode(gctx, breeders.NormalizeCode(current.Code))
		if err != nil {
			return err
		}
		for _, c := range children {
			if c.ID == current.ID {
				continue
			}
			tree.Offspring = append(tree.Offspring, node(c))
		}
		return nil
	})

	g.Go(func() error {
		mate, err := b.resolveMate(gctx, res, current, opts.MateCodeOverride)
		if err != nil {
			return err
		}
		tree.CurrentMate = mate
		return nil
	})

	if err := g.Wait(); err != nil {
		return FamilyTree{}, err
	}
	return tree, nil
}

// line es una rama parental completa: padre/madre, sus padres y los padres
// de estos.
type line struct {
	parent *FamilyTreeNode

	grandfather, grandmother *FamilyTreeNode

	grandfatherSire, grandfatherDam *FamilyTreeNode
	grandmotherSire, grandmotherDam *FamilyTreeNode
}

// expandLine expande una rama hasta bisabuelos, sin recursión. Un código sin
// resolver produce el nodo con el código pelado y corta ahí: sus propios
// ancestros quedan null porque no hay registro del cual leerlos.
func (b *Builder) expandLine(ctx context.Context, res *breeders.Resolver, parentCode string) (line, error) {
	var l line

	r, err := res.Resolve(ctx, parentCode)
	if err != nil {
		return line{}, err
	}
	switch r.State {
	case breeders.StateNoCode:
		return l, nil
	case breeders.StateUnresolved:
		l.parent = &FamilyTreeNode{Code: r.Code}
		return l, nil
	}

	parent := r.Breeder
	pn := node(parent)
	sibs, err := b.siblingsOf(ctx, parent)
	if err != nil {
		return line{}, err
	}
	pn.Siblings = sibs
	l.parent = &pn

	gf, gfSire, gfDam, err := b.expandGrandparent(ctx, res, parent.SireCode)
	if err != nil {
		return line{}, err
	}
	l.grandfather, l.grandfatherSire, l.grandfatherDam = gf, gfSire, gfDam

	gm, gmSire, gmDam, err := b.expandGrandparent(ctx, res, parent.DamCode)
	if err != nil {
		return line{}, err
	}
	l.grandmother, l.grandmotherSire, l.grandmotherDam = gm, gmSire, gmDam

	return l, nil
}

func (b *Builder) expandGrandparent(ctx context.Context, res *breeders.Resolver, code string) (gp, sire, dam *FamilyTreeNode, err error) {
	r, err := res.Resolve(ctx, code)
	if err != nil {
		return nil, nil, nil, err
	}
	switch r.State {
	case breeders.StateNoCode:
		return nil, nil, nil, nil
	case breeders.StateUnresolved:
		return &FamilyTreeNode{Code: r.Code}, nil, nil, nil
	}

	n := node(r.Breeder)

	// Los bisabuelos son el tope del árbol: se resuelven pero ya no expanden.
	sire, err = b.leafNode(ctx, res, r.Breeder.SireCode)
	if err != nil {
		return nil, nil, nil, err
	}
	dam, err = b.leafNode(ctx, res, r.Breeder.DamCode)
	if err != nil {
		return nil, nil, nil, err
	}
	return &n, sire, dam, nil
}

func (b *Builder) leafNode(ctx context.Context, res *breeders.Resolver, code string) (*FamilyTreeNode, error) {
	r, err := res.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}
	switch r.State {
	case breeders.StateNoCode:
		return nil, nil
	case breeders.StateUnresolved:
		return &FamilyTreeNode{Code: r.Code}, nil
	}
	n := node(r.Breeder)
	return &n, nil
}

// siblingsOf busca hermanos con la regla estricta: coinciden sire Y dam, los
// dos no vacíos. Con un solo padre conocido no se infiere hermandad, y dos
// registros sin padres cargados no son hermanos entre sí.
func (b *Builder) siblingsOf(ctx context.Context, of breeders.Breeder) ([]FamilyTreeNode, error) {
	sire := breeders.NormalizeCode(of.SireCode)
	dam := breeders.NormalizeCode(of.DamCode)
	if sire == "" || dam == "" {
		return nil, nil
	}

	rows, err := b.repo.ListByParents(ctx, sire, dam)
	if err != nil {
		return nil, err
	}
	out := make([]FamilyTreeNode, 0, len(rows))
	for _, r := range rows {
		if r.ID == of.ID {
			continue
		}
		out = append(out, node(r))
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// resolveMate arma la pareja actual de una hembra. El código sale del
// override si vino, o del MateCode declarado; se prueba con y sin el sufijo
// 公 de los datos importados. Un código que no resuelve se expone igual, con
// Node nil.
func (b *Builder) resolveMate(ctx context.Context, res *breeders.Resolver, current breeders.Breeder, override string) (*Mate, error) {
	if current.Sex != breeders.SexFemale {
		return nil, nil
	}

	raw := override
	if strings.TrimSpace(raw) == "" {
		raw = current.MateCode
	}
	norm := breeders.NormalizeCode(raw)
	if norm == "" {
		return nil, nil
	}

	mate := &Mate{Code: norm}
	for _, cand := range breeders.MateCodeCandidates(raw) {
		r, err := res.Resolve(ctx, cand)
		if err != nil {
			return nil, err
		}
		if r.Resolved() {
			n := node(r.Breeder)
			mate.Code = r.Code
			mate.Node = &n
			break
		}
	}
	return mate, nil
}

func node(b breeders.Breeder) FamilyTreeNode {
	return FamilyTreeNode{
		ID:           b.ID,
		Code:         b.Code,
		ThumbnailURL: b.ThumbnailURL,
	}
}
