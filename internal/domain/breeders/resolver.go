package breeders

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// NormalizeCode normaliza un código tipeado a mano: recorta espacios y pasa a
// mayúsculas. " a-01 " y "A-01" refieren al mismo reproductor.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// MateCodeCandidates devuelve las variantes de un código de pareja a probar
// en un lookup: los datos importados a veces traen el sufijo 公 (macho) y a
// veces no, así que se prueba con y sin.
func MateCodeCandidates(code string) []string {
	c := NormalizeCode(code)
	if c == "" {
		return nil
	}
	if strings.HasSuffix(c, "公") {
		return []string{c, strings.TrimSuffix(c, "公")}
	}
	return []string{c, c + "公"}
}

type ResolutionState string

const (
	// StateNoCode: no vino código (vacío/blanco). No hay nada que resolver;
	// no es un error.
	StateNoCode ResolutionState = "no_code"
	// StateUnresolved: vino un código pero no existe ningún reproductor con
	// ese código. La UI lo muestra como "no encontrado", no lo oculta.
	StateUnresolved ResolutionState = "unresolved"
	StateResolved   ResolutionState = "resolved"
)

// Resolution es el resultado de resolver un código. Unresolved es un estado,
// no una excepción.
type Resolution struct {
	State   ResolutionState
	Code    string // código normalizado ("" cuando StateNoCode)
	Breeder Breeder
}

func (r Resolution) Resolved() bool { return r.State == StateResolved }

// CodeLookup es la vista mínima del repositorio que necesita el resolver.
type CodeLookup interface {
	GetByCode(ctx context.Context, code string) (Breeder, error)
}

// Resolver resuelve códigos contra el store, memoizando por código
// normalizado. Un Resolver se crea por operación (p. ej. por armado de árbol
// genealógico) para no repetir lookups de códigos que aparecen varias veces,
// como el sire/dam compartido de mellizos. Seguro para uso concurrente.
type Resolver struct {
	lookup CodeLookup

	mu   sync.Mutex
	memo map[string]Resolution
}

func NewResolver(lookup CodeLookup) *Resolver {
	return &Resolver{
		lookup: lookup,
		memo:   make(map[string]Resolution),
	}
}

// Resolve nunca devuelve error por "no encontrado": eso es StateUnresolved.
// El error queda reservado para fallas de IO del store, que se propagan tal
// cual (el caller decide si reintenta; la lectura es idempotente).
func (r *Resolver) Resolve(ctx context.Context, code string) (Resolution, error) {
	norm := NormalizeCode(code)
	if norm == "" {
		return Resolution{State: StateNoCode}, nil
	}

	r.mu.Lock()
	if res, ok := r.memo[norm]; ok {
		r.mu.Unlock()
		return res, nil
	}
	r.mu.Unlock()

	b, err := r.lookup.GetByCode(ctx, norm)
	var res Resolution
	switch {
	case err == nil:
		res = Resolution{State: StateResolved, Code: norm, Breeder: b}
	case errors.Is(err, ErrNotFound):
		res = Resolution{State: StateUnresolved, Code: norm}
	default:
		return Resolution{}, err
	}

	r.mu.Lock()
	r.memo[norm] = res
	r.mu.Unlock()

	return res, nil
}
