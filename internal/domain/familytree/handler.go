package familytree

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"breeder-album/internal/domain/breeders"
)

func RegisterRoutes(r chi.Router, b *Builder) {
	r.Get("/breeders/{breederID}/family-tree", getFamilyTreeHandler(b))
}

// getFamilyTreeHandler godoc
// @Summary Árbol genealógico de un reproductor
// @Description Tres generaciones hacia arriba (14 posiciones fijas de ancestros), hermanos, crías y pareja actual. Un código que no resuelve aparece como nodo sin id; la genealogía faltante viaja como null.
// @Tags family-tree
// @Produce json
// @Param breederID path string true "ID del reproductor"
// @Param mate query string false "Código de pareja a usar en lugar del declarado (no persiste)"
// @Success 200 {object} FamilyTree
// @Failure 404 {string} string "breeder not found"
// @Router /breeders/{breederID}/family-tree [get]
func getFamilyTreeHandler(b *Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tree, err := b.Build(r.Context(), chi.URLParam(r, "breederID"), Options{
			MateCodeOverride: r.URL.Query().Get("mate"),
		})
		if err != nil {
			if errors.Is(err, breeders.ErrNotFound) {
				http.Error(w, "breeder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, tree)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
