package series

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/series", listSeriesHandler(svc))

	r.Route("/admin/series", func(ar chi.Router) {
		ar.Post("/", createSeriesHandler(svc))
		ar.Put("/{seriesID}", updateSeriesHandler(svc))
	})
}

type createSeriesRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type updateSeriesRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// listSeriesHandler godoc
// @Summary Listar series
// @Description Series activas ordenadas por sort_order. include_inactive=true agrega las desactivadas.
// @Tags series
// @Produce json
// @Param include_inactive query bool false "Incluir series desactivadas"
// @Success 200 {array} Series
// @Router /series [get]
func listSeriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeInactive := r.URL.Query().Get("include_inactive") == "true"
		items, err := svc.List(r.Context(), includeInactive)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createSeriesHandler godoc
// @Summary Crear serie
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body createSeriesRequest true "Datos de la serie"
// @Success 201 {object} Series
// @Failure 400 {string} string "invalid json / código vacío o duplicado"
// @Router /admin/series [post]
func createSeriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSeriesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sr, err := svc.Create(r.Context(), CreateInput{
			Code:        req.Code,
			Name:        req.Name,
			Description: req.Description,
			SortOrder:   req.SortOrder,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, sr)
	}
}

// updateSeriesHandler godoc
// @Summary Actualizar serie
// @Tags admin
// @Accept json
// @Produce json
// @Param seriesID path string true "ID de la serie"
// @Param payload body updateSeriesRequest true "Campos a actualizar"
// @Success 200 {object} Series
// @Failure 400 {string} string "invalid json / nombre vacío"
// @Failure 404 {string} string "series not found"
// @Router /admin/series/{seriesID} [put]
func updateSeriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateSeriesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sr, err := svc.Update(r.Context(), chi.URLParam(r, "seriesID"), UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			SortOrder:   req.SortOrder,
			IsActive:    req.IsActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "series not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, sr)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
