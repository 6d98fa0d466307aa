package breeders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeders", func(br chi.Router) {
		br.Get("/", listBreedersHandler(svc))
		br.Get("/by-code/{code}", getBreederByCodeHandler(svc))
		br.Get("/{breederID}", getBreederHandler(svc))
	})

	// Alta/edición de reproductores (colaborador admin).
	r.Route("/admin/breeders", func(ar chi.Router) {
		ar.Post("/", createBreederHandler(svc))
		ar.Patch("/{breederID}", updateBreederHandler(svc))
	})
}

type createBreederRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Sex          string `json:"sex" enums:"male,female,unknown"`
	SireCode     string `json:"sire_code"`
	DamCode      string `json:"dam_code"`
	MateCode     string `json:"mate_code"`
	ThumbnailURL string `json:"thumbnail_url"`
	SeriesID     string `json:"series_id"`
	Notes        string `json:"notes"`
}

type updateBreederRequest struct {
	Name         *string `json:"name"`
	Sex          *string `json:"sex"`
	SireCode     *string `json:"sire_code"`
	DamCode      *string `json:"dam_code"`
	MateCode     *string `json:"mate_code"`
	ThumbnailURL *string `json:"thumbnail_url"`
	SeriesID     *string `json:"series_id"`
	Notes        *string `json:"notes"`
}

// breederResponse representa un reproductor devuelto por la API.
type breederResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Sex          Sex       `json:"sex"`
	SireCode     string    `json:"sire_code,omitempty"`
	DamCode      string    `json:"dam_code,omitempty"`
	MateCode     string    `json:"mate_code,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	SeriesID     string    `json:"series_id,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// listBreedersHandler godoc
// @Summary Listar reproductores
// @Description Lista reproductores con filtros opcionales de serie y sexo.
// @Tags breeders
// @Produce json
// @Param series_id query string false "Filtrar por serie"
// @Param sex query string false "male | female"
// @Param limit query int false "Máximo de registros (1-1000). Por defecto 200"
// @Success 200 {array} breederResponse
// @Failure 400 {string} string "sex inválido"
// @Router /breeders [get]
func listBreedersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{
			SeriesID: strings.TrimSpace(r.URL.Query().Get("series_id")),
		}

		if v := strings.TrimSpace(r.URL.Query().Get("sex")); v != "" {
			if v != string(SexMale) && v != string(SexFemale) {
				http.Error(w, "sex must be 'male' or 'female'", http.StatusBadRequest)
				return
			}
			filter.Sex = Sex(v)
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.Limit = n
			}
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]breederResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBreederResponse(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getBreederHandler godoc
// @Summary Detalle de reproductor
// @Tags breeders
// @Produce json
// @Param breederID path string true "ID del reproductor"
// @Success 200 {object} breederResponse
// @Failure 404 {string} string "breeder not found"
// @Router /breeders/{breederID} [get]
func getBreederHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "breederID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "breeder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toBreederResponse(b))
	}
}

// getBreederByCodeHandler godoc
// @Summary Reproductor por código
// @Description Busca por código; el lookup es insensible a mayúsculas y espacios.
// @Tags breeders
// @Produce json
// @Param code path string true "Código del reproductor"
// @Success 200 {object} breederResponse
// @Failure 404 {string} string "breeder not found"
// @Router /breeders/by-code/{code} [get]
func getBreederByCodeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByCode(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "breeder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toBreederResponse(b))
	}
}

// createBreederHandler godoc
// @Summary Crear reproductor
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body createBreederRequest true "Datos del reproductor"
// @Success 201 {object} breederResponse
// @Failure 400 {string} string "invalid json / código vacío o duplicado"
// @Router /admin/breeders [post]
func createBreederHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBreederRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Code:         req.Code,
			Name:         req.Name,
			Sex:          req.Sex,
			SireCode:     req.SireCode,
			DamCode:      req.DamCode,
			MateCode:     req.MateCode,
			ThumbnailURL: req.ThumbnailURL,
			SeriesID:     req.SeriesID,
			Notes:        req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toBreederResponse(b))
	}
}

// updateBreederHandler godoc
// @Summary Actualizar reproductor
// @Tags admin
// @Accept json
// @Produce json
// @Param breederID path string true "ID del reproductor"
// @Param payload body updateBreederRequest true "Campos a actualizar"
// @Success 200 {object} breederResponse
// @Failure 400 {string} string "invalid json / sexo inválido"
// @Failure 404 {string} string "breeder not found"
// @Router /admin/breeders/{breederID} [patch]
func updateBreederHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateBreederRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Update(r.Context(), chi.URLParam(r, "breederID"), UpdateInput{
			Name:         req.Name,
			Sex:          req.Sex,
			SireCode:     req.SireCode,
			DamCode:      req.DamCode,
			MateCode:     req.MateCode,
			ThumbnailURL: req.ThumbnailURL,
			SeriesID:     req.SeriesID,
			Notes:        req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "breeder not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toBreederResponse(b))
	}
}

func toBreederResponse(b Breeder) breederResponse {
	return breederResponse{
		ID:           b.ID,
		Code:         b.Code,
		Name:         b.Name,
		Sex:          b.Sex,
		SireCode:     b.SireCode,
		DamCode:      b.DamCode,
		MateCode:     b.MateCode,
		ThumbnailURL: b.ThumbnailURL,
		SeriesID:     b.SeriesID,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
