package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"breeder-album/internal/domain/breeders"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeders/{breederID}", func(br chi.Router) {
		br.Get("/events", listEventsHandler(svc))
		br.Get("/cycle-status", cycleStatusHandler(svc))
		br.Get("/mate-load", mateLoadHandler(svc))
	})

	// Alta de eventos (colaborador admin). Append-only: no hay edición ni
	// borrado de eventos.
	r.Post("/admin/breeder-events", appendEventHandler(svc))
}

// appendEventRequest es el cuerpo para registrar un evento.
// event_date acepta fecha completa (YYYY-MM-DD o RFC3339) o el atajo de
// operador MM.DD, que se resuelve contra el año local corriente.
type appendEventRequest struct {
	BreederID string    `json:"breeder_id"`
	EventType EventType `json:"event_type" enums:"mating,egg,change_mate"`
	EventDate string    `json:"event_date"`
	Note      string    `json:"note"`

	MaleCode    string   `json:"male_code"`
	EggCount    *float64 `json:"egg_count"`
	OldMateCode string   `json:"old_mate_code"`
	NewMateCode string   `json:"new_mate_code"`
}

// eventResponse representa un evento del timeline. La nota viene ya
// normalizada para mostrar (las notas técnicas de backfill se limpian).
type eventResponse struct {
	ID         string    `json:"id"`
	BreederID  string    `json:"breeder_id"`
	EventType  EventType `json:"event_type"`
	EventDate  time.Time `json:"event_date"`
	RecordedAt time.Time `json:"recorded_at"`
	Note       string    `json:"note,omitempty"`

	MaleCode    string `json:"male_code,omitempty"`
	EggCount    *int   `json:"egg_count,omitempty"`
	OldMateCode string `json:"old_mate_code,omitempty"`
	NewMateCode string `json:"new_mate_code,omitempty"`
}

type eventPageResponse struct {
	Items      []eventResponse `json:"items"`
	HasMore    bool            `json:"has_more"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

type cycleStatusResponse struct {
	Status       CycleStatus `json:"status" enums:"normal,need_mating,warning"`
	LastEggAt    *time.Time  `json:"last_egg_at"`
	LastMatingAt *time.Time  `json:"last_mating_at"`
	DaysSinceEgg *int        `json:"days_since_egg"`
}

type mateLoadItemResponse struct {
	FemaleID             string      `json:"female_id"`
	FemaleCode           string      `json:"female_code"`
	LastEggAt            *time.Time  `json:"last_egg_at"`
	LastMatingAt         *time.Time  `json:"last_mating_at"`
	LastMatingWithMaleAt *time.Time  `json:"last_mating_with_male_at"`
	DaysSinceEgg         *int        `json:"days_since_egg"`
	Status               CycleStatus `json:"status"`
}

type mateLoadResponse struct {
	MaleID   string                 `json:"male_id"`
	MaleCode string                 `json:"male_code"`
	Totals   mateLoadTotalsResponse `json:"totals"`
	Items    []mateLoadItemResponse `json:"items"`
}

type mateLoadTotalsResponse struct {
	RelatedFemales int `json:"related_females"`
	NeedMating     int `json:"need_mating"`
	Warning        int `json:"warning"`
}

// listEventsHandler godoc
// @Summary Timeline de eventos de un reproductor
// @Description Eventos de cría (mating/egg/change_mate) de más reciente a más antiguo. Paginado por cursor opaco: inmune a corrimientos por altas concurrentes, sin duplicados ni huecos.
// @Tags events
// @Produce json
// @Param breederID path string true "ID del reproductor"
// @Param type query string false "mating | egg | change_mate | all"
// @Param limit query int false "Eventos por página (1-100). Por defecto 10"
// @Param cursor query string false "Cursor opaco de la página anterior"
// @Success 200 {object} eventPageResponse
// @Failure 400 {string} string "tipo o cursor inválido"
// @Failure 404 {string} string "breeder not found"
// @Router /breeders/{breederID}/events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := ListOptions{
			Type:   r.URL.Query().Get("type"),
			Cursor: r.URL.Query().Get("cursor"),
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				opts.Limit = n
			}
		}

		page, err := svc.List(r.Context(), chi.URLParam(r, "breederID"), opts)
		if err != nil {
			writeError(w, err)
			return
		}

		out := eventPageResponse{
			Items:      make([]eventResponse, 0, len(page.Items)),
			HasMore:    page.HasMore,
			NextCursor: page.NextCursor,
		}
		for _, e := range page.Items {
			out.Items = append(out.Items, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// cycleStatusHandler godoc
// @Summary Estado del ciclo de cría
// @Description Deriva normal | need_mating | warning de los dos últimos eventos relevantes, junto con las fechas fuente.
// @Tags events
// @Produce json
// @Param breederID path string true "ID del reproductor"
// @Success 200 {object} cycleStatusResponse
// @Failure 404 {string} string "breeder not found"
// @Router /breeders/{breederID}/cycle-status [get]
func cycleStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.CycleStatus(r.Context(), chi.URLParam(r, "breederID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cycleStatusResponse{
			Status:       summary.Status,
			LastEggAt:    summary.LastEggAt,
			LastMatingAt: summary.LastMatingAt,
			DaysSinceEgg: summary.DaysSinceEgg,
		})
	}
}

// mateLoadHandler godoc
// @Summary Carga de trabajo de un macho
// @Description Hembras relacionadas con este macho (por eventos y por MateCode declarado) con el estado de ciclo de cada una, de más urgente a menos.
// @Tags events
// @Produce json
// @Param breederID path string true "ID del reproductor (macho)"
// @Param limit query int false "Máximo de hembras (por defecto 80)"
// @Success 200 {object} mateLoadResponse
// @Failure 400 {string} string "el reproductor no es macho"
// @Failure 404 {string} string "breeder not found"
// @Router /breeders/{breederID}/mate-load [get]
func mateLoadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		load, err := svc.MateLoadFor(r.Context(), chi.URLParam(r, "breederID"), limit)
		if err != nil {
			writeError(w, err)
			return
		}

		out := mateLoadResponse{
			MaleID:   load.MaleID,
			MaleCode: load.MaleCode,
			Totals: mateLoadTotalsResponse{
				RelatedFemales: load.Totals.RelatedFemales,
				NeedMating:     load.Totals.NeedMating,
				Warning:        load.Totals.Warning,
			},
			Items: make([]mateLoadItemResponse, 0, len(load.Items)),
		}
		for _, it := range load.Items {
			out.Items = append(out.Items, mateLoadItemResponse{
				FemaleID:             it.FemaleID,
				FemaleCode:           it.FemaleCode,
				LastEggAt:            it.LastEggAt,
				LastMatingAt:         it.LastMatingAt,
				LastMatingWithMaleAt: it.LastMatingWithMaleAt,
				DaysSinceEgg:         it.DaysSinceEgg,
				Status:               it.Status,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// appendEventHandler godoc
// @Summary Registrar evento de cría
// @Description Agrega un evento al timeline. event_date acepta MM.DD (año local corriente), YYYY-MM-DD o RFC3339. egg_count debe ser entero positivo.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body appendEventRequest true "Datos del evento"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / fecha o variante inválida"
// @Failure 404 {string} string "breeder not found"
// @Router /admin/breeder-events [post]
func appendEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appendEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		eventDate, err := parseEventDate(req.EventDate, time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		in := AppendInput{
			BreederID:   strings.TrimSpace(req.BreederID),
			Type:        req.EventType,
			EventDate:   eventDate,
			Note:        req.Note,
			MaleCode:    req.MaleCode,
			OldMateCode: req.OldMateCode,
			NewMateCode: req.NewMateCode,
		}
		if req.EggCount != nil {
			// JSON no distingue 3 de 3.0, pero 3.5 se rechaza acá, no se
			// trunca.
			if *req.EggCount != math.Trunc(*req.EggCount) {
				http.Error(w, "egg_count must be a positive integer", http.StatusBadRequest)
				return
			}
			n := int(*req.EggCount)
			in.EggCount = &n
		}

		e, err := svc.Append(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

var shorthandDateRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})$`)

// parseEventDate normaliza la fecha del evento en la frontera de entrada.
// El atajo MM.DD se resuelve contra el año local corriente.
func parseEventDate(raw string, now time.Time) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, errors.New("event_date is required")
	}

	if m := shorthandDateRe.FindStringSubmatch(v); m != nil {
		mm, _ := strconv.Atoi(m[1])
		dd, _ := strconv.Atoi(m[2])
		if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
			return time.Time{}, errors.New("event_date must be MM.DD or YYYY-MM-DD")
		}
		year := now.Year()
		d := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.Local)
		// time.Date normaliza desbordes (31 de junio pasa a julio); acá eso
		// es un error de tipeo, no una fecha.
		if d.Year() != year || d.Month() != time.Month(mm) || d.Day() != dd {
			return time.Time{}, fmt.Errorf("invalid date %02d.%02d", mm, dd)
		}
		return d, nil
	}

	if d, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, v); err == nil {
		return d, nil
	}
	return time.Time{}, errors.New("event_date must be MM.DD or YYYY-MM-DD")
}

func toEventResponse(e BreederEvent) eventResponse {
	out := eventResponse{
		ID:         e.ID,
		BreederID:  e.BreederID,
		EventType:  e.Type,
		EventDate:  e.EventDate,
		RecordedAt: e.RecordedAt,
		Note:       NormalizeNote(e.Note, e.Type),
	}
	if e.Mating != nil {
		out.MaleCode = e.Mating.MaleCode
	}
	if e.Egg != nil {
		count := e.Egg.Count
		out.EggCount = &count
	}
	if e.ChangeMate != nil {
		out.OldMateCode = e.ChangeMate.OldMateCode
		out.NewMateCode = e.ChangeMate.NewMateCode
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, breeders.ErrNotFound):
		http.Error(w, "breeder not found", http.StatusNotFound)
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
