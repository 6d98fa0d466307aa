package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"breeder-album/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Append(ctx context.Context, e events.BreederEvent) error {
	var maleCode, oldMate, newMate sql.NullString
	var eggCount sql.NullInt32

	switch {
	case e.Mating != nil:
		maleCode = sql.NullString{String: e.Mating.MaleCode, Valid: true}
	case e.Egg != nil:
		eggCount = sql.NullInt32{Int32: int32(e.Egg.Count), Valid: true}
	case e.ChangeMate != nil:
		oldMate = sql.NullString{String: e.ChangeMate.OldMateCode, Valid: true}
		newMate = sql.NullString{String: e.ChangeMate.NewMateCode, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO breeder_events (
			id, breeder_id, type,
			event_date, created_at, note,
			male_code, egg_count,
			old_mate_code, new_mate_code
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		e.ID,
		e.BreederID,
		string(e.Type),
		e.EventDate,
		e.RecordedAt,
		e.Note,
		maleCode,
		eggCount,
		oldMate,
		newMate,
	)
	return err
}

func (r *EventsRepo) ListByBreeder(ctx context.Context, breederID string, filter events.ListFilter) ([]events.BreederEvent, error) {
	breederID = strings.TrimSpace(breederID)
	if breederID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, breeder_id, type,
			event_date, created_at, note,
			male_code, egg_count,
			old_mate_code, new_mate_code
		FROM breeder_events
		WHERE breeder_id = $1
	`)

	args := []any{breederID}
	argN := 2

	if filter.Type != "" {
		sb.WriteString(fmt.Sprintf(" AND type = $%d", argN))
		args = append(args, string(filter.Type))
		argN++
	}

	// Keyset: la comparación de tupla calza exacto con el ORDER BY, así una
	// página nueva arranca justo después de la última fila entregada aunque
	// se hayan insertado eventos en el medio.
	if c := filter.Cursor; c != nil {
		sb.WriteString(fmt.Sprintf(" AND (event_date, created_at, id) < ($%d, $%d, $%d)", argN, argN+1, argN+2))
		args = append(args, c.EventDate, c.RecordedAt, c.ID)
		argN += 3
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	sb.WriteString(" ORDER BY event_date DESC, created_at DESC, id DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.BreederEvent, 0)
	for rows.Next() {
		var e events.BreederEvent
		var typ string
		var maleCode, oldMate, newMate sql.NullString
		var eggCount sql.NullInt32

		if err := rows.Scan(
			&e.ID,
			&e.BreederID,
			&typ,
			&e.EventDate,
			&e.RecordedAt,
			&e.Note,
			&maleCode,
			&eggCount,
			&oldMate,
			&newMate,
		); err != nil {
			return nil, err
		}

		e.Type = events.EventType(typ)
		switch e.Type {
		case events.EventTypeMating:
			e.Mating = &events.MatingDetail{MaleCode: maleCode.String}
		case events.EventTypeEgg:
			e.Egg = &events.EggDetail{Count: int(eggCount.Int32)}
		case events.EventTypeChangeMate:
			e.ChangeMate = &events.ChangeMateDetail{
				OldMateCode: oldMate.String,
				NewMateCode: newMate.String,
			}
		}

		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *EventsRepo) ListBreederIDsByMatingMale(ctx context.Context, maleCode string) ([]string, error) {
	if maleCode == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT breeder_id
		FROM breeder_events
		WHERE type = 'mating'
		  AND male_code = $1
		ORDER BY breeder_id
	`, maleCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
