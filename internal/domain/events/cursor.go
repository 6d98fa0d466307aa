package events

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor es la clave compuesta de orden del último ítem devuelto. Es keyset,
// no offset: las páginas siguen siendo correctas aunque se agreguen eventos
// nuevos entre fetch y fetch (el timeline es append-only).
type Cursor struct {
	EventDate  time.Time
	RecordedAt time.Time
	ID         string
}

// Before informa si el evento e queda estrictamente después del cursor en el
// orden descendente del timeline (o sea, si pertenece a páginas siguientes).
func (c Cursor) Before(e BreederEvent) bool {
	if !e.EventDate.Equal(c.EventDate) {
		return e.EventDate.Before(c.EventDate)
	}
	if !e.RecordedAt.Equal(c.RecordedAt) {
		return e.RecordedAt.Before(c.RecordedAt)
	}
	return e.ID < c.ID
}

func encodeCursor(e BreederEvent) string {
	raw := strings.Join([]string{
		e.EventDate.Format(time.RFC3339Nano),
		e.RecordedAt.Format(time.RFC3339Nano),
		e.ID,
	}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, ErrInvalidCursor
	}

	eventDate, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	recordedAt, err := time.Parse(time.RFC3339Nano, parts[1])
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	return Cursor{EventDate: eventDate, RecordedAt: recordedAt, ID: parts[2]}, nil
}
