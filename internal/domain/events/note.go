package events

import (
	"regexp"
	"strings"
)

// Las notas legadas importadas de planillas vienen con el marcador
// "backfill:description;raw=<texto original>". El texto original suele
// arrancar con una fecha corta y la palabra del evento con su dato
// (código de macho / cantidad de huevos), que la UI ya muestra de forma
// estructurada, así que acá se recortan antes de exhibir el resto.
//
// Son heurísticas ordenadas y con pérdida, no un parser: las listas de
// palabras por tipo están fijadas por los datos reales importados y no deben
// generalizarse.
const backfillPrefix = "backfill:description"

var (
	backfillRawRe = regexp.MustCompile(`(?:^|;\s*)raw=(.*)$`)

	// Fecha corta al comienzo: "2024.3.5", "2024/3/5", "3.5", "3-5"...
	leadingDateRe     = regexp.MustCompile(`^(?:20\d{2}[./-])?\s*\d{1,2}\s*[./-]\s*\d{1,2}\s*`)
	leadingDashDateRe = regexp.MustCompile(`^\d{1,2}\s*-\s*\d{1,2}\s*`)

	// mating: palabra del evento + token tipo código de macho (XT-D, xt-d公, D公).
	matingWordRe       = regexp.MustCompile(`^(交配|配对|配)\s*`)
	matingMaleCodeRe   = regexp.MustCompile(`^(?:[A-Za-z\x{4e00}-\x{9fff}]{1,8}-[A-Za-z0-9]{1,8})(?:公)?\s*`)
	matingMaleLetterRe = regexp.MustCompile(`^[A-Za-z]\s*公\s*`)

	// egg: palabra del evento + cantidad con unidad opcional ("产蛋3个").
	eggWordRe = regexp.MustCompile(`^(?:产蛋|下蛋|产卵|下卵|产|下)\s*(?:\d{1,2}\s*(?:个|枚|颗)?\s*(?:蛋|卵)?)?\s*`)

	changeMateWordRe = regexp.MustCompile(`^换公\s*`)
)

// NormalizeNote limpia una nota para mostrar. Las notas normales pasan tal
// cual (recortadas); las de backfill se reducen a lo que quede con valor.
// Devuelve "" cuando no queda nada que mostrar, para que el caller omita el
// bloque de nota.
func NormalizeNote(raw string, eventType EventType) string {
	n := strings.TrimSpace(raw)
	if n == "" {
		return ""
	}
	if !strings.HasPrefix(n, backfillPrefix) {
		return n
	}

	m := backfillRawRe.FindStringSubmatch(n)
	if m == nil {
		return ""
	}

	rest := strings.TrimSpace(m[1])
	rest = leadingDateRe.ReplaceAllString(rest, "")
	rest = leadingDashDateRe.ReplaceAllString(rest, "")

	switch eventType {
	case EventTypeMating:
		rest = matingWordRe.ReplaceAllString(rest, "")
		rest = matingMaleCodeRe.ReplaceAllString(rest, "")
		rest = matingMaleLetterRe.ReplaceAllString(rest, "")
	case EventTypeEgg:
		rest = eggWordRe.ReplaceAllString(rest, "")
	case EventTypeChangeMate:
		rest = changeMateWordRe.ReplaceAllString(rest, "")
	}

	return strings.TrimSpace(rest)
}
