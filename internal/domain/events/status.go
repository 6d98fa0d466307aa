package events

import (
	"math"
	"time"
)

// startOfDay trunca al comienzo del día calendario en la zona del instante.
// La cuenta de días se hace sobre días calendario locales, no sobre horas
// transcurridas ni UTC: así la hora del día no corre el resultado.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysSince cuenta días calendario completos entre from y now.
// El día del evento cuenta como día 0.
func DaysSince(now, from time.Time) int {
	return int(math.Floor(startOfDay(now).Sub(startOfDay(from)).Hours() / 24))
}

// ComputeCycleStatus deriva el estado del ciclo de cría a partir de los dos
// últimos eventos relevantes. Reglas, en orden:
//  1. Sin puesta registrada: normal (no hay nada a lo que reaccionar).
//  2. Hay cruza en el día de la última puesta o después: normal.
//  3. Si la última puesta quedó sin responder, con days = días calendario
//     desde la puesta: days >= 10 es warning, si no need_mating.
//
// Función pura y determinista; now la inyecta el caller.
func ComputeCycleStatus(now time.Time, lastEgg, lastMating *time.Time) CycleStatus {
	if lastEgg == nil {
		return CycleNormal
	}

	if lastMating != nil && !startOfDay(*lastMating).Before(startOfDay(*lastEgg)) {
		return CycleNormal
	}

	if DaysSince(now, *lastEgg) >= 10 {
		return CycleWarning
	}
	return CycleNeedMating
}
