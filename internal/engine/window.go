// Package engine holds the pure sleep-metrics derivations: night
// windowing, source selection, interval merging, scoring, debt and
// bedtime recommendation. Nothing in this package performs I/O.
package engine

import (
	"time"

	"github.com/mbeaufort/sleep-metrics/internal/domain"
)

// NightBoundaryHour is the local hour at which one night's window ends
// and the next begins. 14:00 rather than midnight, so a late sleeper's
// whole night lands on a single date.
const NightBoundaryHour = 14

// NightWindowFor returns the window for the night keyed by date's
// calendar day in loc. A nil location falls back to UTC.
func NightWindowFor(date time.Time, loc *time.Location) domain.NightWindow {
	if loc == nil {
		loc = time.UTC
	}
	d := date.In(loc)
	end := time.Date(d.Year(), d.Month(), d.Day(), NightBoundaryHour, 0, 0, 0, loc)
	return domain.NightWindow{
		Date:  time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc),
		Start: end.AddDate(0, 0, -1),
		End:   end,
	}
}
