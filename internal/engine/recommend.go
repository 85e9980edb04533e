package engine

import (
	"fmt"
	"time"

	"github.com/mbeaufort/sleep-metrics/internal/domain"
)

const (
	// maxShiftSeconds caps how far accumulated debt can pull bedtime
	// earlier: one hour, no matter the debt.
	maxShiftSeconds = 3600.0
	// shiftPerDebtHour moves bedtime 10 minutes earlier per hour of
	// accumulated debt.
	shiftPerDebtHour = 600.0
)

// WakeTimeOn anchors an HH:MM goal wake time to date's calendar day
// in loc.
func WakeTimeOn(date time.Time, goalWake string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	parsed, err := time.Parse("15:04", goalWake)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid goal wake time %q: %w", goalWake, err)
	}
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

// RecommendBedtime derives the suggested schedule for one wake time.
// The goal is widened by the user's average awake-in-bed time (awake
// spans do not count as sleep, so the in-bed span must be longer), and
// bedtime additionally shifts earlier by 10 minutes per hour of
// trailing debt, clamped to [0, 1h]. A surplus (negative debt) never
// pushes bedtime later than the baseline.
func RecommendBedtime(wake time.Time, goalMinutes int, averageAwake time.Duration, debtSeconds int64) domain.BedtimeRecommendation {
	adjustedGoalMinutes := goalMinutes + int(averageAwake.Minutes())

	shift := float64(debtSeconds) / 3600.0 * shiftPerDebtHour
	if shift < 0 {
		shift = 0
	}
	if shift > maxShiftSeconds {
		shift = maxShiftSeconds
	}
	shiftSeconds := int64(shift)

	bedtime := wake.
		Add(-time.Duration(adjustedGoalMinutes) * time.Minute).
		Add(-time.Duration(shiftSeconds) * time.Second)

	return domain.BedtimeRecommendation{
		Bedtime:             bedtime,
		WakeTime:            wake,
		ShiftSeconds:        shiftSeconds,
		DebtSeconds:         debtSeconds,
		AdjustedGoalMinutes: adjustedGoalMinutes,
	}
}
