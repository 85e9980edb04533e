package engine

import (
	"time"

	"github.com/mbeaufort/sleep-metrics/internal/domain"
)

// DebtDayFormat keys debt-series days.
const DebtDayFormat = "2006-01-02"

// BuildDebtSeries computes the signed per-day sleep debt for a set of
// nights against a goal: goal minus actual, positive when under-slept.
// The total is a net signed sum over the window; it is never floored,
// so a surplus shows up as a negative total. Display clamping is the
// caller's business.
func BuildDebtSeries(nights []domain.NightData, goalMinutes int) domain.DebtSeries {
	goalSeconds := int64(goalMinutes) * 60

	series := domain.DebtSeries{
		Days:        make(map[string]int64, len(nights)),
		GoalMinutes: goalMinutes,
	}
	for _, night := range nights {
		delta := goalSeconds - night.SleepDurationSeconds
		series.Days[night.Date.Format(DebtDayFormat)] += delta
		series.TotalSeconds += delta
	}
	return series
}

// TrailingDebtSeconds computes the net debt over nights whose date
// falls within the trailing windowNights days ending at reference.
func TrailingDebtSeconds(nights []domain.NightData, goalMinutes int, reference time.Time, windowNights int) int64 {
	cutoff := reference.AddDate(0, 0, -windowNights)

	var window []domain.NightData
	for _, night := range nights {
		if night.Date.After(cutoff) && !night.Date.After(reference) {
			window = append(window, night)
		}
	}
	return BuildDebtSeries(window, goalMinutes).TotalSeconds
}
