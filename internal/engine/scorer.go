package engine

import (
	"time"

	"github.com/mbeaufort/sleep-metrics/internal/domain"
)

// Scoring thresholds.
const (
	minDeepRatio  = 0.13 // deep sleep below this share of total sleep loses points
	minREMRatio   = 0.20 // REM below this share of total sleep loses points
	maxAwakeRatio = 0.10 // awake above this share of time in bed loses points

	deepDeduction     = 15
	remDeduction      = 15
	awakeDeduction    = 10
	durationComponent = 25 // goal-attainment sub-score, scaled 0..25
	vitalDeduction    = 5

	lowHRVThreshold  = 30.0  // ms
	highRHRThreshold = 100.0 // bpm
)

// Vitals carries the optional auxiliary measurements for a night. An
// unavailable vital is penalized exactly like an unfavorable one:
// quality that cannot be verified is assumed unfavorable.
type Vitals struct {
	HRV                float64
	HRVAvailable       bool
	RestingHR          float64
	RestingHRAvailable bool
}

// Score computes the 0-100 composite sleep score for one merged night
// timeline. Deductions apply in a fixed order, the duration component
// scales with goal attainment, and the result is truncated to an int
// before clamping.
func Score(intervals []domain.StageInterval, vitals Vitals, goalMinutes int) int {
	durations := StageDurations(intervals)
	totalSleep := durations[domain.StageCore] + durations[domain.StageDeep] + durations[domain.StageREM]
	deep := durations[domain.StageDeep]
	rem := durations[domain.StageREM]
	awake := durations[domain.StageAwake]
	inBed := durations[domain.StageInBed]

	score := 100.0

	if totalSleep > 0 {
		if float64(deep)/float64(totalSleep) < minDeepRatio {
			score -= deepDeduction
		}
		if float64(rem)/float64(totalSleep) < minREMRatio {
			score -= remDeduction
		}
		totalInBed := totalSleep + awake + inBed
		if totalInBed > 0 && float64(awake)/float64(totalInBed) > maxAwakeRatio {
			score -= awakeDeduction
		}
	}

	// Duration sub-score: full credit only at or above the goal.
	goalSeconds := float64(goalMinutes) * 60
	score -= durationComponent
	if goalSeconds > 0 {
		attainment := totalSleep.Seconds() / goalSeconds
		if attainment > 1 {
			attainment = 1
		}
		score += durationComponent * attainment
	}

	if !vitals.HRVAvailable || vitals.HRV < lowHRVThreshold {
		score -= vitalDeduction
	}
	if !vitals.RestingHRAvailable || vitals.RestingHR > highRHRThreshold {
		score -= vitalDeduction
	}

	result := int(score)
	if result < 0 {
		result = 0
	}
	if result > 100 {
		result = 100
	}
	return result
}

// StageDurations sums interval durations per stage.
func StageDurations(intervals []domain.StageInterval) map[domain.Stage]time.Duration {
	durations := make(map[domain.Stage]time.Duration, 5)
	for _, iv := range intervals {
		durations[iv.Stage] += iv.Duration()
	}
	return durations
}

// SleepDuration is the total asleep time (core + deep + REM) in a
// merged timeline.
func SleepDuration(intervals []domain.StageInterval) time.Duration {
	var total time.Duration
	for _, iv := range intervals {
		if iv.Stage.IsSleep() {
			total += iv.Duration()
		}
	}
	return total
}

// AwakeDuration is the total awake time in a merged timeline.
func AwakeDuration(intervals []domain.StageInterval) time.Duration {
	var total time.Duration
	for _, iv := range intervals {
		if iv.Stage == domain.StageAwake {
			total += iv.Duration()
		}
	}
	return total
}

// SleepBounds returns the earliest start and latest end across the
// timeline. ok is false for an empty timeline.
func SleepBounds(intervals []domain.StageInterval) (start, end time.Time, ok bool) {
	if len(intervals) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start, end = intervals[0].Start, intervals[0].End
	for _, iv := range intervals[1:] {
		if iv.Start.Before(start) {
			start = iv.Start
		}
		if iv.End.After(end) {
			end = iv.End
		}
	}
	return start, end, true
}
