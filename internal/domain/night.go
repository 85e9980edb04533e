package domain

import "time"

// NightWindow is the canonical bucketing period for one night: 14:00
// local time on the previous day to 14:00 on the night's own date.
// The 14:00 boundary keeps a late sleeper's whole night on one date.
type NightWindow struct {
	// Date keys the night; it is the calendar day the window ends on.
	Date  time.Time `json:"date"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NightData is the aggregated result for one night window. It is
// computed fresh on every query and never mutated after construction;
// identity is keyed by Date.
// @Description Aggregated sleep metrics for a single night.
type NightData struct {
	// Calendar day the night window ends on
	Date time.Time `json:"date" example:"2024-01-16T00:00:00Z"`
	// Composite sleep score, 0-100
	SleepScore int `json:"sleep_score" example:"81"`
	// Average HRV in ms over the sleep window, 0 if unavailable
	HRV float64 `json:"hrv" example:"45.2"`
	// Estimated resting heart rate in bpm, 0 if unavailable
	RestingHeartRate float64 `json:"resting_heart_rate" example:"55.1"`
	// Total asleep time in seconds (core + deep + REM)
	SleepDurationSeconds int64 `json:"sleep_duration_seconds" example:"25200"`
	// Earliest merged interval start
	SleepStartTime time.Time `json:"sleep_start_time" example:"2024-01-15T23:02:00Z"`
	// Latest merged interval end
	SleepEndTime time.Time `json:"sleep_end_time" example:"2024-01-16T07:11:00Z"`
	// Total awake time inside the sleep window in seconds
	TotalAwakeSeconds int64 `json:"total_awake_seconds" example:"1140"`
	// Per-stage breakdown in seconds
	StageSeconds map[Stage]int64 `json:"stage_seconds"`
}

// NightListResponse is the response body for the last-N-nights query.
// @Description Sparse list of nights, newest first. Nights without data
// @Description are omitted rather than zero-filled.
type NightListResponse struct {
	Nights []NightData `json:"nights"`
	// Number of calendar days that were queried
	DaysQueried int `json:"days_queried" example:"14"`
}
