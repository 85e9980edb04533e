package domain

import "time"

// BedtimeRecommendation is the engine's suggested schedule for the
// reference date, derived from the user's goal and recent nights.
// @Description Recommended bedtime and wake time with the applied
// @Description debt-driven shift.
type BedtimeRecommendation struct {
	// Suggested time to go to bed
	Bedtime time.Time `json:"bedtime" example:"2024-01-16T22:40:00Z"`
	// Goal wake time applied to the reference date
	WakeTime time.Time `json:"wake_time" example:"2024-01-17T07:00:00Z"`
	// Seconds the bedtime was moved earlier to repay debt (0-3600)
	ShiftSeconds int64 `json:"shift_seconds" example:"1200"`
	// Trailing-window debt that drove the shift, signed seconds
	DebtSeconds int64 `json:"debt_seconds" example:"7200"`
	// Goal sleep minutes adjusted for average awake-in-bed time
	AdjustedGoalMinutes int `json:"adjusted_goal_minutes" example:"499"`
	// Number of nights with data that informed the recommendation
	NightsUsed int `json:"nights_used" example:"12"`
}
