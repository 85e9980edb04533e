package domain

// DebtSeries maps calendar days to signed sleep-debt seconds
// (goal minus actual; positive means under-slept) plus the net total
// over the window. Totals are never floored: a negative total is a
// surplus, and any clamping for display belongs to the caller.
// @Description Per-day signed sleep debt in seconds plus the net total.
type DebtSeries struct {
	// Day (YYYY-MM-DD) to signed debt seconds
	Days map[string]int64 `json:"days"`
	// Net signed total over the window in seconds
	TotalSeconds int64 `json:"total_seconds" example:"7200"`
	// Goal used for the deltas, in minutes
	GoalMinutes int `json:"goal_minutes" example:"480"`
}

// StepsSeries maps calendar days to cumulative step counts.
// @Description Daily step totals for the queried window.
type StepsSeries struct {
	// Day (YYYY-MM-DD) to step count
	Days map[string]float64 `json:"days"`
	// Number of calendar days queried
	DaysQueried int `json:"days_queried" example:"7"`
}
