package domain

// InsightsContext is the data bundle serialized into the LLM prompt.
type InsightsContext struct {
	// Recent nights, newest first
	Nights []NightData `json:"nights"`
	// Trailing debt series over the same window
	Debt DebtSeries `json:"debt"`
	// Current schedule recommendation, nil when goal unset
	Recommendation *BedtimeRecommendation `json:"recommendation,omitempty"`
	GoalMinutes    int                    `json:"goal_minutes"`
	GoalWakeTime   string                 `json:"goal_wake_time"`
}

// LLMInsightsOutput is the structured response expected from the LLM.
// @Description LLM-generated sleep narrative.
type LLMInsightsOutput struct {
	// Short narrative comparing recent nights to the goal
	Summary string `json:"summary"`
	// Bullet observations about stages, debt and consistency
	Observations []string `json:"observations"`
	// Behavioral suggestions
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description Sleep insights with the underlying metrics.
type InsightsResponse struct {
	Insights LLMInsightsOutput `json:"insights"`
	Nights   []NightData       `json:"nights"`
	Debt     DebtSeries        `json:"debt"`
	// OTel trace ID for feedback linking, when tracing is active
	TraceID string `json:"trace_id,omitempty"`
}
