package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/service"
	"github.com/mbeaufort/sleep-metrics/pkg/problem"
)

// nightDateFormat is the path/query format for night dates.
const nightDateFormat = "2006-01-02"

// NightHandler handles derived per-night metrics endpoints.
type NightHandler struct {
	nightService          service.NightService
	recommendationService service.RecommendationService
	activityService       service.ActivityService
}

// NewNightHandler creates a new NightHandler.
func NewNightHandler(
	nightService service.NightService,
	recommendationService service.RecommendationService,
	activityService service.ActivityService,
) *NightHandler {
	return &NightHandler{
		nightService:          nightService,
		recommendationService: recommendationService,
		activityService:       activityService,
	}
}

// GetNight handles GET /v1/users/{userId}/nights/{date}
// @Summary Get one night's derived metrics
// @Description Compute the night keyed by the given date: the 14:00-to-14:00 local window ending on that date, with merged stages, score, and vitals.
// @Tags nights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Night key date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.NightData "Derived night metrics"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found, or no sleep data for that night"
// @Failure 412 {object} problem.Problem "Sleep goal not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/nights/{date} [get]
func (h *NightHandler) GetNight(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	date, err := time.Parse(nightDateFormat, chi.URLParam(r, "date"))
	if err != nil {
		problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
		return
	}

	night, err := h.nightService.GetNight(r.Context(), userID, date)
	if err != nil {
		writeNightError(w, err, "Failed to compute night")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(night)
}

// ListNights handles GET /v1/users/{userId}/nights
// @Summary List recent nights
// @Description Compute derived metrics for the last N nights ending today, newest first. Nights without any sleep data are omitted rather than zero-filled.
// @Tags nights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param days query integer false "Number of nights to compute" default(14) minimum(1) maximum(90)
// @Success 200 {object} domain.NightListResponse "Recent nights, newest first"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 412 {object} problem.Problem "Sleep goal not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/nights [get]
func (h *NightHandler) ListNights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	days := parseIntParam(r, "days", service.DefaultNightsWindow)
	if days < 1 || days > service.MaxNightsWindow {
		problem.BadRequest("days must be between 1 and 90").Write(w)
		return
	}

	nights, err := h.nightService.GetRecentNights(r.Context(), userID, days)
	if err != nil {
		writeNightError(w, err, "Failed to compute nights")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.NightListResponse{
		Nights:      nights,
		DaysQueried: days,
	})
}

// GetDebt handles GET /v1/users/{userId}/sleep/debt
// @Summary Get sleep debt series
// @Description Compute the signed per-night sleep debt against the goal over the last N nights, plus the net total. Positive values mean sleeping under the goal; surplus nights subtract.
// @Tags sleep
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param nights query integer false "Number of nights" default(14) minimum(1) maximum(90)
// @Success 200 {object} domain.DebtSeries "Per-day debt and net total"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 412 {object} problem.Problem "Sleep goal not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/debt [get]
func (h *NightHandler) GetDebt(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	nights := parseIntParam(r, "nights", service.DefaultNightsWindow)
	if nights < 1 || nights > service.MaxNightsWindow {
		problem.BadRequest("nights must be between 1 and 90").Write(w)
		return
	}

	series, err := h.nightService.GetDebtSeries(r.Context(), userID, nights)
	if err != nil {
		writeNightError(w, err, "Failed to compute debt")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}

// GetRecommendation handles GET /v1/users/{userId}/sleep/recommendation
// @Summary Get bedtime recommendation
// @Description Compute the suggested bedtime and wake time for the given date. The bedtime moves earlier in proportion to accumulated sleep debt, capped at one hour, and the goal is padded by the user's average awake-in-bed time.
// @Tags sleep
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Wake date (YYYY-MM-DD); defaults to tomorrow in the user's timezone" example(2024-01-17)
// @Param nights query integer false "Nights of history to use" default(14) minimum(1) maximum(90)
// @Success 200 {object} domain.BedtimeRecommendation "Recommended schedule"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 412 {object} problem.Problem "Sleep goal not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/recommendation [get]
func (h *NightHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var referenceDate time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		referenceDate, err = time.Parse(nightDateFormat, dateStr)
		if err != nil {
			problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
			return
		}
	}

	nights := parseIntParam(r, "nights", service.DebtWindowNights)
	if nights < 1 || nights > service.MaxNightsWindow {
		problem.BadRequest("nights must be between 1 and 90").Write(w)
		return
	}

	rec, err := h.recommendationService.GetRecommendation(r.Context(), userID, referenceDate, nights)
	if err != nil {
		writeNightError(w, err, "Failed to compute recommendation")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// GetDailySteps handles GET /v1/users/{userId}/activity/steps
// @Summary Get daily step totals
// @Description Sum step buckets into per-day totals over the last N local calendar days.
// @Tags activity
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param days query integer false "Number of days" default(7) minimum(1) maximum(90)
// @Success 200 {object} domain.StepsSeries "Per-day step totals"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/activity/steps [get]
func (h *NightHandler) GetDailySteps(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	days := parseIntParam(r, "days", service.DefaultStepsWindowDays)
	if days < 1 || days > service.MaxNightsWindow {
		problem.BadRequest("days must be between 1 and 90").Write(w)
		return
	}

	series, err := h.activityService.GetDailySteps(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute steps").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}

// writeNightError maps the derivation error taxonomy onto problem
// responses shared by the night-based endpoints.
func writeNightError(w http.ResponseWriter, err error, internalDetail string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrNoData):
		problem.NoData("No sleep data recorded for this night").Write(w)
	case errors.Is(err, domain.ErrGoalNotConfigured):
		problem.PreconditionFailed("Sleep goal is not configured").Write(w)
	default:
		problem.InternalError(internalDetail).Write(w)
	}
}
