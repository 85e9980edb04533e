package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/langfuse"
	"github.com/mbeaufort/sleep-metrics/internal/llm"
	"github.com/mbeaufort/sleep-metrics/internal/service"
	"github.com/mbeaufort/sleep-metrics/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// InsightsHandler handles LLM sleep-insights endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
	langfuseClient  langfuse.Client
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService, langfuseClient langfuse.Client) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		langfuseClient:  langfuseClient,
	}
}

// GetInsights handles GET /v1/users/{userId}/sleep/insights
// @Summary Get LLM-powered sleep insights
// @Description Generate a narrative summary of the user's recent nights, debt trend and schedule using LLM analysis.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.InsightsResponse "Sleep insights with LLM analysis"
// @Failure 404 {object} problem.Problem "User not found, or no recent sleep data"
// @Failure 412 {object} problem.Problem "Sleep goal not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/sleep/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoData) {
			problem.NoData("No recent sleep data to summarize").Write(w)
			return
		}
		if errors.Is(err, domain.ErrGoalNotConfigured) {
			problem.PreconditionFailed("Sleep goal is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for insights feedback.
// @Description Request body for submitting feedback on insights.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The insights were helpful!"`
}

// PostFeedback handles POST /v1/users/{userId}/sleep/insights/feedback
// @Summary Submit feedback on sleep insights
// @Description Submit a user rating and optional comment for a previous insights response.
// @Tags sleep-insights
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	// Validate required fields
	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Create score in Langfuse (errors are logged but don't fail the request)
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
