package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/llm"
)

func TestInsightsHandler_GetInsights(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		mockService    *MockInsightsService
		wantStatusCode int
	}{
		{
			name: "successful insights",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return &domain.InsightsResponse{
						Insights: domain.LLMInsightsOutput{
							Summary:      "Fairly consistent week with a small deficit.",
							Observations: []string{"Deep sleep hovered below target most nights."},
							Guidance:     []string{"Move bedtime 20 minutes earlier this week."},
						},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "no recent data",
			mockService:    &MockInsightsService{}, // default returns ErrNoData
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "goal not configured",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, domain.ErrGoalNotConfigured
				},
			},
			wantStatusCode: http.StatusPreconditionFailed,
		},
		{
			name: "openai not configured",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, llm.ErrOpenAIUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name: "llm request failure",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, llm.ErrOpenAIRequest
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name: "unknown user",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInsightsHandler(tt.mockService, &MockLangfuseClient{})

			req := newParamRequest(http.MethodGet, "/v1/users/"+userID.String()+"/sleep/insights", "", map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.GetInsights(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetInsights() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.InsightsResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Errorf("Failed to decode response: %v", err)
				}
				if response.Insights.Summary == "" {
					t.Error("expected non-empty summary")
				}
			}
		})
	}
}

func TestInsightsHandler_PostFeedback(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantScores     int
	}{
		{
			name:           "valid feedback",
			body:           `{"trace_id": "abc123", "score": 4, "comment": "helpful"}`,
			wantStatusCode: http.StatusNoContent,
			wantScores:     1,
		},
		{
			name:           "missing trace_id",
			body:           `{"score": 4}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "score out of range",
			body:           `{"trace_id": "abc123", "score": 9}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			langfuseClient := &MockLangfuseClient{enabled: true}
			handler := NewInsightsHandler(&MockInsightsService{}, langfuseClient)

			req := newParamRequest(http.MethodPost, "/v1/users/"+userID.String()+"/sleep/insights/feedback", tt.body, map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.PostFeedback(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("PostFeedback() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if len(langfuseClient.scoreInputs) != tt.wantScores {
				t.Errorf("got %d scores sent, want %d", len(langfuseClient.scoreInputs), tt.wantScores)
			}
		})
	}
}
