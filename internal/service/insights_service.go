package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/engine"
	"github.com/mbeaufort/sleep-metrics/internal/llm"
	"github.com/mbeaufort/sleep-metrics/internal/repository"
)

// InsightsWindowNights is the window summarized for the LLM.
const InsightsWindowNights = 14

// InsightsService generates the LLM sleep narrative over recent nights.
type InsightsService interface {
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	nightService          NightService
	recommendationService RecommendationService
	llmClient             llm.InsightsLLM
	settingsRepo          repository.SettingsRepository
	userRepo              repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	nightService NightService,
	recommendationService RecommendationService,
	llmClient llm.InsightsLLM,
	settingsRepo repository.SettingsRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		nightService:          nightService,
		recommendationService: recommendationService,
		llmClient:             llmClient,
		settingsRepo:          settingsRepo,
		userRepo:              userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	nights, err := s.nightService.GetRecentNights(ctx, userID, InsightsWindowNights)
	if err != nil {
		return nil, err
	}
	if len(nights) == 0 {
		// Nothing to narrate.
		return nil, domain.ErrNoData
	}

	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	debt := engine.BuildDebtSeries(nights, settings.SleepGoalMinutes)

	// The recommendation is optional context: the nights above already
	// required a goal, but the wake time may still be unset.
	var recommendation *domain.BedtimeRecommendation
	if rec, err := s.recommendationService.GetRecommendation(ctx, userID, time.Time{}, InsightsWindowNights); err == nil {
		recommendation = rec
	}

	insightsCtx := &domain.InsightsContext{
		Nights:         nights,
		Debt:           debt,
		Recommendation: recommendation,
		GoalMinutes:    settings.SleepGoalMinutes,
		GoalWakeTime:   settings.GoalWakeTime,
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Insights: *llmOutput,
		Nights:   nights,
		Debt:     debt,
	}, nil
}
