package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/engine"
	"github.com/mbeaufort/sleep-metrics/internal/repository"
)

// DebtWindowNights is the trailing window the recommendation's debt
// shift is computed over.
const DebtWindowNights = 14

// RecommendationService derives the suggested bedtime/wake schedule
// from the user's goal and recent nights.
type RecommendationService interface {
	// GetRecommendation computes the schedule whose wake time falls on
	// referenceDate. A zero referenceDate means tomorrow in the user's
	// timezone. Requires both goal fields to be configured.
	GetRecommendation(ctx context.Context, userID uuid.UUID, referenceDate time.Time, nights int) (*domain.BedtimeRecommendation, error)
}

type recommendationService struct {
	nightService NightService
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(nightService NightService, settingsRepo repository.SettingsRepository, userRepo repository.UserRepository) RecommendationService {
	return &recommendationService{
		nightService: nightService,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

func (s *recommendationService) GetRecommendation(ctx context.Context, userID uuid.UUID, referenceDate time.Time, nights int) (*domain.BedtimeRecommendation, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !settings.GoalConfigured() {
		return nil, domain.ErrGoalNotConfigured
	}

	if nights <= 0 {
		nights = DebtWindowNights
	}

	recent, err := s.nightService.GetRecentNights(ctx, userID, nights)
	if err != nil {
		return nil, err
	}

	loc := userLocation(user)
	if referenceDate.IsZero() {
		referenceDate = s.now().In(loc).AddDate(0, 0, 1)
	}

	wake, err := engine.WakeTimeOn(referenceDate, settings.GoalWakeTime, loc)
	if err != nil {
		return nil, err
	}

	// Debt is always taken over the trailing 14 nights, even when the
	// caller asked for a wider awake-time window.
	debtSeconds := engine.TrailingDebtSeconds(recent, settings.SleepGoalMinutes, referenceDate, DebtWindowNights)

	rec := engine.RecommendBedtime(wake, settings.SleepGoalMinutes, averageAwake(recent), debtSeconds)
	rec.NightsUsed = len(recent)
	return &rec, nil
}

// averageAwake is the mean awake-in-bed time across the nights that
// actually have data. Zero when none do.
func averageAwake(nights []domain.NightData) time.Duration {
	if len(nights) == 0 {
		return 0
	}
	var total int64
	for _, n := range nights {
		total += n.TotalAwakeSeconds
	}
	return time.Duration(total/int64(len(nights))) * time.Second
}
