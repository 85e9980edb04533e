package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/engine"
	"github.com/mbeaufort/sleep-metrics/internal/repository"
)

// DefaultStepsWindowDays is the default window for the steps chart.
const DefaultStepsWindowDays = 7

// ActivityService serves the auxiliary cumulative statistics (daily
// step totals) that share the aggregation pattern but feed charts, not
// the sleep score.
type ActivityService interface {
	GetDailySteps(ctx context.Context, userID uuid.UUID, days int) (*domain.StepsSeries, error)
}

type activityService struct {
	healthRepo repository.HealthDataRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewActivityService creates a new ActivityService.
func NewActivityService(healthRepo repository.HealthDataRepository, userRepo repository.UserRepository) ActivityService {
	return &activityService{
		healthRepo: healthRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

func (s *activityService) GetDailySteps(ctx context.Context, userID uuid.UUID, days int) (*domain.StepsSeries, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if days <= 0 {
		days = DefaultStepsWindowDays
	}

	loc := userLocation(user)
	now := s.now().In(loc)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	buckets, err := s.healthRepo.ListVitalSamples(ctx, userID, domain.MetricSteps, from, to)
	if err != nil {
		return nil, err
	}

	// Buckets group into the user's local calendar days; the database
	// cannot know the right day boundary, so the grouping happens here.
	series := &domain.StepsSeries{
		Days:        make(map[string]float64, days),
		DaysQueried: days,
	}
	for _, b := range buckets {
		day := b.BucketStart.In(loc).Format(engine.DebtDayFormat)
		series.Days[day] += b.Value
	}
	return series, nil
}
