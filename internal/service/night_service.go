package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/engine"
	"github.com/mbeaufort/sleep-metrics/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultNightsWindow is the default number of calendar days for
	// multi-night queries.
	DefaultNightsWindow = 14

	// MaxNightsWindow bounds how far back a single query may fan out.
	MaxNightsWindow = 90
)

// NightService aggregates raw health-store samples into per-night
// results: one NightData per night, sparse lists over recent days, and
// debt series.
type NightService interface {
	// GetNight computes the NightData for the night keyed by date.
	// Returns domain.ErrNoData when the window holds no samples.
	GetNight(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.NightData, error)
	// GetRecentNights computes the last `days` nights ending today,
	// newest first. Nights without data are omitted, and one night's
	// failure never aborts the rest.
	GetRecentNights(ctx context.Context, userID uuid.UUID, days int) ([]domain.NightData, error)
	// GetDebtSeries computes the signed sleep-debt series over the
	// last `nights` nights.
	GetDebtSeries(ctx context.Context, userID uuid.UUID, nights int) (*domain.DebtSeries, error)
}

type nightService struct {
	healthRepo   repository.HealthDataRepository
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

// NewNightService creates a new NightService.
func NewNightService(healthRepo repository.HealthDataRepository, settingsRepo repository.SettingsRepository, userRepo repository.UserRepository) NightService {
	return &nightService{
		healthRepo:   healthRepo,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

func (s *nightService) GetNight(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.NightData, error) {
	user, settings, err := s.loadUserAndGoal(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.computeNight(ctx, user, settings, date)
}

func (s *nightService) GetRecentNights(ctx context.Context, userID uuid.UUID, days int) ([]domain.NightData, error) {
	user, settings, err := s.loadUserAndGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	if days <= 0 {
		days = DefaultNightsWindow
	}
	if days > MaxNightsWindow {
		days = MaxNightsWindow
	}

	tracer := otel.Tracer("sleep-metrics-api/nights")
	ctx, span := tracer.Start(ctx, "NightService.GetRecentNights",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", days),
		),
	)
	defer span.End()

	loc := userLocation(user)
	today := s.now().In(loc)

	// Each night's pipeline is independent; results join at the
	// mutex-guarded append. A night with no data or with a failed
	// fetch is dropped, never zero-filled.
	var (
		mu     sync.Mutex
		nights []domain.NightData
		wg     sync.WaitGroup
	)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i)
		wg.Add(1)
		go func(date time.Time) {
			defer wg.Done()
			night, err := s.computeNight(ctx, user, settings, date)
			if err != nil {
				if !errors.Is(err, domain.ErrNoData) {
					log.Printf("night aggregation failed for %s on %s: %v",
						userID, date.Format("2006-01-02"), err)
				}
				return
			}
			mu.Lock()
			nights = append(nights, *night)
			mu.Unlock()
		}(date)
	}
	wg.Wait()

	sort.Slice(nights, func(i, j int) bool {
		return nights[i].Date.After(nights[j].Date)
	})

	span.SetAttributes(attribute.Int("nights.found", len(nights)))
	return nights, nil
}

func (s *nightService) GetDebtSeries(ctx context.Context, userID uuid.UUID, nightCount int) (*domain.DebtSeries, error) {
	nights, err := s.GetRecentNights(ctx, userID, nightCount)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	series := engine.BuildDebtSeries(nights, settings.SleepGoalMinutes)
	return &series, nil
}

// computeNight runs the single-night pipeline: fetch raw samples,
// select the best provider, merge, then fetch both vitals over the
// actual sleep bounds before scoring. The vitals wait on the merge
// because the bounds are unknown until then; between themselves they
// run concurrently and join before the NightData is assembled.
func (s *nightService) computeNight(ctx context.Context, user *domain.User, settings *domain.UserSettings, date time.Time) (*domain.NightData, error) {
	loc := userLocation(user)
	window := engine.NightWindowFor(date, loc)

	samples, err := s.healthRepo.ListStageSamples(ctx, user.ID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	timeline := engine.MergeIntervals(engine.SelectBestSource(samples))
	if len(timeline) == 0 {
		return nil, domain.ErrNoData
	}

	sleepStart, sleepEnd, _ := engine.SleepBounds(timeline)

	var (
		hrvValues []float64
		hrValues  []float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hrvValues, err = s.healthRepo.ListVitalValues(gctx, user.ID, domain.MetricHRV, sleepStart, sleepEnd)
		return err
	})
	g.Go(func() error {
		var err error
		hrValues, err = s.healthRepo.ListVitalValues(gctx, user.ID, domain.MetricHeartRate, sleepStart, sleepEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	vitals := engine.Vitals{}
	vitals.HRV, vitals.HRVAvailable = engine.AverageHRV(hrvValues)
	vitals.RestingHR, vitals.RestingHRAvailable = engine.RestingHeartRate(hrValues)

	durations := engine.StageDurations(timeline)
	stageSeconds := make(map[domain.Stage]int64, len(durations))
	for stage, d := range durations {
		stageSeconds[stage] = int64(d.Seconds())
	}

	return &domain.NightData{
		Date:                 window.Date,
		SleepScore:           engine.Score(timeline, vitals, settings.SleepGoalMinutes),
		HRV:                  vitals.HRV,
		RestingHeartRate:     vitals.RestingHR,
		SleepDurationSeconds: int64(engine.SleepDuration(timeline).Seconds()),
		SleepStartTime:       sleepStart,
		SleepEndTime:         sleepEnd,
		TotalAwakeSeconds:    int64(engine.AwakeDuration(timeline).Seconds()),
		StageSeconds:         stageSeconds,
	}, nil
}

// loadUserAndGoal resolves the user and enforces the goal sentinel:
// the night score's duration component is goal-relative, so an unset
// goal refuses the computation instead of assuming a default.
func (s *nightService) loadUserAndGoal(ctx context.Context, userID uuid.UUID) (*domain.User, *domain.UserSettings, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if settings.SleepGoalMinutes <= 0 {
		return nil, nil, domain.ErrGoalNotConfigured
	}

	return user, settings, nil
}

func userLocation(user *domain.User) *time.Location {
	if user.Timezone != "" {
		if loc, err := time.LoadLocation(user.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}
