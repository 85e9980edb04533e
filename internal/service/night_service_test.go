package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
)

var testUserID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func stageAt(provider string, value int, start, end time.Time) domain.StageSample {
	return domain.StageSample{
		ID:         uuid.New(),
		UserID:     testUserID,
		ProviderID: provider,
		StageValue: value,
		StartAt:    start,
		EndAt:      end,
	}
}

func vitalAt(metric domain.VitalMetric, value float64, at time.Time) domain.VitalSample {
	return domain.VitalSample{
		ID:          uuid.New(),
		UserID:      testUserID,
		Metric:      metric,
		Value:       value,
		BucketStart: at,
		BucketEnd:   at.Add(5 * time.Minute),
	}
}

// newNightServiceForTest wires the service against in-memory mocks with
// a registered UTC user, a configured 8h goal, and a frozen clock.
func newNightServiceForTest(t *testing.T, now time.Time) (*nightService, *MockHealthDataRepository, *MockSettingsRepository, *MockUserRepository) {
	t.Helper()

	userRepo := NewMockUserRepository()
	settingsRepo := NewMockSettingsRepository()
	healthRepo := NewMockHealthDataRepository()

	if err := userRepo.Create(context.Background(), &domain.User{ID: testUserID, Timezone: "UTC"}); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	if err := settingsRepo.Upsert(context.Background(), &domain.UserSettings{
		UserID:           testUserID,
		SleepGoalMinutes: 480,
		GoalWakeTime:     "07:00",
	}); err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}

	svc := &nightService{
		healthRepo:   healthRepo,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		now:          func() time.Time { return now },
	}
	return svc, healthRepo, settingsRepo, userRepo
}

func TestGetNight_MergesContiguousSamples(t *testing.T) {
	svc, healthRepo, _, _ := newNightServiceForTest(t, utc(2024, time.January, 16, 12, 0))

	// One provider, contiguous core samples plus deep and REM. The two
	// core runs at the front must coalesce into one interval.
	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("watch-A", 3, utc(2024, time.January, 15, 23, 0), utc(2024, time.January, 16, 1, 0)),
		stageAt("watch-A", 3, utc(2024, time.January, 16, 1, 0), utc(2024, time.January, 16, 3, 0)),
		stageAt("watch-A", 4, utc(2024, time.January, 16, 3, 0), utc(2024, time.January, 16, 4, 0)),
		stageAt("watch-A", 5, utc(2024, time.January, 16, 4, 0), utc(2024, time.January, 16, 5, 30)),
		stageAt("watch-A", 3, utc(2024, time.January, 16, 5, 30), utc(2024, time.January, 16, 7, 0)),
	})
	healthRepo.CreateVitalSamples(context.Background(), []domain.VitalSample{
		vitalAt(domain.MetricHRV, 40, utc(2024, time.January, 16, 1, 0)),
		vitalAt(domain.MetricHRV, 50, utc(2024, time.January, 16, 4, 0)),
		vitalAt(domain.MetricHeartRate, 52, utc(2024, time.January, 16, 2, 0)),
		vitalAt(domain.MetricHeartRate, 54, utc(2024, time.January, 16, 2, 30)),
		vitalAt(domain.MetricHeartRate, 56, utc(2024, time.January, 16, 3, 0)),
		vitalAt(domain.MetricHeartRate, 58, utc(2024, time.January, 16, 3, 30)),
		vitalAt(domain.MetricHeartRate, 60, utc(2024, time.January, 16, 4, 0)),
	})

	night, err := svc.GetNight(context.Background(), testUserID, utc(2024, time.January, 16, 0, 0))
	if err != nil {
		t.Fatalf("GetNight returned error: %v", err)
	}

	if !night.Date.Equal(utc(2024, time.January, 16, 0, 0)) {
		t.Errorf("Date = %v, want 2024-01-16", night.Date)
	}
	if night.SleepDurationSeconds != 28800 {
		t.Errorf("SleepDurationSeconds = %d, want 28800", night.SleepDurationSeconds)
	}
	if night.TotalAwakeSeconds != 0 {
		t.Errorf("TotalAwakeSeconds = %d, want 0", night.TotalAwakeSeconds)
	}
	if got := night.StageSeconds[domain.StageCore]; got != 19800 {
		t.Errorf("core seconds = %d, want 19800", got)
	}
	if got := night.StageSeconds[domain.StageDeep]; got != 3600 {
		t.Errorf("deep seconds = %d, want 3600", got)
	}
	if got := night.StageSeconds[domain.StageREM]; got != 5400 {
		t.Errorf("rem seconds = %d, want 5400", got)
	}
	if !night.SleepStartTime.Equal(utc(2024, time.January, 15, 23, 0)) {
		t.Errorf("SleepStartTime = %v, want 23:00", night.SleepStartTime)
	}
	if !night.SleepEndTime.Equal(utc(2024, time.January, 16, 7, 0)) {
		t.Errorf("SleepEndTime = %v, want 07:00", night.SleepEndTime)
	}
	if night.HRV != 45 {
		t.Errorf("HRV = %v, want 45", night.HRV)
	}
	if night.RestingHeartRate != 52 {
		t.Errorf("RestingHeartRate = %v, want 52", night.RestingHeartRate)
	}
	// 8h at an 8h goal loses nothing on duration; deep 12.5% and REM
	// 18.75% both fall short of their thresholds.
	if night.SleepScore != 70 {
		t.Errorf("SleepScore = %d, want 70", night.SleepScore)
	}
}

func TestGetNight_PrefersProviderWithDeepSleep(t *testing.T) {
	svc, healthRepo, _, _ := newNightServiceForTest(t, utc(2024, time.January, 16, 12, 0))

	// The phone reports more samples, but only the watch saw deep sleep.
	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("phone-B", 3, utc(2024, time.January, 15, 23, 0), utc(2024, time.January, 15, 23, 30)),
		stageAt("phone-B", 3, utc(2024, time.January, 15, 23, 30), utc(2024, time.January, 16, 0, 0)),
		stageAt("phone-B", 3, utc(2024, time.January, 16, 0, 0), utc(2024, time.January, 16, 0, 30)),
		stageAt("watch-A", 3, utc(2024, time.January, 15, 23, 0), utc(2024, time.January, 16, 5, 0)),
		stageAt("watch-A", 4, utc(2024, time.January, 16, 5, 0), utc(2024, time.January, 16, 6, 30)),
	})

	night, err := svc.GetNight(context.Background(), testUserID, utc(2024, time.January, 16, 0, 0))
	if err != nil {
		t.Fatalf("GetNight returned error: %v", err)
	}

	if night.SleepDurationSeconds != 27000 {
		t.Errorf("SleepDurationSeconds = %d, want 27000 (watch timeline)", night.SleepDurationSeconds)
	}
	if got := night.StageSeconds[domain.StageDeep]; got != 5400 {
		t.Errorf("deep seconds = %d, want 5400", got)
	}
}

func TestGetNight_NoSamples(t *testing.T) {
	svc, _, _, _ := newNightServiceForTest(t, utc(2024, time.January, 16, 12, 0))

	_, err := svc.GetNight(context.Background(), testUserID, utc(2024, time.January, 16, 0, 0))
	if !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestGetNight_GoalNotConfigured(t *testing.T) {
	svc, healthRepo, settingsRepo, _ := newNightServiceForTest(t, utc(2024, time.January, 16, 12, 0))

	// Reset the goal to the unset sentinel.
	settingsRepo.Upsert(context.Background(), &domain.UserSettings{UserID: testUserID})

	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("watch-A", 3, utc(2024, time.January, 15, 23, 0), utc(2024, time.January, 16, 7, 0)),
	})

	_, err := svc.GetNight(context.Background(), testUserID, utc(2024, time.January, 16, 0, 0))
	if !errors.Is(err, domain.ErrGoalNotConfigured) {
		t.Fatalf("expected ErrGoalNotConfigured, got %v", err)
	}
}

func TestGetNight_UserNotFound(t *testing.T) {
	svc, _, _, _ := newNightServiceForTest(t, utc(2024, time.January, 16, 12, 0))

	_, err := svc.GetNight(context.Background(), uuid.New(), utc(2024, time.January, 16, 0, 0))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRecentNights_OmitsEmptyAndSortsNewestFirst(t *testing.T) {
	svc, healthRepo, _, _ := newNightServiceForTest(t, utc(2024, time.January, 20, 18, 0))

	// Data on two of the five queried nights.
	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("watch-A", 3, utc(2024, time.January, 18, 23, 0), utc(2024, time.January, 19, 6, 0)),
		stageAt("watch-A", 3, utc(2024, time.January, 16, 23, 0), utc(2024, time.January, 17, 7, 0)),
	})

	nights, err := svc.GetRecentNights(context.Background(), testUserID, 5)
	if err != nil {
		t.Fatalf("GetRecentNights returned error: %v", err)
	}

	if len(nights) != 2 {
		t.Fatalf("got %d nights, want 2", len(nights))
	}
	if !nights[0].Date.Equal(utc(2024, time.January, 19, 0, 0)) {
		t.Errorf("nights[0].Date = %v, want 2024-01-19", nights[0].Date)
	}
	if !nights[1].Date.Equal(utc(2024, time.January, 17, 0, 0)) {
		t.Errorf("nights[1].Date = %v, want 2024-01-17", nights[1].Date)
	}
}

func TestGetDebtSeries(t *testing.T) {
	svc, healthRepo, _, _ := newNightServiceForTest(t, utc(2024, time.January, 20, 18, 0))

	// 7h night (1h under goal) and an exactly-on-goal 8h night.
	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("watch-A", 3, utc(2024, time.January, 18, 23, 0), utc(2024, time.January, 19, 6, 0)),
		stageAt("watch-A", 3, utc(2024, time.January, 16, 23, 0), utc(2024, time.January, 17, 7, 0)),
	})

	series, err := svc.GetDebtSeries(context.Background(), testUserID, 5)
	if err != nil {
		t.Fatalf("GetDebtSeries returned error: %v", err)
	}

	if series.TotalSeconds != 3600 {
		t.Errorf("TotalSeconds = %d, want 3600", series.TotalSeconds)
	}
	if series.GoalMinutes != 480 {
		t.Errorf("GoalMinutes = %d, want 480", series.GoalMinutes)
	}
	if got := series.Days["2024-01-19"]; got != 3600 {
		t.Errorf(`Days["2024-01-19"] = %d, want 3600`, got)
	}
	if got := series.Days["2024-01-17"]; got != 0 {
		t.Errorf(`Days["2024-01-17"] = %d, want 0`, got)
	}
}
