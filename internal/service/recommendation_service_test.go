package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mbeaufort/sleep-metrics/internal/domain"
)

// newRecommendationServiceForTest stacks the recommendation service on
// a real nightService backed by mocks, both on the same frozen clock.
func newRecommendationServiceForTest(t *testing.T, now time.Time) (*recommendationService, *MockHealthDataRepository, *MockSettingsRepository) {
	t.Helper()

	nightSvc, healthRepo, settingsRepo, userRepo := newNightServiceForTest(t, now)

	svc := &recommendationService{
		nightService: nightSvc,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		now:          func() time.Time { return now },
	}
	return svc, healthRepo, settingsRepo
}

func TestGetRecommendation_DebtShiftsBedtimeEarlier(t *testing.T) {
	svc, healthRepo, _ := newRecommendationServiceForTest(t, utc(2024, time.January, 20, 18, 0))

	// One 6h night against the 8h goal: 2h of debt moves bedtime 20
	// minutes earlier.
	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("watch-A", 3, utc(2024, time.January, 18, 23, 0), utc(2024, time.January, 19, 5, 0)),
	})

	rec, err := svc.GetRecommendation(context.Background(), testUserID, utc(2024, time.January, 21, 0, 0), 14)
	if err != nil {
		t.Fatalf("GetRecommendation returned error: %v", err)
	}

	if !rec.WakeTime.Equal(utc(2024, time.January, 21, 7, 0)) {
		t.Errorf("WakeTime = %v, want 2024-01-21 07:00", rec.WakeTime)
	}
	if rec.DebtSeconds != 7200 {
		t.Errorf("DebtSeconds = %d, want 7200", rec.DebtSeconds)
	}
	if rec.ShiftSeconds != 1200 {
		t.Errorf("ShiftSeconds = %d, want 1200", rec.ShiftSeconds)
	}
	if rec.AdjustedGoalMinutes != 480 {
		t.Errorf("AdjustedGoalMinutes = %d, want 480", rec.AdjustedGoalMinutes)
	}
	// 07:00 minus the 8h goal minus the 20-minute shift.
	if !rec.Bedtime.Equal(utc(2024, time.January, 20, 22, 40)) {
		t.Errorf("Bedtime = %v, want 2024-01-20 22:40", rec.Bedtime)
	}
	if rec.NightsUsed != 1 {
		t.Errorf("NightsUsed = %d, want 1", rec.NightsUsed)
	}
}

func TestGetRecommendation_SurplusNeverDelaysBedtime(t *testing.T) {
	svc, healthRepo, _ := newRecommendationServiceForTest(t, utc(2024, time.January, 20, 18, 0))

	// A 9h night builds surplus; the shift floors at zero instead of
	// pushing bedtime later.
	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("watch-A", 3, utc(2024, time.January, 18, 22, 0), utc(2024, time.January, 19, 7, 0)),
	})

	rec, err := svc.GetRecommendation(context.Background(), testUserID, utc(2024, time.January, 21, 0, 0), 14)
	if err != nil {
		t.Fatalf("GetRecommendation returned error: %v", err)
	}

	if rec.DebtSeconds != -3600 {
		t.Errorf("DebtSeconds = %d, want -3600", rec.DebtSeconds)
	}
	if rec.ShiftSeconds != 0 {
		t.Errorf("ShiftSeconds = %d, want 0", rec.ShiftSeconds)
	}
	if !rec.Bedtime.Equal(utc(2024, time.January, 20, 23, 0)) {
		t.Errorf("Bedtime = %v, want 2024-01-20 23:00", rec.Bedtime)
	}
}

func TestGetRecommendation_AwakePadsGoal(t *testing.T) {
	svc, healthRepo, _ := newRecommendationServiceForTest(t, utc(2024, time.January, 20, 18, 0))

	// 8h asleep plus 30 awake minutes inside the night: the adjusted
	// goal grows so the in-bed span still yields the goal asleep.
	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("watch-A", 3, utc(2024, time.January, 18, 23, 0), utc(2024, time.January, 19, 3, 0)),
		stageAt("watch-A", 2, utc(2024, time.January, 19, 3, 0), utc(2024, time.January, 19, 3, 30)),
		stageAt("watch-A", 3, utc(2024, time.January, 19, 3, 30), utc(2024, time.January, 19, 7, 30)),
	})

	rec, err := svc.GetRecommendation(context.Background(), testUserID, utc(2024, time.January, 21, 0, 0), 14)
	if err != nil {
		t.Fatalf("GetRecommendation returned error: %v", err)
	}

	if rec.AdjustedGoalMinutes != 510 {
		t.Errorf("AdjustedGoalMinutes = %d, want 510", rec.AdjustedGoalMinutes)
	}
	if rec.DebtSeconds != 0 {
		t.Errorf("DebtSeconds = %d, want 0", rec.DebtSeconds)
	}
	if !rec.Bedtime.Equal(utc(2024, time.January, 20, 22, 30)) {
		t.Errorf("Bedtime = %v, want 2024-01-20 22:30", rec.Bedtime)
	}
}

func TestGetRecommendation_GoalNotConfigured(t *testing.T) {
	svc, _, settingsRepo := newRecommendationServiceForTest(t, utc(2024, time.January, 20, 18, 0))

	// Goal minutes without a wake time is still not configured.
	settingsRepo.Upsert(context.Background(), &domain.UserSettings{
		UserID:           testUserID,
		SleepGoalMinutes: 480,
	})

	_, err := svc.GetRecommendation(context.Background(), testUserID, utc(2024, time.January, 21, 0, 0), 14)
	if !errors.Is(err, domain.ErrGoalNotConfigured) {
		t.Fatalf("expected ErrGoalNotConfigured, got %v", err)
	}
}

func TestGetRecommendation_DefaultsToTomorrow(t *testing.T) {
	svc, healthRepo, _ := newRecommendationServiceForTest(t, utc(2024, time.January, 20, 18, 0))

	healthRepo.CreateStageSamples(context.Background(), []domain.StageSample{
		stageAt("watch-A", 3, utc(2024, time.January, 18, 23, 0), utc(2024, time.January, 19, 7, 0)),
	})

	rec, err := svc.GetRecommendation(context.Background(), testUserID, time.Time{}, 14)
	if err != nil {
		t.Fatalf("GetRecommendation returned error: %v", err)
	}

	if !rec.WakeTime.Equal(utc(2024, time.January, 21, 7, 0)) {
		t.Errorf("WakeTime = %v, want tomorrow 07:00", rec.WakeTime)
	}
}
