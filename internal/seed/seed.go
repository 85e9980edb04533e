package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"gorm.io/gorm"
)

const seededNights = 30

// Seeded providers: the watch reports full stage detail, the phone only
// coarse in-bed/core intervals. The selector should prefer the watch.
const (
	watchProvider = "watch-7FA2"
	phoneProvider = "phone-C913"
)

// Run seeds the database with sample users, goals, stage samples and
// vital buckets. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.UserSettings{}, &domain.StageSample{}, &domain.VitalSample{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	}

	goals := map[uuid.UUID]domain.UserSettings{
		users[0].ID: {UserID: users[0].ID, SleepGoalMinutes: 480, GoalWakeTime: "07:00"},
		users[1].ID: {UserID: users[1].ID, SleepGoalMinutes: 450, GoalWakeTime: "06:30"},
		// Third user deliberately left without a goal to exercise the
		// not-configured path.
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
		if settings, ok := goals[user.ID]; ok {
			if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&settings).Error; err != nil {
				return fmt.Errorf("failed to create settings for %s: %w", user.ID, err)
			}
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSamplesForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedSamplesForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	// Samples have no natural idempotency key, so the whole batch is
	// skipped when the user already has any.
	var count int64
	if err := db.Model(&domain.StageSample{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count samples for %s: %w", user.ID, err)
	}
	if count > 0 {
		return nil
	}

	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}

	var stages []domain.StageSample
	var vitals []domain.VitalSample

	now := time.Now().In(loc)
	for i := 1; i <= seededNights; i++ {
		date := now.AddDate(0, 0, -i)

		// Bedtime the evening before the night's key date.
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 22, rng.Intn(60), 0, 0, loc).AddDate(0, 0, -1)
		wake := bedtime.Add(time.Duration(6*3600+rng.Intn(3*3600)) * time.Second)

		stages = append(stages, seedNightStages(user.ID, bedtime, wake, rng)...)
		vitals = append(vitals, seedNightVitals(user.ID, bedtime, wake, rng)...)
		vitals = append(vitals, seedDaySteps(user.ID, date, loc, rng)...)
	}

	if err := db.CreateInBatches(stages, 500).Error; err != nil {
		return fmt.Errorf("failed to create stage samples for %s: %w", user.ID, err)
	}
	if err := db.CreateInBatches(vitals, 500).Error; err != nil {
		return fmt.Errorf("failed to create vital samples for %s: %w", user.ID, err)
	}
	return nil
}

// seedNightStages emits one night from both providers. The watch walks
// through sleep cycles with deep and REM; the phone only knows the
// in-bed envelope and coarse core blocks, sometimes missing entirely.
func seedNightStages(userID uuid.UUID, bedtime, wake time.Time, rng *rand.Rand) []domain.StageSample {
	var out []domain.StageSample

	add := func(provider string, stageValue int, start, end time.Time) {
		out = append(out, domain.StageSample{
			ID:         uuid.New(),
			UserID:     userID,
			ProviderID: provider,
			StageValue: stageValue,
			StartAt:    start.UTC(),
			EndAt:      end.UTC(),
		})
	}

	// Whole-night in-bed envelope from both providers.
	add(watchProvider, 0, bedtime, wake)

	cursor := bedtime
	cycleStages := []int{3, 4, 3, 5} // core, deep, core, REM
	for cursor.Before(wake) {
		for _, stage := range cycleStages {
			if !cursor.Before(wake) {
				break
			}
			span := time.Duration(15+rng.Intn(30)) * time.Minute
			end := cursor.Add(span)
			if end.After(wake) {
				end = wake
			}
			add(watchProvider, stage, cursor, end)
			cursor = end
		}
		// Brief awakening between cycles.
		if cursor.Before(wake) && rng.Float32() < 0.4 {
			end := cursor.Add(time.Duration(2+rng.Intn(6)) * time.Minute)
			if end.After(wake) {
				end = wake
			}
			add(watchProvider, 2, cursor, end)
			cursor = end
		}
	}

	if rng.Float32() < 0.8 {
		add(phoneProvider, 0, bedtime, wake)
		add(phoneProvider, 3, bedtime.Add(10*time.Minute), wake.Add(-10*time.Minute))
	}

	return out
}

// seedNightVitals emits heart-rate buckets every 5 minutes and HRV
// buckets hourly across the sleep span.
func seedNightVitals(userID uuid.UUID, bedtime, wake time.Time, rng *rand.Rand) []domain.VitalSample {
	var out []domain.VitalSample

	for t := bedtime; t.Before(wake); t = t.Add(5 * time.Minute) {
		end := t.Add(5 * time.Minute)
		value := float64(48 + rng.Intn(18))
		// Occasional motion spike; the lowest-decile estimator should
		// shrug these off.
		if rng.Float32() < 0.05 {
			value += float64(20 + rng.Intn(30))
		}
		out = append(out, domain.VitalSample{
			ID:          uuid.New(),
			UserID:      userID,
			Metric:      domain.MetricHeartRate,
			Value:       value,
			BucketStart: t.UTC(),
			BucketEnd:   end.UTC(),
		})
	}

	for t := bedtime; t.Before(wake); t = t.Add(time.Hour) {
		end := t.Add(time.Hour)
		out = append(out, domain.VitalSample{
			ID:          uuid.New(),
			UserID:      userID,
			Metric:      domain.MetricHRV,
			Value:       float64(35 + rng.Intn(45)),
			BucketStart: t.UTC(),
			BucketEnd:   end.UTC(),
		})
	}

	return out
}

// seedDaySteps emits hourly step buckets for the waking hours of a day.
func seedDaySteps(userID uuid.UUID, date time.Time, loc *time.Location, rng *rand.Rand) []domain.VitalSample {
	var out []domain.VitalSample

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	for hour := 8; hour < 22; hour++ {
		start := dayStart.Add(time.Duration(hour) * time.Hour)
		out = append(out, domain.VitalSample{
			ID:          uuid.New(),
			UserID:      userID,
			Metric:      domain.MetricSteps,
			Value:       float64(rng.Intn(1200)),
			BucketStart: start.UTC(),
			BucketEnd:   start.Add(time.Hour).UTC(),
		})
	}

	return out
}
