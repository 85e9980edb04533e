package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository is the engine's view of the user's goal
// configuration. A user who never saved settings reads back the zero
// sentinel (goal 0, empty wake time); callers decide what that means.
type SettingsRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	Upsert(ctx context.Context, settings *domain.UserSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Never-saved settings read as the unset sentinel.
			return &domain.UserSettings{UserID: userID}, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *domain.UserSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"sleep_goal_minutes", "goal_wake_time", "updated_at"}),
		}).
		Create(settings).Error
}
