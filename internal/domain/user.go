package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserSettings holds the user's sleep goal. A zero goal or empty wake
// time is the "not configured" sentinel: goal-relative derivations must
// refuse to run rather than assume a default.
type UserSettings struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	SleepGoalMinutes int       `gorm:"not null;default:0" json:"sleep_goal_minutes"`
	GoalWakeTime     string    `gorm:"type:varchar(5);not null;default:''" json:"goal_wake_time"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// GoalConfigured reports whether both goal fields are set.
func (s *UserSettings) GoalConfigured() bool {
	return s != nil && s.SleepGoalMinutes > 0 && s.GoalWakeTime != ""
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for registering a user.
type CreateUserRequest struct {
	// IANA timezone used for night-window boundaries
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt,
	}
}

// UpdateSettingsRequest is the request body for the settings endpoint.
// @Description Request payload for setting the sleep goal.
type UpdateSettingsRequest struct {
	// Nightly sleep goal in minutes
	SleepGoalMinutes int `json:"sleep_goal_minutes" validate:"required,min=60,max=960" example:"480"`
	// Goal wake time of day, HH:MM
	GoalWakeTime string `json:"goal_wake_time" validate:"required,wake_time" example:"07:00"`
}

// SettingsResponse is the response body for the settings endpoint.
type SettingsResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	SleepGoalMinutes int       `json:"sleep_goal_minutes"`
	GoalWakeTime     string    `json:"goal_wake_time"`
	// False until both goal fields have been set
	GoalConfigured bool      `json:"goal_configured"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *UserSettings) ToResponse() SettingsResponse {
	return SettingsResponse{
		UserID:           s.UserID,
		SleepGoalMinutes: s.SleepGoalMinutes,
		GoalWakeTime:     s.GoalWakeTime,
		GoalConfigured:   s.GoalConfigured(),
		UpdatedAt:        s.UpdatedAt,
	}
}
