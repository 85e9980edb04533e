package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.UserSettings, error)
}

type userService struct {
	repo         repository.UserRepository
	settingsRepo repository.SettingsRepository
}

func NewUserService(repo repository.UserRepository, settingsRepo repository.SettingsRepository) UserService {
	return &userService{repo: repo, settingsRepo: settingsRepo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:       uuid.New(),
		Timezone: req.Timezone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.settingsRepo.Get(ctx, userID)
}

func (s *userService) UpdateSettings(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.UserSettings, error) {
	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	settings := &domain.UserSettings{
		UserID:           userID,
		SleepGoalMinutes: req.SleepGoalMinutes,
		GoalWakeTime:     req.GoalWakeTime,
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
