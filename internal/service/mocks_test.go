package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/pkg/pagination"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	settings map[uuid.UUID]*domain.UserSettings
	err      error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{
		settings: make(map[uuid.UUID]*domain.UserSettings),
	}
}

func (m *MockSettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	settings, ok := m.settings[userID]
	if !ok {
		// Matches the real repository: never-saved settings read as the
		// unset sentinel.
		return &domain.UserSettings{UserID: userID}, nil
	}
	return settings, nil
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *domain.UserSettings) error {
	if m.err != nil {
		return m.err
	}
	m.settings[settings.UserID] = settings
	return nil
}

// MockHealthDataRepository is an in-memory mock of HealthDataRepository
type MockHealthDataRepository struct {
	stages []domain.StageSample
	vitals []domain.VitalSample
	err    error
}

func NewMockHealthDataRepository() *MockHealthDataRepository {
	return &MockHealthDataRepository{}
}

func (m *MockHealthDataRepository) CreateStageSamples(ctx context.Context, samples []domain.StageSample) error {
	if m.err != nil {
		return m.err
	}
	m.stages = append(m.stages, samples...)
	return nil
}

func (m *MockHealthDataRepository) CreateVitalSamples(ctx context.Context, samples []domain.VitalSample) error {
	if m.err != nil {
		return m.err
	}
	m.vitals = append(m.vitals, samples...)
	return nil
}

func (m *MockHealthDataRepository) ListStageSamples(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.StageSample
	for _, s := range m.stages {
		if s.UserID == userID && s.StartAt.Before(to) && s.EndAt.After(from) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *MockHealthDataRepository) ListStageSamplesPage(ctx context.Context, userID uuid.UUID, filter domain.StageSampleFilter) ([]domain.StageSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	limit := pagination.NormalizeLimit(filter.Limit)
	var result []domain.StageSample
	for _, s := range m.stages {
		if s.UserID != userID {
			continue
		}
		result = append(result, s)
		if len(result) == limit+1 {
			break
		}
	}
	return result, nil
}

func (m *MockHealthDataRepository) ListVitalValues(ctx context.Context, userID uuid.UUID, metric domain.VitalMetric, from, to time.Time) ([]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	var values []float64
	for _, v := range m.vitals {
		if v.UserID == userID && v.Metric == metric && !v.BucketStart.Before(from) && v.BucketStart.Before(to) {
			values = append(values, v.Value)
		}
	}
	return values, nil
}

func (m *MockHealthDataRepository) ListVitalSamples(ctx context.Context, userID uuid.UUID, metric domain.VitalMetric, from, to time.Time) ([]domain.VitalSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.VitalSample
	for _, v := range m.vitals {
		if v.UserID == userID && v.Metric == metric && !v.BucketStart.Before(from) && v.BucketStart.Before(to) {
			result = append(result, v)
		}
	}
	return result, nil
}

func (m *MockHealthDataRepository) SetError(err error) {
	m.err = err
}
