package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/langfuse"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc         func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getSettingsFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	updateSettingsFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.UserSettings, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if m.getSettingsFunc != nil {
		return m.getSettingsFunc(ctx, userID)
	}
	return &domain.UserSettings{UserID: userID}, nil
}

func (m *MockUserService) UpdateSettings(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.UserSettings, error) {
	if m.updateSettingsFunc != nil {
		return m.updateSettingsFunc(ctx, userID, req)
	}
	return &domain.UserSettings{
		UserID:           userID,
		SleepGoalMinutes: req.SleepGoalMinutes,
		GoalWakeTime:     req.GoalWakeTime,
	}, nil
}

// MockSampleService is a mock implementation of SampleService
type MockSampleService struct {
	ingestFunc func(ctx context.Context, userID uuid.UUID, req *domain.IngestSamplesRequest) (*domain.IngestSamplesResponse, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.StageSampleFilter) (*domain.StageSampleListResponse, error)
}

func (m *MockSampleService) Ingest(ctx context.Context, userID uuid.UUID, req *domain.IngestSamplesRequest) (*domain.IngestSamplesResponse, error) {
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, userID, req)
	}
	return &domain.IngestSamplesResponse{
		StagesStored: len(req.Stages),
		VitalsStored: len(req.Vitals),
	}, nil
}

func (m *MockSampleService) List(ctx context.Context, userID uuid.UUID, filter domain.StageSampleFilter) (*domain.StageSampleListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.StageSampleListResponse{
		Data:       []domain.StageSampleResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockNightService is a mock implementation of NightService
type MockNightService struct {
	getNightFunc        func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.NightData, error)
	getRecentNightsFunc func(ctx context.Context, userID uuid.UUID, days int) ([]domain.NightData, error)
	getDebtSeriesFunc   func(ctx context.Context, userID uuid.UUID, nights int) (*domain.DebtSeries, error)
}

func (m *MockNightService) GetNight(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.NightData, error) {
	if m.getNightFunc != nil {
		return m.getNightFunc(ctx, userID, date)
	}
	return nil, domain.ErrNoData
}

func (m *MockNightService) GetRecentNights(ctx context.Context, userID uuid.UUID, days int) ([]domain.NightData, error) {
	if m.getRecentNightsFunc != nil {
		return m.getRecentNightsFunc(ctx, userID, days)
	}
	return nil, nil
}

func (m *MockNightService) GetDebtSeries(ctx context.Context, userID uuid.UUID, nights int) (*domain.DebtSeries, error) {
	if m.getDebtSeriesFunc != nil {
		return m.getDebtSeriesFunc(ctx, userID, nights)
	}
	return &domain.DebtSeries{Days: map[string]int64{}}, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	getRecommendationFunc func(ctx context.Context, userID uuid.UUID, referenceDate time.Time, nights int) (*domain.BedtimeRecommendation, error)
}

func (m *MockRecommendationService) GetRecommendation(ctx context.Context, userID uuid.UUID, referenceDate time.Time, nights int) (*domain.BedtimeRecommendation, error) {
	if m.getRecommendationFunc != nil {
		return m.getRecommendationFunc(ctx, userID, referenceDate, nights)
	}
	return nil, domain.ErrGoalNotConfigured
}

// MockActivityService is a mock implementation of ActivityService
type MockActivityService struct {
	getDailyStepsFunc func(ctx context.Context, userID uuid.UUID, days int) (*domain.StepsSeries, error)
}

func (m *MockActivityService) GetDailySteps(ctx context.Context, userID uuid.UUID, days int) (*domain.StepsSeries, error) {
	if m.getDailyStepsFunc != nil {
		return m.getDailyStepsFunc(ctx, userID, days)
	}
	return &domain.StepsSeries{Days: map[string]float64{}, DaysQueried: days}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return nil, domain.ErrNoData
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled     bool
	scoreInputs []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return uuid.New().String(), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreInputs = append(m.scoreInputs, in)
	return nil
}
