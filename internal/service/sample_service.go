package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/repository"
	"github.com/mbeaufort/sleep-metrics/pkg/pagination"
)

// SampleService handles raw-sample ingest from the platform exporter
// and the paginated listing used for inspection.
type SampleService interface {
	Ingest(ctx context.Context, userID uuid.UUID, req *domain.IngestSamplesRequest) (*domain.IngestSamplesResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.StageSampleFilter) (*domain.StageSampleListResponse, error)
}

type sampleService struct {
	healthRepo repository.HealthDataRepository
	userRepo   repository.UserRepository
}

// NewSampleService creates a new SampleService.
func NewSampleService(healthRepo repository.HealthDataRepository, userRepo repository.UserRepository) SampleService {
	return &sampleService{
		healthRepo: healthRepo,
		userRepo:   userRepo,
	}
}

// Ingest stores a batch as-is: overlap and duplication across
// providers is expected and resolved at query time by the merge
// pipeline, never at write time.
func (s *sampleService) Ingest(ctx context.Context, userID uuid.UUID, req *domain.IngestSamplesRequest) (*domain.IngestSamplesResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	stages := make([]domain.StageSample, 0, len(req.Stages))
	for _, in := range req.Stages {
		stages = append(stages, domain.StageSample{
			ID:         uuid.New(),
			UserID:     userID,
			ProviderID: in.ProviderID,
			StageValue: in.StageValue,
			StartAt:    in.StartAt.UTC(),
			EndAt:      in.EndAt.UTC(),
		})
	}

	vitals := make([]domain.VitalSample, 0, len(req.Vitals))
	for _, in := range req.Vitals {
		vitals = append(vitals, domain.VitalSample{
			ID:          uuid.New(),
			UserID:      userID,
			Metric:      in.Metric,
			Value:       in.Value,
			BucketStart: in.BucketStart.UTC(),
			BucketEnd:   in.BucketEnd.UTC(),
		})
	}

	if err := s.healthRepo.CreateStageSamples(ctx, stages); err != nil {
		return nil, err
	}
	if err := s.healthRepo.CreateVitalSamples(ctx, vitals); err != nil {
		return nil, err
	}

	return &domain.IngestSamplesResponse{
		StagesStored: len(stages),
		VitalsStored: len(vitals),
	}, nil
}

func (s *sampleService) List(ctx context.Context, userID uuid.UUID, filter domain.StageSampleFilter) (*domain.StageSampleListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	samples, err := s.healthRepo.ListStageSamplesPage(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(samples) > limit
	if hasMore {
		samples = samples[:limit]
	}

	response := &domain.StageSampleListResponse{
		Data: make([]domain.StageSampleResponse, len(samples)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range samples {
		response.Data[i] = samples[i].ToResponse()
	}

	if hasMore && len(samples) > 0 {
		last := samples[len(samples)-1]
		cursor := &pagination.Cursor{
			ID:      last.ID,
			StartAt: last.StartAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
