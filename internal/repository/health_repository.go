package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/pkg/pagination"
	"gorm.io/gorm"
)

// HealthDataRepository is the persisted face of the platform health
// store: raw stage interval samples and pre-bucketed vital statistics,
// written by the ingest endpoint and read back by the derivation
// services. Range queries are half-open [from, to).
type HealthDataRepository interface {
	CreateStageSamples(ctx context.Context, samples []domain.StageSample) error
	CreateVitalSamples(ctx context.Context, samples []domain.VitalSample) error

	// ListStageSamples returns every provider's raw samples whose
	// interval intersects [from, to), ordered by start time.
	ListStageSamples(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageSample, error)

	// ListStageSamplesPage is the cursor-paginated listing for the UI.
	ListStageSamplesPage(ctx context.Context, userID uuid.UUID, filter domain.StageSampleFilter) ([]domain.StageSample, error)

	// ListVitalValues returns the bucket values for one metric whose
	// bucket start falls in [from, to).
	ListVitalValues(ctx context.Context, userID uuid.UUID, metric domain.VitalMetric, from, to time.Time) ([]float64, error)

	// ListVitalSamples returns the full buckets for one metric in
	// [from, to), ordered by bucket start.
	ListVitalSamples(ctx context.Context, userID uuid.UUID, metric domain.VitalMetric, from, to time.Time) ([]domain.VitalSample, error)
}

type healthDataRepository struct {
	db *gorm.DB
}

func NewHealthDataRepository(db *gorm.DB) HealthDataRepository {
	return &healthDataRepository{db: db}
}

func (r *healthDataRepository) CreateStageSamples(ctx context.Context, samples []domain.StageSample) error {
	if len(samples) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(samples, 500).Error
}

func (r *healthDataRepository) CreateVitalSamples(ctx context.Context, samples []domain.VitalSample) error {
	if len(samples) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(samples, 500).Error
}

func (r *healthDataRepository) ListStageSamples(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageSample, error) {
	var samples []domain.StageSample
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_at < ?", to).
		Where("end_at > ?", from).
		Order("start_at ASC").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func (r *healthDataRepository) ListStageSamplesPage(ctx context.Context, userID uuid.UUID, filter domain.StageSampleFilter) ([]domain.StageSample, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at DESC")

	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(start_at < ?) OR (start_at = ? AND id < ?)",
				cursor.StartAt, cursor.StartAt, cursor.ID,
			)
		}
	}

	// One extra row tells the service whether more pages exist.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var samples []domain.StageSample
	if err := query.Find(&samples).Error; err != nil {
		return nil, err
	}
	return samples, nil
}

func (r *healthDataRepository) ListVitalValues(ctx context.Context, userID uuid.UUID, metric domain.VitalMetric, from, to time.Time) ([]float64, error) {
	var values []float64
	err := r.db.WithContext(ctx).
		Model(&domain.VitalSample{}).
		Where("user_id = ? AND metric = ?", userID, metric).
		Where("bucket_start >= ? AND bucket_start < ?", from, to).
		Order("bucket_start ASC").
		Pluck("value", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *healthDataRepository) ListVitalSamples(ctx context.Context, userID uuid.UUID, metric domain.VitalMetric, from, to time.Time) ([]domain.VitalSample, error) {
	var samples []domain.VitalSample
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND metric = ?", userID, metric).
		Where("bucket_start >= ? AND bucket_start < ?", from, to).
		Order("bucket_start ASC").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}
