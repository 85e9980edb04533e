package domain

import (
	"time"

	"github.com/google/uuid"
)

// StageSampleInput is one raw stage sample in an ingest batch.
// @Description Raw sleep-stage interval sample from a provider.
type StageSampleInput struct {
	// Source provider identifier (e.g. "com.apple.health.AB12")
	ProviderID string `json:"provider_id" validate:"required,max=128" example:"watch-7FA2"`
	// Platform stage code (0=in bed, 2=awake, 3=core, 4=deep, 5=REM)
	StageValue int `json:"stage_value" validate:"min=0,max=10" example:"3"`
	// Interval start, RFC3339
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Interval end, must be after start_at
	EndAt time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-01-15T23:30:00Z"`
}

// VitalSampleInput is one statistic bucket in an ingest batch.
// @Description Pre-bucketed statistic observation (HRV, heart rate, steps).
type VitalSampleInput struct {
	// Metric name
	Metric VitalMetric `json:"metric" validate:"required,oneof=hrv heart_rate steps" example:"heart_rate"`
	// Bucket value (bpm, ms, or step count)
	Value float64 `json:"value" validate:"min=0" example:"57.5"`
	// Bucket start, RFC3339
	BucketStart time.Time `json:"bucket_start" validate:"required" example:"2024-01-16T02:00:00Z"`
	// Bucket end, must be after bucket_start
	BucketEnd time.Time `json:"bucket_end" validate:"required,gtfield=BucketStart" example:"2024-01-16T02:05:00Z"`
}

// IngestSamplesRequest is the request body for the sample ingest endpoint.
// @Description Batch of raw samples pushed by the platform exporter.
type IngestSamplesRequest struct {
	Stages []StageSampleInput `json:"stages" validate:"omitempty,max=5000,dive"`
	Vitals []VitalSampleInput `json:"vitals" validate:"omitempty,max=5000,dive"`
}

// IngestSamplesResponse reports how many rows were stored.
type IngestSamplesResponse struct {
	StagesStored int `json:"stages_stored" example:"42"`
	VitalsStored int `json:"vitals_stored" example:"96"`
}

// StageSampleResponse is one raw sample in a listing.
type StageSampleResponse struct {
	ID         uuid.UUID `json:"id"`
	ProviderID string    `json:"provider_id"`
	StageValue int       `json:"stage_value"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *StageSample) ToResponse() StageSampleResponse {
	return StageSampleResponse{
		ID:         s.ID,
		ProviderID: s.ProviderID,
		StageValue: s.StageValue,
		StartAt:    s.StartAt,
		EndAt:      s.EndAt,
		CreatedAt:  s.CreatedAt,
	}
}

// StageSampleListResponse is the response body for listing raw samples.
// @Description Cursor-paginated list of raw stage samples.
type StageSampleListResponse struct {
	Data       []StageSampleResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	// Cursor for the next page, empty when exhausted
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more" example:"true"`
}

// StageSampleFilter contains filter parameters for listing raw samples.
type StageSampleFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
