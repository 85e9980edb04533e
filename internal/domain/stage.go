package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a coarse sleep-stage category assigned to a time interval.
// @Description Sleep stage category: IN_BED, AWAKE, CORE, DEEP or REM.
type Stage string

const (
	StageInBed Stage = "IN_BED"
	StageAwake Stage = "AWAKE"
	StageCore  Stage = "CORE"
	StageDeep  Stage = "DEEP"
	StageREM   Stage = "REM"
)

// Raw platform stage codes, following the HealthKit categorical values.
const (
	rawStageInBed = 0
	rawStageAwake = 2
	rawStageCore  = 3
	rawStageDeep  = 4
	rawStageREM   = 5
)

// StageFromValue maps a raw platform stage code to a Stage. Unrecognized
// codes report ok=false and are dropped before merging.
func StageFromValue(value int) (Stage, bool) {
	switch value {
	case rawStageInBed:
		return StageInBed, true
	case rawStageAwake:
		return StageAwake, true
	case rawStageCore:
		return StageCore, true
	case rawStageDeep:
		return StageDeep, true
	case rawStageREM:
		return StageREM, true
	default:
		return "", false
	}
}

// IsSleep reports whether time in this stage counts as sleep.
// Awake and in-bed time do not.
func (s Stage) IsSleep() bool {
	return s == StageCore || s == StageDeep || s == StageREM
}

// StageInterval is one merged, non-overlapping span of a single stage.
type StageInterval struct {
	Stage Stage     `json:"stage"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i StageInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// StageSample is a raw interval sample as delivered by a data provider.
// Samples from the same or different providers may overlap; merging
// happens at query time, never at ingest.
type StageSample struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_stage_samples_user_start" json:"user_id"`
	ProviderID string    `gorm:"type:varchar(128);not null" json:"provider_id"`
	StageValue int       `gorm:"type:smallint;not null" json:"stage_value"`
	StartAt    time.Time `gorm:"not null;index:idx_stage_samples_user_start,sort:desc" json:"start_at"`
	EndAt      time.Time `gorm:"not null" json:"end_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StageSample) TableName() string {
	return "stage_samples"
}

// VitalMetric names a scalar statistic stream.
type VitalMetric string

const (
	MetricHRV       VitalMetric = "hrv"
	MetricHeartRate VitalMetric = "heart_rate"
	MetricSteps     VitalMetric = "steps"
)

// VitalSample is one pre-bucketed statistic observation: a 5-minute
// average heart rate, an HRV reading, or a daily step count bucket.
type VitalSample struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index:idx_vital_samples_user_metric_start" json:"user_id"`
	Metric      VitalMetric `gorm:"type:varchar(32);not null;index:idx_vital_samples_user_metric_start" json:"metric"`
	Value       float64     `gorm:"not null" json:"value"`
	BucketStart time.Time   `gorm:"not null;index:idx_vital_samples_user_metric_start" json:"bucket_start"`
	BucketEnd   time.Time   `gorm:"not null" json:"bucket_end"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VitalSample) TableName() string {
	return "vital_samples"
}
