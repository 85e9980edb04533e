package engine

import (
	"testing"
	"time"
)

func TestNightWindowFor(t *testing.T) {
	prague, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	tests := []struct {
		name      string
		date      time.Time
		loc       *time.Location
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "UTC window ends at 14:00 on the keyed day",
			date:      time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "nil location falls back to UTC",
			date:      time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			loc:       nil,
			wantStart: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "local zone boundary",
			date:      time.Date(2024, 6, 10, 23, 0, 0, 0, prague),
			loc:       prague,
			wantStart: time.Date(2024, 6, 9, 14, 0, 0, 0, prague),
			wantEnd:   time.Date(2024, 6, 10, 14, 0, 0, 0, prague),
		},
		{
			name:      "month boundary",
			date:      time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2024, 2, 29, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NightWindowFor(tt.date, tt.loc)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", got.End, tt.wantEnd)
			}
			if got.Date.Hour() != 0 {
				t.Errorf("Date should be midnight, got %v", got.Date)
			}
		})
	}
}
