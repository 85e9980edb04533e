package engine

import (
	"sort"

	"github.com/mbeaufort/sleep-metrics/internal/domain"
)

// MergeIntervals collapses one provider's raw samples into a minimal,
// time-ordered, non-overlapping stage timeline. Samples with
// unrecognized stage codes are dropped. Consecutive samples of the same
// stage that touch or overlap are coalesced into one interval whose end
// is the max of the two; a stage change always closes the open
// interval, even when the spans overlap.
//
// Merging an already-merged timeline reproduces it unchanged.
func MergeIntervals(samples []domain.StageSample) []domain.StageInterval {
	typed := make([]domain.StageInterval, 0, len(samples))
	for _, s := range samples {
		stage, ok := domain.StageFromValue(s.StageValue)
		if !ok {
			continue
		}
		if !s.EndAt.After(s.StartAt) {
			continue
		}
		typed = append(typed, domain.StageInterval{Stage: stage, Start: s.StartAt, End: s.EndAt})
	}
	if len(typed) == 0 {
		return nil
	}

	sort.Slice(typed, func(i, j int) bool {
		return typed[i].Start.Before(typed[j].Start)
	})

	merged := make([]domain.StageInterval, 0, len(typed))
	current := typed[0]
	for _, next := range typed[1:] {
		if next.Stage == current.Stage && !next.Start.After(current.End) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}
