package engine

import "github.com/mbeaufort/sleep-metrics/internal/domain"

// SelectBestSource picks the single provider whose samples describe a
// night best. A provider that recorded Deep or REM stages beats one
// that did not (it was actually tracking stages, not just presence);
// otherwise the larger sample set wins. Residual ties fall to the
// provider appearing first in the input, which is arbitrary but
// acceptable: tied groups carry equal information.
//
// An empty input returns nil; callers treat that as "no data", not an
// error.
func SelectBestSource(samples []domain.StageSample) []domain.StageSample {
	if len(samples) == 0 {
		return nil
	}

	groups := make(map[string][]domain.StageSample)
	var order []string
	for _, s := range samples {
		if _, seen := groups[s.ProviderID]; !seen {
			order = append(order, s.ProviderID)
		}
		groups[s.ProviderID] = append(groups[s.ProviderID], s)
	}

	var best []domain.StageSample
	bestHasStages := false
	for _, provider := range order {
		group := groups[provider]
		hasStages := groupHasDeepOrREM(group)

		if best == nil {
			best, bestHasStages = group, hasStages
			continue
		}
		if hasStages != bestHasStages {
			if hasStages {
				best, bestHasStages = group, true
			}
			continue
		}
		if len(group) > len(best) {
			best = group
		}
	}

	return best
}

func groupHasDeepOrREM(group []domain.StageSample) bool {
	for _, s := range group {
		stage, ok := domain.StageFromValue(s.StageValue)
		if ok && (stage == domain.StageDeep || stage == domain.StageREM) {
			return true
		}
	}
	return false
}
