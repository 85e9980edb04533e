package engine

import "sort"

// Physiologically plausible resting heart-rate band. Observations
// outside it are sensor noise or activity spikes and are discarded.
const (
	minPlausibleHR = 30.0
	maxPlausibleHR = 120.0
)

// RestingHeartRate reduces a series of per-bucket average heart rates
// to a robust resting estimate: filter to the plausible band, then
// average the lowest decile (at least one observation). The lowest
// decile tracks true resting HR better than a plain mean when the
// window includes activity-inflated readings. ok is false when no
// valid observations remain.
func RestingHeartRate(observations []float64) (estimate float64, ok bool) {
	valid := make([]float64, 0, len(observations))
	for _, v := range observations {
		if v >= minPlausibleHR && v <= maxPlausibleHR {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return 0, false
	}

	sort.Float64s(valid)

	count := len(valid) / 10
	if count < 1 {
		count = 1
	}

	var sum float64
	for _, v := range valid[:count] {
		sum += v
	}
	return sum / float64(count), true
}

// AverageHRV is the arithmetic mean of the window's HRV samples.
// ok is false when the window is empty.
func AverageHRV(samples []float64) (average float64, ok bool) {
	if len(samples) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples)), true
}
