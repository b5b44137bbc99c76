package monitor

import "fxmonitor/internal/domain"

// ComputeTrend derives the window delta from a series: current is the last
// sample, reference the first. An empty series yields the neutral zero
// trend, and a zero reference yields a zero percentage, so no-data windows
// render as flat instead of failing.
func ComputeTrend(series []domain.TimeSample) domain.Trend {
	if len(series) == 0 {
		return domain.Trend{}
	}

	current := series[len(series)-1].Price
	reference := series[0].Price
	deltaAbs := current - reference

	var deltaPct float64
	if reference != 0 {
		deltaPct = deltaAbs / reference * 100
	}

	return domain.Trend{
		Current:   current,
		Reference: reference,
		DeltaAbs:  deltaAbs,
		DeltaPct:  deltaPct,
	}
}
