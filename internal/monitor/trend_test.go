package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fxmonitor/internal/domain"
)

func TestComputeTrend_EmptySeries(t *testing.T) {
	trend := ComputeTrend(nil)

	require.Zero(t, trend.Current)
	require.Zero(t, trend.Reference)
	require.Zero(t, trend.DeltaAbs)
	require.Zero(t, trend.DeltaPct)
}

func TestComputeTrend_TwoSamples(t *testing.T) {
	t0 := time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
	series := []domain.TimeSample{
		{At: t0, Price: 100.0},
		{At: t0.Add(time.Minute), Price: 105.0},
	}

	trend := ComputeTrend(series)

	require.InDelta(t, 105.0, trend.Current, 1e-9)
	require.InDelta(t, 100.0, trend.Reference, 1e-9)
	require.InDelta(t, 5.0, trend.DeltaAbs, 1e-9)
	require.InDelta(t, 5.0, trend.DeltaPct, 1e-9)
}

func TestComputeTrend_ZeroReferenceGuardsDivision(t *testing.T) {
	t0 := time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
	series := []domain.TimeSample{
		{At: t0, Price: 0.0},
		{At: t0.Add(time.Minute), Price: 3.0},
	}

	trend := ComputeTrend(series)

	require.InDelta(t, 3.0, trend.Current, 1e-9)
	require.Zero(t, trend.Reference)
	require.InDelta(t, 3.0, trend.DeltaAbs, 1e-9)
	require.Zero(t, trend.DeltaPct)
}

func TestComputeTrend_SingleSampleIsFlat(t *testing.T) {
	series := []domain.TimeSample{{At: time.Now().UTC(), Price: 7.12}}

	trend := ComputeTrend(series)

	require.InDelta(t, 7.12, trend.Current, 1e-9)
	require.InDelta(t, 7.12, trend.Reference, 1e-9)
	require.Zero(t, trend.DeltaAbs)
	require.Zero(t, trend.DeltaPct)
}

func TestComputeTrend_NegativeDelta(t *testing.T) {
	t0 := time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
	series := []domain.TimeSample{
		{At: t0, Price: 8.0},
		{At: t0.Add(time.Minute), Price: 7.8},
		{At: t0.Add(2 * time.Minute), Price: 7.6},
	}

	trend := ComputeTrend(series)

	require.InDelta(t, 7.6, trend.Current, 1e-9)
	require.InDelta(t, 8.0, trend.Reference, 1e-9)
	require.InDelta(t, -0.4, trend.DeltaAbs, 1e-9)
	require.InDelta(t, -5.0, trend.DeltaPct, 1e-9)
}
