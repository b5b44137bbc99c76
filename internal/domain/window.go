package domain

// WindowSpec is a fixed (range, sampling interval) preset controlling how
// much history the series upstream is asked for. Arbitrary ranges are not
// supported.
type WindowSpec string

const (
	Window1h  WindowSpec = "1h"
	Window24h WindowSpec = "24h"
	Window48h WindowSpec = "48h"
	Window7d  WindowSpec = "7d"
	Window1mo WindowSpec = "1mo"
)

type windowParams struct {
	chartRange    string
	chartInterval string
}

// The upstream range is wider than the preset on purpose: the chart API only
// accepts a handful of range values, so each preset picks the narrowest one
// that covers it at the wanted granularity.
var windows = map[WindowSpec]windowParams{
	Window1h:  {chartRange: "1d", chartInterval: "1m"},
	Window24h: {chartRange: "5d", chartInterval: "1m"},
	Window48h: {chartRange: "5d", chartInterval: "2m"},
	Window7d:  {chartRange: "1mo", chartInterval: "15m"},
	Window1mo: {chartRange: "3mo", chartInterval: "60m"},
}

func (w WindowSpec) Supported() bool {
	_, ok := windows[w]
	return ok
}

func (w WindowSpec) ChartRange() string {
	return windows[w].chartRange
}

func (w WindowSpec) ChartInterval() string {
	return windows[w].chartInterval
}

// SupportedWindows returns the presets in display order, shortest first.
func SupportedWindows() []WindowSpec {
	return []WindowSpec{Window1h, Window24h, Window48h, Window7d, Window1mo}
}
