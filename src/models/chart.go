package models

// -----------------------------------------------------------------------------
// Declarative chart specification in Chart.js v4 form, rendered by QuickChart
// -----------------------------------------------------------------------------

type MChartPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

type MChartDataset struct {
	Label           string        `json:"label"`
	Data            []MChartPoint `json:"data"`
	BorderColor     string        `json:"borderColor"`
	BackgroundColor string        `json:"backgroundColor"`
	Fill            bool          `json:"fill"`
	PointRadius     int           `json:"pointRadius"`
	BorderWidth     int           `json:"borderWidth"`
	Tension         float64       `json:"tension"`
}

type MChartData struct {
	Datasets []MChartDataset `json:"datasets"`
}

type MChartTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type MChartLegend struct {
	Display bool `json:"display"`
}

type MChartTime struct {
	Unit MTimeUnit `json:"unit"`
}

type MChartAxis struct {
	Type  string       `json:"type,omitempty"`
	Time  *MChartTime  `json:"time,omitempty"`
	Title *MChartTitle `json:"title,omitempty"`
	Min   *float64     `json:"min,omitempty"`
	Max   *float64     `json:"max,omitempty"`
}

type MChartScales struct {
	X MChartAxis `json:"x"`
	Y MChartAxis `json:"y"`
}

// MChartPlugins holds the title and legend, which v3+ read from options.plugins.
type MChartPlugins struct {
	Title  MChartTitle  `json:"title"`
	Legend MChartLegend `json:"legend"`
}

type MChartOptions struct {
	Plugins MChartPlugins `json:"plugins"`
	Scales  MChartScales  `json:"scales"`
}

type MChartSpec struct {
	Type    string        `json:"type"`
	Data    MChartData    `json:"data"`
	Options MChartOptions `json:"options"`
}

// MRenderOptions controls the image produced by the renderer.
type MRenderOptions struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	DevicePixelRatio float64 `json:"devicePixelRatio"`
	BackgroundColor  string  `json:"backgroundColor"`
	Format           string  `json:"format"`
}
