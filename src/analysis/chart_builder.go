package analysis

import (
	"fmt"
	"strings"
	"time"

	"market-charts/src/analysis/core"
	"market-charts/src/models"
	"market-charts/src/utils"
)

const DefaultPadFactor = 0.1

// ChartBuilder converts sampled series into a Chart.js line chart spec.
type ChartBuilder struct {
	PadFactor float64
	Palette   []string
}

func NewChartBuilder(padFactor float64) *ChartBuilder {
	if padFactor <= 0 {
		padFactor = DefaultPadFactor
	}
	return &ChartBuilder{PadFactor: padFactor, Palette: utils.ChartPalette}
}

// -----------------------------------------------------------------------------

// Build emits absolute prices for one series and percent change from each
// series' own first point when several are given.
func (b *ChartBuilder) Build(results []models.MSymbolResult, token models.MRangeToken) models.MChartSpec {
	token = ParseRangeToken(string(token))

	spec := models.MChartSpec{
		Type: "line",
		Data: models.MChartData{Datasets: []models.MChartDataset{}},
		Options: models.MChartOptions{
			Plugins: models.MChartPlugins{Title: models.MChartTitle{Display: true}},
			Scales: models.MChartScales{
				X: models.MChartAxis{
					Type: "time",
					Time: &models.MChartTime{Unit: TimeUnitFor(token)},
				},
			},
		},
	}

	switch len(results) {
	case 0:
		spec.Options.Plugins.Title.Text = fmt.Sprintf("No data available (%s)", token)
		spec.Options.Scales.Y = models.MChartAxis{Title: &models.MChartTitle{Display: true, Text: "$"}}
	case 1:
		b.buildSingle(&spec, results[0], token)
	default:
		b.buildComparison(&spec, results, token)
	}
	return spec
}

// -----------------------------------------------------------------------------

func (b *ChartBuilder) buildSingle(spec *models.MChartSpec, result models.MSymbolResult, token models.MRangeToken) {
	points := make([]models.MChartPoint, len(result.Series))
	prices := make([]float64, len(result.Series))
	for i, p := range result.Series {
		points[i] = models.MChartPoint{X: formatX(p.Date), Y: p.Price}
		prices[i] = p.Price
	}

	spec.Data.Datasets = append(spec.Data.Datasets, dataset(result.Symbol, points, utils.SingleSeriesColor))
	spec.Options.Plugins.Title.Text = fmt.Sprintf("%s Stock Price (%s)", result.Symbol, token)
	spec.Options.Plugins.Legend.Display = false

	y := models.MChartAxis{Title: &models.MChartTitle{Display: true, Text: "$"}}
	if lo, hi, ok := core.MinMax(prices); ok {
		padFactor := b.PadFactor
		if padFactor <= 0 {
			padFactor = DefaultPadFactor
		}
		yMin, yMax := core.PaddedRange(lo, hi, padFactor)
		y.Min, y.Max = &yMin, &yMax
	}
	spec.Options.Scales.Y = y
}

// -----------------------------------------------------------------------------

func (b *ChartBuilder) buildComparison(spec *models.MChartSpec, results []models.MSymbolResult, token models.MRangeToken) {
	palette := b.Palette
	if len(palette) == 0 {
		palette = utils.ChartPalette
	}

	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.Symbol

		points := make([]models.MChartPoint, len(r.Series))
		if len(r.Series) > 0 {
			base := r.Series[0].Price
			for j, p := range r.Series {
				points[j] = models.MChartPoint{X: formatX(p.Date), Y: core.PercentChange(p.Price, base)}
			}
		}
		spec.Data.Datasets = append(spec.Data.Datasets, dataset(r.Symbol, points, palette[i%len(palette)]))
	}

	spec.Options.Plugins.Title.Text = fmt.Sprintf("%s Performance (%s)", strings.Join(labels, " vs "), token)
	spec.Options.Plugins.Legend.Display = true
	spec.Options.Scales.Y = models.MChartAxis{Title: &models.MChartTitle{Display: true, Text: "%"}}
}

// -----------------------------------------------------------------------------

func dataset(label string, points []models.MChartPoint, color string) models.MChartDataset {
	return models.MChartDataset{
		Label:           label,
		Data:            points,
		BorderColor:     color,
		BackgroundColor: color + "33",
		Fill:            false,
		PointRadius:     0,
		BorderWidth:     2,
		Tension:         0.1,
	}
}

func formatX(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
