package interfaces

import (
	"context"

	"market-charts/src/models"
)

//go:generate mockgen -destination=mocks/mock_chart_renderer.go -package=mocks market-charts/src/interfaces IChartRenderer

// IChartRenderer turns a declarative chart spec into image bytes.
type IChartRenderer interface {
	Render(ctx context.Context, spec models.MChartSpec, opts models.MRenderOptions) ([]byte, error)
}
