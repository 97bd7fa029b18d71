package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"
)

const DefaultBaseURL = "https://quickchart.io"

// ChartJSVersion selects the Chart.js release QuickChart renders with; it must
// match the option layout of models.MChartSpec.
const ChartJSVersion = "4"

// QuickChartRenderer posts chart specs to a QuickChart compatible service.
type QuickChartRenderer struct {
	BaseURL  string
	APIKey   string
	Defaults models.MRenderOptions
	Network  interfaces.INetworkManager
	Logger   *logger.Logger
}

type chartRequest struct {
	Version          string            `json:"version"`
	Chart            models.MChartSpec `json:"chart"`
	Width            int               `json:"width"`
	Height           int               `json:"height"`
	DevicePixelRatio float64           `json:"devicePixelRatio"`
	BackgroundColor  string            `json:"backgroundColor"`
	Format           string            `json:"format"`
	Key              string            `json:"key,omitempty"`
}

// -----------------------------------------------------------------------------

func NewQuickChartRenderer(cfg *models.MConfig, netMgr interfaces.INetworkManager) *QuickChartRenderer {
	baseURL := cfg.Chart.RendererURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &QuickChartRenderer{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		APIKey:   cfg.Chart.RendererAPIKey,
		Defaults: OptionsFromConfig(cfg.Chart),
		Network:  netMgr,
		Logger:   logger.NewLogger(cfg, "QuickChartRenderer"),
	}
}

// -----------------------------------------------------------------------------

// OptionsFromConfig fills render options, using 800x400 @2x white png for unset fields.
func OptionsFromConfig(c models.MChartConfig) models.MRenderOptions {
	return withDefaults(models.MRenderOptions{
		Width:            c.Width,
		Height:           c.Height,
		DevicePixelRatio: c.DevicePixelRatio,
		BackgroundColor:  c.BackgroundColor,
		Format:           c.Format,
	})
}

func withDefaults(o models.MRenderOptions) models.MRenderOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	if o.DevicePixelRatio <= 0 {
		o.DevicePixelRatio = 2
	}
	if o.BackgroundColor == "" {
		o.BackgroundColor = "white"
	}
	if o.Format == "" {
		o.Format = "png"
	}
	return o
}

// -----------------------------------------------------------------------------

// Render returns the image bytes. Any transport failure or non-2xx answer is a RendererError.
func (r *QuickChartRenderer) Render(ctx context.Context, spec models.MChartSpec, opts models.MRenderOptions) ([]byte, error) {
	opts = withDefaults(opts)

	body := chartRequest{
		Version:          ChartJSVersion,
		Chart:            spec,
		Width:            opts.Width,
		Height:           opts.Height,
		DevicePixelRatio: opts.DevicePixelRatio,
		BackgroundColor:  opts.BackgroundColor,
		Format:           opts.Format,
		Key:              r.APIKey,
	}

	resp, err := r.Network.PostJSON(ctx, r.BaseURL+"/chart", body, nil)
	if err != nil {
		return nil, helpers.NewRendererError(err)
	}
	if !resp.OK() {
		return nil, helpers.NewRendererError(fmt.Errorf("renderer returned status %d: %s", resp.Status, truncate(resp.Body, 200)))
	}
	if len(resp.Body) == 0 {
		return nil, helpers.NewRendererError(fmt.Errorf("renderer returned an empty image"))
	}
	return resp.Body, nil
}

// -----------------------------------------------------------------------------

// DataURI embeds an image in a JSON friendly data URI.
func DataURI(image []byte, format string) string {
	mime := "image/png"
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		mime = "image/jpeg"
	case "webp":
		mime = "image/webp"
	case "svg":
		mime = "image/svg+xml"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
