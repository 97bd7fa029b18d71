package utils

// -----------------------------------------------------------------------------

// Defaults shared by the pipeline and the configuration layer.
const (
	DefaultMIC           = "xnys"
	DefaultMaxSymbols    = 5
	DefaultSampleBudget  = 50
	DefaultPadFactor     = 0.1
	DefaultFetchTimeout  = 10 // seconds
	DefaultRetentionDays = 30
)

// ChartPalette is cycled per dataset in comparison mode.
var ChartPalette = []string{
	"#4F46E5",
	"#DC2626",
	"#059669",
	"#D97706",
	"#7C3AED",
	"#0891B2",
}

// SingleSeriesColor is used when one symbol is plotted in absolute price.
const SingleSeriesColor = "#2563EB"
