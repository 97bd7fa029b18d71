package models

import "time"

// MRangeToken is a symbolic lookback window such as "1Y".
type MRangeToken string

const (
	Range1M MRangeToken = "1M"
	Range3M MRangeToken = "3M"
	Range6M MRangeToken = "6M"
	Range1Y MRangeToken = "1Y"
	Range5Y MRangeToken = "5Y"
)

// MGranularity is the sampling interval requested from the upstream provider.
type MGranularity string

const (
	GranularityHourly MGranularity = "hourly"
	GranularityDaily  MGranularity = "daily"
	GranularityWeekly MGranularity = "weekly"
)

// MTimeUnit is the x-axis unit hint handed to the renderer.
type MTimeUnit string

const (
	TimeUnitDay   MTimeUnit = "day"
	TimeUnitMonth MTimeUnit = "month"
	TimeUnitYear  MTimeUnit = "year"
)

// MResolvedRange is a concrete [Start, End] interval for a token.
type MResolvedRange struct {
	Token       MRangeToken  `json:"range"`
	Start       time.Time    `json:"start"`
	End         time.Time    `json:"end"`
	Granularity MGranularity `json:"granularity"`
}
