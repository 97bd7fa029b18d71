package analysis

import (
	"strings"
	"time"

	"market-charts/src/models"
)

const day = 24 * time.Hour

// rangeDurations is the fixed lookback table. 6M is 182 days.
var rangeDurations = map[models.MRangeToken]time.Duration{
	models.Range1M: 30 * day,
	models.Range3M: 90 * day,
	models.Range6M: 182 * day,
	models.Range1Y: 365 * day,
	models.Range5Y: 5 * 365 * day,
}

// -----------------------------------------------------------------------------

// ParseRangeToken normalizes a user supplied token. Empty or unknown tokens map to 1Y.
func ParseRangeToken(s string) models.MRangeToken {
	token := models.MRangeToken(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := rangeDurations[token]; !ok {
		return models.Range1Y
	}
	return token
}

// -----------------------------------------------------------------------------

// DurationFor returns the lookback for a token, falling back to 1Y.
func DurationFor(token models.MRangeToken) time.Duration {
	if d, ok := rangeDurations[token]; ok {
		return d
	}
	return rangeDurations[models.Range1Y]
}

// -----------------------------------------------------------------------------

// TimeUnitFor is the x-axis unit for a token.
func TimeUnitFor(token models.MRangeToken) models.MTimeUnit {
	switch ParseRangeToken(string(token)) {
	case models.Range1M:
		return models.TimeUnitDay
	case models.Range5Y:
		return models.TimeUnitYear
	default:
		return models.TimeUnitMonth
	}
}

// -----------------------------------------------------------------------------

// RangeResolver maps tokens to concrete intervals ending now.
type RangeResolver struct {
	HourlyShortRange bool
	Now              func() time.Time
}

func NewRangeResolver(hourlyShortRange bool) *RangeResolver {
	return &RangeResolver{HourlyShortRange: hourlyShortRange, Now: time.Now}
}

// -----------------------------------------------------------------------------

func (r *RangeResolver) Resolve(token models.MRangeToken) models.MResolvedRange {
	token = ParseRangeToken(string(token))

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	end := now().UTC()

	granularity := models.GranularityDaily
	switch {
	case token == models.Range5Y:
		granularity = models.GranularityWeekly
	case token == models.Range1M && r.HourlyShortRange:
		granularity = models.GranularityHourly
	}

	return models.MResolvedRange{
		Token:       token,
		Start:       end.Add(-DurationFor(token)),
		End:         end,
		Granularity: granularity,
	}
}
