package utils

import (
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

// micBySuffix maps exchange suffixes used in ticker symbols to ISO 10383 MIC codes
// understood by scmhub/calendar. Symbols without a known suffix trade on xnys.
var micBySuffix = map[string]string{
	".L":  "xlon",
	".PA": "xpar",
	".DE": "xfra",
	".AS": "xams",
	".BR": "xbru",
	".MI": "xmil",
	".MC": "xmad",
	".ST": "xsto",
	".CO": "xcse",
	".HE": "xhel",
	".VI": "xwbo",
	".SW": "xswx",
	".TO": "xtse",
	".V":  "xtsx",
	".T":  "xtks",
	".HK": "xhkg",
	".AX": "xasx",
	".KS": "xkrx",
	".TW": "xtai",
	".SS": "xshg",
	".SZ": "xshe",
}

// TradingCalendar counts trading sessions for a symbol's listing venue.
type TradingCalendar struct {
	MIC      string
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// MICForSymbol resolves the venue code from the symbol suffix.
func MICForSymbol(symbol string) string {
	symbol = strings.ToUpper(symbol)
	if i := strings.LastIndex(symbol, "."); i > 0 {
		if mic, ok := micBySuffix[symbol[i:]]; ok {
			return mic
		}
	}
	return DefaultMIC
}

// -----------------------------------------------------------------------------

func GetCalendar(symbol string) *TradingCalendar {
	mic := MICForSymbol(symbol)

	cal := calendar.GetCalendar(mic)
	if cal == nil && mic != DefaultMIC {
		mic = DefaultMIC
		cal = calendar.GetCalendar(mic)
	}

	if cal == nil {
		// Mon-Fri in New York time
		nyLoc, err := time.LoadLocation("America/New_York")
		if err != nil {
			nyLoc = time.UTC
		}
		return &TradingCalendar{MIC: mic, Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{MIC: mic, Calendar: cal, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// CountSessions returns the number of trading days in [start, end], walking by
// calendar date in the venue timezone.
func (tc *TradingCalendar) CountSessions(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	loc := tc.Timezone
	if loc == nil {
		loc = time.UTC
	}
	start = start.In(loc)
	end = end.In(loc)

	day := time.Date(start.Year(), start.Month(), start.Day(), 12, 0, 0, 0, loc)
	last := time.Date(end.Year(), end.Month(), end.Day(), 12, 0, 0, 0, loc)

	count := 0
	for !day.After(last) {
		if tc.IsTradingDay(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// -----------------------------------------------------------------------------

// SessionCounter satisfies interfaces.ISessionCounter by resolving the calendar per symbol.
type SessionCounter struct{}

func (SessionCounter) CountSessions(symbol string, start, end time.Time) (int, string) {
	tc := GetCalendar(symbol)
	return tc.CountSessions(start, end), tc.MIC
}
