package dashboard

import "time"

// Display layouts, matching the en-US short date and date-time forms.
const (
	DateLayout     = "1/2/2006"
	DateTimeLayout = "1/2/2006, 3:04:05 PM"
)

// Layouts accepted for call timestamps. Zone-less values are local time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp as served by the backend.
func ParseTimestamp(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Local(), true
	}
	for _, layout := range timestampLayouts[1:] {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO date as a short display date. Values that do
// not parse are shown unchanged.
func FormatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		if ts, ok := ParseTimestamp(s); ok {
			return ts.Format(DateLayout)
		}
		return s
	}
	return t.Format(DateLayout)
}

// FormatTimestamp renders a call timestamp as a display date-time.
func FormatTimestamp(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format(DateTimeLayout)
}
