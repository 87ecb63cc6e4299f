package dashboard

import "testing"

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2024-01-01":          "1/1/2024",
		"2024-12-25":          "12/25/2024",
		"2024-03-05T10:00:00": "3/5/2024",
		"not a date":          "not a date",
	}
	for in, want := range cases {
		if got := FormatDate(in); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := map[string]string{
		"2024-01-01T10:00:00":        "1/1/2024, 10:00:00 AM",
		"2024-01-01T15:04:05.123456": "1/1/2024, 3:04:05 PM",
		"2024-01-01 00:30:00":        "1/1/2024, 12:30:00 AM",
		"garbage":                    "garbage",
	}
	for in, want := range cases {
		if got := FormatTimestamp(in); got != want {
			t.Errorf("FormatTimestamp(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTimestampWithZone(t *testing.T) {
	ts, ok := ParseTimestamp("2024-01-01T10:00:00Z")
	if !ok {
		t.Fatal("expected RFC3339 timestamp to parse")
	}
	if ts.UTC().Hour() != 10 {
		t.Errorf("hour = %d, want 10 UTC", ts.UTC().Hour())
	}
}
