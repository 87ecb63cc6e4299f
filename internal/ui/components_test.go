package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/callboard/internal/api"
	"github.com/jwulff/callboard/internal/dashboard"
)

func TestCallCellsWithoutClassification(t *testing.T) {
	call := api.Call{
		ID:          "1",
		CallerID:    "+966500000001",
		Transcript:  "Hello",
		Sentiment:   "Neutral",
		ActionTaken: "None",
		Timestamp:   "2024-01-01T10:00:00",
	}

	cells := CallCells(call)
	if cells[ColIntent] != NotAvailable {
		t.Errorf("intent = %q, want N/A", cells[ColIntent])
	}
	if cells[ColUrgency] != NotAvailable {
		t.Errorf("urgency = %q, want N/A", cells[ColUrgency])
	}
	if cells[ColTimestamp] != "1/1/2024, 10:00:00 AM" {
		t.Errorf("timestamp = %q", cells[ColTimestamp])
	}
	if cells[ColCaller] != "+966500000001" {
		t.Errorf("caller = %q", cells[ColCaller])
	}
}

func TestCallCellsWithClassification(t *testing.T) {
	call := api.Call{
		Classification: &api.Classification{IssueType: "Gas leak", Urgency: api.UrgencyEmergency},
	}
	cells := CallCells(call)
	if cells[ColIntent] != "Gas leak" {
		t.Errorf("intent = %q", cells[ColIntent])
	}
	if cells[ColUrgency] != "Emergency" {
		t.Errorf("urgency = %q", cells[ColUrgency])
	}
}

func TestCallRowFitsWidths(t *testing.T) {
	widths := ColumnWidths(140)
	call := api.Call{
		CallerID:   "+966500000001",
		Transcript: strings.Repeat("very long transcript ", 20),
		Classification: &api.Classification{
			IssueType: "Air conditioning maintenance request",
			Urgency:   api.UrgencyNonEmergency,
		},
		Sentiment:   "Negative",
		ActionTaken: "Scheduled technician visit",
		Timestamp:   "2024-01-01T10:00:00",
	}

	row := CallRow(call, widths)
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	if got := lipgloss.Width(row); got != total {
		t.Errorf("row width = %d, want %d", got, total)
	}
	if strings.Contains(row, "\n") {
		t.Error("row should be a single line")
	}
}

func TestColumnWidths(t *testing.T) {
	widths := ColumnWidths(200)
	sum := len(widths) - 1
	for _, w := range widths {
		sum += w
	}
	if sum != 200 {
		t.Errorf("sum = %d, want 200", sum)
	}
	if narrow := ColumnWidths(20); narrow[ColTranscript] != 10 {
		t.Errorf("narrow transcript width = %d, want 10", narrow[ColTranscript])
	}
}

func TestBarChart(t *testing.T) {
	points := []dashboard.ChartPoint{
		{Name: "1/1/2024", Calls: 10},
		{Name: "1/2/2024", Calls: 5},
		{Name: "1/3/2024", Calls: 0},
	}
	chart := BarChart(points, 40, "empty")
	lines := strings.Split(chart, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	full := strings.Count(lines[0], "█")
	half := strings.Count(lines[1], "█")
	if full == 0 || half == 0 || half >= full {
		t.Errorf("bars = %d and %d, want the second shorter than the first", full, half)
	}
	if strings.Count(lines[2], "█") != 0 {
		t.Error("zero count should have no bar")
	}
	if !strings.HasSuffix(lines[0], " 10") {
		t.Errorf("line 0 = %q, want count suffix", lines[0])
	}
}

func TestBarChartEmpty(t *testing.T) {
	if got := BarChart(nil, 40, "nothing yet"); !strings.Contains(got, "nothing yet") {
		t.Errorf("chart = %q, want empty message", got)
	}
}

func TestStatCard(t *testing.T) {
	card := StatCard("SLA Tracking", "99.8%", ColorSLA, 30)
	if !strings.Contains(card, "SLA Tracking") || !strings.Contains(card, "99.8%") {
		t.Errorf("card = %q", card)
	}
	if lines := strings.Split(card, "\n"); len(lines) != 2 {
		t.Errorf("card has %d lines, want 2", len(lines))
	}
}

func TestAccentColor(t *testing.T) {
	if AccentColor(dashboard.ColorRed) != ColorRed {
		t.Error("red accent")
	}
	if AccentColor(dashboard.ColorOrange) != ColorOrange {
		t.Error("orange accent")
	}
	if AccentColor(dashboard.ColorGreen) != ColorGreen {
		t.Error("green accent")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	got := truncate("a much longer string", 8)
	if lipgloss.Width(got) != 8 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncate long = %q (width %d)", got, lipgloss.Width(got))
	}
	if got := truncate("line one\nline two", 40); got != "line one line two" {
		t.Errorf("truncate newline = %q", got)
	}
}
