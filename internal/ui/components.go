// Package ui renders the dashboard building blocks: stat cards, the
// call-volume chart and call table rows.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/callboard/internal/api"
	"github.com/jwulff/callboard/internal/dashboard"
)

// NotAvailable is shown for classification fields of unclassified calls.
const NotAvailable = "N/A"

// StatCard renders a titled value with a coloured left border.
func StatCard(title, value string, accent lipgloss.Color, width int) string {
	body := CardTitleStyle.Render(title) + "\n" + CardValueStyle.Render(value)
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent).
		Padding(0, 1).
		Width(max(8, width-1)).
		Render(body)
}

// BarChart renders one horizontal bar per point, scaled to the largest
// count, inside width columns.
func BarChart(points []dashboard.ChartPoint, width int, empty string) string {
	if len(points) == 0 {
		return DimStyle.Render("  " + empty)
	}

	labelW, countW, maxCalls := 0, 0, 0
	for _, p := range points {
		labelW = max(labelW, lipgloss.Width(p.Name))
		countW = max(countW, len(fmt.Sprint(p.Calls)))
		maxCalls = max(maxCalls, p.Calls)
	}
	barW := max(1, width-labelW-countW-6)

	var lines []string
	for _, p := range points {
		n := 0
		if maxCalls > 0 {
			n = p.Calls * barW / maxCalls
		}
		if p.Calls > 0 && n == 0 {
			n = 1
		}
		bar := BarStyle.Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("  %s │%s %d", padRight(p.Name, labelW), bar, p.Calls))
	}
	return strings.Join(lines, "\n")
}

// CallCells returns the plain text of each table cell for a call, in column
// order: caller, transcript, intent, urgency, sentiment, action, timestamp.
func CallCells(call api.Call) []string {
	intent, urgency := NotAvailable, NotAvailable
	if call.Classification != nil {
		intent = call.Classification.IssueType
		urgency = string(call.Classification.Urgency)
	}
	return []string{
		call.CallerID,
		call.Transcript,
		intent,
		urgency,
		call.Sentiment,
		call.ActionTaken,
		dashboard.FormatTimestamp(call.Timestamp),
	}
}

// Column indexes into CallCells.
const (
	ColCaller = iota
	ColTranscript
	ColIntent
	ColUrgency
	ColSentiment
	ColAction
	ColTimestamp
	numColumns
)

// fixed widths for every column except the transcript, which takes the rest.
var fixedWidths = [numColumns]int{
	ColCaller:    14,
	ColIntent:    16,
	ColUrgency:   13,
	ColSentiment: 10,
	ColAction:    18,
	ColTimestamp: 22,
}

// ColumnWidths splits total columns across the table.
func ColumnWidths(total int) []int {
	widths := make([]int, numColumns)
	used := 0
	for i, w := range fixedWidths {
		widths[i] = w
		used += w
	}
	// one space between columns
	used += numColumns - 1
	widths[ColTranscript] = max(10, total-used)
	return widths
}

// TableHeader renders the column titles.
func TableHeader(titles []string, widths []int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		title := ""
		if i < len(titles) {
			title = titles[i]
		}
		cells[i] = padRight(TableHeaderStyle.Render(truncate(title, w)), w)
	}
	return strings.Join(cells, " ")
}

// CallRow renders one call as a table row. The urgency cell is coloured by
// urgency and the intent cell gets a badge colour.
func CallRow(call api.Call, widths []int) string {
	texts := CallCells(call)
	cells := make([]string, len(widths))
	for i, w := range widths {
		text := truncate(texts[i], w)
		switch i {
		case ColIntent:
			text = IntentStyle.Render(text)
		case ColUrgency:
			accent := AccentColor(dashboard.UrgencyColor(call.Classification))
			text = lipgloss.NewStyle().Foreground(accent).Render(text)
		case ColTimestamp:
			text = TimestampStyle.Render(text)
		}
		cells[i] = padRight(text, w)
	}
	return strings.Join(cells, " ")
}

// Helpers

func padRight(s string, width int) string {
	// Get visible length (ignoring ANSI codes)
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// truncate shortens plain text to width cells, marking the cut with an
// ellipsis. Newlines are flattened so a row stays on one line.
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
