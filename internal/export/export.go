// Package export writes a dashboard snapshot to an Excel workbook.
package export

import (
	"fmt"

	"github.com/jwulff/callboard/internal/dashboard"
	"github.com/jwulff/callboard/internal/i18n"
	"github.com/jwulff/callboard/internal/ui"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	SheetCalls  = "Calls"
	SheetStats  = "Stats"
	SheetVolume = "Volume"
)

// Workbook builds a workbook with one sheet per dashboard section. The
// caller owns the returned file and must Close it.
func Workbook(snap dashboard.Snapshot, catalog *i18n.Catalog, lang i18n.Language) (*excelize.File, error) {
	if catalog == nil {
		catalog = i18n.Builtin()
	}
	label := func(k string) string { return catalog.Label(lang, k) }

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetCalls); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	calls := [][]any{{
		label("caller_id"), label("transcript"), label("intent"), label("urgency"),
		label("sentiment"), label("action"), label("timestamp"),
	}}
	for _, c := range snap.Calls {
		cells := ui.CallCells(c)
		row := make([]any, len(cells))
		for i, v := range cells {
			row[i] = v
		}
		calls = append(calls, row)
	}

	stats := [][]any{
		{label("sla"), dashboard.FormatPercent(snap.Stats.SLAPercentage)},
		{label("latency"), dashboard.FormatLatency(snap.Stats.AvgLatencyMS)},
		{label("sentiment_overall"), dashboard.OverallSentiment(snap.Stats.SentimentBreakdown)},
	}
	if b := snap.Stats.SentimentBreakdown; b != nil {
		for pair := b.Oldest(); pair != nil; pair = pair.Next() {
			stats = append(stats, []any{pair.Key, pair.Value})
		}
	}

	volume := [][]any{{label("date"), label("calls")}}
	for _, p := range snap.Volume {
		volume = append(volume, []any{p.Name, p.Calls})
	}

	for _, sheet := range []struct {
		name string
		rows [][]any
	}{
		{SheetCalls, calls},
		{SheetStats, stats},
		{SheetVolume, volume},
	} {
		if sheet.name != SheetCalls {
			if _, err := f.NewSheet(sheet.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("add sheet %s: %w", sheet.name, err)
			}
		}
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// WriteFile saves the workbook for snap at path.
func WriteFile(path string, snap dashboard.Snapshot, catalog *i18n.Catalog, lang i18n.Language) error {
	f, err := Workbook(snap, catalog, lang)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
