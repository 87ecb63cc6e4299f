package export

import (
	"path/filepath"
	"testing"

	"github.com/jwulff/callboard/internal/api"
	"github.com/jwulff/callboard/internal/dashboard"
	"github.com/jwulff/callboard/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func snapshot() dashboard.Snapshot {
	b := api.NewSentimentBreakdown()
	b.Set("Positive", 3)
	b.Set("Neutral", 5)
	return dashboard.Snapshot{
		Calls: []api.Call{
			{ID: "1", CallerID: "caller-1", Transcript: "Gas smell",
				Classification: &api.Classification{IssueType: "Gas leak", Urgency: api.UrgencyEmergency},
				Sentiment:      "Negative", ActionTaken: "Dispatched", Timestamp: "2024-01-01T10:00:00"},
			{ID: "2", CallerID: "caller-2", Transcript: "Hello", Sentiment: "Neutral"},
		},
		Stats: api.DashboardStats{
			SLAPercentage:      api.Float64Ptr(99.8),
			SentimentBreakdown: b,
		},
		Volume: []dashboard.ChartPoint{{Name: "1/1/2024", Calls: 7}},
	}
}

func TestWorkbook(t *testing.T) {
	f, err := Workbook(snapshot(), nil, i18n.English)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetCalls, SheetStats, SheetVolume}, f.GetSheetList())

	calls, err := f.GetRows(SheetCalls)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, "Caller ID", calls[0][0])
	assert.Equal(t, "caller-1", calls[1][0])
	assert.Equal(t, "Emergency", calls[1][3])
	assert.Equal(t, "1/1/2024, 10:00:00 AM", calls[1][6])
	assert.Equal(t, "N/A", calls[2][2])
	assert.Equal(t, "N/A", calls[2][3])

	stats, err := f.GetRows(SheetStats)
	require.NoError(t, err)
	assert.Equal(t, []string{"SLA Tracking", "99.8%"}, stats[0])
	assert.Equal(t, []string{"Avg Latency", "N/A"}, stats[1])
	assert.Equal(t, []string{"Overall Sentiment", "Neutral"}, stats[2])
	assert.Equal(t, []string{"Positive", "3"}, stats[3])

	volume, err := f.GetRows(SheetVolume)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Calls"}, volume[0])
	assert.Equal(t, []string{"1/1/2024", "7"}, volume[1])
}

func TestWorkbookArabicHeaders(t *testing.T) {
	f, err := Workbook(snapshot(), i18n.Builtin(), i18n.Arabic)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetCalls, "A1")
	require.NoError(t, err)
	assert.Equal(t, "رقم المتصل", v)

	volume, err := f.GetRows(SheetVolume)
	require.NoError(t, err)
	assert.Equal(t, []string{"التاريخ", "المكالمات"}, volume[0])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteFile(path, snapshot(), nil, i18n.English))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetVolume, "B2")
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}
