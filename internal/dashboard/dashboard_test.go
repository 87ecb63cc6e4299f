package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/jwulff/callboard/internal/api"
)

// fakeSource records which feeds were read and fails the ones named in errs.
type fakeSource struct {
	calls  []api.Call
	stats  api.DashboardStats
	volume []api.CallVolumePoint
	errs   map[string]error
	reads  []string
}

func (f *fakeSource) LiveCalls(context.Context) ([]api.Call, error) {
	f.reads = append(f.reads, "live-calls")
	if err := f.errs["live-calls"]; err != nil {
		return nil, err
	}
	return f.calls, nil
}

func (f *fakeSource) Stats(context.Context) (api.DashboardStats, error) {
	f.reads = append(f.reads, "stats")
	if err := f.errs["stats"]; err != nil {
		return api.DashboardStats{}, err
	}
	return f.stats, nil
}

func (f *fakeSource) CallVolume(context.Context) ([]api.CallVolumePoint, error) {
	f.reads = append(f.reads, "call-volume")
	if err := f.errs["call-volume"]; err != nil {
		return nil, err
	}
	return f.volume, nil
}

func breakdown(pairs ...any) *api.SentimentBreakdown {
	b := api.NewSentimentBreakdown()
	for i := 0; i+1 < len(pairs); i += 2 {
		b.Set(pairs[i].(string), pairs[i+1].(int))
	}
	return b
}

func TestFetchReadsFeedsInOrder(t *testing.T) {
	src := &fakeSource{
		calls:  []api.Call{{ID: "1"}},
		stats:  api.DashboardStats{SLAPercentage: api.Float64Ptr(99.8)},
		volume: []api.CallVolumePoint{{Date: "2024-01-01", Count: 7}},
	}

	snap, err := Fetch(context.Background(), src)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	want := []string{"live-calls", "stats", "call-volume"}
	if len(src.reads) != len(want) {
		t.Fatalf("reads = %v, want %v", src.reads, want)
	}
	for i := range want {
		if src.reads[i] != want[i] {
			t.Errorf("reads[%d] = %q, want %q", i, src.reads[i], want[i])
		}
	}
	if len(snap.Calls) != 1 || snap.Calls[0].ID != "1" {
		t.Errorf("calls = %+v", snap.Calls)
	}
	if len(snap.Volume) != 1 || snap.Volume[0].Calls != 7 {
		t.Errorf("volume = %+v", snap.Volume)
	}
	if snap.FetchedAt.IsZero() {
		t.Error("FetchedAt should be set")
	}
	if snap.Parts != AllParts {
		t.Errorf("parts = %b, want all", snap.Parts)
	}
}

func TestFetchFirstFailureAbortsCycle(t *testing.T) {
	src := &fakeSource{errs: map[string]error{"live-calls": errors.New("connection refused")}}

	_, err := Fetch(context.Background(), src)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(src.reads) != 1 {
		t.Errorf("reads = %v, want only live-calls", src.reads)
	}
}

func TestFetchKeepsFeedsReadBeforeFailure(t *testing.T) {
	cases := []struct {
		name      string
		failing   string
		wantParts Part
		wantReads int
	}{
		{"live calls", "live-calls", 0, 1},
		{"stats", "stats", PartCalls, 2},
		{"call volume", "call-volume", PartCalls | PartStats, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{
				calls:  []api.Call{{ID: "1"}, {ID: "2"}},
				stats:  api.DashboardStats{SLAPercentage: api.Float64Ptr(99.8)},
				volume: []api.CallVolumePoint{{Date: "2024-01-01", Count: 7}},
				errs:   map[string]error{tc.failing: errors.New("bad json")},
			}

			snap, err := Fetch(context.Background(), src)
			if err == nil {
				t.Fatal("expected error")
			}
			if len(src.reads) != tc.wantReads {
				t.Errorf("reads = %v, want %d reads", src.reads, tc.wantReads)
			}
			if snap.Parts != tc.wantParts {
				t.Errorf("parts = %b, want %b", snap.Parts, tc.wantParts)
			}
			if snap.Has(PartCalls) && len(snap.Calls) != 2 {
				t.Errorf("calls = %+v, want the 2 fetched calls", snap.Calls)
			}
			if snap.Has(PartVolume) {
				t.Error("volume should be missing after a failed cycle")
			}
		})
	}
}

func TestChartPoints(t *testing.T) {
	points := ChartPoints([]api.CallVolumePoint{{Date: "2024-01-01", Count: 7}})
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].Calls != 7 {
		t.Errorf("calls = %d, want 7", points[0].Calls)
	}
	if points[0].Name != "1/1/2024" {
		t.Errorf("name = %q, want %q", points[0].Name, "1/1/2024")
	}
}

func TestChartPointsEmpty(t *testing.T) {
	if got := ChartPoints(nil); len(got) != 0 {
		t.Errorf("got %d points, want 0", len(got))
	}
}

func TestOverallSentiment(t *testing.T) {
	cases := []struct {
		name string
		b    *api.SentimentBreakdown
		want string
	}{
		{"neutral wins", breakdown("Positive", 3, "Neutral", 5, "Negative", 1), "Neutral"},
		{"empty", breakdown(), "Neutral"},
		{"nil", nil, "Neutral"},
		{"negative wins", breakdown("Positive", 1, "Neutral", 2, "Negative", 9), "Negative"},
		{"tie keeps first", breakdown("Positive", 4, "Negative", 4), "Positive"},
		{"all zero", breakdown("Positive", 0, "Neutral", 0, "Negative", 0), "Neutral"},
		{"tie with neutral", breakdown("Positive", 5, "Neutral", 5), "Neutral"},
		{"neutral listed last", breakdown("Positive", 5, "Negative", 2, "Neutral", 5), "Neutral"},
		{"positive beats neutral", breakdown("Neutral", 2, "Positive", 3), "Positive"},
		{"initial stats", InitialStats().SentimentBreakdown, "Neutral"},
		{"unknown label", breakdown("Frustrated", 2), "Frustrated"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverallSentiment(tc.b); got != tc.want {
				t.Errorf("OverallSentiment = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatStatValues(t *testing.T) {
	if got := FormatPercent(nil); got != "N/A" {
		t.Errorf("FormatPercent(nil) = %q", got)
	}
	if got := FormatPercent(api.Float64Ptr(99.8)); got != "99.8%" {
		t.Errorf("FormatPercent(99.8) = %q", got)
	}
	if got := FormatLatency(nil); got != "N/A" {
		t.Errorf("FormatLatency(nil) = %q", got)
	}
	if got := FormatLatency(api.Float64Ptr(645)); got != "645ms" {
		t.Errorf("FormatLatency(645) = %q", got)
	}
}

func TestInitialStats(t *testing.T) {
	s := InitialStats()
	if s.SLAPercentage != nil || s.AvgLatencyMS != nil {
		t.Error("initial stats should have no numbers")
	}
	if s.SentimentBreakdown.Len() != 3 {
		t.Errorf("breakdown len = %d, want 3", s.SentimentBreakdown.Len())
	}
}
