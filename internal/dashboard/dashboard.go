// Package dashboard holds the view logic behind the supervisor screen: the
// poll cycle over a data source and the pure projections rendered from its
// snapshot.
package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jwulff/callboard/internal/api"
)

// Source serves the three dashboard feeds. Both the HTTP client and the
// database store implement it.
type Source interface {
	LiveCalls(ctx context.Context) ([]api.Call, error)
	Stats(ctx context.Context) (api.DashboardStats, error)
	CallVolume(ctx context.Context) ([]api.CallVolumePoint, error)
}

// ChartPoint is one bar of the call-volume chart.
type ChartPoint struct {
	Name  string
	Calls int
}

// Part names one of the three feeds held by a Snapshot.
type Part uint8

const (
	PartCalls Part = 1 << iota
	PartStats
	PartVolume

	AllParts = PartCalls | PartStats | PartVolume
)

// Snapshot is the result of one poll cycle. Parts records which feeds were
// read; a cycle that failed part way holds only the feeds read before the
// failure.
type Snapshot struct {
	Calls     []api.Call
	Stats     api.DashboardStats
	Volume    []ChartPoint
	Parts     Part
	FetchedAt time.Time
}

// Has reports whether the feed p was read in this cycle.
func (s Snapshot) Has(p Part) bool {
	return s.Parts&p != 0
}

// Fetch runs one poll cycle. The feeds are read one after another and the
// first failure ends the cycle. On failure the returned snapshot still holds
// the feeds read before it, so callers can keep them.
func Fetch(ctx context.Context, src Source) (Snapshot, error) {
	var snap Snapshot

	calls, err := src.LiveCalls(ctx)
	if err != nil {
		return snap, fmt.Errorf("live calls: %w", err)
	}
	snap.Calls = calls
	snap.Parts |= PartCalls
	snap.FetchedAt = time.Now()

	stats, err := src.Stats(ctx)
	if err != nil {
		return snap, fmt.Errorf("stats: %w", err)
	}
	snap.Stats = stats
	snap.Parts |= PartStats

	volume, err := src.CallVolume(ctx)
	if err != nil {
		return snap, fmt.Errorf("call volume: %w", err)
	}
	snap.Volume = ChartPoints(volume)
	snap.Parts |= PartVolume
	snap.FetchedAt = time.Now()

	return snap, nil
}

// InitialStats is what the stat cards show before the first poll lands.
func InitialStats() api.DashboardStats {
	b := api.NewSentimentBreakdown()
	b.Set("Positive", 0)
	b.Set("Neutral", 0)
	b.Set("Negative", 0)
	return api.DashboardStats{SentimentBreakdown: b}
}

// ChartPoints maps the wire series onto chart bars with display dates.
func ChartPoints(points []api.CallVolumePoint) []ChartPoint {
	out := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, ChartPoint{Name: FormatDate(p.Date), Calls: p.Count})
	}
	return out
}

// OverallSentiment returns the label with the highest count. Neutral is
// the starting answer and only a strictly higher count replaces it, so ties
// with Neutral and an all-zero breakdown read as Neutral. Without a Neutral
// entry, ties keep the label seen first.
func OverallSentiment(b *api.SentimentBreakdown) string {
	best := "Neutral"
	if b == nil {
		return best
	}
	bestCount, found := b.Get(best)
	for pair := b.Oldest(); pair != nil; pair = pair.Next() {
		if !found || pair.Value > bestCount {
			best, bestCount, found = pair.Key, pair.Value, true
		}
	}
	return best
}

// FormatPercent renders the SLA card value.
func FormatPercent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatNumber(*v) + "%"
}

// FormatLatency renders the latency card value.
func FormatLatency(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatNumber(*v) + "ms"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
