// Package api provides the client and wire types for the dashboard endpoints
// of the call-center assistant backend.
package api

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Urgency is the severity assigned to a classified call.
type Urgency string

const (
	UrgencyEmergency    Urgency = "Emergency"
	UrgencyUrgent       Urgency = "Urgent"
	UrgencyNonEmergency Urgency = "Non-Emergency"
)

// CallID accepts both numeric and string identifiers from the backend.
type CallID string

// UnmarshalJSON keeps the raw number text or the unquoted string.
func (id *CallID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = CallID(s)
		return nil
	}
	*id = CallID(data)
	return nil
}

// Classification is the NLP verdict attached to a call.
type Classification struct {
	IssueType string  `json:"issue_type"`
	Urgency   Urgency `json:"urgency"`
}

// Call is one entry of the live-calls feed.
type Call struct {
	ID             CallID          `json:"id"`
	CallerID       string          `json:"caller_id"`
	Transcript     string          `json:"transcript"`
	Classification *Classification `json:"classification,omitempty"`
	Sentiment      string          `json:"sentiment"`
	ActionTaken    string          `json:"action_taken"`
	Timestamp      string          `json:"timestamp"`
}

// SentimentBreakdown maps a sentiment label to its call count. Key order
// follows the response body.
type SentimentBreakdown = orderedmap.OrderedMap[string, int]

// NewSentimentBreakdown returns an empty breakdown.
func NewSentimentBreakdown() *SentimentBreakdown {
	return orderedmap.New[string, int]()
}

// DashboardStats is the aggregate block shown in the stat cards.
// Nil numbers were absent from the response.
type DashboardStats struct {
	SLAPercentage      *float64            `json:"sla_percentage"`
	AvgLatencyMS       *float64            `json:"avg_latency_ms"`
	SentimentBreakdown *SentimentBreakdown `json:"sentiment_breakdown"`
}

// CallVolumePoint is one day of the call-volume series.
type CallVolumePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Float64Ptr returns a pointer to v. Convenience for building stats.
func Float64Ptr(v float64) *float64 { return &v }
