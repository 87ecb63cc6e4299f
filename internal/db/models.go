// Package db provides read-only SQL access to the call-center assistant
// database. It serves the live calls, sentiment counts and call volume the
// dashboard shows; SLA and latency are not stored there and come back absent.
package db

import (
	"strconv"

	"github.com/jwulff/callboard/internal/api"
)

// CallLog is a row of call_logs.
type CallLog struct {
	ID         int64
	CallerID   string
	Transcript string
	Sentiment  string
	Summary    string
	Timestamp  string
}

// Ticket is the part of a tickets row that classifies a call.
type Ticket struct {
	IssueType string
	Urgency   string
}

// Call converts the row into the wire form. The summary stands in for the
// action taken; t may be nil for callers without a ticket.
func (c CallLog) Call(t *Ticket) api.Call {
	call := api.Call{
		ID:          api.CallID(strconv.FormatInt(c.ID, 10)),
		CallerID:    c.CallerID,
		Transcript:  c.Transcript,
		Sentiment:   c.Sentiment,
		ActionTaken: c.Summary,
		Timestamp:   normalizeTimestamp(c.Timestamp),
	}
	if t != nil {
		call.Classification = &api.Classification{
			IssueType: t.IssueType,
			Urgency:   api.Urgency(t.Urgency),
		}
	}
	return call
}
