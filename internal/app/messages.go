package app

import (
	"github.com/google/uuid"
	"github.com/jwulff/callboard/internal/dashboard"
)

// PollTickMsg is sent by the repeating poll timer.
type PollTickMsg struct{}

// RefreshMsg asks for an immediate poll outside the timer.
type RefreshMsg struct{}

// PollResultMsg carries the snapshot of a successful poll cycle.
type PollResultMsg struct {
	ID       uuid.UUID
	Seq      int
	Snapshot dashboard.Snapshot
}

// PollErrorMsg is sent when a poll cycle fails at any of its fetches.
// Snapshot holds the feeds read before the failure.
type PollErrorMsg struct {
	ID       uuid.UUID
	Seq      int
	Err      error
	Snapshot dashboard.Snapshot
}
