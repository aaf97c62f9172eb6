// Package domain defines the batch reconciler contract
package domain

import (
	"context"
	"time"

	events "tweetscore/internal/services/events/domain"
	pending "tweetscore/internal/services/pending/domain"
	results "tweetscore/internal/services/results/domain"
)

// Outcome says what a single run did
type Outcome string

const (
	// OutcomeIdle means nothing was pending
	OutcomeIdle Outcome = "idle"
	// OutcomeScored means exactly one input was scored and persisted
	OutcomeScored Outcome = "scored"
	// OutcomeRaced means another writer persisted the same input first
	OutcomeRaced Outcome = "raced"
)

// Report summarizes one run
type Report struct {
	RunID      string        `json:"run_id"`
	Outcome    Outcome       `json:"outcome"`
	Pending    int           `json:"pending"`
	InputID    int64         `json:"input_id,omitempty"`
	Prediction float64       `json:"prediction,omitempty"`
	Took       time.Duration `json:"took"`
}

// RunnerPort scores at most one pending input per call
type RunnerPort interface {
	RunOnce(ctx context.Context) (Report, error)
}

// Ports are what the reconciler consumes from other modules
type Ports struct {
	Pending pending.QueryPort
	Results results.WriterPort
	Events  events.RecorderPort
}
