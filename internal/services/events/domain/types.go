// Package domain defines prediction events mirrored into clickhouse
package domain

import (
	"context"
	"time"
)

// Source names the path that produced a result
type Source string

const (
	// SourceAPI is the live prediction endpoint
	SourceAPI Source = "api"
	// SourceReconcile is the batch reconciler
	SourceReconcile Source = "reconcile"
)

// Event is one persisted prediction; tweet text is not mirrored, only its length
type Event struct {
	ResultID   int64
	Source     Source
	Prediction float64
	TweetChars int
	CreatedAt  time.Time
}

// RecorderPort mirrors events; implementations never fail the caller
type RecorderPort interface {
	Record(ctx context.Context, e Event)
}
