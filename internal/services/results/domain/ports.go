package domain

import "context"

// WriterPort appends results; rows are never updated or deleted
type WriterPort interface {
	// Create inserts a result under a generated id
	Create(ctx context.Context, tweet string, score float64) (Result, error)
	// CreateFor inserts a result keyed by a pending input id
	CreateFor(ctx context.Context, id int64, tweet string, score float64) (Result, error)
}

// QueryPort reads results
type QueryPort interface {
	Get(ctx context.Context, id int64) (Result, error)
}
