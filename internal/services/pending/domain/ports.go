package domain

import "context"

// WriterPort creates pending inputs; the core never updates or deletes them
type WriterPort interface {
	Create(ctx context.Context, tweet string) (Input, error)
}

// QueryPort reads pending inputs
type QueryPort interface {
	// Unscored returns every input whose id has no resultdata row, ordered by id.
	// Evaluated on each call
	Unscored(ctx context.Context) ([]Input, error)
}
