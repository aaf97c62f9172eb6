package repokit

import (
	"context"
	"fmt"
	"time"
)

type pinger interface {
	Ping(context.Context) error
}

// defaultPingTimeout bounds a ping when the caller's ctx has no deadline
const defaultPingTimeout = 5 * time.Second

// Ping checks a dependency with a bounded ctx and names it in the error
func Ping(ctx context.Context, name string, p pinger) error {
	if p == nil {
		return fmt.Errorf("%s: nil dependency", name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultPingTimeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", name, err)
	}
	return nil
}
