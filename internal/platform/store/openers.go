package store

import (
	"context"
	"fmt"
	"time"

	chx "tweetscore/internal/platform/store/ch"
	"tweetscore/internal/platform/store/lite"
	"tweetscore/internal/platform/store/pg"
	"tweetscore/internal/platform/store/trace"
)

var sleep = time.Sleep

// openPG opens pg and wraps it with our sql adapter once the pool answers
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer trace.QueryTracer
	if cfg.SQL.LogSQL {
		tracer = trace.Tracer(s.Log, "pg")
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.SQL.URL,
		MaxConns: cfg.SQL.MaxConns,
		SlowMs:   cfg.SQL.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	maxAttempts := cfg.SQL.ConnectRetries
	if maxAttempts <= 0 {
		maxAttempts = 20
	}
	pingTimeout := cfg.SQL.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()

		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Dur("backoff", backoff).Msg("postgres not ready")
		sleep(backoff)
		if backoff < backoffCeiling {
			backoff = min(backoff*2, backoffCeiling)
		}
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", maxAttempts, lastErr)
}

// openLite opens the embedded sqlite file
func openLite(ctx context.Context, cfg Config, path string, s *Store) (TxRunner, error) {
	var tracer trace.QueryTracer
	if cfg.SQL.LogSQL {
		tracer = trace.Tracer(s.Log, "sqlite")
	}
	l, err := lite.Open(ctx, lite.Config{
		Path:     path,
		MaxConns: int(cfg.SQL.MaxConns),
		SlowMs:   cfg.SQL.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, fmt.Errorf("sqlite open %s: %w", path, err)
	}
	return newLiteAdapter(l), nil
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: cfg.CH.Tag})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
