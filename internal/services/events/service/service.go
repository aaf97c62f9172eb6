// Package service mirrors persisted predictions into clickhouse
package service

import (
	"context"
	"time"

	"tweetscore/internal/platform/logger"
	"tweetscore/internal/services/events/domain"
	"tweetscore/internal/services/events/repo"
)

// Recorder implements domain.RecorderPort. A nil repo makes it a no-op
type Recorder struct {
	Repo    *repo.CH
	Timeout time.Duration
	now     func() time.Time
}

// New constructs a recorder; r may be nil
func New(r *repo.CH, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Recorder{Repo: r, Timeout: timeout, now: time.Now}
}

// Enabled reports whether events go anywhere
func (s *Recorder) Enabled() bool { return s != nil && s.Repo != nil }

// Record implements domain.RecorderPort; failures are logged and dropped
func (s *Recorder) Record(ctx context.Context, e domain.Event) {
	if !s.Enabled() {
		return
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	// the caller's request may be finishing; the write gets its own budget
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.Timeout)
	defer cancel()
	if err := s.Repo.Write(wctx, e); err != nil {
		logger.C(ctx).Warn().Err(err).
			Int64("result_id", e.ResultID).
			Str("source", string(e.Source)).
			Msg("prediction event not mirrored")
	}
}
