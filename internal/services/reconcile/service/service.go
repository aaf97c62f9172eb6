// Package service implements the run-once batch reconciler
package service

import (
	"context"
	"time"
	"unicode/utf8"

	"tweetscore/internal/core/inference"
	"tweetscore/internal/core/model"
	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/platform/logger"
	"tweetscore/internal/services/reconcile/domain"

	events "tweetscore/internal/services/events/domain"

	"github.com/google/uuid"
)

// Config for the reconciler
type Config struct {
	// Timeout bounds one run; zero means no bound
	Timeout time.Duration
}

// Service implements domain.RunnerPort
type Service struct {
	Model *model.Provider
	Ports domain.Ports
	Cfg   Config

	newID func() string
	now   func() time.Time
}

// New constructs a reconciler; Pending and Results ports are required
func New(m *model.Provider, p domain.Ports, cfg Config) *Service {
	if p.Pending == nil || p.Results == nil {
		panic("reconcile: pending and results ports are required")
	}
	return &Service{
		Model: m,
		Ports: p,
		Cfg:   cfg,
		newID: func() string { return uuid.NewString() },
		now:   time.Now,
	}
}

// RunOnce implements domain.RunnerPort. Without a model it fails before touching the store
func (s *Service) RunOnce(ctx context.Context) (domain.Report, error) {
	start := s.now()
	rep := domain.Report{RunID: s.newID()}
	ctx = logger.WithRun(ctx, rep.RunID)
	log := logger.C(ctx)

	m := s.Model.Model()
	if m == nil {
		return rep, perr.Modelf("no model loaded: %s", s.Model.Info().Error)
	}

	if s.Cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Cfg.Timeout)
		defer cancel()
	}

	pend, err := s.Ports.Pending.Unscored(ctx)
	if err != nil {
		return rep, err
	}
	rep.Pending = len(pend)
	if len(pend) == 0 {
		rep.Outcome = domain.OutcomeIdle
		rep.Took = s.now().Sub(start)
		log.Info().Msg("nothing to reconcile")
		return rep, nil
	}

	in := pend[0]
	rep.InputID = in.ID
	score, err := inference.Predict(ctx, m, in.Tweet)
	if err != nil {
		return rep, err
	}
	// stopped while scoring: no write
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	res, err := s.Ports.Results.CreateFor(ctx, in.ID, in.Tweet, score)
	if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		rep.Outcome = domain.OutcomeRaced
		rep.Took = s.now().Sub(start)
		log.Warn().Int64("input_id", in.ID).Msg("input already scored by another writer")
		return rep, nil
	}
	if err != nil {
		return rep, err
	}

	if s.Ports.Events != nil {
		s.Ports.Events.Record(ctx, events.Event{
			ResultID:   res.ID,
			Source:     events.SourceReconcile,
			Prediction: res.Score(),
			TweetChars: utf8.RuneCountInString(res.Tweet),
		})
	}

	rep.Outcome = domain.OutcomeScored
	rep.Prediction = res.Score()
	rep.Took = s.now().Sub(start)
	log.Info().
		Int64("input_id", in.ID).
		Float64("prediction", rep.Prediction).
		Int("pending", rep.Pending).
		Dur("took", rep.Took).
		Msg("reconciled one input")
	return rep, nil
}
