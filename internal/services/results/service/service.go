// Package service provides the results service
package service

import (
	"context"
	"errors"

	"tweetscore/internal/modkit/repokit"
	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/services/results/domain"
	"tweetscore/internal/services/results/repo"
)

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
}

// New constructs a results service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Binder: b}
}

// Create implements domain.WriterPort; insert and read-back share one transaction
func (s *Service) Create(ctx context.Context, tweet string, score float64) (domain.Result, error) {
	var out domain.Result
	err := repokit.InTx(ctx, s.DB, s.Binder, func(st repo.Storage) error {
		var err error
		out, err = st.Insert(ctx, tweet, score)
		return err
	})
	if err != nil {
		return domain.Result{}, perr.FromStore(err, "create result")
	}
	return out, nil
}

// CreateFor implements domain.WriterPort. A second writer for the same id
// gets a DuplicateKey error
func (s *Service) CreateFor(ctx context.Context, id int64, tweet string, score float64) (domain.Result, error) {
	var out domain.Result
	err := repokit.InTx(ctx, s.DB, s.Binder, func(st repo.Storage) error {
		var err error
		out, err = st.InsertWithID(ctx, id, tweet, score)
		return err
	})
	if err != nil {
		return domain.Result{}, perr.FromStore(err, "create result for pending input")
	}
	return out, nil
}

// Get implements domain.QueryPort
func (s *Service) Get(ctx context.Context, id int64) (domain.Result, error) {
	out, err := repokit.MustBind(s.Binder, s.DB).Get(ctx, id)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Result{}, perr.NotFoundf("result %d not found", id)
	}
	if err != nil {
		return domain.Result{}, perr.FromStore(err, "get result")
	}
	return out, nil
}
