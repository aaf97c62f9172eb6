// Package service provides the pending inputs service
package service

import (
	"context"
	"unicode/utf8"

	"tweetscore/internal/modkit/repokit"
	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/services/pending/domain"
	"tweetscore/internal/services/pending/repo"
)

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
}

// New constructs a pending service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Binder: b}
}

// Create implements domain.WriterPort
func (s *Service) Create(ctx context.Context, tweet string) (domain.Input, error) {
	if n := utf8.RuneCountInString(tweet); n > domain.MaxTweetLen {
		return domain.Input{}, perr.InvalidArgf("tweet has %d characters, max %d", n, domain.MaxTweetLen)
	}
	var out domain.Input
	err := repokit.InTx(ctx, s.DB, s.Binder, func(st repo.Storage) error {
		var err error
		out, err = st.Insert(ctx, tweet)
		return err
	})
	if err != nil {
		return domain.Input{}, perr.FromStore(err, "create pending input")
	}
	return out, nil
}

// Unscored implements domain.QueryPort
func (s *Service) Unscored(ctx context.Context) ([]domain.Input, error) {
	rows, err := repokit.MustBind(s.Binder, s.DB).ListUnscored(ctx)
	if err != nil {
		return nil, perr.FromStore(err, "query unscored inputs")
	}
	return rows, nil
}
