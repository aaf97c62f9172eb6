// Package repo provides the tweetdata repository
package repo

import (
	"context"

	"tweetscore/internal/modkit/repokit"
	"tweetscore/internal/platform/store"
	"tweetscore/internal/services/pending/domain"
)

type (
	sqlRepo struct{ q repokit.Queryer }
	binder  struct{}
)

// New constructs a repo binder; the statements are portable across dialects
func New() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &sqlRepo{q: q} }

// Storage defines the tweetdata repository
type Storage interface {
	Insert(ctx context.Context, tweet string) (domain.Input, error)
	ListUnscored(ctx context.Context) ([]domain.Input, error)
}

func scanInput(r store.Row) (domain.Input, error) {
	var in domain.Input
	err := r.Scan(&in.ID, &in.Tweet)
	return in, err
}

// Insert implements Storage
func (s *sqlRepo) Insert(ctx context.Context, tweet string) (domain.Input, error) {
	return store.One(ctx, s.q, scanInput,
		`INSERT INTO tweetdata (tweet) VALUES ($1) RETURNING id, tweet`, tweet)
}

// ListUnscored implements Storage
func (s *sqlRepo) ListUnscored(ctx context.Context) ([]domain.Input, error) {
	return store.Many(ctx, s.q, scanInput, `
		SELECT t.id, t.tweet
		FROM tweetdata t
		WHERE NOT EXISTS (SELECT 1 FROM resultdata r WHERE r.id = t.id)
		ORDER BY t.id`)
}
