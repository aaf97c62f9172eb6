// Package repo provides the resultdata repository
package repo

import (
	"context"

	"tweetscore/internal/modkit/repokit"
	"tweetscore/internal/platform/store"
	"tweetscore/internal/services/results/domain"
)

type (
	sqlRepo struct {
		q       repokit.Queryer
		dialect store.Dialect
	}
	binder struct{ dialect store.Dialect }
)

// New constructs a repo binder for the given dialect
func New(d store.Dialect) repokit.Binder[Storage] { return binder{dialect: d} }

// Bind implements repokit.Binder
func (b binder) Bind(q repokit.Queryer) Storage { return &sqlRepo{q: q, dialect: b.dialect} }

// Storage defines the resultdata repository
type Storage interface {
	Insert(ctx context.Context, tweet string, score float64) (domain.Result, error)
	InsertWithID(ctx context.Context, id int64, tweet string, score float64) (domain.Result, error)
	Get(ctx context.Context, id int64) (domain.Result, error)
}

func scanResult(r store.Row) (domain.Result, error) {
	var out domain.Result
	err := r.Scan(&out.ID, &out.Tweet, &out.Prediction)
	return out, err
}

// Insert implements Storage
func (s *sqlRepo) Insert(ctx context.Context, tweet string, score float64) (domain.Result, error) {
	return store.One(ctx, s.q, scanResult, `
		INSERT INTO resultdata (tweet, prediction) VALUES ($1, $2)
		RETURNING id, tweet, prediction`, tweet, score)
}

// InsertWithID implements Storage.
// Postgres sequences do not see explicit ids, so the serial is moved past them
func (s *sqlRepo) InsertWithID(ctx context.Context, id int64, tweet string, score float64) (domain.Result, error) {
	out, err := store.One(ctx, s.q, scanResult, `
		INSERT INTO resultdata (id, tweet, prediction) VALUES ($1, $2, $3)
		RETURNING id, tweet, prediction`, id, tweet, score)
	if err != nil {
		return domain.Result{}, err
	}
	if s.dialect == store.DialectPostgres {
		if _, err := s.q.Exec(ctx, `
			SELECT setval(pg_get_serial_sequence('resultdata', 'id'),
				GREATEST((SELECT MAX(id) FROM resultdata), 1))`); err != nil {
			return domain.Result{}, err
		}
	}
	return out, nil
}

// Get implements Storage
func (s *sqlRepo) Get(ctx context.Context, id int64) (domain.Result, error) {
	return store.One(ctx, s.q, scanResult,
		`SELECT id, tweet, prediction FROM resultdata WHERE id = $1`, id)
}
