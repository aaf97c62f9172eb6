//go:build integration_pg
// +build integration_pg

package store

import (
	"context"
	"io"
	"testing"
	"time"

	"tweetscore/internal/platform/logger"
	"tweetscore/internal/platform/store/pgtest"

	"github.com/rs/zerolog"
)

func newTestStoreLogger() logger.Logger {
	// quiet, deterministic logs
	return zerolog.New(io.Discard)
}

func TestSQLAdapter_Integration_ExecQueryColumnsClose(t *testing.T) {
	dsn := pgtest.Start(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	// Build store + config and use openPG from openers.go
	s := &Store{Log: newTestStoreLogger()}
	cfg := Config{
		AppName: "tweetscore-it",
		SQL: SQLConfig{
			URL:         dsn,
			MaxConns:    2,
			SlowQueryMs: 0,
			LogSQL:      true, // hit tracer wiring path
		},
	}
	txr, err := openPG(ctx, cfg, s)
	if err != nil {
		t.Fatalf("openPG failed: %v", err)
	}
	// We need Exec/Query/QueryRow, which live on the adapter; openPG returns TxRunner
	a, ok := txr.(*pgAdapter)
	if !ok {
		t.Fatalf("openPG did not return *pgAdapter, got %T", txr)
	}
	t.Cleanup(func() { _ = a.Close() })

	if _, err := a.Exec(ctx, `
		CREATE TABLE tweetdata (
			id    BIGSERIAL PRIMARY KEY,
			tweet VARCHAR(255) NOT NULL
		)
	`); err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	// Insert a couple rows
	if _, err := a.Exec(ctx, `INSERT INTO tweetdata (tweet) VALUES ($1), ($2)`, "first tweet", "second tweet"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// QueryRow flow
	var first string
	if err := a.QueryRow(ctx, `SELECT tweet FROM tweetdata WHERE id=$1`, 1).Scan(&first); err != nil {
		t.Fatalf("queryrow scan: %v", err)
	}
	if first != "first tweet" {
		t.Fatalf("unexpected name: %q", first)
	}

	// Query + Columns()
	rs, err := a.Query(ctx, `SELECT id, tweet FROM tweetdata ORDER BY id`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rs.Close()

	cols := rs.Columns()
	if len(cols) != 2 || cols[0] != "id" || cols[1] != "tweet" {
		t.Fatalf("columns mismatch: %#v", cols)
	}

	var (
		ids    []int64
		tweets []string
	)
	for rs.Next() {
		var id int64
		var tw string
		if err := rs.Scan(&id, &tw); err != nil {
			t.Fatalf("rows scan: %v", err)
		}
		ids = append(ids, id)
		tweets = append(tweets, tw)
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("rows err: %v", err)
	}
	if len(ids) != 2 || tweets[0] != "first tweet" || tweets[1] != "second tweet" {
		t.Fatalf("rows mismatch ids=%v tweets=%v", ids, tweets)
	}

	var app string
	if err := a.QueryRow(ctx, `SELECT current_setting('application_name')`).Scan(&app); err != nil {
		t.Fatalf("application_name: %v", err)
	}
	if app != "tweetscore-it" {
		t.Fatalf("application_name = %q", app)
	}

	// Close is safe, and calling twice should be fine through PG.Close behavior
	if err := a.Close(); err != nil {
		t.Fatalf("adapter close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("adapter close second: %v", err)
	}
}

func TestSQLAdapter_Integration_TxCommitAndRollback(t *testing.T) {
	dsn := pgtest.Start(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s := &Store{Log: newTestStoreLogger()}
	cfg := Config{SQL: SQLConfig{URL: dsn, MaxConns: 2}}
	txr, err := openPG(ctx, cfg, s)
	if err != nil {
		t.Fatalf("openPG failed: %v", err)
	}
	a := txr.(*pgAdapter)
	t.Cleanup(func() { _ = a.Close() })

	if _, err := a.Exec(ctx, `
		CREATE TABLE resultdata (
			id         BIGSERIAL PRIMARY KEY,
			tweet      VARCHAR(255) NOT NULL,
			prediction DOUBLE PRECISION NULL
		)
	`); err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	// Commit path
	if err := a.Tx(ctx, func(q RowQuerier) error {
		_, err := q.Exec(ctx, `INSERT INTO resultdata (tweet, prediction) VALUES ('kept', 0.1)`)
		return err
	}); err != nil {
		t.Fatalf("tx commit: %v", err)
	}

	var count int
	if err := a.QueryRow(ctx, `SELECT COUNT(*) FROM resultdata WHERE tweet='kept'`).Scan(&count); err != nil {
		t.Fatalf("count committed: %v", err)
	}
	if count != 1 {
		t.Fatalf("commit failed count=%d want=1", count)
	}

	// Rollback path
	_ = a.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO resultdata (tweet, prediction) VALUES ('dropped', 0.2)`); err != nil {
			return err
		}
		return errRollback
	})

	count = 0
	if err := a.QueryRow(ctx, `SELECT COUNT(*) FROM resultdata WHERE tweet='dropped'`).Scan(&count); err != nil {
		t.Fatalf("count rolled back: %v", err)
	}
	if count != 0 {
		t.Fatalf("rollback failed count=%d want=0", count)
	}
}

var errRollback = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "rollback" }

func TestStoreOpen_Integration_DialectAndGuard(t *testing.T) {
	dsn := pgtest.Start(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, err := Open(ctx, Config{SQL: SQLConfig{URL: dsn}}, WithLogger(newTestStoreLogger()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = s.Close(ctx) }()

	if s.Dialect != DialectPostgres {
		t.Fatalf("Dialect = %q", s.Dialect)
	}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	n, err := Scalar[int](ctx, s.SQL, `SELECT $1::int + $2::int`, 2, 3)
	if err != nil || n != 5 {
		t.Fatalf("Scalar = (%d,%v)", n, err)
	}
}
