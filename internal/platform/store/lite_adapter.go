package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tweetscore/internal/platform/store/lite"
	"tweetscore/internal/platform/store/trace"
)

// sqlConn is the query surface shared by *sql.DB and *sql.Tx
type sqlConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// liteAdapter wraps lite.Lite and implements RowQuerier + TxRunner.
// Statements are rebound from $N to ?N before they reach the driver
type liteAdapter struct {
	l *lite.Lite
	q liteQuerier
}

func newLiteAdapter(l *lite.Lite) *liteAdapter {
	return &liteAdapter{l: l, q: liteQuerier{c: l.DB, tracer: l.Tracer, slowMs: l.SlowMs}}
}

func (a *liteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.l == nil || a.l.DB == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.l.DB.PingContext(ctx)
}

func (a *liteAdapter) Close() error { return a.l.Close() }

func (a *liteAdapter) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	return a.q.Exec(ctx, q, args...)
}

func (a *liteAdapter) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	return a.q.Query(ctx, q, args...)
}

func (a *liteAdapter) QueryRow(ctx context.Context, q string, args ...any) Row {
	return a.q.QueryRow(ctx, q, args...)
}

func (a *liteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.l.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(liteQuerier{c: tx, tracer: a.l.Tracer, slowMs: a.l.SlowMs}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type liteQuerier struct {
	c      sqlConn
	tracer trace.QueryTracer
	slowMs int
}

func (t liteQuerier) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := t.c.ExecContext(ctx, lite.Rebind(q), args...)
	trace.Emit(ctx, t.tracer, t.slowMs, q, args, time.Since(start).Microseconds(), err)
	if err != nil {
		return liteTag{}, err
	}
	n, _ := res.RowsAffected()
	return liteTag{n: n}, nil
}

func (t liteQuerier) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.c.QueryContext(ctx, lite.Rebind(q), args...)
	trace.Emit(ctx, t.tracer, t.slowMs, q, args, time.Since(start).Microseconds(), err)
	if err != nil {
		return nil, err
	}
	return liteRows{r: rs}, nil
}

func (t liteQuerier) QueryRow(ctx context.Context, q string, args ...any) Row {
	start := time.Now()
	r := t.c.QueryRowContext(ctx, lite.Rebind(q), args...)
	return liteRow{r: r, after: func(scanErr error) {
		trace.Emit(ctx, t.tracer, t.slowMs, q, args, time.Since(start).Microseconds(), scanErr)
	}}
}

type liteRow struct {
	r     *sql.Row
	after func(error)
}

func (x liteRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type liteRows struct{ r *sql.Rows }

func (x liteRows) Next() bool            { return x.r.Next() }
func (x liteRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x liteRows) Err() error            { return x.r.Err() }
func (x liteRows) Close()                { _ = x.r.Close() }
func (x liteRows) Columns() []string {
	cols, _ := x.r.Columns()
	return cols
}

type liteTag struct{ n int64 }

func (t liteTag) String() string      { return fmt.Sprintf("ROWS %d", t.n) }
func (t liteTag) RowsAffected() int64 { return t.n }
