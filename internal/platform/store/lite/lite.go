// Package lite provides an embedded SQLite client (modernc.org/sqlite, no cgo)
// used for local runs and tests in place of postgres
package lite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"tweetscore/internal/platform/store/trace"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Config configures the sqlite handle
type Config struct {
	// Path is a filesystem path or ":memory:"
	Path     string
	MaxConns int
	SlowMs   int
	// BusyTimeoutMs bounds lock waits between the api and the reconciler
	BusyTimeoutMs int
}

// Lite is a sqlite client with an optional tracer
type Lite struct {
	DB     *sql.DB
	Tracer trace.QueryTracer
	SlowMs int
}

var openDB = sql.Open

// Open opens the database file and verifies it with a ping
func Open(ctx context.Context, cfg Config, tracer trace.QueryTracer) (*Lite, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite: empty path")
	}
	db, err := openDB("sqlite", DSN(cfg))
	if err != nil {
		return nil, err
	}

	// every :memory: connection is its own database
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Lite{DB: db, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// DSN builds a driver DSN with the pragmas every connection needs
func DSN(cfg Config) string {
	busy := cfg.BusyTimeoutMs
	if busy <= 0 {
		busy = 5000
	}
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy))
	q.Add("_pragma", "foreign_keys(1)")
	if cfg.Path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	return "file:" + cfg.Path + "?" + q.Encode()
}

// Close closes the handle
func (l *Lite) Close() error {
	if l == nil || l.DB == nil {
		return nil
	}
	return l.DB.Close()
}

// Rebind rewrites postgres-style $N placeholders to sqlite ?N,
// leaving quoted literals and identifiers alone
func Rebind(q string) string {
	if !strings.Contains(q, "$") {
		return q
	}
	var b strings.Builder
	b.Grow(len(q))
	var quote byte
	for i := 0; i < len(q); i++ {
		c := q[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '$' && i+1 < len(q) && q[i+1] >= '0' && q[i+1] <= '9':
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}
