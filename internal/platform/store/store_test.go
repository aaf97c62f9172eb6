package store

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		dialect Dialect
		target  string
		wantErr bool
	}{
		{in: "postgres://u:p@db:5432/app", dialect: DialectPostgres, target: "postgres://u:p@db:5432/app"},
		{in: "postgresql://u@db/app?sslmode=disable", dialect: DialectPostgres, target: "postgresql://u@db/app?sslmode=disable"},
		{in: "sqlite:///var/lib/tweets.db", dialect: DialectSQLite, target: "/var/lib/tweets.db"},
		{in: "sqlite://./tweets.db?cache=shared", dialect: DialectSQLite, target: "./tweets.db"},
		{in: "sqlite://my%20tweets.db", dialect: DialectSQLite, target: "my tweets.db"},
		{in: "file:tweets.db", dialect: DialectSQLite, target: "tweets.db"},
		{in: "  sqlite://:memory:  ", dialect: DialectSQLite, target: ":memory:"},
		{in: "sqlite://", wantErr: true},
		{in: "file:", wantErr: true},
		{in: "mysql://root@db/app", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		d, target, err := ParseURL(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseURL(%q) expected error, got (%q,%q)", tc.in, d, target)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseURL(%q) error: %v", tc.in, err)
		}
		if d != tc.dialect || target != tc.target {
			t.Fatalf("ParseURL(%q) = (%q,%q), want (%q,%q)", tc.in, d, target, tc.dialect, tc.target)
		}
	}
}

func TestParseURL_UnsupportedSchemeNamed(t *testing.T) {
	t.Parallel()
	_, _, err := ParseURL("mysql://root@db/app")
	if err == nil || !strings.Contains(err.Error(), `"mysql"`) {
		t.Fatalf("want scheme in error, got %v", err)
	}
}

func TestOpen_NoBackends(t *testing.T) {
	t.Parallel()
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.SQL != nil || s.CH != nil || s.Dialect != "" {
		t.Fatalf("expected empty store, got %+v", s)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_SQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tweets.db")

	s, err := Open(ctx, Config{SQL: SQLConfig{URL: "sqlite://" + path}}, WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(ctx) })

	if s.Dialect != DialectSQLite {
		t.Fatalf("Dialect = %q", s.Dialect)
	}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	n, err := Scalar[int](ctx, s.SQL, `SELECT $1 + $2`, 2, 3)
	if err != nil || n != 5 {
		t.Fatalf("Scalar = (%d,%v), want 5", n, err)
	}
}

func TestOpen_BadURL(t *testing.T) {
	t.Parallel()
	if _, err := Open(context.Background(), Config{SQL: SQLConfig{URL: "redis://x"}}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}

func TestOpen_OptionError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	_, err := Open(context.Background(), Config{}, func(*Store) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("want option error, got %v", err)
	}
}

type fakeCH struct {
	pingErr  error
	closeErr error
	closed   bool
}

func (f *fakeCH) Insert(context.Context, string, [][]any) error     { return nil }
func (f *fakeCH) Exec(context.Context, string, ...any) error         { return nil }
func (f *fakeCH) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (f *fakeCH) Ping(context.Context) error                         { return f.pingErr }
func (f *fakeCH) Close() error                                       { f.closed = true; return f.closeErr }

type pingSQL struct {
	TxRunner
	err    error
	closed bool
}

func (p *pingSQL) Ping(context.Context) error { return p.err }
func (p *pingSQL) Close() error               { p.closed = true; return nil }

func TestGuard_JoinsFailures(t *testing.T) {
	t.Parallel()
	sqlErr := errors.New("sql down")
	chErr := errors.New("ch down")
	s := &Store{
		SQL:     &pingSQL{err: sqlErr},
		Dialect: DialectPostgres,
		CH:      &fakeCH{pingErr: chErr},
	}
	err := s.Guard(context.Background())
	if !errors.Is(err, sqlErr) || !errors.Is(err, chErr) {
		t.Fatalf("Guard should join both errors, got %v", err)
	}
	if !strings.Contains(err.Error(), "postgres: sql down") {
		t.Fatalf("dialect prefix missing: %v", err)
	}
}

func TestGuard_NilStore(t *testing.T) {
	t.Parallel()
	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestClose_ClosesAll(t *testing.T) {
	t.Parallel()
	sql := &pingSQL{}
	ch := &fakeCH{closeErr: errors.New("ch close")}
	s := &Store{SQL: sql, CH: ch}
	err := s.Close(context.Background())
	if err == nil || !strings.Contains(err.Error(), "ch close") {
		t.Fatalf("want ch close error, got %v", err)
	}
	if !sql.closed || !ch.closed {
		t.Fatalf("both seams should be closed: sql=%v ch=%v", sql.closed, ch.closed)
	}

	var nilStore *Store
	if err := nilStore.Close(context.Background()); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}

func TestPingFunc(t *testing.T) {
	t.Parallel()
	called := false
	var p Pinger = PingFunc(func(context.Context) error { called = true; return nil })
	if err := p.Ping(context.Background()); err != nil || !called {
		t.Fatalf("PingFunc not invoked")
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	l := zerolog.New(io.Discard).With().Str("k", "v").Logger()
	s := &Store{}
	if err := WithLogger(l)(s); err != nil {
		t.Fatalf("WithLogger: %v", err)
	}
	if s.Log.GetLevel() != l.GetLevel() {
		t.Fatalf("logger not applied")
	}
}
