// Package schematest opens a throwaway sqlite store with the tables in place
package schematest

import (
	"context"
	"path/filepath"
	"testing"

	"tweetscore/internal/platform/store"
	"tweetscore/internal/services/schema"
)

// Open returns a store backed by a fresh sqlite file under t.TempDir
func Open(t testing.TB) *store.Store {
	t.Helper()
	ctx := context.Background()
	url := "sqlite://" + filepath.Join(t.TempDir(), "tweetscore.db")
	st, err := store.Open(ctx, store.Config{SQL: store.SQLConfig{URL: url}})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	if err := schema.Ensure(ctx, st.SQL, st.Dialect); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return st
}

// Exec runs a statement and fails the test on error
func Exec(t testing.TB, st *store.Store, sql string, args ...any) {
	t.Helper()
	if _, err := st.SQL.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("exec %q: %v", sql, err)
	}
}

// Count returns the row count of table
func Count(t testing.TB, st *store.Store, table string) int64 {
	t.Helper()
	n, err := store.Scalar[int64](context.Background(), st.SQL, "SELECT COUNT(*) FROM "+table)
	if err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
