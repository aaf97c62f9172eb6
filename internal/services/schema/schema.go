// Package schema creates the tweetdata and resultdata tables when they are missing
package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"tweetscore/internal/modkit/repokit"
	"tweetscore/internal/platform/store"
)

var (
	//go:embed postgres.sql
	postgresDDL string

	//go:embed sqlite.sql
	sqliteDDL string
)

// Statements returns the DDL for a dialect, one statement per element
func Statements(d store.Dialect) ([]string, error) {
	var src string
	switch d {
	case store.DialectPostgres:
		src = postgresDDL
	case store.DialectSQLite:
		src = sqliteDDL
	default:
		return nil, fmt.Errorf("schema: unknown dialect %q", d)
	}
	var out []string
	for _, s := range strings.Split(src, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// Ensure runs the dialect DDL in one transaction; every statement is idempotent
func Ensure(ctx context.Context, db repokit.TxRunner, d store.Dialect) error {
	if db == nil {
		return fmt.Errorf("schema: no database configured")
	}
	stmts, err := Statements(d)
	if err != nil {
		return err
	}
	return db.Tx(ctx, func(q repokit.Queryer) error {
		for _, s := range stmts {
			if _, err := q.Exec(ctx, s); err != nil {
				return fmt.Errorf("schema: %s: %w", firstLine(s), err)
			}
		}
		return nil
	})
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
