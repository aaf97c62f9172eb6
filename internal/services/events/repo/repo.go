// Package repo writes prediction events to clickhouse
package repo

import (
	"context"

	"tweetscore/internal/platform/store"
	"tweetscore/internal/services/events/domain"
)

// Table is the clickhouse table events land in
const Table = "prediction_events"

const ddl = `CREATE TABLE IF NOT EXISTS ` + Table + ` (
	result_id   Int64,
	source      LowCardinality(String),
	prediction  Float64,
	tweet_chars UInt16,
	created_at  DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (created_at, result_id)`

// CH is the clickhouse events repo
type CH struct{ c store.Clickhouse }

// NewCH binds the repo to a clickhouse seam
func NewCH(c store.Clickhouse) *CH { return &CH{c: c} }

// EnsureTable creates the events table when missing
func (r *CH) EnsureTable(ctx context.Context) error {
	return r.c.Exec(ctx, ddl)
}

// Write appends events as one native batch
func (r *CH) Write(ctx context.Context, xs ...domain.Event) error {
	rows := make([][]any, 0, len(xs))
	for _, e := range xs {
		chars := e.TweetChars
		if chars > 0xffff {
			chars = 0xffff
		}
		rows = append(rows, []any{
			e.ResultID, string(e.Source), e.Prediction, uint16(chars), e.CreatedAt.UTC(),
		})
	}
	return r.c.Insert(ctx, Table, rows)
}
