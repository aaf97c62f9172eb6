// Package trace logs SQL statements issued through the store adapters
package trace

import (
	"context"

	"tweetscore/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one statement round trip
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives query events from an adapter
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer returns a tracer that always prints SQL, independent of the root level.
// backend tags the component ("pg", "sqlite")
func Tracer(root logger.Logger, backend string) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", backend).Logger()
	return &zlTracer{log: ll, msg: backend + " query"}
}

type zlTracer struct {
	log logger.Logger
	msg string
}

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	elapsedMs := float64(ev.ElapsedUS) / 1000.0
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	evt.Float64("elapsed_ms", elapsedMs).
		Bool("slow", ev.Slow).
		Str("sql", Compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg(z.msg)
}

// Compact folds runs of whitespace into a single space
func Compact(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || r == ' ' {
			if !space {
				out = append(out, ' ')
				space = true
			}
			continue
		}
		space = false
		out = append(out, r)
	}
	return string(out)
}

// Emit reports ev to t when a tracer is configured, computing slowness from slowMs
func Emit(ctx context.Context, t QueryTracer, slowMs int, sql string, args []any, elapsedUS int64, err error) {
	if t == nil {
		return
	}
	t.OnQuery(ctx, QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Err:       err,
		Slow:      slowMs >= 0 && elapsedUS >= int64(slowMs)*1000,
	})
}
