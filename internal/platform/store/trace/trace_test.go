package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   1  ", " select 1 "},
		{"SELECT t.id\n  FROM tweetdata t\n WHERE NOT EXISTS (\tSELECT 1)", "SELECT t.id FROM tweetdata t WHERE NOT EXISTS ( SELECT 1)"},
		{"", ""},
	}
	for i, c := range cases {
		if got := Compact(c.in); got != c.want {
			t.Fatalf("case %d: Compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

type logLine struct {
	Level     string  `json:"level"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	SQL       string  `json:"sql"`
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	Component string  `json:"component"`
}

func TestTracer_InfoAndWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel), "sqlite")

	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT\n1", ElapsedUS: 1500, Err: errors.New("boom")})
	var l logLine
	if err := json.Unmarshal(buf.Bytes(), &l); err != nil {
		t.Fatalf("decode: %v (%s)", err, buf.String())
	}
	if l.Level != "info" || l.SQL != "SELECT 1" || l.ElapsedMS != 1.5 || l.Error != "boom" {
		t.Fatalf("line = %+v", l)
	}
	if l.Component != "sqlite" || l.Message != "sqlite query" {
		t.Fatalf("component/message = %q/%q", l.Component, l.Message)
	}

	buf.Reset()
	tr.OnQuery(context.Background(), QueryEvent{SQL: "x", Slow: true})
	l = logLine{}
	_ = json.Unmarshal(buf.Bytes(), &l)
	if l.Level != "warn" || !l.Slow {
		t.Fatalf("slow line = %+v", l)
	}
}

type capture struct{ evs []QueryEvent }

func (c *capture) OnQuery(_ context.Context, ev QueryEvent) { c.evs = append(c.evs, ev) }

func TestEmit(t *testing.T) {
	t.Parallel()

	Emit(context.Background(), nil, 0, "x", nil, 1, nil) // no tracer is a no-op

	c := &capture{}
	Emit(context.Background(), c, 2, "fast", nil, 1999, nil)
	Emit(context.Background(), c, 2, "slow", nil, 2000, nil)
	Emit(context.Background(), c, -1, "disabled", nil, 1<<40, nil)
	if len(c.evs) != 3 {
		t.Fatalf("events = %d", len(c.evs))
	}
	if c.evs[0].Slow || !c.evs[1].Slow || c.evs[2].Slow {
		t.Fatalf("slow flags = %v %v %v", c.evs[0].Slow, c.evs[1].Slow, c.evs[2].Slow)
	}
}
