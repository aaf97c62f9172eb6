//go:build integration_pg

package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"tweetscore/internal/core/model"
	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/platform/store"
	"tweetscore/internal/platform/store/pgtest"
	pendingrepo "tweetscore/internal/services/pending/repo"
	pendingsvc "tweetscore/internal/services/pending/service"
	recdom "tweetscore/internal/services/reconcile/domain"
	recsvc "tweetscore/internal/services/reconcile/service"
	"tweetscore/internal/services/results/repo"
	"tweetscore/internal/services/results/service"
	"tweetscore/internal/services/schema"

	"github.com/rs/zerolog"
)

type fixed float64

func (f fixed) Predict(context.Context, [][]string) ([][]float64, error) {
	return [][]float64{{float64(f)}}, nil
}

func openPG(t *testing.T) *store.Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{SQL: store.SQLConfig{URL: pgtest.Start(t), MaxConns: 2}},
		store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	if err := schema.Ensure(ctx, st.SQL, st.Dialect); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := schema.Ensure(ctx, st.SQL, st.Dialect); err != nil {
		t.Fatalf("ensure twice: %v", err)
	}
	return st
}

func TestPostgres_ReconcileThenApiInsert(t *testing.T) {
	st := openPG(t)
	ctx := context.Background()

	pending := pendingsvc.New(st.SQL, pendingrepo.New())
	results := service.New(st.SQL, repo.New(st.Dialect))

	for _, tw := range []string{"one", "two", "three"} {
		if _, err := pending.Create(ctx, tw); err != nil {
			t.Fatalf("pending %q: %v", tw, err)
		}
	}

	run := recsvc.New(model.Static(fixed(0.75), model.Info{}), recdom.Ports{
		Pending: pending,
		Results: results,
	}, recsvc.Config{})
	for want := int64(1); want <= 3; want++ {
		rep, err := run.RunOnce(ctx)
		if err != nil || rep.Outcome != recdom.OutcomeScored || rep.InputID != want {
			t.Fatalf("run %d = %+v, %v", want, rep, err)
		}
	}
	if rep, err := run.RunOnce(ctx); err != nil || rep.Outcome != recdom.OutcomeIdle {
		t.Fatalf("drained run = %+v, %v", rep, err)
	}

	// explicit ids moved the sequence, so a generated id follows them
	got, err := results.Create(ctx, "from the api", 0.5)
	if err != nil {
		t.Fatalf("api insert after reconcile: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("generated id = %d, want 4", got.ID)
	}

	if _, err := results.CreateFor(ctx, 2, "two", 0.75); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate explicit id: %v", err)
	}
	left, err := pending.Unscored(ctx)
	if err != nil || len(left) != 0 {
		t.Fatalf("unscored = %v, %v", left, err)
	}
}

func TestPostgres_TweetLengthLimit(t *testing.T) {
	st := openPG(t)
	results := service.New(st.SQL, repo.New(st.Dialect))

	long := make([]rune, 256)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := results.Create(context.Background(), string(long), 0.1); err == nil {
		t.Fatal("varchar(255) should reject 256 characters")
	}
}
