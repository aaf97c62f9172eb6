package service_test

import (
	"context"
	"testing"

	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/services/results/repo"
	"tweetscore/internal/services/results/service"
	"tweetscore/internal/services/schema/schematest"
)

func newSvc(t *testing.T) (*service.Service, func(string) int64) {
	t.Helper()
	st := schematest.Open(t)
	count := func(table string) int64 { return schematest.Count(t, st, table) }
	return service.New(st.SQL, repo.New(st.Dialect)), count
}

func TestCreate_ReadsBackRow(t *testing.T) {
	svc, count := newSvc(t)
	ctx := context.Background()

	got, err := svc.Create(ctx, "I'm fine, really", 0.73)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID == 0 || got.Tweet != "I'm fine, really" || got.Prediction == nil || *got.Prediction != 0.73 {
		t.Fatalf("unexpected row %+v", got)
	}
	if n := count("resultdata"); n != 1 {
		t.Fatalf("resultdata rows = %d, want 1", n)
	}

	again, err := svc.Get(ctx, got.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.ID != got.ID || again.Tweet != got.Tweet || again.Score() != 0.73 {
		t.Fatalf("Get = %+v, want %+v", again, got)
	}
}

func TestCreate_SameTextTwiceGivesTwoRows(t *testing.T) {
	svc, count := newSvc(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, "same", 0.1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.Create(ctx, "same", 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatalf("duplicate text should still get distinct ids, both %d", a.ID)
	}
	if n := count("resultdata"); n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}
}

func TestCreateFor_ExplicitIDAndDuplicate(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()

	r, err := svc.CreateFor(ctx, 5, "pending five", 0.9)
	if err != nil {
		t.Fatalf("CreateFor: %v", err)
	}
	if r.ID != 5 {
		t.Fatalf("id = %d, want 5", r.ID)
	}

	_, err = svc.CreateFor(ctx, 5, "pending five", 0.9)
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("second writer: want duplicate key, got %v", err)
	}

	next, err := svc.Create(ctx, "live", 0.2)
	if err != nil {
		t.Fatalf("Create after explicit id: %v", err)
	}
	if next.ID <= 5 {
		t.Fatalf("generated id %d should follow explicit id 5", next.ID)
	}
}

func TestGet_NotFoundAndNullPrediction(t *testing.T) {
	st := schematest.Open(t)
	svc := service.New(st.SQL, repo.New(st.Dialect))
	ctx := context.Background()

	if _, err := svc.Get(ctx, 42); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}

	schematest.Exec(t, st, "INSERT INTO resultdata (id, tweet, prediction) VALUES ($1, $2, NULL)", 3, "unscored")
	r, err := svc.Get(ctx, 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Prediction != nil || r.Score() != 0 {
		t.Fatalf("null prediction should scan as nil, got %+v", r)
	}
}
