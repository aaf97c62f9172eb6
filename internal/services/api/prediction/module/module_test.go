package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tweetscore/internal/modkit"
	phttp "tweetscore/internal/platform/net/http"
	kit "tweetscore/internal/platform/testkit"
	results "tweetscore/internal/services/results/domain"

	"github.com/go-chi/chi/v5"
)

type memResults struct{ next int64 }

func (m *memResults) Create(_ context.Context, tweet string, score float64) (results.Result, error) {
	m.next++
	return results.Result{ID: m.next, Tweet: tweet, Prediction: &score}, nil
}

func (m *memResults) CreateFor(_ context.Context, id int64, tweet string, score float64) (results.Result, error) {
	return results.Result{ID: id, Tweet: tweet, Prediction: &score}, nil
}

func TestNew_RequiresResultsPort(t *testing.T) {
	kit.MustPanic(t, func() { New(modkit.Deps{}) })
	kit.MustNotPanic(t, func() { New(modkit.Deps{}, modkit.WithPorts(Ports{Results: &memResults{}})) })
}

func TestModule_MountsUnderPrediction(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPorts(Ports{Results: &memResults{}}))
	if m.Name() != "prediction" || m.(*Module).Prefix() != "/prediction" {
		t.Fatalf("name=%q prefix=%q", m.Name(), m.(*Module).Prefix())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/prediction/suicide", strings.NewReader(`{"tweet":"x"}`))
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	// no model in deps
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body)
	}

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/prediction/suicide", strings.NewReader(`{"tweet":1}`)))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body)
	}
}
