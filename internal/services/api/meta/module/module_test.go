package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tweetscore/internal/core/model"
	"tweetscore/internal/modkit"
	"tweetscore/internal/platform/config"
	phttp "tweetscore/internal/platform/net/http"
	kit "tweetscore/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestModule_MountsUnderPrefix(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New(), Model: model.Absent("none")})
	if m.Name() != "meta" || m.Ports() != nil {
		t.Fatalf("name=%q ports=%v", m.Name(), m.Ports())
	}
	if p := m.(*Module).Prefix(); p != "/meta" {
		t.Fatalf("prefix = %q", p)
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"service":"tweetscore-api"`)
	kit.MustContain(t, rr.Body.String(), `"model_loaded":false`)

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
	kit.MustContain(t, rr.Body.String(), `"name":"sql","status":"skipped"`)
}

func TestModule_PrefixOverride(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPrefix("/_meta")).(*Module)
	if m.Prefix() != "/_meta" {
		t.Fatalf("prefix = %q", m.Prefix())
	}
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/_meta/version", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}
