package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tweetscore/internal/platform/config"
	phttp "tweetscore/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	cases := []struct {
		name    string
		enabled bool
		path    string
		want    int
	}{
		{"index", true, "/debug/pprof/", http.StatusOK},
		{"cmdline", true, "/debug/pprof/cmdline", http.StatusOK},
		{"disabled index", false, "/debug/pprof/", http.StatusNotFound},
		{"disabled cmdline", false, "/debug/pprof/cmdline", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := phttp.NewServer(config.New()).Router()
			phttp.MountProfiler(r, "/debug", tc.enabled)

			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rec.Code != tc.want {
				t.Fatalf("GET %s = %d, want %d", tc.path, rec.Code, tc.want)
			}
		})
	}
}

func TestMountProfiler_LeavesApiRoutes(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	r.Post("/prediction/suicide", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
	phttp.MountProfiler(r, "/debug", true)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/prediction/suicide", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("api route shadowed by profiler: %d", rec.Code)
	}
}
