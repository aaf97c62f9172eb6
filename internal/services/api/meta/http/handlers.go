// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"tweetscore/internal/core/model"
	"tweetscore/internal/core/version"
	"tweetscore/internal/modkit/httpkit"
	"tweetscore/internal/modkit/repokit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	SQL         any
	CH          any
	Model       *model.Provider

	// ReadyTimeout bounds all dependency pings of one /ready call
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/model", h.model)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK          bool   `json:"ok"           example:"true"`
	Service     string `json:"service"      example:"tweetscore-api"`
	ModelLoaded bool   `json:"model_loaded" example:"true"`
	Started     string `json:"started"      example:"2026-03-01T13:00:00Z"`
	Now         string `json:"now"          example:"2026-03-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"            example:"sql"`
	Status string `json:"status"          example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-03-01T13:05:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness with model status
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:          true,
		Service:     h.deps.ServiceName,
		ModelLoaded: h.deps.Model.Loaded(),
		Started:     h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:         h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := repokit.Ping(ctx, name, p); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	sql := check("sql", h.deps.SQL)
	ch := check("ch", h.deps.CH)
	mdl := ReadyCheck{Name: "model", Status: "ok"}
	if !h.deps.Model.Loaded() {
		mdl = ReadyCheck{Name: "model", Status: "fail", Error: h.deps.Model.Info().Error}
	}

	// only the database is fatal; a missing model or mirror degrades
	overall := "ok"
	for _, c := range []ReadyCheck{ch, mdl} {
		if c.Status != "ok" && c.Status != "skipped" {
			overall = "degraded"
		}
	}
	if sql.Status != "ok" {
		overall = "fail"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{sql, ch, mdl},
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/model Meta metaModel
// @Summary Loaded model artifact
// @Tags Meta
// @Produce json
// @Success 200 {object} model.Info
// @Router /meta/model [get]
func (h *handlers) model(_ *http.Request) (any, error) {
	return h.deps.Model.Info(), nil
}
