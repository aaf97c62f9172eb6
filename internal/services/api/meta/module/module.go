// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "tweetscore/internal/modkit"
	"tweetscore/internal/modkit/httpkit"
	str "tweetscore/internal/platform/strings"

	metahttp "tweetscore/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/health and /meta/version
const ServiceName = "tweetscore-api"

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)
	return &Module{deps: deps, built: b, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName:  ServiceName,
		StartedAt:    m.startedAt,
		Model:        m.deps.Model,
		ReadyTimeout: m.deps.Cfg.Prefix("CORE_API_").MayDuration("READY_TIMEOUT", 2*time.Second),
	}
	if m.deps.SQL != nil {
		d.SQL = m.deps.SQL
	}
	if m.deps.CH != nil {
		d.CH = m.deps.CH
	}
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, d) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
