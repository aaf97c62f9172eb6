// Package module wires the prediction endpoint into the API
package module

import (
	"net/http"

	modkit "tweetscore/internal/modkit"
	"tweetscore/internal/modkit/httpkit"
	str "tweetscore/internal/platform/strings"
	events "tweetscore/internal/services/events/domain"
	results "tweetscore/internal/services/results/domain"

	predhttp "tweetscore/internal/services/api/prediction/http"
)

// Ports are what this module consumes from other modules, injected with modkit.WithPorts
type Ports struct {
	Results results.WriterPort
	Events  events.RecorderPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports
}

// New constructs the prediction module; a results writer port is required
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("prediction"),
		modkit.WithPrefix("/prediction"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	if p.Results == nil {
		panic("prediction: results writer port is required")
	}
	return &Module{deps: deps, built: b, ports: p}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		predhttp.Register(rr, predhttp.Deps{
			Model:   m.deps.Model,
			Results: m.ports.Results,
			Events:  m.ports.Events,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "prediction") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface; nothing is exported
func (m *Module) Ports() any { return nil }
