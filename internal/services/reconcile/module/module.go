// Package module implements the reconcile module
package module

import (
	"tweetscore/internal/modkit"
	"tweetscore/internal/modkit/httpkit"
	"tweetscore/internal/services/reconcile/domain"
	"tweetscore/internal/services/reconcile/service"
)

// Ports exposed by the reconcile module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module; it has no routes
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the reconciler with ports injected via modkit.WithPorts(domain.Ports{...})
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) *Module {
	b := modkit.Build(mopts...)
	in, _ := b.Ports.(domain.Ports)
	svc := service.New(deps.Model, in, service.Config{Timeout: opts.Timeout})
	return &Module{deps: deps, ports: Ports{Runner: svc}}
}

// Name implements modkit.Module
func (m *Module) Name() string { return "reconcile" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
