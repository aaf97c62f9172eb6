// Package module implements the results module
package module

import (
	"tweetscore/internal/modkit"
	"tweetscore/internal/modkit/httpkit"
	"tweetscore/internal/services/results/domain"
	"tweetscore/internal/services/results/repo"
	"tweetscore/internal/services/results/service"
)

// Ports exposed by the results module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements modkit.Module; it has no routes
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new results module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.SQL, repo.New(deps.Dialect))
	return &Module{deps: deps, ports: Ports{Writer: svc, Query: svc}}
}

// Name implements modkit.Module
func (m *Module) Name() string { return "results" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
