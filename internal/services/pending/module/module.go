// Package module implements the pending inputs module
package module

import (
	"tweetscore/internal/modkit"
	"tweetscore/internal/modkit/httpkit"
	"tweetscore/internal/services/pending/domain"
	"tweetscore/internal/services/pending/repo"
	"tweetscore/internal/services/pending/service"
)

// Ports exposed by the pending module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements modkit.Module; it has no routes
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new pending module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.SQL, repo.New())
	return &Module{deps: deps, ports: Ports{Writer: svc, Query: svc}}
}

// Name implements modkit.Module
func (m *Module) Name() string { return "pending" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
