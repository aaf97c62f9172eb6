// Package module implements the prediction events module
package module

import (
	"context"
	"time"

	"tweetscore/internal/modkit"
	"tweetscore/internal/modkit/httpkit"
	"tweetscore/internal/services/events/domain"
	"tweetscore/internal/services/events/repo"
	"tweetscore/internal/services/events/service"
)

// Ports exposed by the events module
type Ports struct {
	Recorder domain.RecorderPort
}

// Module implements modkit.Module; it has no routes
type Module struct {
	repo  *repo.CH
	ports Ports
}

// New constructs the events module; without clickhouse the recorder is a no-op
func New(deps modkit.Deps) *Module {
	var r *repo.CH
	if deps.CH != nil {
		r = repo.NewCH(deps.CH)
	}
	timeout := deps.Cfg.Prefix("SERVICE_CLICKHOUSE_").MayDuration("WRITE_TIMEOUT", 2*time.Second)
	return &Module{repo: r, ports: Ports{Recorder: service.New(r, timeout)}}
}

// Init creates the events table when clickhouse is configured
func (m *Module) Init(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.EnsureTable(ctx)
}

// Name implements modkit.Module
func (m *Module) Name() string { return "events" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
