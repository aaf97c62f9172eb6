// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "tweetscore/internal/platform/net/http"
)

// Module defines the minimal contract used by modkit
// keep this sibling to avoid import knots when a module also exports its own ports type
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// MountAll registers each module's ports under its name and mounts its routes, in order
func MountAll(r phttp.Router, mods ...Module) {
	for _, m := range mods {
		if m == nil {
			continue
		}
		Register(m.Name(), m.Ports())
		m.MountRoutes(r)
	}
}
