package httpkit

import (
	"net/http"

	phttp "tweetscore/internal/platform/net/http"
)

// MountRoot applies the stack to the root router, installs JSON 404/405 bodies,
// then lets mount register modules at the top level
func MountRoot(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	if len(mw) > 0 {
		r.Use(mw...)
	}
	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)
	mount(r)
}

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
