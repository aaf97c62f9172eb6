// Package api provides the HTTP API for the application
package api

import (
	"context"

	"tweetscore/internal/core/model"
	"tweetscore/internal/platform/config"
	"tweetscore/internal/platform/logger"
	phttp "tweetscore/internal/platform/net/http"
	"tweetscore/internal/platform/store"

	"tweetscore/internal/modkit"
	"tweetscore/internal/modkit/httpkit"
	"tweetscore/internal/modkit/module"
	"tweetscore/internal/modkit/swaggerkit"

	metamod "tweetscore/internal/services/api/meta/module"
	predmod "tweetscore/internal/services/api/prediction/module"
	eventsdom "tweetscore/internal/services/events/domain"
	eventsmod "tweetscore/internal/services/events/module"
	resultsdom "tweetscore/internal/services/results/domain"
	resultsmod "tweetscore/internal/services/results/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Model          *model.Provider
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount builds the modules and mounts them onto the given router.
// A clickhouse table that cannot be created is logged; the api still serves
func Mount(ctx context.Context, r phttp.Router, opt Options) {
	deps := modkit.FromStore(opt.Store, opt.Config, opt.Model)

	// service modules own the ports the http modules consume
	results := resultsmod.New(deps)
	events := eventsmod.New(deps)
	if err := events.Init(ctx); err != nil {
		logger.Named("api").Warn().Err(err).Msg("prediction event table not ensured; mirror writes will fail")
	}

	prediction := predmod.New(deps, modkit.WithPorts(predmod.Ports{
		Results: module.MustPortsOf[resultsdom.WriterPort](results),
		Events:  module.MustPortsOf[eventsdom.RecorderPort](events),
	}))

	apiCfg := opt.Config.Prefix("CORE_API_")
	httpkit.MountRoot(r, httpkit.CommonStack(httpkit.StackOptionsFrom(apiCfg)), func(root httpkit.Router) {
		// Swagger + profiler
		if opt.EnableSwagger {
			swaggerkit.Register(modelDoc(opt.Model))
		}
		swaggerkit.Mount(root, opt.EnableSwagger)
		phttp.MountProfiler(root, "/debug", opt.EnableProfiler)

		module.MountAll(root,
			results,
			events,
			metamod.New(deps),
			prediction,
		)
	})
}

// modelDoc stamps the served model into the spec info as x-model
func modelDoc(p *model.Provider) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		info, ok := spec["info"].(map[string]any)
		if !ok {
			return
		}
		mi := p.Info()
		info["x-model"] = map[string]any{
			"name":   mi.Name,
			"format": mi.Format,
			"loaded": mi.Loaded,
		}
	}
}
