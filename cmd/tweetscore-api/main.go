// @title         tweetscore API
// @version       0.1.0
// @description   Scores tweets for suicide risk and stores every prediction

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tweetscore/internal/core/model"
	"tweetscore/internal/core/version"
	"tweetscore/internal/platform/config"
	"tweetscore/internal/platform/logger"
	phttp "tweetscore/internal/platform/net/http"
	"tweetscore/internal/platform/store"

	"tweetscore/internal/services/api"
	"tweetscore/internal/services/schema"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()
	l.Info().Str("build", version.Info("tweetscore-api").String()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// a missing DATABASE_URL panics here; the service cannot run without it
	st, err := store.Open(ctx, store.FromEnv(root, "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// sql was pinged by Open; this reports the optional clickhouse mirror too
	if err := st.Guard(ctx); err != nil {
		l.Warn().Err(err).Msg("dependency check failed; continuing")
	}

	if err := schema.Ensure(ctx, st.SQL, st.Dialect); err != nil {
		l.Panic().Err(err).Msg("schema bootstrap failed")
	}

	// loaded once; an unusable artifact leaves the api up without scoring
	m := model.Load(root.MayString("MODEL_FILE_PATH", ""))
	if !m.Loaded() {
		l.Warn().Str("reason", m.Info().Error).Msg("serving degraded: prediction requests will fail")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Model:          m,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	// run until SIGINT/SIGTERM, then drain
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
