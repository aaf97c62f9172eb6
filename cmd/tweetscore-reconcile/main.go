// Command tweetscore-reconcile scores the first pending tweet that has no
// result yet and exits. Run it from a scheduler; each run writes at most one row
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"tweetscore/internal/core/model"
	"tweetscore/internal/modkit"
	"tweetscore/internal/modkit/module"
	"tweetscore/internal/platform/config"
	"tweetscore/internal/platform/logger"
	"tweetscore/internal/platform/store"
	"tweetscore/internal/services/schema"

	eventsmod "tweetscore/internal/services/events/module"
	pendingmod "tweetscore/internal/services/pending/module"
	recdom "tweetscore/internal/services/reconcile/domain"
	recmod "tweetscore/internal/services/reconcile/module"
	resultsmod "tweetscore/internal/services/results/module"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := config.New()
	l := logger.Named("reconcile")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// fail fast: no model means nothing can be scored, so the store is never opened
	m := model.Load(root.MayString("MODEL_FILE_PATH", ""))
	if !m.Loaded() {
		l.Error().Str("reason", m.Info().Error).Msg("no model loaded; refusing to reconcile")
		return 1
	}

	st, err := store.Open(ctx, store.FromEnv(root, "reconcile"), store.WithLogger(*logger.Get()))
	if err != nil {
		if interrupted(ctx) {
			return 0
		}
		l.Error().Err(err).Msg("store.Open failed")
		return 1
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := schema.Ensure(ctx, st.SQL, st.Dialect); err != nil {
		l.Error().Err(err).Msg("schema bootstrap failed")
		return 1
	}

	deps := modkit.FromStore(st, root, m)

	// Build dependency modules first
	pm := pendingmod.New(deps)
	rm := resultsmod.New(deps)
	em := eventsmod.New(deps)
	if err := em.Init(ctx); err != nil {
		l.Warn().Err(err).Msg("prediction event table not ensured")
	}

	// Register ports so the reconciler resolves its dependencies by name
	for _, mod := range []module.Module{pm, rm, em} {
		module.Register(mod.Name(), mod.Ports())
	}
	pp, _ := module.PortsAs[pendingmod.Ports](pm.Name())
	rp, _ := module.PortsAs[resultsmod.Ports](rm.Name())
	ep, _ := module.PortsAs[eventsmod.Ports](em.Name())
	l.Debug().Strs("modules", module.Names()).Msg("ports registered")

	rc := recmod.New(deps, recmod.FromConfig(root), modkit.WithPorts(recdom.Ports{
		Pending: pp.Query,
		Results: rp.Writer,
		Events:  ep.Recorder,
	}))

	rep, err := module.MustPortsOf[recmod.Ports](rc).Runner.RunOnce(ctx)
	if err != nil {
		if interrupted(ctx) {
			l.Warn().Str("run_id", rep.RunID).Msg("interrupted; nothing written")
			return 0
		}
		l.Error().Err(err).Str("run_id", rep.RunID).Int64("input_id", rep.InputID).Msg("reconcile failed")
		return 1
	}
	l.Info().
		Str("run_id", rep.RunID).
		Str("outcome", string(rep.Outcome)).
		Int("pending", rep.Pending).
		Dur("took", rep.Took).
		Msg("reconcile done")
	return 0
}

// interrupted reports whether the run stopped because of SIGINT/SIGTERM
func interrupted(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled)
}
