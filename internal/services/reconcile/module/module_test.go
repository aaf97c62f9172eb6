package module

import (
	"context"
	"testing"
	"time"

	"tweetscore/internal/core/model"
	"tweetscore/internal/modkit"
	"tweetscore/internal/platform/config"
	pendingdom "tweetscore/internal/services/pending/domain"
	"tweetscore/internal/services/reconcile/domain"
	resultsdom "tweetscore/internal/services/results/domain"
)

type nonePending struct{}

func (nonePending) Unscored(context.Context) ([]pendingdom.Input, error) { return nil, nil }

type noResults struct{}

func (noResults) Create(context.Context, string, float64) (resultsdom.Result, error) {
	return resultsdom.Result{}, nil
}

func (noResults) CreateFor(context.Context, int64, string, float64) (resultsdom.Result, error) {
	return resultsdom.Result{}, nil
}

type zeroModel struct{}

func (zeroModel) Predict(context.Context, [][]string) ([][]float64, error) {
	return [][]float64{{0}}, nil
}

func TestFromConfig(t *testing.T) {
	if got := FromConfig(config.New()).Timeout; got != 0 {
		t.Fatalf("default timeout = %v", got)
	}
	t.Setenv("CORE_RECONCILE_TIMEOUT", "45s")
	if got := FromConfig(config.New()).Timeout; got != 45*time.Second {
		t.Fatalf("timeout = %v", got)
	}
}

func TestNew_ExposesRunner(t *testing.T) {
	m := New(
		modkit.Deps{Model: model.Static(zeroModel{}, model.Info{})},
		Options{},
		modkit.WithPorts(domain.Ports{Pending: nonePending{}, Results: noResults{}}),
	)
	if m.Name() != "reconcile" {
		t.Fatalf("name = %q", m.Name())
	}
	rep, err := m.Ports().(Ports).Runner.RunOnce(context.Background())
	if err != nil || rep.Outcome != domain.OutcomeIdle {
		t.Fatalf("run = %+v, %v", rep, err)
	}
}
