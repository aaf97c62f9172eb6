package model

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"tweetscore/internal/core/normalize"
	perr "tweetscore/internal/platform/errors"
	kit "tweetscore/internal/platform/testkit"
)

const weightsJSON = `{
  "format": "logreg-ngram/v1",
  "ngram_max": 2,
  "bias": -2.0,
  "weights": {
    "end": 1.5,
    "it": 0.5,
    "end it": 2.5,
    "hopeless": 2.0,
    "happy": -1.5,
    "<url>": -0.25
  }
}`

func testWeights(t *testing.T) Weights {
	t.Helper()
	return kit.MustDecode[Weights](t, []byte(weightsJSON))
}

func TestLogReg_Score(t *testing.T) {
	t.Parallel()
	m, err := NewLogReg(testWeights(t), normalize.Options{})
	if err != nil {
		t.Fatalf("NewLogReg: %v", err)
	}

	// bias only
	if got, want := m.Score("nothing matches"), sigmoid(-2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("bias-only score = %v want %v", got, want)
	}
	// unigrams + bigram after normalization: end(1.5)+it(0.5)+"end it"(2.5)
	if got, want := m.Score("I want to END   IT"), sigmoid(-2+1.5+0.5+2.5); math.Abs(got-want) > 1e-12 {
		t.Fatalf("ngram score = %v want %v", got, want)
	}
	if hi, lo := m.Score("feeling hopeless"), m.Score("so happy https://t.co/x"); hi <= lo {
		t.Fatalf("expected hopeless > happy: %v <= %v", hi, lo)
	}
	if m.Features() != 6 {
		t.Fatalf("Features = %d", m.Features())
	}
}

func TestLogReg_Predict(t *testing.T) {
	t.Parallel()
	m, err := NewLogReg(testWeights(t), normalize.Options{})
	if err != nil {
		t.Fatalf("NewLogReg: %v", err)
	}

	out, err := m.Predict(context.Background(), [][]string{{"end it"}, {""}})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(out) != 2 || len(out[0]) != 1 || len(out[1]) != 1 {
		t.Fatalf("shape = %v", out)
	}
	for _, row := range out {
		if row[0] < 0 || row[0] > 1 {
			t.Fatalf("score out of range: %v", row[0])
		}
	}

	_, err = m.Predict(context.Background(), [][]string{{"a", "b"}})
	if !perr.IsCode(err, perr.ErrorCodeModel) {
		t.Fatalf("two columns should be a model error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Predict(ctx, [][]string{{"x"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled ctx: %v", err)
	}
}

func TestLogReg_ConcurrentPredict(t *testing.T) {
	t.Parallel()
	m, err := NewLogReg(testWeights(t), normalize.Options{})
	if err != nil {
		t.Fatalf("NewLogReg: %v", err)
	}
	want := m.Score("end it")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := m.Predict(context.Background(), [][]string{{"end it"}})
			if err != nil || out[0][0] != want {
				t.Errorf("concurrent predict = %v %v", out, err)
			}
		}()
	}
	wg.Wait()
}

func TestWeights_Validate(t *testing.T) {
	t.Parallel()
	base := testWeights(t)
	cases := map[string]func(w *Weights){
		"format":      func(w *Weights) { w.Format = "keras" },
		"ngram zero":  func(w *Weights) { w.NgramMax = 0 },
		"ngram large": func(w *Weights) { w.NgramMax = 9 },
		"bias nan":    func(w *Weights) { w.Bias = math.NaN() },
		"empty":       func(w *Weights) { w.Weights = nil },
		"weight inf":  func(w *Weights) { w.Weights = map[string]float64{"x": math.Inf(1)} },
	}
	for name, mut := range cases {
		w := base
		mut(&w)
		if _, err := NewLogReg(w, normalize.Options{}); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestSigmoid_Extremes(t *testing.T) {
	t.Parallel()
	for _, z := range []float64{-1000, -50, 0, 50, 1000} {
		s := sigmoid(z)
		if math.IsNaN(s) || s < 0 || s > 1 {
			t.Fatalf("sigmoid(%v) = %v", z, s)
		}
	}
	if sigmoid(0) != 0.5 {
		t.Fatalf("sigmoid(0) = %v", sigmoid(0))
	}
}

func TestProvider(t *testing.T) {
	t.Parallel()

	var nilP *Provider
	if nilP.Model() != nil || nilP.Loaded() || nilP.Info().Error == "" {
		t.Fatal("nil provider should be absent")
	}

	a := Absent("boom")
	if a.Loaded() || a.Info().Error != "boom" || a.Info().Loaded {
		t.Fatalf("Absent = %+v", a.Info())
	}

	m, _ := NewLogReg(testWeights(t), normalize.Options{})
	s := Static(m, Info{Name: "x"})
	if !s.Loaded() || !s.Info().Loaded || s.Model() == nil {
		t.Fatalf("Static = %+v", s.Info())
	}
	if Static(nil, Info{}).Loaded() {
		t.Fatal("Static(nil) should not report loaded")
	}
}

func writeArtifact(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	for name, body := range files {
		kit.WriteFile(t, dir, name, body)
	}
	return dir
}

func TestLoad_Layouts(t *testing.T) {
	t.Parallel()

	t.Run("directory with manifest", func(t *testing.T) {
		dir := writeArtifact(t, t.TempDir(), map[string]string{
			"model.yaml":   "format: logreg-ngram/v1\nname: suicide-tweets\nweights: w.json\nthreshold: 0.5\n",
			"w.json":       weightsJSON,
			"weights.json": `{"format":"nope"}`,
		})
		p := Load(dir)
		if !p.Loaded() {
			t.Fatalf("not loaded: %+v", p.Info())
		}
		info := p.Info()
		if info.Name != "suicide-tweets" || info.NgramMax != 2 || info.Features != 6 || info.Threshold != 0.5 || info.Path != dir {
			t.Fatalf("info = %+v", info)
		}
	})

	t.Run("directory without manifest", func(t *testing.T) {
		dir := writeArtifact(t, t.TempDir(), map[string]string{"weights.json": weightsJSON})
		p := Load(dir)
		if !p.Loaded() {
			t.Fatalf("not loaded: %+v", p.Info())
		}
	})

	t.Run("single json", func(t *testing.T) {
		path := kit.WriteFile(t, t.TempDir(), "suicide.json", weightsJSON)
		p := Load(path)
		if !p.Loaded() || p.Info().Name != "suicide" {
			t.Fatalf("info = %+v", p.Info())
		}
	})

	t.Run("single yaml manifest", func(t *testing.T) {
		dir := writeArtifact(t, t.TempDir(), map[string]string{
			"weights.json": weightsJSON,
			"clf.yml":      "name: clf\nnormalize:\n  leet_fold: true\n",
		})
		p := Load(filepath.Join(dir, "clf.yml"))
		if !p.Loaded() || p.Info().Name != "clf" {
			t.Fatalf("info = %+v", p.Info())
		}
	})
}

func TestLoad_FailuresBecomeAbsent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cases := map[string]string{
		"blank":          "  ",
		"missing":        filepath.Join(dir, "nope"),
		"bad json":       kit.WriteFile(t, dir, "bad.json", "{"),
		"wrong ext":      kit.WriteFile(t, dir, "model.h5", "binary"),
		"bad yaml":       kit.WriteFile(t, dir, "bad.yaml", "format: [unterminated"),
		"foreign format": kit.WriteFile(t, dir, "keras.yaml", "format: keras-savedmodel\n"),
		"bad threshold":  kit.WriteFile(t, dir, "t.yaml", "threshold: 3\n"),
		"dir w/o weights": func() string {
			d := filepath.Join(dir, "empty")
			kit.WriteFile(t, d, "README", "x")
			return d
		}(),
	}
	for name, path := range cases {
		var p *Provider
		kit.MustNotPanic(t, func() { p = Load(path) })
		if p.Loaded() {
			t.Fatalf("%s: should not load", name)
		}
		if p.Info().Error == "" {
			t.Fatalf("%s: reason missing", name)
		}
	}
}
