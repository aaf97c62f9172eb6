package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// FormatLogRegNgram is the only weights format understood today
const FormatLogRegNgram = "logreg-ngram/v1"

const (
	manifestName       = "model.yaml"
	defaultWeightsName = "weights.json"
	maxNgram           = 5
)

// Manifest is the optional model.yaml next to the weights
type Manifest struct {
	Format    string  `yaml:"format"`
	Name      string  `yaml:"name"`
	Weights   string  `yaml:"weights"`
	Threshold float64 `yaml:"threshold"`
	Normalize struct {
		LeetFold  bool `yaml:"leet_fold"`
		MaxRepeat int  `yaml:"max_repeat"`
	} `yaml:"normalize"`
}

// Weights is the serialized logistic regression
type Weights struct {
	Format   string             `json:"format"`
	NgramMax int                `json:"ngram_max"`
	Bias     float64            `json:"bias"`
	Weights  map[string]float64 `json:"weights"`
}

func readManifest(path string) (Manifest, error) {
	var m Manifest
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("parse %s: %w", path, err)
	}
	if m.Format != "" && m.Format != FormatLogRegNgram {
		return m, fmt.Errorf("unsupported model format %q", m.Format)
	}
	if m.Threshold < 0 || m.Threshold > 1 {
		return m, fmt.Errorf("threshold %v outside [0,1]", m.Threshold)
	}
	return m, nil
}

func readWeights(path string) (Weights, error) {
	var w Weights
	raw, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("parse %s: %w", path, err)
	}
	return w, w.validate()
}

func (w Weights) validate() error {
	if w.Format != FormatLogRegNgram {
		return fmt.Errorf("unsupported weights format %q", w.Format)
	}
	if w.NgramMax < 1 || w.NgramMax > maxNgram {
		return fmt.Errorf("ngram_max %d outside 1..%d", w.NgramMax, maxNgram)
	}
	if !finite(w.Bias) {
		return fmt.Errorf("bias is not finite")
	}
	if len(w.Weights) == 0 {
		return fmt.Errorf("no weights")
	}
	for k, v := range w.Weights {
		if !finite(v) {
			return fmt.Errorf("weight %q is not finite", k)
		}
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
