package model

import (
	"context"
	"math"

	"tweetscore/internal/core/normalize"
	perr "tweetscore/internal/platform/errors"
)

// LogReg is a bag-of-ngrams logistic regression; immutable and safe for concurrent use
type LogReg struct {
	norm     *normalize.Normalizer
	ngramMax int
	bias     float64
	weights  map[string]float64
}

// NewLogReg builds a model from validated weights
func NewLogReg(w Weights, opt normalize.Options) (*LogReg, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	cp := make(map[string]float64, len(w.Weights))
	for k, v := range w.Weights {
		cp[k] = v
	}
	return &LogReg{
		norm:     normalize.New(opt),
		ngramMax: w.NgramMax,
		bias:     w.Bias,
		weights:  cp,
	}, nil
}

// Predict scores each single-column row
func (m *LogReg) Predict(ctx context.Context, batch [][]string) ([][]float64, error) {
	out := make([][]float64, len(batch))
	for i, row := range batch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(row) != 1 {
			return nil, perr.Modelf("row %d has %d columns, want 1", i, len(row))
		}
		out[i] = []float64{m.Score(row[0])}
	}
	return out, nil
}

// Score returns the positive-class probability for one text
func (m *LogReg) Score(text string) float64 {
	z := m.bias
	grams := normalize.NGrams(normalize.Tokens(m.norm.Normalize(text)), m.ngramMax)
	for _, g := range grams {
		z += m.weights[g]
	}
	return sigmoid(z)
}

// Features is the vocabulary size
func (m *LogReg) Features() int { return len(m.weights) }

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
