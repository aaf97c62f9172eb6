// Package model holds the text classifier behind the prediction endpoint and
// the reconciler. A Provider is built once at process start and handed to
// whoever scores; a Provider with no model is valid and means "degraded"
package model

import "context"

// Model scores a batch of rows. Every row carries exactly one text column and
// yields one row of outputs; column 0 is the positive-class probability
type Model interface {
	Predict(ctx context.Context, batch [][]string) ([][]float64, error)
}

// Info describes what was (or was not) loaded
type Info struct {
	Loaded    bool    `json:"loaded"`
	Name      string  `json:"name,omitempty"`
	Format    string  `json:"format,omitempty"`
	Path      string  `json:"path,omitempty"`
	NgramMax  int     `json:"ngram_max,omitempty"`
	Features  int     `json:"features,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Provider owns the loaded model for the process lifetime
type Provider struct {
	m    Model
	info Info
}

// Static wraps an already built model
func Static(m Model, info Info) *Provider {
	info.Loaded = m != nil
	return &Provider{m: m, info: info}
}

// Absent is a provider without a model; reason ends up in Info.Error
func Absent(reason string) *Provider {
	return &Provider{info: Info{Error: reason}}
}

// Model returns the model or nil when none was loaded
func (p *Provider) Model() Model {
	if p == nil {
		return nil
	}
	return p.m
}

// Loaded reports whether a model is available
func (p *Provider) Loaded() bool { return p.Model() != nil }

// Info returns a copy of the load metadata
func (p *Provider) Info() Info {
	if p == nil {
		return Info{Error: "no model provider"}
	}
	return p.info
}
