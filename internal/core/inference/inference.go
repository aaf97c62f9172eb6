// Package inference shapes one text into a model batch and pulls the score back out
package inference

import (
	"context"
	"math"

	"tweetscore/internal/core/model"
	perr "tweetscore/internal/platform/errors"
)

// ErrNoModel is returned when scoring is attempted without a loaded model
var ErrNoModel = perr.New(perr.ErrorCodeModel, "model not loaded")

// Predict scores text as the batch [[text]] and returns out[0][0].
// The score must be a finite probability
func Predict(ctx context.Context, m model.Model, text string) (float64, error) {
	if m == nil {
		return 0, ErrNoModel
	}
	out, err := m.Predict(ctx, [][]string{{text}})
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeModel) {
			return 0, err
		}
		return 0, perr.Wrap(err, perr.ErrorCodeModel, "prediction failed")
	}
	if len(out) == 0 || len(out[0]) == 0 {
		return 0, perr.Modelf("model returned an empty batch")
	}
	score := out[0][0]
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 || score > 1 {
		return 0, perr.Modelf("model returned %v, want a probability", score)
	}
	return score, nil
}
