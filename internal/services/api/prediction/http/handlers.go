// Package http provides the tweet scoring endpoint
package http

import (
	"net/http"
	"unicode/utf8"

	"tweetscore/internal/core/inference"
	"tweetscore/internal/core/model"
	"tweetscore/internal/modkit/httpkit"
	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/platform/logger"
	str "tweetscore/internal/platform/strings"
	events "tweetscore/internal/services/events/domain"
	results "tweetscore/internal/services/results/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Model   *model.Provider
	Results results.WriterPort
	Events  events.RecorderPort
}

type handlers struct{ deps Deps }

// Register mounts the prediction routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.PostJSON(r, "/suicide", h.suicide)
}

// TweetRequest is the scoring request body; unknown fields are ignored
// swagger:model
type TweetRequest struct {
	Tweet *string `json:"tweet" validate:"present,max=255" example:"nobody would notice if I was gone"`
}

// PredictionResponse mirrors the persisted resultdata row
// swagger:model
type PredictionResponse struct {
	ID         int64   `json:"id"         example:"42"`
	Tweet      string  `json:"tweet"      example:"nobody would notice if I was gone"`
	Prediction float64 `json:"prediction" example:"0.91"`
}

// swagger:route POST /prediction/suicide Prediction predictSuicide
// @Summary Score a tweet and persist the result
// @Tags Prediction
// @Accept json
// @Produce json
// @Param body body TweetRequest true "tweet to score"
// @Success 200 {object} PredictionResponse
// @Failure 422 {object} perr.Wire
// @Failure 500 {object} perr.Wire
// @Router /prediction/suicide [post]
func (h *handlers) suicide(r *http.Request, in TweetRequest) (any, error) {
	ctx := r.Context()
	text := str.Deref(in.Tweet)

	score, err := inference.Predict(ctx, h.deps.Model.Model(), text)
	if err != nil {
		return nil, err
	}

	res, err := h.deps.Results.Create(ctx, text, score)
	if err != nil {
		// every persistence failure is a plain 500 to the client
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "persist prediction")
	}

	if h.deps.Events != nil {
		h.deps.Events.Record(ctx, events.Event{
			ResultID:   res.ID,
			Source:     events.SourceAPI,
			Prediction: res.Score(),
			TweetChars: utf8.RuneCountInString(res.Tweet),
		})
	}

	logger.C(ctx).Debug().Int64("id", res.ID).Float64("prediction", res.Score()).Msg("tweet scored")

	return PredictionResponse{ID: res.ID, Tweet: res.Tweet, Prediction: res.Score()}, nil
}
