package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akarimli/tweetline/internal/apperrors"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/store"
	"github.com/akarimli/tweetline/internal/utils"
	"github.com/akarimli/tweetline/internal/validators"
	"github.com/akarimli/tweetline/models"
)

// tweetRequest is the JSON body of POST /api/tweets and PUT /api/tweets/{id}.
type tweetRequest struct {
	Message string `json:"message"`
}

func (h *Handler) listTweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tweets, err := h.services.TweetService.ListTweets(ctx)
	if err != nil {
		h.respondError(w, r, apperrors.StorageFailure(err))
		return
	}

	if _, err := utils.WriteJSON(w, models.TweetsResponse{Tweets: tweets}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing tweets response")
	}
}

func (h *Handler) getTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "id")
	tweetID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.respondError(w, r, apperrors.ResourceNotFound("Tweet", rawID))
		return
	}

	tweet, err := h.services.TweetService.GetTweet(ctx, tweetID)
	if err != nil {
		if errors.Is(err, store.ErrTweetNotFound) {
			h.respondError(w, r, apperrors.ResourceNotFound("Tweet", rawID))
			return
		}
		h.respondError(w, r, apperrors.StorageFailure(err))
		return
	}

	if _, err := utils.WriteJSON(w, models.TweetResponse{Tweet: tweet}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing tweet response")
	}
}

func (h *Handler) createTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		req = tweetRequest{}
	}

	rules := validators.NewTweetRules(h.messageMaxLength)
	if messages := rules.Validate(map[string]string{
		validators.FieldMessage: req.Message,
	}); len(messages) > 0 {
		h.respondError(w, r, apperrors.ValidationFailed(messages))
		return
	}

	user, ok := utils.UserFromContext(ctx)
	if !ok {
		h.respondError(w, r, apperrors.AuthMissing())
		return
	}

	if _, err := h.services.TweetService.CreateTweet(ctx, user, req.Message); err != nil {
		h.respondError(w, r, apperrors.StorageFailure(err))
		return
	}

	// the accepted message text is echoed back, not the full record
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: req.Message}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing tweet creation response")
	}
}

func (h *Handler) updateTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "id")
	tweetID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.respondError(w, r, apperrors.ResourceNotFound("Tweet", rawID))
		return
	}

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		req = tweetRequest{}
	}

	rules := validators.NewTweetRules(h.messageMaxLength)
	if messages := rules.Validate(map[string]string{
		validators.FieldMessage: req.Message,
	}); len(messages) > 0 {
		h.respondError(w, r, apperrors.ValidationFailed(messages))
		return
	}

	user, ok := utils.UserFromContext(ctx)
	if !ok {
		h.respondError(w, r, apperrors.AuthMissing())
		return
	}

	tweet, err := h.services.TweetService.UpdateTweet(ctx, user, tweetID, req.Message)
	if err != nil {
		if errors.Is(err, store.ErrTweetNotFound) {
			h.respondError(w, r, apperrors.ResourceNotFound("Tweet", rawID))
			return
		}
		h.respondError(w, r, apperrors.StorageFailure(err))
		return
	}

	if _, err := utils.WriteJSON(w, models.TweetResponse{Tweet: tweet}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing tweet update response")
	}
}

func (h *Handler) deleteTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rawID := chi.URLParam(r, "id")
	tweetID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.respondError(w, r, apperrors.ResourceNotFound("Tweet", rawID))
		return
	}

	if err := h.services.TweetService.DeleteTweet(ctx, tweetID); err != nil {
		if errors.Is(err, store.ErrTweetNotFound) {
			h.respondError(w, r, apperrors.ResourceNotFound("Tweet", rawID))
			return
		}
		h.respondError(w, r, apperrors.StorageFailure(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
