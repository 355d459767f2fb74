package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akarimli/tweetline/internal/apperrors"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/utils"
	"github.com/akarimli/tweetline/models"
)

// listUserTweets returns all tweets authored by the user named in the path.
// The path id is deliberately not checked against the authenticated caller:
// any logged-in user may read any user's tweets, and an unknown id yields an
// empty list rather than a 404.
func (h *Handler) listUserTweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "id")
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.respondError(w, r, apperrors.ResourceNotFound("User", rawID))
		return
	}

	tweets, err := h.services.TweetService.ListTweetsByUserID(ctx, userID)
	if err != nil {
		h.respondError(w, r, apperrors.StorageFailure(err))
		return
	}

	if _, err := utils.WriteJSON(w, models.TweetsResponse{Tweets: tweets}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user tweets response")
	}
}
