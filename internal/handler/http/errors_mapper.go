package http

import (
	"net/http"

	"github.com/akarimli/tweetline/internal/apperrors"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/utils"
	"github.com/akarimli/tweetline/models"
)

// respondError is the single terminal sink for request failures. Every
// handler and middleware funnels its errors here, so the wire format of a
// failure is decided in exactly one place.
//
// The error is normalized to an [apperrors.Error] first: a recognised
// taxonomy entry passes through, anything else collapses to a generic 500.
// Auth failures render as a bare 401 bearer challenge with an empty body;
// all other kinds render the {title, errors} JSON document with the
// taxonomy-assigned status code.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	appErr := apperrors.FromError(err)

	switch appErr.Kind {
	case apperrors.KindUnexpected, apperrors.KindStorageFailure:
		// the cause never reaches the client, only the log
		log.Err(appErr).Int("status", appErr.Status).Msg("request failed with internal error")
	default:
		log.Debug().Err(appErr).Int("status", appErr.Status).Msg("request rejected")
	}

	if appErr.IsAuthFailure() {
		w.Header().Set("WWW-Authenticate", "Bearer")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Title: appErr.Title, Errors: appErr.Messages}, appErr.Status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}
