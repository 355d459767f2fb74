package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarimli/tweetline/internal/apperrors"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/service"
	"github.com/akarimli/tweetline/internal/store"
	"github.com/akarimli/tweetline/internal/utils"
	"github.com/akarimli/tweetline/internal/validators"
	"github.com/akarimli/tweetline/models"
)

// registerRequest is the JSON body of POST /api/users.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the JSON body of POST /api/users/token.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		req = registerRequest{} // fall through: empty fields fail validation below
	}

	rules := validators.NewRegistrationRules()
	if messages := rules.Validate(map[string]string{
		validators.FieldUsername: req.Username,
		validators.FieldEmail:    req.Email,
		validators.FieldPassword: req.Password,
	}); len(messages) > 0 {
		h.respondError(w, r, apperrors.ValidationFailed(messages))
		return
	}

	user := models.User{Username: req.Username, Email: req.Email}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyTaken):
			h.respondError(w, r, apperrors.EmailTaken())
		default:
			h.respondError(w, r, apperrors.StorageFailure(err))
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, apperrors.Unexpected(err))
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	if _, err := utils.WriteJSON(w, models.AuthResponse{
		Token: token.String(),
		User:  models.UserResponse{ID: registeredUser.UserID},
	}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing registration response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		req = loginRequest{}
	}

	rules := validators.NewCredentialRules()
	if messages := rules.Validate(map[string]string{
		validators.FieldEmail:    req.Email,
		validators.FieldPassword: req.Password,
	}); len(messages) > 0 {
		h.respondError(w, r, apperrors.ValidationFailed(messages))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			// unknown email and wrong password are deliberately indistinguishable
			h.respondError(w, r, apperrors.CredentialsInvalid())
		default:
			h.respondError(w, r, apperrors.StorageFailure(err))
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, apperrors.Unexpected(err))
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	if _, err := utils.WriteJSON(w, models.AuthResponse{
		Token: token.String(),
		User:  models.UserResponse{ID: foundUser.UserID},
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}
