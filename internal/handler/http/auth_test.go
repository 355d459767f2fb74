package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarimli/tweetline/internal/service"
	"github.com/akarimli/tweetline/internal/store"
	"github.com/akarimli/tweetline/models"
)

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// tokenIssuingAuthService returns a mock whose CreateToken yields a fixed
// signed string.
func tokenIssuingAuthService() *mockAuthService {
	return &mockAuthService{
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
		},
	}
}

// ── register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	authSvc := tokenIssuingAuthService()
	authSvc.registerUserFn = func(ctx context.Context, user models.User, password string) (models.User, error) {
		assert.Equal(t, "john", user.Username)
		assert.Equal(t, "john@example.com", user.Email)
		assert.Equal(t, "secret", password)
		user.UserID = 7
		return user, nil
	}
	h := newTestHandler(authSvc, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users",
		`{"username":"john","email":"john@example.com","password":"secret"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token","user":{"id":7}}`, rec.Body.String())
}

func TestRegister_AllRulesEvaluated(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users", `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bad request.", resp.Title)
	// every violated rule contributes its message, in declaration order
	assert.Equal(t, []string{
		"Please provide a username",
		"Please provide a valid email.",
		"Please provide a valid email.",
		"Please provide a password.",
	}, resp.Errors)
}

func TestRegister_InvalidEmailShape(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users",
		`{"username":"john","email":"not-an-email","password":"secret"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"title":"Bad request.","errors":["Please provide a valid email."]}`, rec.Body.String())
}

func TestRegister_MalformedJSON(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users", `{not json`))

	// an unreadable body is treated as an empty one and fails validation
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bad request.", resp.Title)
	assert.NotEmpty(t, resp.Errors)
}

func TestRegister_EmailTaken(t *testing.T) {
	authSvc := &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User, password string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyTaken
		},
	}
	h := newTestHandler(authSvc, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users",
		`{"username":"john","email":"john@example.com","password":"secret"}`))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Email is already in use.", resp.Title)
}

// ── login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	authSvc := tokenIssuingAuthService()
	authSvc.loginFn = func(ctx context.Context, email, password string) (models.User, error) {
		assert.Equal(t, "john@example.com", email)
		assert.Equal(t, "secret", password)
		return models.User{UserID: 7, Username: "john", Email: email}, nil
	}
	h := newTestHandler(authSvc, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users/token",
		`{"email":"john@example.com","password":"secret"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token","user":{"id":7}}`, rec.Body.String())
}

func TestLogin_WrongPassword(t *testing.T) {
	authSvc := &mockAuthService{
		loginFn: func(ctx context.Context, email, password string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newTestHandler(authSvc, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users/token",
		`{"email":"john@example.com","password":"wrong"}`))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"title":"Login failed","errors":["The provided credentials were invalid."]}`, rec.Body.String())
}

func TestLogin_UnknownEmail(t *testing.T) {
	authSvc := &mockAuthService{
		loginFn: func(ctx context.Context, email, password string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(authSvc, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users/token",
		`{"email":"ghost@example.com","password":"secret"}`))

	// unknown email and wrong password produce identical responses
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"title":"Login failed","errors":["The provided credentials were invalid."]}`, rec.Body.String())
}

func TestLogin_MissingCredentials(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockTweetService{})

	rec := doRequest(h, jsonRequest(t, http.MethodPost, "/api/users/token", `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		"Please provide a valid email.",
		"Please provide a valid email.",
		"Please provide a password.",
	}, resp.Errors)
}
