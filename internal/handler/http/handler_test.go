package http

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/akarimli/tweetline/internal/config"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/service"
	"github.com/akarimli/tweetline/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	restoreUserFn  func(ctx context.Context, token models.Token) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) RestoreUser(ctx context.Context, token models.Token) (models.User, error) {
	return m.restoreUserFn(ctx, token)
}

// ─────────────────────────────────────────────
// Mock TweetService
// ─────────────────────────────────────────────

// mockTweetService implements service.TweetService for unit tests.
type mockTweetService struct {
	createTweetFn        func(ctx context.Context, user models.User, message string) (models.Tweet, error)
	listTweetsFn         func(ctx context.Context) ([]models.Tweet, error)
	listTweetsByUserIDFn func(ctx context.Context, userID int64) ([]models.Tweet, error)
	getTweetFn           func(ctx context.Context, tweetID int64) (models.Tweet, error)
	updateTweetFn        func(ctx context.Context, user models.User, tweetID int64, message string) (models.Tweet, error)
	deleteTweetFn        func(ctx context.Context, tweetID int64) error
}

func (m *mockTweetService) CreateTweet(ctx context.Context, user models.User, message string) (models.Tweet, error) {
	return m.createTweetFn(ctx, user, message)
}

func (m *mockTweetService) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	return m.listTweetsFn(ctx)
}

func (m *mockTweetService) ListTweetsByUserID(ctx context.Context, userID int64) ([]models.Tweet, error) {
	return m.listTweetsByUserIDFn(ctx, userID)
}

func (m *mockTweetService) GetTweet(ctx context.Context, tweetID int64) (models.Tweet, error) {
	return m.getTweetFn(ctx, tweetID)
}

func (m *mockTweetService) UpdateTweet(ctx context.Context, user models.User, tweetID int64, message string) (models.Tweet, error) {
	return m.updateTweetFn(ctx, user, tweetID, message)
}

func (m *mockTweetService) DeleteTweet(ctx context.Context, tweetID int64) error {
	return m.deleteTweetFn(ctx, tweetID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler wires a Handler around the given mock services, with the
// default 280-character message ceiling and a no-op logger.
func newTestHandler(authSvc service.AuthService, tweetSvc service.TweetService) *Handler {
	services := &service.Services{
		AuthService:  authSvc,
		TweetService: tweetSvc,
	}
	return NewHandler(services, config.Rules{MessageMaxLength: 280}, logger.Nop())
}

// restoringAuthService returns a mock AuthService whose ParseToken and
// RestoreUser succeed for any token, restoring the given user.
func restoringAuthService(user models.User) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{UserID: user.UserID}, nil
		},
		restoreUserFn: func(ctx context.Context, token models.Token) (models.User, error) {
			return user, nil
		},
	}
}

// doRequest routes req through the full middleware chain and records the
// response.
func doRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
