package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/akarimli/tweetline/internal/config"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/mock"
	"github.com/akarimli/tweetline/internal/service"
	"github.com/akarimli/tweetline/internal/store"
	"github.com/akarimli/tweetline/models"
)

// newE2EServer wires real services (real JWT signing, real bcrypt) over
// in-memory repositories and serves them through the full middleware chain.
func newE2EServer(t *testing.T) (*httptest.Server, *resty.Client) {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mock.NewMockUserRepository(ctrl)
	tweets := mock.NewMockTweetRepository(ctrl)

	// in-memory state behind the repository mocks
	var (
		usersByID    = map[int64]models.User{}
		usersByEmail = map[string]models.User{}
		tweetsByID   = map[int64]models.Tweet{}
		nextUserID   = int64(1)
		nextTweetID  = int64(1)
	)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			if _, taken := usersByEmail[u.Email]; taken {
				return models.User{}, store.ErrEmailAlreadyTaken
			}
			u.UserID = nextUserID
			u.CreatedAt = time.Now()
			nextUserID++
			usersByID[u.UserID] = u
			usersByEmail[u.Email] = u
			return u, nil
		},
	).AnyTimes()
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email string) (models.User, error) {
			u, ok := usersByEmail[email]
			if !ok {
				return models.User{}, store.ErrNoUserWasFound
			}
			return u, nil
		},
	).AnyTimes()
	users.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (models.User, error) {
			u, ok := usersByID[id]
			if !ok {
				return models.User{}, store.ErrNoUserWasFound
			}
			return u, nil
		},
	).AnyTimes()

	tweets.EXPECT().CreateTweet(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tw models.Tweet) (models.Tweet, error) {
			tw.TweetID = nextTweetID
			tw.CreatedAt = time.Now()
			tw.UpdatedAt = tw.CreatedAt
			nextTweetID++
			tweetsByID[tw.TweetID] = tw
			return tw, nil
		},
	).AnyTimes()
	tweets.EXPECT().FindTweetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (models.Tweet, error) {
			tw, ok := tweetsByID[id]
			if !ok {
				return models.Tweet{}, store.ErrTweetNotFound
			}
			return tw, nil
		},
	).AnyTimes()
	tweets.EXPECT().ListTweets(gomock.Any()).DoAndReturn(
		func(_ context.Context) ([]models.Tweet, error) {
			all := make([]models.Tweet, 0, len(tweetsByID))
			for _, tw := range tweetsByID {
				all = append(all, tw)
			}
			return all, nil
		},
	).AnyTimes()

	cfg := config.StructuredConfig{
		Auth: config.Auth{
			TokenSignKey:  "e2e-sign-key",
			TokenIssuer:   "tweetline",
			TokenDuration: time.Hour,
			BcryptCost:    bcrypt.MinCost,
		},
		Server: config.Server{HTTPAddress: ":0"},
		Rules:  config.Rules{MessageMaxLength: 280},
	}

	storages := &store.Storages{UserRepository: users, TweetRepository: tweets}
	services := service.NewServices(storages, cfg, logger.Nop())
	h := NewHandler(services, cfg.Rules, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	client := resty.New().SetBaseURL(srv.URL)
	return srv, client
}

func TestE2E_RegisterLoginTweetFlow(t *testing.T) {
	_, client := newE2EServer(t)

	// register
	var registered models.AuthResponse
	resp, err := client.R().
		SetBody(map[string]string{"username": "john", "email": "john@example.com", "password": "secret"}).
		SetResult(&registered).
		Post("/api/users")
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode())
	require.NotEmpty(t, registered.Token)
	assert.Equal(t, int64(1), registered.User.ID)

	// duplicate registration is rejected
	resp, err = client.R().
		SetBody(map[string]string{"username": "john", "email": "john@example.com", "password": "secret"}).
		Post("/api/users")
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode())

	// login with the same credentials
	var loggedIn models.AuthResponse
	resp, err = client.R().
		SetBody(map[string]string{"email": "john@example.com", "password": "secret"}).
		SetResult(&loggedIn).
		Post("/api/users/token")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	require.NotEmpty(t, loggedIn.Token)

	// create a tweet with the issued token
	resp, err = client.R().
		SetAuthToken(loggedIn.Token).
		SetBody(map[string]string{"message": "hello world"}).
		Post("/api/tweets")
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode())
	assert.JSONEq(t, `{"message":"hello world"}`, string(resp.Body()))

	// read it back
	var got models.TweetResponse
	resp, err = client.R().
		SetAuthToken(loggedIn.Token).
		SetResult(&got).
		Get("/api/tweets/1")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "hello world", got.Tweet.Message)
	assert.Equal(t, "john", got.Tweet.Username)
}

func TestE2E_ProtectedRouteWithoutToken(t *testing.T) {
	_, client := newE2EServer(t)

	resp, err := client.R().Get("/api/tweets")
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode())
	assert.Equal(t, "Bearer", resp.Header().Get("WWW-Authenticate"))
	assert.Empty(t, resp.Body())
}

func TestE2E_WrongPassword(t *testing.T) {
	_, client := newE2EServer(t)

	resp, err := client.R().
		SetBody(map[string]string{"username": "john", "email": "john@example.com", "password": "secret"}).
		Post("/api/users")
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode())

	resp, err = client.R().
		SetBody(map[string]string{"email": "john@example.com", "password": "wrong"}).
		Post("/api/users/token")
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode())
	assert.JSONEq(t, `{"title":"Login failed","errors":["The provided credentials were invalid."]}`, string(resp.Body()))
}
