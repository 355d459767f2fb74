package service

import (
	"context"

	"github.com/akarimli/tweetline/models"
)

// AuthService covers the account lifecycle: registration, credential
// verification and the JWT token round-trip used to restore a session on
// subsequent requests.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	RestoreUser(ctx context.Context, token models.Token) (models.User, error)
}

// TweetService covers tweet reads and writes on behalf of an authenticated
// user.
type TweetService interface {
	CreateTweet(ctx context.Context, user models.User, message string) (models.Tweet, error)
	ListTweets(ctx context.Context) ([]models.Tweet, error)
	ListTweetsByUserID(ctx context.Context, userID int64) ([]models.Tweet, error)
	GetTweet(ctx context.Context, tweetID int64) (models.Tweet, error)
	UpdateTweet(ctx context.Context, user models.User, tweetID int64, message string) (models.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID int64) error
}
