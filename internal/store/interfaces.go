package store

import (
	"context"

	"github.com/akarimli/tweetline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides access to user account records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TweetRepository provides access to tweet records.
type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	ListTweets(ctx context.Context) ([]models.Tweet, error)
	ListTweetsByUserID(ctx context.Context, userID int64) ([]models.Tweet, error)
	FindTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error)
	UpdateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are driver-specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
