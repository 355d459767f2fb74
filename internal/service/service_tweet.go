package service

import (
	"context"
	"fmt"

	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/store"
	"github.com/akarimli/tweetline/models"
)

// tweetService is the concrete implementation of TweetService. It is a thin
// orchestration layer over the TweetRepository: message content rules are
// enforced at the transport boundary, ownership of the authenticated user is
// stamped here.
type tweetService struct {
	tweetRepository store.TweetRepository
	logger          *logger.Logger
}

// NewTweetService constructs a TweetService over the given repository.
func NewTweetService(tweetRepository store.TweetRepository, logger *logger.Logger) TweetService {
	return &tweetService{
		tweetRepository: tweetRepository,
		logger:          logger,
	}
}

// CreateTweet persists a new tweet authored by user.
//
// Returns ErrInvalidDataProvided if message is empty after transport-level
// validation was bypassed, otherwise the persisted tweet or a wrapped
// storage error.
func (s *tweetService) CreateTweet(ctx context.Context, user models.User, message string) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	if message == "" {
		log.Error().Int64("user_id", user.UserID).Msg("empty tweet message provided")
		return models.Tweet{}, ErrInvalidDataProvided
	}

	tweet := models.Tweet{
		UserID:   user.UserID,
		Message:  message,
		Username: user.Username,
	}

	created, err := s.tweetRepository.CreateTweet(ctx, tweet)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("tweet creation ended with error")
		return models.Tweet{}, fmt.Errorf("tweet creation ended with error: %w", err)
	}

	return created, nil
}

// ListTweets returns every tweet, newest first.
func (s *tweetService) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	tweets, err := s.tweetRepository.ListTweets(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("tweet listing ended with error")
		return nil, fmt.Errorf("tweet listing ended with error: %w", err)
	}

	return tweets, nil
}

// ListTweetsByUserID returns all tweets authored by the given user, newest
// first. An unknown user yields an empty list, not an error.
func (s *tweetService) ListTweetsByUserID(ctx context.Context, userID int64) ([]models.Tweet, error) {
	tweets, err := s.tweetRepository.ListTweetsByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("tweet listing by user ended with error")
		return nil, fmt.Errorf("tweet listing by user ended with error: %w", err)
	}

	return tweets, nil
}

// GetTweet returns the tweet with the given ID. A missing tweet surfaces the
// repository's store.ErrTweetNotFound for the caller to map.
func (s *tweetService) GetTweet(ctx context.Context, tweetID int64) (models.Tweet, error) {
	tweet, err := s.tweetRepository.FindTweetByID(ctx, tweetID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("tweet_id", tweetID).Msg("tweet lookup ended with error")
		return models.Tweet{}, fmt.Errorf("tweet lookup ended with error: %w", err)
	}

	return tweet, nil
}

// UpdateTweet replaces the message of an existing tweet.
//
// The tweet must exist; a missing tweet surfaces store.ErrTweetNotFound.
func (s *tweetService) UpdateTweet(ctx context.Context, user models.User, tweetID int64, message string) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	if message == "" {
		log.Error().Int64("tweet_id", tweetID).Msg("empty tweet message provided")
		return models.Tweet{}, ErrInvalidDataProvided
	}

	tweet := models.Tweet{
		TweetID:  tweetID,
		UserID:   user.UserID,
		Message:  message,
		Username: user.Username,
	}

	updated, err := s.tweetRepository.UpdateTweet(ctx, tweet)
	if err != nil {
		log.Err(err).Int64("tweet_id", tweetID).Msg("tweet update ended with error")
		return models.Tweet{}, fmt.Errorf("tweet update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTweet removes the tweet with the given ID. A missing tweet surfaces
// store.ErrTweetNotFound.
func (s *tweetService) DeleteTweet(ctx context.Context, tweetID int64) error {
	if err := s.tweetRepository.DeleteTweet(ctx, tweetID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("tweet_id", tweetID).Msg("tweet deletion ended with error")
		return fmt.Errorf("tweet deletion ended with error: %w", err)
	}

	return nil
}
