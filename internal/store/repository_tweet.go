package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/models"
)

// tweetRepository is the SQL-backed implementation of [TweetRepository].
// It handles tweet creation, lookup, update and deletion against the
// "tweets" table, joining in the author's username on reads.
type tweetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTweetRepository constructs a [TweetRepository] backed by the provided
// database connection and logger.
func NewTweetRepository(db *DB, logger *logger.Logger) TweetRepository {
	logger.Debug().Msg("creating tweet repository")
	return &tweetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTweet persists a new tweet and returns it with server-assigned
// fields (TweetID, CreatedAt, UpdatedAt) populated from the RETURNING clause.
func (r *tweetRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTweet, tweet.UserID, tweet.Message)

	// create tweet in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tweetRepository.CreateTweet").Msg("error: row is nil")
		return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved tweet from db
	var created models.Tweet
	if err := row.Scan(&created.TweetID, &created.UserID, &created.Message, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*tweetRepository.CreateTweet").Msg("error: scanning error")
		return models.Tweet{}, err
	}
	created.Username = tweet.Username

	return created, nil
}

// ListTweets returns every tweet, newest first, with the author's username
// filled in.
func (r *tweetRepository) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	query, args, err := buildSelectAllTweetsQuery()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tweetRepository.ListTweets").Msg("error building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	return r.queryTweets(ctx, query, args...)
}

// ListTweetsByUserID returns all tweets authored by the given user, newest
// first.
func (r *tweetRepository) ListTweetsByUserID(ctx context.Context, userID int64) ([]models.Tweet, error) {
	query, args, err := buildSelectTweetsByUserQuery(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tweetRepository.ListTweetsByUserID").Msg("error building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	return r.queryTweets(ctx, query, args...)
}

// FindTweetByID retrieves a single tweet by its primary key.
//
// An empty result set maps to [ErrTweetNotFound].
func (r *tweetRepository) FindTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTweetByIDQuery(tweetID)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.FindTweetByID").Msg("error building query")
		return models.Tweet{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var tweet models.Tweet
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tweetRepository.FindTweetByID").Msg("error: row is nil")
		return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&tweet.TweetID, &tweet.UserID, &tweet.Message, &tweet.Username, &tweet.CreatedAt, &tweet.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tweet{}, ErrTweetNotFound
		}
		log.Err(err).Str("func", "*tweetRepository.FindTweetByID").Msg("error: scanning error")
		return models.Tweet{}, err
	}

	return tweet, nil
}

// UpdateTweet replaces the message of an existing tweet and returns the
// updated record. Updating a tweet that does not exist maps to
// [ErrTweetNotFound].
func (r *tweetRepository) UpdateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateTweet, tweet.Message, tweet.TweetID)

	// update tweet in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tweetRepository.UpdateTweet").Msg("error: row is nil")
		return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan updated tweet from db
	var updated models.Tweet
	if err := row.Scan(&updated.TweetID, &updated.UserID, &updated.Message, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tweet{}, ErrTweetNotFound
		}
		log.Err(err).Str("func", "*tweetRepository.UpdateTweet").Msg("error: scanning error")
		return models.Tweet{}, err
	}
	updated.Username = tweet.Username

	return updated, nil
}

// DeleteTweet removes the tweet with the given primary key. Deleting a tweet
// that does not exist maps to [ErrTweetNotFound].
func (r *tweetRepository) DeleteTweet(ctx context.Context, tweetID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTweet, tweetID)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.DeleteTweet").Msg("error executing delete")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.DeleteTweet").Msg("error reading affected rows")
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTweetNotFound
	}

	return nil
}

// queryTweets runs a multi-row tweet SELECT and scans the result set.
func (r *tweetRepository) queryTweets(ctx context.Context, query string, args ...any) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.queryTweets").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	tweets := make([]models.Tweet, 0)
	for rows.Next() {
		var tweet models.Tweet
		if err := rows.Scan(&tweet.TweetID, &tweet.UserID, &tweet.Message, &tweet.Username, &tweet.CreatedAt, &tweet.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*tweetRepository.queryTweets").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		tweets = append(tweets, tweet)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*tweetRepository.queryTweets").Msg("error iterating rows")
		return nil, errors.Join(ErrExecutingQuery, err)
	}

	return tweets, nil
}
