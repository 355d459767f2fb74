package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/akarimli/tweetline/models"
)

const (
	createUser = `INSERT INTO users (username, email, hashed_password)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, hashed_password, created_at;`

	findUserByEmail = `SELECT user_id, username, email, hashed_password, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, hashed_password, created_at
    FROM users
    WHERE user_id = $1;`

	createTweet = `INSERT INTO tweets (user_id, message)
    VALUES ($1, $2)
    RETURNING tweet_id, user_id, message, created_at, updated_at;`

	updateTweet = `UPDATE tweets
    SET message = $1, updated_at = CURRENT_TIMESTAMP
    WHERE tweet_id = $2
    RETURNING tweet_id, user_id, message, created_at, updated_at;`

	deleteTweet = `DELETE FROM tweets
    WHERE tweet_id = $1;`
)

// tweetColumns lists every column selected by the tweet read queries,
// including the author's username pulled in from the users table.
var tweetColumns = []string{
	"t.tweet_id",
	"t.user_id",
	"t.message",
	"u.username",
	"t.created_at",
	"t.updated_at",
}

// selectTweets is the base SELECT shared by all tweet read queries: tweets
// joined with their authors, newest first.
func selectTweets() sq.SelectBuilder {
	return sq.Select(tweetColumns...).
		From(models.Tweet{}.TableName() + " t").
		Join(models.User{}.TableName() + " u ON u.user_id = t.user_id").
		OrderBy("t.created_at DESC").
		PlaceholderFormat(sq.Dollar)
}

// buildSelectAllTweetsQuery builds the query returning every tweet.
func buildSelectAllTweetsQuery() (string, []any, error) {
	return selectTweets().ToSql()
}

// buildSelectTweetsByUserQuery builds the query returning all tweets
// authored by a single user.
func buildSelectTweetsByUserQuery(userID int64) (string, []any, error) {
	return selectTweets().
		Where(sq.Eq{"t.user_id": userID}).
		ToSql()
}

// buildSelectTweetByIDQuery builds the query returning a single tweet by its
// primary key.
func buildSelectTweetByIDQuery(tweetID int64) (string, []any, error) {
	return selectTweets().
		Where(sq.Eq{"t.tweet_id": tweetID}).
		ToSql()
}
