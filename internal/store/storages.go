package store

import "github.com/akarimli/tweetline/internal/logger"

// Storages bundles every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository  UserRepository
	TweetRepository TweetRepository
}

// NewStorages constructs all repositories over the given connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		TweetRepository: NewTweetRepository(db, log),
	}
}
