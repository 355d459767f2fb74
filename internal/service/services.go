package service

import (
	"github.com/akarimli/tweetline/internal/config"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/store"
)

type Services struct {
	AuthService  AuthService
	TweetService TweetService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.Auth, logger),
		TweetService: NewTweetService(storages.TweetRepository, logger),
	}
}
