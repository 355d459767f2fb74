package http

import (
	"github.com/akarimli/tweetline/internal/config"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/service"
)

type Handler struct {
	services *service.Services

	// messageMaxLength is the tweet length ceiling enforced by the request
	// validation rules at this layer.
	messageMaxLength int

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Rules, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		messageMaxLength: cfg.MessageMaxLength,
		logger:           logger,
	}
}
