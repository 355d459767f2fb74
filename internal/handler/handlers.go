package handler

import (
	"github.com/akarimli/tweetline/internal/config"
	"github.com/akarimli/tweetline/internal/handler/http"
	"github.com/akarimli/tweetline/internal/logger"
	"github.com/akarimli/tweetline/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Rules, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
