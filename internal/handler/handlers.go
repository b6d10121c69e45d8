package handler

import (
	"github.com/YOKO3227/Webtoon/internal/config"
	"github.com/YOKO3227/Webtoon/internal/handler/http"
	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
