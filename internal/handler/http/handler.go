package http

import (
	"github.com/YOKO3227/Webtoon/internal/config"
	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/service"
	"github.com/YOKO3227/Webtoon/internal/utils"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator

	exposeStackTrace bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("expose_stack_trace", cfg.ExposeStackTrace).Msg("http handler created")
	return &Handler{
		services:         services,
		traceIDs:         utils.NewUUIDGenerator(),
		exposeStackTrace: cfg.ExposeStackTrace,
		logger:           logger,
	}
}
