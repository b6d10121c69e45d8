package service

import (
	"fmt"

	"github.com/YOKO3227/Webtoon/internal/config"
	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	OverlayService OverlayService
}

func NewServices(buckets store.BucketResolver, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	overlayService := NewOverlayLoggingService().Wrap(NewOverlayService(buckets, logger))

	return &Services{
		AppInfoService: appInfoService,
		OverlayService: overlayService,
	}, nil
}
