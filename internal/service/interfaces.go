package service

import (
	"context"

	"github.com/YOKO3227/Webtoon/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// OverlayService renders text overlays on top of stored background images.
type OverlayService interface {
	Render(ctx context.Context, req models.RenderRequest) (models.Document, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// OverlayServiceWrapper defines middleware composition for OverlayService.
// Implementations wrap an existing OverlayService to add behavior such as
// logging.
type OverlayServiceWrapper interface {
	Wrap(OverlayService) OverlayService // returns a decorated OverlayService applying additional behavior
}
