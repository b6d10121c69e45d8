package service

import (
	"context"
	"time"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/models"
)

// OverlayLoggingService logs the outcome and duration of every render of
// the wrapped [OverlayService].
type OverlayLoggingService struct {
	inner OverlayService
}

func NewOverlayLoggingService() OverlayServiceWrapper {
	return &OverlayLoggingService{}
}

func (l *OverlayLoggingService) Render(ctx context.Context, req models.RenderRequest) (models.Document, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	doc, err := l.inner.Render(ctx, req)

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("bucket", req.Bucket).
		Str("image_key", req.ImageKey).
		Str("content_type", doc.ContentType).
		Int("size", len(doc.Body)).
		Dur("duration", time.Since(start)).
		Msg("render finished")

	return doc, err
}

func (l *OverlayLoggingService) Wrap(inner OverlayService) OverlayService {
	l.inner = inner
	return l
}
