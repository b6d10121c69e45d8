package service

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/models"
)

const (
	mimeOctetStream = "application/octet-stream"
	mimeGIF         = "image/gif"
	mimeWebP        = "image/webp"

	fallbackWidth  = 800
	fallbackHeight = 600
)

var imageTypes = map[string]string{
	"png":  "image/png",
	"webp": mimeWebP,
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  mimeGIF,
	"svg":  "image/svg+xml",
}

// imageTypeOf prefers the content type recorded by storage and falls back
// to the key's extension.
func imageTypeOf(key, recorded string) string {
	if recorded != "" {
		return recorded
	}
	if mime, ok := imageTypes[extension(key)]; ok {
		return mime
	}
	return mimeOctetStream
}

// isAnimatedType reports whether imageType may carry an animation that only
// an HTML <img> preserves.
func isAnimatedType(imageType string) bool {
	return imageType == mimeGIF || imageType == mimeWebP
}

// canvasSize returns the configured size, filling an unset dimension from
// the image header and then from the 800x600 fallback. Only the header is
// parsed; pixels are never decoded.
func canvasSize(ctx context.Context, size models.ImageSize, data []byte) (float64, float64) {
	width, height := size.Width.Float64(), size.Height.Float64()
	if width > 0 && height > 0 {
		return width, height
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("image size unknown, using fallback canvas size")
	} else {
		logger.FromContext(ctx).Debug().Str("format", format).Int("width", cfg.Width).Int("height", cfg.Height).Msg("canvas size taken from image header")
	}

	if width <= 0 {
		width = fallbackWidth
		if err == nil && cfg.Width > 0 {
			width = float64(cfg.Width)
		}
	}
	if height <= 0 {
		height = fallbackHeight
		if err == nil && cfg.Height > 0 {
			height = float64(cfg.Height)
		}
	}

	return width, height
}
