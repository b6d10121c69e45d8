package service

import (
	"context"
	"testing"

	"github.com/YOKO3227/Webtoon/models"
	"github.com/stretchr/testify/assert"
)

func TestImageTypeOf(t *testing.T) {
	tests := []struct {
		key      string
		recorded string
		want     string
	}{
		{key: "ep1/a.png", want: "image/png"},
		{key: "ep1/a.WEBP", want: "image/webp"},
		{key: "ep1/a.jpg", want: "image/jpeg"},
		{key: "ep1/a.jpeg", want: "image/jpeg"},
		{key: "ep1/a.gif", want: "image/gif"},
		{key: "ep1/a.svg", want: "image/svg+xml"},
		{key: "ep1/a.bmp", want: "application/octet-stream"},
		{key: "ep1/noext", want: "application/octet-stream"},
		{key: "ep1/a.png", recorded: "image/gif", want: "image/gif"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"|"+tt.recorded, func(t *testing.T) {
			assert.Equal(t, tt.want, imageTypeOf(tt.key, tt.recorded))
		})
	}
}

func TestIsAnimatedType(t *testing.T) {
	assert.True(t, isAnimatedType("image/gif"))
	assert.True(t, isAnimatedType("image/webp"))
	assert.False(t, isAnimatedType("image/png"))
	assert.False(t, isAnimatedType("image/webp; charset=binary"))
}

func TestCanvasSize(t *testing.T) {
	ctx := context.Background()
	png := pngBytes(t, 320, 240)

	tests := []struct {
		name       string
		size       models.ImageSize
		data       []byte
		wantWidth  float64
		wantHeight float64
	}{
		{name: "configured", size: models.ImageSize{Width: 690, Height: 1200}, data: png, wantWidth: 690, wantHeight: 1200},
		{name: "from header", data: png, wantWidth: 320, wantHeight: 240},
		{name: "width configured height from header", size: models.ImageSize{Width: 100}, data: png, wantWidth: 100, wantHeight: 240},
		{name: "unknown format falls back", data: []byte("<svg/>"), wantWidth: 800, wantHeight: 600},
		{name: "negative treated as unset", size: models.ImageSize{Width: -1, Height: 50}, data: nil, wantWidth: 800, wantHeight: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := canvasSize(ctx, tt.size, tt.data)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}
