package service

import (
	"context"
	"errors"
	"testing"

	"github.com/YOKO3227/Webtoon/models"
	"github.com/stretchr/testify/assert"
)

func TestFontTypeOf(t *testing.T) {
	tests := map[string]fontType{
		"a.woff2":      {mime: "font/woff2", format: "woff2"},
		"a.WOFF":       {mime: "font/woff", format: "woff"},
		"a.ttf":        {mime: "font/ttf", format: "truetype"},
		"a.otf":        {mime: "font/otf", format: "opentype"},
		"a.eot":        defaultFontType,
		"no-extension": defaultFontType,
	}

	for name, want := range tests {
		assert.Equal(t, want, fontTypeOf(name), name)
	}
}

func TestResolveFonts(t *testing.T) {
	req := models.RenderRequest{Bucket: "assets", Folder: "ep1", ImageKey: "ep1/01.png"}
	storageFont := models.FontSettings{Mode: models.FontModeStorage, R2FontFilename: "title.woff2"}

	t.Run("storage font and imports", func(t *testing.T) {
		bucket := newMemBucket().put("ep1/fonts/title.woff2", "", []byte("wOF2"))
		layout := models.LayoutConfig{
			FontSettings: storageFont,
			Fonts:        []string{"https://fonts.example.com/a.css", "https://fonts.example.com/b.css"},
		}

		fonts := resolveFonts(context.Background(), bucket, req, layout)

		assert.True(t, fonts.customFontLoaded)
		assert.Equal(t,
			"@font-face{font-family:'CustomR2Font';src:url('data:font/woff2;charset=utf-8;base64,d09GMg==')format('woff2');font-display:block}"+
				"@import url('https://fonts.example.com/a.css');@import url('https://fonts.example.com/b.css');",
			fonts.css)
		assert.Equal(t, []string{"ep1/fonts/title.woff2"}, bucket.requested())
	})

	t.Run("missing storage font is ignored", func(t *testing.T) {
		bucket := newMemBucket()
		layout := models.LayoutConfig{FontSettings: storageFont, Fonts: []string{"https://f/a.css"}}

		fonts := resolveFonts(context.Background(), bucket, req, layout)

		assert.False(t, fonts.customFontLoaded)
		assert.Equal(t, "@import url('https://f/a.css');", fonts.css)
	})

	t.Run("storage failure is ignored", func(t *testing.T) {
		bucket := newMemBucket()
		bucket.getErrs["ep1/fonts/title.woff2"] = errors.New("connection reset")

		fonts := resolveFonts(context.Background(), bucket, req, models.LayoutConfig{FontSettings: storageFont})

		assert.False(t, fonts.customFontLoaded)
		assert.Empty(t, fonts.css)
	})

	t.Run("read failure is ignored", func(t *testing.T) {
		bucket := newMemBucket()
		bucket.objects["ep1/fonts/title.woff2"] = &memObject{key: "ep1/fonts/title.woff2", readErr: errors.New("truncated")}

		fonts := resolveFonts(context.Background(), bucket, req, models.LayoutConfig{FontSettings: storageFont})

		assert.False(t, fonts.customFontLoaded)
		assert.Empty(t, fonts.css)
	})

	t.Run("other mode does not touch storage", func(t *testing.T) {
		bucket := newMemBucket().put("ep1/fonts/title.woff2", "", []byte("wOF2"))
		layout := models.LayoutConfig{FontSettings: models.FontSettings{Mode: "url", R2FontFilename: "title.woff2"}}

		fonts := resolveFonts(context.Background(), bucket, req, layout)

		assert.False(t, fonts.customFontLoaded)
		assert.Empty(t, bucket.requested())
	})

	t.Run("storage mode without filename", func(t *testing.T) {
		bucket := newMemBucket()
		layout := models.LayoutConfig{FontSettings: models.FontSettings{Mode: models.FontModeStorage}}

		fonts := resolveFonts(context.Background(), bucket, req, layout)

		assert.False(t, fonts.customFontLoaded)
		assert.Empty(t, bucket.requested())
	})
}
