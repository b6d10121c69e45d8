package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/store"
	"github.com/YOKO3227/Webtoon/internal/utils"
	"github.com/YOKO3227/Webtoon/models"
)

type fontType struct {
	mime   string
	format string
}

var (
	fontTypes = map[string]fontType{
		"woff2": {mime: "font/woff2", format: "woff2"},
		"woff":  {mime: "font/woff", format: "woff"},
		"ttf":   {mime: "font/ttf", format: "truetype"},
		"otf":   {mime: "font/otf", format: "opentype"},
	}
	defaultFontType = fontType{mime: "font/ttf", format: "truetype"}
)

// fontTypeOf resolves the data URI MIME type and CSS format() hint from the
// font file's extension.
func fontTypeOf(filename string) fontType {
	if ft, ok := fontTypes[extension(filename)]; ok {
		return ft
	}
	return defaultFontType
}

// fontStyles holds the style block shared by both document variants.
type fontStyles struct {
	css              string
	customFontLoaded bool
}

// resolveFonts emits the storage-hosted @font-face (when configured and
// present) followed by one @import per external font URL. A missing or
// unreadable storage font is logged and skipped.
func resolveFonts(ctx context.Context, bucket store.Bucket, req models.RenderRequest, layout models.LayoutConfig) fontStyles {
	var (
		sb     strings.Builder
		loaded bool
	)

	settings := layout.FontSettings
	if settings.Mode == models.FontModeStorage && settings.R2FontFilename != "" {
		data, err := fetchFont(ctx, bucket, req.FontKey(settings.R2FontFilename))
		if err == nil {
			ft := fontTypeOf(settings.R2FontFilename)
			sb.WriteString("@font-face{font-family:'")
			sb.WriteString(customFontFamily)
			sb.WriteString("';src:url('data:")
			sb.WriteString(ft.mime)
			sb.WriteString(";charset=utf-8;base64,")
			sb.WriteString(utils.EncodeBase64(data))
			sb.WriteString("')format('")
			sb.WriteString(ft.format)
			sb.WriteString("');font-display:block}")
			loaded = true
		}
	}

	for _, fontURL := range layout.Fonts {
		sb.WriteString("@import url('")
		sb.WriteString(fontURL)
		sb.WriteString("');")
	}

	return fontStyles{css: sb.String(), customFontLoaded: loaded}
}

func fetchFont(ctx context.Context, bucket store.Bucket, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	obj, err := bucket.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrObjectNotFound) {
			log.Debug().Str("key", key).Msg("custom font not found, using configured font family")
		} else {
			log.Warn().Err(err).Str("key", key).Msg("error fetching custom font")
		}
		return nil, err
	}

	data, err := obj.ReadAll(ctx)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error reading custom font")
		return nil, err
	}

	return data, nil
}

// extension returns the lower-cased text after the last '.' of name.
func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}
