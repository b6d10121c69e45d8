package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/utils"
	"github.com/YOKO3227/Webtoon/models"
)

// encodedNewline matches a literal "%0A" left in a value after decoding,
// in any letter case.
var encodedNewline = regexp.MustCompile(`(?i)%0A`)

// renderTextLayer builds the overlay markup of every element whose query
// parameter is present in query, in declaration order.
func renderTextLayer(ctx context.Context, layout models.LayoutConfig, query url.Values, customFontLoaded bool) (string, error) {
	var sb strings.Builder

	for _, element := range layout.Elements {
		if element.Query == "" {
			continue
		}
		if _, ok := query[element.Query]; !ok {
			continue
		}

		style, err := resolveStyle(element, layout.DefaultStyle)
		if err != nil {
			return "", err
		}

		text := formatText(ctx, query.Get(element.Query))
		writeElement(&sb, style, text, customFontLoaded)
	}

	return sb.String(), nil
}

// formatText turns a query value into element markup: a further URL decode,
// '_' to space, literal %0A to a line break, HTML escaping.
func formatText(ctx context.Context, value string) string {
	text, err := url.PathUnescape(value)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("value", value).Msg("query value kept undecoded")
		text = value
	}
	text = strings.ToValidUTF8(text, "\uFFFD")

	text = strings.ReplaceAll(text, "_", " ")
	text = encodedNewline.ReplaceAllLiteralString(text, "\n")
	text = utils.EscapeHTML(text)

	return strings.ReplaceAll(text, "\n", "<br/>")
}

func writeElement(sb *strings.Builder, style TextStyle, text string, customFontLoaded bool) {
	sb.WriteString(`<div style="position:absolute;left:`)
	sb.WriteString(style.X.String())
	sb.WriteString("px;top:")
	sb.WriteString(style.Y.String())
	sb.WriteString("px;width:")
	sb.WriteString(style.Width.String())
	sb.WriteString("px;height:")
	sb.WriteString(style.Height.String())
	sb.WriteString("px;display:flex;align-items:")
	sb.WriteString(style.alignItems())
	sb.WriteString(`;z-index:2"><div style="`)
	sb.WriteString(style.CSS(customFontLoaded))
	sb.WriteString(`;width:100%">`)
	sb.WriteString(text)
	sb.WriteString("</div></div>")
}
