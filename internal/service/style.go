package service

import (
	"fmt"
	"strconv"
	"strings"

	"dario.cat/mergo"

	"github.com/YOKO3227/Webtoon/models"
)

// customFontFamily is the @font-face family name of the storage-hosted font.
const customFontFamily = "CustomR2Font"

// TextStyle is a fully resolved element style.
type TextStyle struct {
	FontFamily    string
	FontSize      models.CSSValue
	Fill          string
	TextAlign     string
	LineHeight    models.CSSValue
	WhiteSpace    string
	StrokeWidth   models.CSSValue
	Stroke        string
	X             models.CSSValue
	Y             models.CSSValue
	Width         models.CSSValue
	Height        models.CSSValue
	VerticalAlign string
	UseR2Font     bool
}

// DefaultTextStyle holds the value of every field neither the element nor
// the layout's default style sets.
var DefaultTextStyle = TextStyle{
	FontFamily:    "sans-serif",
	FontSize:      models.CSSNumber(24),
	Fill:          "#000000",
	TextAlign:     "left",
	LineHeight:    models.CSSNumber(1.2),
	WhiteSpace:    "pre-wrap",
	StrokeWidth:   models.CSSNumber(0),
	Stroke:        "#ffffff",
	X:             models.CSSNumber(0),
	Y:             models.CSSNumber(0),
	Width:         models.CSSNumber(100),
	Height:        models.CSSNumber(100),
	VerticalAlign: "top",
}

// resolveStyle merges the element's style over the layout default and fills
// what is still unset from [DefaultTextStyle]. A field the element sets wins
// even when it is set to a zero value.
func resolveStyle(element models.TextElement, defaults models.StyleConfig) (TextStyle, error) {
	merged := element.Style
	if err := mergo.Merge(&merged, defaults, mergo.WithoutDereference); err != nil {
		return TextStyle{}, fmt.Errorf("error merging style of element %q: %w", element.Query, err)
	}

	style := DefaultTextStyle
	setString(&style.FontFamily, merged.FontFamily)
	setValue(&style.FontSize, merged.FontSize)
	setString(&style.Fill, merged.Fill)
	setString(&style.TextAlign, merged.TextAlign)
	setValue(&style.LineHeight, merged.LineHeight)
	setString(&style.WhiteSpace, merged.WhiteSpace)
	setValue(&style.StrokeWidth, merged.StrokeWidth)
	setString(&style.Stroke, merged.Stroke)
	setValue(&style.X, merged.X)
	setValue(&style.Y, merged.Y)
	setValue(&style.Width, merged.Width)
	setValue(&style.Height, merged.Height)
	setString(&style.VerticalAlign, merged.VerticalAlign)
	if merged.UseR2Font != nil {
		style.UseR2Font = *merged.UseR2Font
	}
	if element.UseR2Font {
		style.UseR2Font = true
	}

	return style, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setValue(dst *models.CSSValue, src *models.CSSValue) {
	if src != nil {
		*dst = *src
	}
}

// alignItems maps verticalAlign to the flex alignment of the element box.
func (s TextStyle) alignItems() string {
	switch s.VerticalAlign {
	case "middle":
		return "center"
	case "bottom":
		return "flex-end"
	default:
		return "flex-start"
	}
}

// CSS returns the inline declaration list of the element's inner text
// block. customFontLoaded reports whether the storage-hosted font face was
// emitted for this document.
func (s TextStyle) CSS(customFontLoaded bool) string {
	family := s.FontFamily
	if customFontLoaded && s.UseR2Font {
		family = "'" + customFontFamily + "', " + family
	}

	var sb strings.Builder
	sb.WriteString("margin:0;padding:0;font-family:")
	sb.WriteString(family)
	sb.WriteString(";font-size:")
	sb.WriteString(s.FontSize.String())
	sb.WriteString("px;color:")
	sb.WriteString(s.Fill)
	sb.WriteString(";text-align:")
	sb.WriteString(s.TextAlign)
	sb.WriteString(";line-height:")
	sb.WriteString(s.LineHeight.String())
	sb.WriteString(";white-space:")
	sb.WriteString(s.WhiteSpace)
	sb.WriteString(";word-wrap:break-word;-webkit-font-smoothing:antialiased;-moz-osx-font-smoothing:grayscale")

	if width, ok := s.StrokeWidth.Float64(); ok && width > 0 {
		w := s.StrokeWidth.String()
		fmt.Fprintf(&sb, ";text-shadow:-%[1]spx -%[1]spx 0 %[2]s,%[1]spx -%[1]spx 0 %[2]s,-%[1]spx %[1]spx 0 %[2]s,%[1]spx %[1]spx 0 %[2]s", w, s.Stroke)
	}

	return sb.String()
}

// formatNumber renders v in its shortest form: 24, 1.2, -3.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
