package service

import (
	"bytes"
	"text/template"

	"github.com/YOKO3227/Webtoon/models"
)

// documentData is the input of both document templates. All fields are
// already escaped or trusted markup.
type documentData struct {
	Width      string
	Height     string
	FontStyles string
	ImageHref  string
	Text       string
}

var (
	htmlDocument = template.Must(template.New("html").Parse(
		`<!DOCTYPE html><html lang="ko"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width,initial-scale=1.0">` +
			`<style>{{.FontStyles}}*{margin:0;padding:0;box-sizing:border-box}body{margin:0;padding:0;overflow:hidden}` +
			`.container{position:relative;width:{{.Width}}px;height:{{.Height}}px;overflow:hidden}` +
			`.background-image{position:absolute;top:0;left:0;width:100%;height:100%;z-index:1}</style></head>` +
			`<body><div class="container"><img src="{{.ImageHref}}" class="background-image"/>{{.Text}}</div></body></html>`))

	svgDocument = template.Must(template.New("svg").Parse(
		`<svg width="{{.Width}}" height="{{.Height}}" xmlns="http://www.w3.org/2000/svg">` +
			`<defs><style type="text/css">{{.FontStyles}}</style></defs>` +
			`<image href="{{.ImageHref}}" width="{{.Width}}" height="{{.Height}}"/>` +
			`<foreignObject width="100%" height="100%"><div xmlns="http://www.w3.org/1999/xhtml" style="position:relative;width:{{.Width}}px;height:{{.Height}}px">{{.Text}}</div></foreignObject></svg>`))
)

// selectDocument picks HTML for animated sources unless format=svg is
// requested, SVG otherwise.
func selectDocument(imageType, format string) (*template.Template, string) {
	if isAnimatedType(imageType) && format != "svg" {
		return htmlDocument, models.ContentTypeHTML
	}
	return svgDocument, models.ContentTypeSVG
}

func renderDocument(tmpl *template.Template, data documentData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
