package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/YOKO3227/Webtoon/models"
)

// minRenderPathSegments is bucket, folder and at least the image file.
const minRenderPathSegments = 3

// ParseRenderPath splits a request path of the form
// /<bucket>/<folder>/.../<image> into a [models.RenderRequest]. Empty segments
// are dropped, so "//a//b/c.png" is the same as "/a/b/c.png". The image key is
// the folder followed by the remaining segments.
func ParseRenderPath(path string, query url.Values) (models.RenderRequest, error) {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) < minRenderPathSegments {
		return models.RenderRequest{}, fmt.Errorf("%w: got %q", ErrInvalidRenderPath, path)
	}

	if query == nil {
		query = url.Values{}
	}

	return models.RenderRequest{
		Bucket:   segments[0],
		Folder:   segments[1],
		ImageKey: strings.Join(segments[1:], "/"),
		Query:    query,
	}, nil
}
