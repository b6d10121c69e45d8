package models

import "net/url"

// RenderRequest identifies the bucket, project and background image of a
// single render together with the text values supplied by the caller.
type RenderRequest struct {
	// Bucket is the logical bucket name taken from the first path segment.
	Bucket string

	// Folder is the project folder, the second path segment.
	Folder string

	// ImageKey is the storage key of the background image. It always starts
	// with Folder.
	ImageKey string

	// Query holds the request's query parameters.
	Query url.Values
}

// ConfigKey returns the storage key of the project's layout config.
func (r RenderRequest) ConfigKey() string {
	return r.Folder + "/" + r.Folder + ".json"
}

// FontKey returns the storage key of a font file stored with the project.
func (r RenderRequest) FontKey(filename string) string {
	return r.Folder + "/fonts/" + filename
}

// Document is a rendered overlay document ready to be written to the client.
type Document struct {
	ContentType string
	Body        []byte
	ETag        string
}

// Content types of the two document variants.
const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeSVG  = "image/svg+xml; charset=utf-8"
)
