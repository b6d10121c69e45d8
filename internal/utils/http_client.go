package utils

import (
	"github.com/go-resty/resty/v2"
)

// userAgent identifies the overlay server to storage origins.
const userAgent = "overlay-server"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with its own
// connection pool. Every request carries the server's User-Agent header.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetContext(ctx).
//	    Get("https://cdn.example.com/ep1/ep1.json")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
