package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/utils"
	"github.com/go-resty/resty/v2"
)

// HTTPBucket serves objects from an HTTP origin (a public R2/S3 bucket, a CDN
// or any static file server). The object key is appended to the base URL.
type HTTPBucket struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBucket constructs a [Bucket] reading from baseURL. A zero timeout
// keeps the client default.
func NewHTTPBucket(baseURL string, timeout time.Duration, log *logger.Logger) (*HTTPBucket, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBucketURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: address must include host and scheme", ErrInvalidBucketURL)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(strings.TrimRight(u.String(), "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	log.Debug().Str("base_url", client.BaseURL).Msg("http bucket created")
	return &HTTPBucket{client: client, logger: log}, nil
}

// Get downloads the object in one round trip; the returned handle already
// holds the bytes.
func (b *HTTPBucket) Get(ctx context.Context, key string) (Object, error) {
	log := logger.FromContext(ctx)

	resp, err := b.client.R().
		SetContext(ctx).
		Get("/" + escapeKey(key))
	if err != nil {
		log.Err(err).Str("key", key).Msg("error requesting http object")
		return nil, fmt.Errorf("get %q request: %w", key, err)
	}
	if err = mapObjectStatus(resp, key); err != nil {
		return nil, err
	}

	return loadedObject(key, resp.Header().Get("Content-Type"), resp.Body()), nil
}

func mapObjectStatus(resp *resty.Response, key string) error {
	code := resp.StatusCode()
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	default:
		return fmt.Errorf("%w: %d for %s", ErrUnexpectedStatus, code, key)
	}
}

// escapeKey percent-encodes each key segment, keeping the separators.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
