package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGZip(t *testing.T) {
	const body = "<svg>hello</svg>"

	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		writeBody      bool
		wantGzipped    bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", status: http.StatusOK, writeBody: true, wantGzipped: true},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", status: http.StatusOK, writeBody: true, wantGzipped: true},
		{name: "gzip with quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", status: http.StatusOK, writeBody: true, wantGzipped: true},
		{name: "client does not accept gzip", acceptEncoding: "", status: http.StatusOK, writeBody: true},
		{name: "error body is compressed too", acceptEncoding: "gzip", status: http.StatusNotFound, writeBody: true, wantGzipped: true},
		{name: "not modified stays bodyless", acceptEncoding: "gzip", status: http.StatusNotModified},
		{name: "no content stays bodyless", acceptEncoding: "gzip", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.writeBody {
					_, _ = w.Write([]byte(body))
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/a/b/c.png", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

			if !tt.wantGzipped {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				if tt.writeBody {
					assert.Equal(t, body, rec.Body.String())
				} else {
					assert.Zero(t, rec.Body.Len())
				}
				return
			}

			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			zr, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			decoded, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, body, string(decoded))
		})
	}
}

func TestGZip_ImplicitStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, strings.Repeat("a", 4096))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Less(t, rec.Body.Len(), 4096)
}

func TestGZip_HandlerWritesNothing(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_ETag(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		etag           string
		want           string
	}{
		{name: "strong etag weakened when compressed", acceptEncoding: "gzip", status: http.StatusOK, etag: `"abc"`, want: `W/"abc"`},
		{name: "weak etag kept", acceptEncoding: "gzip", status: http.StatusOK, etag: `W/"abc"`, want: `W/"abc"`},
		{name: "not modified matches compressed etag", acceptEncoding: "gzip", status: http.StatusNotModified, etag: `"abc"`, want: `W/"abc"`},
		{name: "identity keeps strong etag", acceptEncoding: "", status: http.StatusOK, etag: `"abc"`, want: `"abc"`},
		{name: "no etag", acceptEncoding: "gzip", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.etag != "" {
					w.Header().Set("ETag", tt.etag)
				}
				w.WriteHeader(tt.status)
				if bodyAllowed(tt.status) {
					_, _ = io.WriteString(w, "<svg/>")
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("ETag"))
		})
	}
}
