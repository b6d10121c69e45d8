package http

import (
	"net/http"
	"strings"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/service"
)

const cacheControlImmutable = "public, max-age=31536000, immutable"

// render serves GET /<bucket>/<folder>/.../<image>.
func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := service.ParseRenderPath(r.URL.Path, r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc, err := h.services.OverlayService.Render(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	header := w.Header()
	header.Set("Cache-Control", cacheControlImmutable)
	header.Set("ETag", doc.ETag)

	if etagMatches(r.Header.Get("If-None-Match"), doc.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	header.Set("Content-Type", doc.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(doc.Body); err != nil {
		log.Err(err).Str("func", "*Handler.render").Msg("error writing document")
	}
}

// etagMatches reports whether an If-None-Match header value lists etag or
// is the "*" wildcard.
func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" || etag == "" {
		return false
	}
	for candidate := range strings.SplitSeq(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
