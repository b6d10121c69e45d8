package http

import (
	"errors"
	"net/http"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/service"
	"github.com/YOKO3227/Webtoon/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidRenderPath: http.StatusBadRequest,
	service.ErrBucketNotBound:    http.StatusInternalServerError,
	service.ErrConfigNotFound:    http.StatusNotFound,
	service.ErrImageNotFound:     http.StatusNotFound,
}

// statusFromError returns the mapped status of err and whether err is one of
// the mapped errors at all.
func statusFromError(err error) (int, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

// errorBody is the plain-text body written for err. Unmapped errors carry an
// "Error: " prefix.
func errorBody(err error) string {
	if _, known := statusFromError(err); known {
		return err.Error()
	}
	return "Error: " + err.Error()
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, known := statusFromError(err)

	log := logger.FromRequest(r)
	if known && status < http.StatusInternalServerError {
		log.Debug().Err(err).Int("status", status).Msg("render rejected")
	} else {
		log.Err(err).Int("status", status).Msg("render failed")
	}

	if _, wErr := utils.WriteText(w, errorBody(err), status); wErr != nil {
		log.Err(wErr).Str("func", "writeError").Msg("error writing error response")
	}
}
