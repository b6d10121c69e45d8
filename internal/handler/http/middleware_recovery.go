package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/utils"
)

// withRecovery turns a panic in a handler into a 500 response with the
// "Error: <message>" body. The stack is appended to the body only when the
// handler was built with ExposeStackTrace.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := debug.Stack()
			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", stack).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}

			body := fmt.Sprintf("Error: %v", rec)
			if h.exposeStackTrace {
				body += "\nStack: " + string(stack)
			}
			if _, err := utils.WriteText(rw, body, http.StatusInternalServerError); err != nil {
				logger.FromRequest(r).Err(err).Str("func", "*Handler.withRecovery").Msg("error writing panic response")
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
