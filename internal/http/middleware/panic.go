package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"secret-santa-service/internal/http/handler/common"
)

// PanicMiddleware превращает панику обработчика в 500 с телом ошибки API.
// http.ErrAbortHandler пробрасывается дальше, как того ожидает net/http.
func PanicMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			slog.ErrorContext(r.Context(), "Перехвачена паника",
				"request_id", chimw.GetReqID(r.Context()),
				"method", r.Method,
				"url", r.URL.Path,
				"error", rvr,
				"stack_trace", string(debug.Stack()),
			)
			common.RespondError(w, http.StatusInternalServerError, "UNKNOWN", "Internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
