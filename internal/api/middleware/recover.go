package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/study-notes-api/internal/api/shared"
	"github.com/phrazzld/study-notes-api/internal/platform/logger"
)

// InternalServerErrorMessage is the body sent for unexpected failures.
const InternalServerErrorMessage = "Internal server error"

// Recoverer recovers from panics in downstream handlers, logs them with a stack
// trace, and answers with the standard JSON error body instead of chi's plain
// text response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				// net/http relies on this panic to abort the response
				panic(rvr)
			}

			logger.FromContext(r.Context()).Error("recovered from panic",
				"panic", fmt.Sprint(rvr),
				"stack", string(debug.Stack()))

			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				InternalServerErrorMessage, fmt.Errorf("panic: %v", rvr))
		}()

		next.ServeHTTP(w, r)
	})
}
