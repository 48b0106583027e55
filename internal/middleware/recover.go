package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Recover turns a handler panic into a JSON 500 so clients always get the
// error envelope and the server keeps running. If the handler already wrote
// a status, the response is left as is.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Printf("panic [%s]: %v\n%s", r.Header.Get(RequestIDHeader), rec, debug.Stack())
			if ww.Status() == 0 {
				writeError(ww, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(ww, r)
	})
}
