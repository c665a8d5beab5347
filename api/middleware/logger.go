// Package middleware provides chi middleware for the BioFlow API server.
package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs each request's method, path, status, and duration, using the
// request ID chimiddleware.RequestID attaches upstream.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		reqID := middleware.GetReqID(r.Context())
		log.Printf("%s %s %s %d %dB %s", reqID, r.Method, r.URL.Path,
			ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}
