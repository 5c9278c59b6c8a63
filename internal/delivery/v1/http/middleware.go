package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// AccessLog пишет в лог метод, путь, статус и длительность каждого запроса.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Infof("%s %s %d %dB %s req_id=%s",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(),
				time.Since(start), middleware.GetReqID(r.Context()))
		})
	}
}
