package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vfg2006/social-metrics-api/pkg/metrics"
)

// Metrics registra a duração das requisições pelo padrão de rota do chi.
// Deve ser registrado com Use no próprio router para que o padrão esteja resolvido.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			route := "desconhecida"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			metrics.HTTPRequestDuration.
				WithLabelValues(r.Method, route, strconv.Itoa(lrw.statusCode)).
				Observe(time.Since(start).Seconds())
		})
	}
}
