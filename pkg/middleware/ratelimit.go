package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
)

// SyncRateLimit limita por IP as rotas que disparam importação ou atualização
func SyncRateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de sincronizações excedido, tente novamente em instantes", nil)
		}),
	)
}
