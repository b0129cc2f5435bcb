package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/social-metrics-api/internal/domain"
)

// IndexHandler lista as redes sociais disponíveis
func IndexHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base := baseURL(r)

		platforms := domain.Platforms()
		links := make([]domain.Link, 0, len(platforms))
		for _, p := range platforms {
			links = append(links, domain.Link{
				Rel:  fmt.Sprintf("social-network-%s", p.Name),
				Href: fmt.Sprintf("%s/%s", base, p.Name),
			})
		}

		writeJSON(w, http.StatusOK, domain.PlatformIndexResponse{
			Error: false,
			Links: links,
		})
	})
}
