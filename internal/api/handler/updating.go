package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/updating"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/social-metrics-api/pkg/log"
)

// UpdateAccounts completa o histórico pelo monitor de dados
func UpdateAccounts(service updating.UpdateService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("platform", platform.Name)

		report, err := service.Update(r.Context(), platform)
		if err != nil {
			logger.WithError(err).Error("Erro na atualização pelo monitor")
			writeUsecaseError(w, err)
			return
		}

		if len(report.Failures) > 0 {
			logger.Warnf("Atualização parcial: %d falhas", len(report.Failures))
			apiErrors.WriteError(w, apiErrors.ErrMonitor,
				fmt.Sprintf("%d consultas ao monitor falharam; as demais foram salvas", len(report.Failures)),
				report)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/%s", platform.Name), http.StatusFound)
	})
}
