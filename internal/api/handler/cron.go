package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/social-metrics-api/internal/scheduler"
	"github.com/vfg2006/social-metrics-api/internal/usecases/updating"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonitorSyncService *scheduler.MonitorSyncService
}

// RunCronJob executa manualmente a atualização de uma plataforma ou de todas ("all")
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if services.MonitorSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização pelo monitor não disponível", nil)
			return
		}

		platform := router.Param(r, "platform")
		platforms, err := scheduler.ResolvePlatforms(platform)
		if err != nil {
			if errors.Is(err, updating.ErrNotUpdatable) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Plataforma inválida. Valores aceitos: twitter, youtube, all", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver plataformas", nil)
			return
		}

		if !services.MonitorSyncService.TriggerManualSync(platforms) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message":  "Atualização já em andamento",
				"platform": platform,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message":  "Cron job iniciada com sucesso",
			"platform": platform,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if services.MonitorSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização pelo monitor não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"monitor": services.MonitorSyncService.GetStatus(),
		})
	})
}
