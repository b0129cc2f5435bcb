package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/social-metrics-api/pkg/log"
)

// ImportAccounts redireciona para o consentimento do Google e, no retorno, importa a planilha
func ImportAccounts(service importing.ImportService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("platform", platform.Name)
		code := r.URL.Query().Get("code")

		if code == "" {
			authURL, err := service.AuthURL(platform)
			if err != nil {
				writeUsecaseError(w, err)
				return
			}
			http.Redirect(w, r, authURL, http.StatusFound)
			return
		}

		report, err := service.Import(r.Context(), platform, code, r.URL.Query().Get("state"))
		if err != nil {
			logger.WithError(err).Error("Erro na importação da planilha")
			writeUsecaseError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"run_id":   report.RunID,
			"accounts": report.Accounts,
		}).Info("Importação concluída, redirecionando")

		http.Redirect(w, r, fmt.Sprintf("/%s", platform.Name), http.StatusFound)
	})
}
