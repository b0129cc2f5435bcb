package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/account"
)

func ListAccounts(service account.AccountService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.ListAccounts(r.Context(), platform, baseURL(r))
		if err != nil {
			logrus.WithError(err).WithField("platform", platform.Name).Error("Erro ao listar contas")
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func ListQueries(service account.AccountService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Queries(platform))
	})
}

func GetAccount(service account.AccountService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := router.Param(r, "id")

		resp, err := service.GetAccount(r.Context(), platform, id, baseURL(r))
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"platform":   platform.Name,
				"account_id": id,
			}).Warn("Erro ao buscar conta")
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func GetLatest(service account.AccountService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := router.Param(r, "id")

		resp, err := service.GetLatest(r.Context(), platform, id)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"platform":   platform.Name,
				"account_id": id,
			}).Warn("Erro ao buscar valores mais recentes")
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
