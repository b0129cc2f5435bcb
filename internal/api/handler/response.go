package handler

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/usecases/account"
	"github.com/vfg2006/social-metrics-api/internal/usecases/charting"
	"github.com/vfg2006/social-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/social-metrics-api/internal/usecases/updating"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// baseURL monta o endereço público a partir da própria requisição
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// writeUsecaseError converte os erros tipados dos casos de uso no corpo padronizado
func writeUsecaseError(w http.ResponseWriter, err error) {
	var (
		accountErr *account.AccountError
		chartErr   *charting.ChartError
		importErr  *importing.ImportError
		updateErr  *updating.UpdateError
	)

	switch {
	case errors.As(err, &accountErr):
		apiErrors.WriteError(w, accountErr.Code, accountErr.Details, nil)
	case errors.As(err, &chartErr):
		apiErrors.WriteError(w, chartErr.Code, chartErr.Details, nil)
	case errors.As(err, &importErr):
		apiErrors.WriteError(w, importErr.Code, importErr.Details, nil)
	case errors.As(err, &updateErr):
		apiErrors.WriteError(w, updateErr.Code, updateErr.Details, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
