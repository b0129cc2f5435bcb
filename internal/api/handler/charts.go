package handler

import (
	"bytes"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/charting"
	"github.com/vfg2006/social-metrics-api/pkg/metrics"
)

func AccountChart(service charting.ChartService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := router.Param(r, "id")
		query := router.Param(r, "query")

		cfg, err := service.AccountChart(r.Context(), platform, id, query)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"platform":   platform.Name,
				"account_id": id,
				"query":      query,
			}).Warn("Erro ao montar gráfico da conta")
			writeUsecaseError(w, err)
			return
		}

		writeLineChart(w, r, service, cfg)
	})
}

func CompareChart(service charting.ChartService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := router.Param(r, "query")
		actors := r.URL.Query().Get("actors")

		cfg, err := service.CompareChart(r.Context(), platform, query, actors)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"platform": platform.Name,
				"query":    query,
				"actors":   actors,
			}).Warn("Erro ao montar gráfico de comparação")
			writeUsecaseError(w, err)
			return
		}

		writeLineChart(w, r, service, cfg)
	})
}

func LatestPie(service charting.ChartService, platform domain.Platform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := router.Param(r, "id")

		cfg, err := service.LatestPie(r.Context(), platform, id)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"platform":   platform.Name,
				"account_id": id,
			}).Warn("Erro ao montar gráfico de pizza")
			writeUsecaseError(w, err)
			return
		}

		if wantsJSON(r) {
			metrics.ChartsRendered.WithLabelValues("pie", charting.FormatJSON).Inc()
			writeJSON(w, http.StatusOK, cfg)
			return
		}

		var buf bytes.Buffer
		if err := service.RenderPie(&buf, cfg); err != nil {
			logrus.WithError(err).WithField("platform", platform.Name).Error("Erro ao desenhar gráfico de pizza")
			writeUsecaseError(w, err)
			return
		}

		writePNG(w, buf.Bytes())
	})
}

func writeLineChart(w http.ResponseWriter, r *http.Request, service charting.ChartService, cfg *domain.ChartConfig) {
	if wantsJSON(r) {
		metrics.ChartsRendered.WithLabelValues("line", charting.FormatJSON).Inc()
		writeJSON(w, http.StatusOK, cfg)
		return
	}

	// renderiza em memória para ainda poder responder com erro JSON
	var buf bytes.Buffer
	if err := service.RenderLine(&buf, cfg); err != nil {
		logrus.WithError(err).Error("Erro ao desenhar gráfico de linha")
		writeUsecaseError(w, err)
		return
	}

	writePNG(w, buf.Bytes())
}

func wantsJSON(r *http.Request) bool {
	return r.URL.Query().Get("format") == charting.FormatJSON
}

func writePNG(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logrus.WithError(err).Warn("Erro ao enviar imagem do gráfico")
	}
}
