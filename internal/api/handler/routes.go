package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/social-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/account"
	"github.com/vfg2006/social-metrics-api/internal/usecases/charting"
	"github.com/vfg2006/social-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/social-metrics-api/internal/usecases/updating"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/social-metrics-api/pkg/metrics"
)

// PlatformServices agrupa os casos de uso expostos em cada rede social
type PlatformServices struct {
	Accounts account.AccountService
	Charts   charting.ChartService
	Import   importing.ImportService
	Update   updating.UpdateService
	// SyncLimiter limita as rotas que disparam importação ou atualização
	SyncLimiter func(http.Handler) http.Handler
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Index() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: IndexHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// PlatformRoutes registra as rotas de uma rede social
func PlatformRoutes(platform domain.Platform, services PlatformServices) []router.Route {
	prefix := fmt.Sprintf("/%s", platform.Name)

	var syncMiddlewares []func(http.Handler) http.Handler
	if services.SyncLimiter != nil {
		syncMiddlewares = append(syncMiddlewares, services.SyncLimiter)
	}

	updateHandler := NotSupported()
	if platform.Updatable && services.Update != nil {
		updateHandler = UpdateAccounts(services.Update, platform)
	}

	return []router.Route{
		{
			Path:    prefix,
			Method:  http.MethodGet,
			Handler: ListAccounts(services.Accounts, platform),
		},
		{
			Path:    prefix + "/queries",
			Method:  http.MethodGet,
			Handler: ListQueries(services.Accounts, platform),
		},
		{
			Path:        prefix + "/import",
			Method:      http.MethodGet,
			Handler:     ImportAccounts(services.Import, platform),
			Middlewares: syncMiddlewares,
		},
		{
			Path:        prefix + "/update",
			Method:      http.MethodGet,
			Handler:     updateHandler,
			Middlewares: syncMiddlewares,
		},
		{
			Path:    prefix + "/latest/{id}",
			Method:  http.MethodGet,
			Handler: GetLatest(services.Accounts, platform),
		},
		{
			Path:    prefix + "/latest/{id}/pie",
			Method:  http.MethodGet,
			Handler: LatestPie(services.Charts, platform),
		},
		{
			Path:    prefix + "/compare/{query}",
			Method:  http.MethodGet,
			Handler: CompareChart(services.Charts, platform),
		},
		{
			Path:    prefix + "/{id}",
			Method:  http.MethodGet,
			Handler: GetAccount(services.Accounts, platform),
		},
		{
			Path:    prefix + "/{id}/{query}",
			Method:  http.MethodGet,
			Handler: AccountChart(services.Charts, platform),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/cron/{platform}/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

// NotSupported responde às operações que a rede social não oferece
func NotSupported() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Operação não suportada para esta rede social", nil)
	})
}
