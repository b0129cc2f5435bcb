package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/api/handler"
	"github.com/vfg2006/social-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/scheduler"
	"github.com/vfg2006/social-metrics-api/internal/usecases/account"
	"github.com/vfg2006/social-metrics-api/internal/usecases/charting"
	"github.com/vfg2006/social-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/social-metrics-api/internal/usecases/updating"
	"github.com/vfg2006/social-metrics-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne as dependências expostas pela API
type Services struct {
	Accounts    account.AccountService
	Charts      charting.ChartService
	Import      importing.ImportService
	Update      updating.UpdateService
	MonitorSync *scheduler.MonitorSyncService
	Database    handler.Pinger
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares global
func NewHandler(config *config.Config, services Services) http.Handler {
	platformServices := handler.PlatformServices{
		Accounts:    services.Accounts,
		Charts:      services.Charts,
		Import:      services.Import,
		Update:      services.Update,
		SyncLimiter: middleware.SyncRateLimit(config.Server.SyncRequestsPerMinute),
	}

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Index()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{
			MonitorSyncService: services.MonitorSync,
		})...),
	}
	for _, platform := range domain.Platforms() {
		configs = append(configs, router.WithRoutes(handler.PlatformRoutes(platform, platformServices)...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
