package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/infrastructure/database/mongodb"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/monitor"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/monitor/monitorclient"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/spreadsheet"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/spreadsheet/spreadsheetclient"
	"github.com/vfg2006/social-metrics-api/infrastructure/repository"
	"github.com/vfg2006/social-metrics-api/internal/api"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/scheduler"
	"github.com/vfg2006/social-metrics-api/internal/usecases/account"
	"github.com/vfg2006/social-metrics-api/internal/usecases/charting"
	"github.com/vfg2006/social-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/social-metrics-api/internal/usecases/updating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := mongoconn(ctx, cfg.Database)
	defer conn.Close(context.Background())

	if err := repository.EnsureIndexes(ctx, conn.Database(), domain.Platforms()); err != nil {
		logrus.WithError(err).Warn("Não foi possível garantir os índices das coleções")
	}

	accountRepo := repository.NewAccountRepository(conn.Database())

	sheetsClient := spreadsheetclient.NewClient(cfg)
	spreadsheetIntegrator := spreadsheet.New(cfg, sheetsClient)

	monitorClient := monitorclient.NewClient(cfg.Monitor)
	monitorIntegrator := monitor.New(monitorClient)

	accountService := account.NewService(accountRepo)
	chartService := charting.NewService(accountRepo, cfg.Chart)
	importService := importing.NewService(accountRepo, spreadsheetIntegrator, cfg)
	updateService := updating.NewService(accountRepo, monitorIntegrator, cfg.Monitor.MaxConcurrentRequests)

	monitorSyncService := scheduler.NewMonitorSyncService(updateService, cfg)
	if err := monitorSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do monitor de dados")
	} else {
		logrus.Info("Agendador do monitor de dados iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Accounts:    accountService,
		Charts:      chartService,
		Import:      importService,
		Update:      updateService,
		MonitorSync: monitorSyncService,
		Database:    conn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// mongoconn cria a conexão com o MongoDB
func mongoconn(ctx context.Context, dbConfig config.Database) *mongodb.Connection {
	conn, err := mongodb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao MongoDB")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com MongoDB")
	}

	logrus.Info("Conexão com MongoDB estabelecida com sucesso")
	return conn
}
