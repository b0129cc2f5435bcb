package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/updating"
)

// AllPlatforms seleciona todas as plataformas atualizáveis no disparo manual
const AllPlatforms = "all"

// MonitorSyncConfig representa a configuração do agendador de atualização pelo monitor
type MonitorSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PlatformSyncStatus guarda o resultado da última execução de uma plataforma
type PlatformSyncStatus struct {
	LastRunAt    time.Time `json:"last_run_at"`
	SamplesAdded int       `json:"samples_added"`
	NewAccounts  int       `json:"new_accounts"`
	Failures     int       `json:"failures"`
	Error        string    `json:"error,omitempty"`
}

// MonitorSyncService agenda e executa a atualização das plataformas a partir do monitor de dados
type MonitorSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonitorSyncConfig
	updateService       updating.UpdateService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	platformStatus      map[domain.PlatformName]PlatformSyncStatus
}

func NewMonitorSyncService(updateService updating.UpdateService, appConfig *config.Config) *MonitorSyncService {
	syncConfig := MonitorSyncConfig{
		CronSchedule: appConfig.MonitorSync.CronSchedule,
		SyncEnabled:  appConfig.MonitorSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do monitor de dados carregada")

	return &MonitorSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         syncConfig,
		updateService:  updateService,
		platformStatus: make(map[domain.PlatformName]PlatformSyncStatus),
	}
}

// Start inicia o agendador
func (s *MonitorSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização pelo monitor de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do monitor de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncPlatforms(ctx, updatablePlatforms())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização pelo monitor de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do monitor de dados")
		s.scheduler.Stop()
	}()

	return nil
}

func updatablePlatforms() []domain.Platform {
	platforms := make([]domain.Platform, 0)
	for _, p := range domain.Platforms() {
		if p.Updatable {
			platforms = append(platforms, p)
		}
	}
	return platforms
}

// ResolvePlatforms converte o parâmetro da rota em plataformas atualizáveis
func ResolvePlatforms(name string) ([]domain.Platform, error) {
	if name == AllPlatforms {
		return updatablePlatforms(), nil
	}

	platform, ok := domain.PlatformByName(name)
	if !ok || !platform.Updatable {
		return nil, fmt.Errorf("%w: %s", updating.ErrNotUpdatable, name)
	}
	return []domain.Platform{platform}, nil
}

// tryStart marca a atualização como em andamento; falso quando já existe uma execução
func (s *MonitorSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *MonitorSyncService) finish() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// syncPlatforms é a execução agendada; ignora o disparo quando outra execução está ativa
func (s *MonitorSyncService) syncPlatforms(ctx context.Context, platforms []domain.Platform) {
	if !s.tryStart() {
		logrus.Info("Atualização pelo monitor já em andamento, ignorando")
		return
	}
	s.runSync(ctx, platforms)
}

// runSync executa a atualização de cada plataforma em sequência; exige tryStart antes
func (s *MonitorSyncService) runSync(ctx context.Context, platforms []domain.Platform) {
	defer s.finish()

	startTime := time.Now()
	for _, platform := range platforms {
		status := PlatformSyncStatus{LastRunAt: time.Now()}

		report, err := s.updateService.Update(ctx, platform)
		if err != nil {
			logrus.WithError(err).WithField("platform", platform.Name).Error("Erro na atualização agendada pelo monitor")
			status.Error = err.Error()
		} else {
			status.SamplesAdded = report.SamplesAdded
			status.NewAccounts = report.NewAccounts
			status.Failures = len(report.Failures)
		}

		s.syncMutex.Lock()
		s.platformStatus[platform.Name] = status
		s.syncMutex.Unlock()
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"platforms": len(platforms),
	}).Info("Atualização pelo monitor de dados concluída")
}

// TriggerManualSync inicia manualmente a atualização das plataformas informadas
func (s *MonitorSyncService) TriggerManualSync(platforms []domain.Platform) bool {
	if !s.tryStart() {
		logrus.Info("Atualização pelo monitor já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.WithField("platforms", len(platforms)).Info("Iniciando atualização manual pelo monitor de dados")
	go s.runSync(context.Background(), platforms)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *MonitorSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	platforms := make(map[domain.PlatformName]PlatformSyncStatus, len(s.platformStatus))
	for name, status := range s.platformStatus {
		platforms[name] = status
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"platforms":              platforms,
	}
}
