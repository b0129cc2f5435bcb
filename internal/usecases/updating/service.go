package updating

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/monitor"
	"github.com/vfg2006/social-metrics-api/infrastructure/repository"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/social-metrics-api/pkg/metrics"
)

const defaultMaxConcurrent = 5

type UpdateService interface {
	Update(ctx context.Context, platform domain.Platform) (*domain.UpdateReport, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	monitor           monitor.MonitorIntegrator
	maxConcurrent     int
}

func NewService(
	accountRepository repository.AccountRepository,
	monitorIntegrator monitor.MonitorIntegrator,
	maxConcurrent int,
) UpdateService {
	if maxConcurrent < 1 {
		maxConcurrent = defaultMaxConcurrent
	}

	return &Service{
		accountRepository: accountRepository,
		monitor:           monitorIntegrator,
		maxConcurrent:     maxConcurrent,
	}
}

type fetchResult struct {
	account *domain.Account
	sample  *domain.Sample
}

// Update completa o histórico das contas com as datas do monitor que ainda não constam na base.
// Falhas em datas isoladas vão para o relatório; falhas ao listar atores ou datas interrompem a execução.
func (s *Service) Update(ctx context.Context, platform domain.Platform) (*domain.UpdateReport, error) {
	platformName := string(platform.Name)

	if !platform.Updatable {
		return nil, NewUpdateError(ErrNotUpdatable, apiErrors.ErrUnknownPlatform, platformName,
			"Atualização disponível apenas para twitter e youtube")
	}

	actors, err := s.monitor.Actors(ctx, platform.Name)
	if err != nil {
		logrus.WithError(err).WithField("platform", platformName).Error("Erro ao buscar atores no monitor")
		metrics.ImportRuns.WithLabelValues(platformName, "monitor_error").Inc()
		return nil, NewUpdateError(ErrMonitorFetch, apiErrors.ErrMonitor, platformName,
			"Houve um erro ao fazer o pedido de atores no servidor do Monitor de Dados")
	}

	dates, err := s.monitor.Dates(ctx, platform.Name)
	if err != nil {
		logrus.WithError(err).WithField("platform", platformName).Error("Erro ao buscar datas no monitor")
		metrics.ImportRuns.WithLabelValues(platformName, "monitor_error").Inc()
		return nil, NewUpdateError(ErrMonitorFetch, apiErrors.ErrMonitor, platformName,
			"Houve um erro ao fazer o pedido de datas no servidor do Monitor de Dados")
	}

	stored, err := s.accountRepository.FindAll(ctx, platform)
	if err != nil {
		logrus.WithError(err).WithField("platform", platformName).Error("Erro ao carregar contas")
		return nil, NewUpdateError(ErrLoadAccounts, apiErrors.ErrDatabaseOperation, platformName,
			"Erro ao carregar contas no banco de dados")
	}

	byName := make(map[string]*domain.Account, len(stored))
	for _, acc := range stored {
		byName[acc.Name] = acc
	}

	report := &domain.UpdateReport{
		Platform: platform.Name,
		Actors:   len(actors),
	}

	targets := make([]*domain.Account, 0, len(actors))
	seen := make(map[string]struct{}, len(actors))
	for _, actor := range actors {
		if _, dup := seen[actor]; dup {
			report.SkippedActors++
			continue
		}
		seen[actor] = struct{}{}

		acc, ok := byName[actor]
		if !ok {
			acc = s.monitor.NewAccount(platform.Name, actor)
			if acc.ExternalID == nil && acc.Link != nil {
				acc.ExternalID = importing.ExtractExternalID(platform, *acc.Link)
			}
			byName[actor] = acc
			report.NewAccounts++
		} else if platform.UpdateRequiresLink && acc.Link == nil {
			logrus.WithFields(logrus.Fields{
				"platform": platformName,
				"actor":    actor,
			}).Debug("Conta sem link ignorada na atualização")
			report.SkippedActors++
			continue
		}
		targets = append(targets, acc)
	}

	results, failures := s.fetchMissing(ctx, platform.Name, targets, dates)
	if err := ctx.Err(); err != nil {
		logrus.WithError(err).WithField("platform", platformName).Warn("Atualização interrompida")
		metrics.ImportRuns.WithLabelValues(platformName, "canceled").Inc()
		return nil, NewUpdateError(ErrCanceled, apiErrors.ErrInternalServer, platformName,
			"Atualização interrompida antes de consultar todas as datas")
	}

	for _, result := range results {
		result.account.InsertSample(*result.sample)
	}
	report.SamplesAdded = len(results)
	report.Failures = failures

	if err := s.accountRepository.SaveAll(ctx, platform, targets); err != nil {
		logrus.WithError(err).WithField("platform", platformName).Error("Erro ao salvar contas atualizadas")
		metrics.ImportRuns.WithLabelValues(platformName, "persist_error").Inc()
		return nil, NewUpdateError(ErrPersist, apiErrors.ErrImport, platformName,
			"Erro ao salvar contas atualizadas no banco de dados")
	}

	metrics.ImportRuns.WithLabelValues(platformName, "update").Inc()
	metrics.ImportedSamples.WithLabelValues(platformName).Add(float64(report.SamplesAdded))

	logrus.WithFields(logrus.Fields{
		"platform":       platformName,
		"actors":         report.Actors,
		"skipped_actors": report.SkippedActors,
		"new_accounts":   report.NewAccounts,
		"samples_added":  report.SamplesAdded,
		"failures":       len(report.Failures),
	}).Info("Atualização a partir do monitor concluída")

	return report, nil
}

// fetchMissing consulta o monitor para cada par ator/data ausente no histórico
func (s *Service) fetchMissing(
	ctx context.Context,
	platform domain.PlatformName,
	accounts []*domain.Account,
	dates []time.Time,
) ([]fetchResult, []domain.UpdateFailure) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		results  []fetchResult
		failures []domain.UpdateFailure
	)

	semaphore := make(chan struct{}, s.maxConcurrent)

dispatch:
	for _, acc := range accounts {
		for _, date := range dates {
			if acc.HasSampleOn(date) {
				continue
			}
			if ctx.Err() != nil {
				break dispatch
			}

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				break dispatch
			}

			wg.Add(1)
			go func(acc *domain.Account, date time.Time) {
				defer wg.Done()
				defer func() { <-semaphore }()

				sample, err := s.monitor.Sample(ctx, platform, acc.Name, date)

				mu.Lock()
				defer mu.Unlock()

				if err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"platform": platform,
						"actor":    acc.Name,
						"date":     date.Format(time.DateOnly),
					}).Warn("Falha ao consultar amostra no monitor")
					failures = append(failures, domain.UpdateFailure{
						Actor: acc.Name,
						Date:  date.Format(time.DateOnly),
						Error: err.Error(),
					})
					return
				}

				results = append(results, fetchResult{account: acc, sample: sample})
			}(acc, date)
		}
	}

	wg.Wait()
	return results, failures
}
