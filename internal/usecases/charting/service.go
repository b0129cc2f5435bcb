package charting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/infrastructure/repository"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/account"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/social-metrics-api/pkg/metrics"
)

const (
	FormatPNG  = "png"
	FormatJSON = "json"
)

type ChartService interface {
	AccountChart(ctx context.Context, platform domain.Platform, id, query string) (*domain.ChartConfig, error)
	CompareChart(ctx context.Context, platform domain.Platform, query, actors string) (*domain.ChartConfig, error)
	LatestPie(ctx context.Context, platform domain.Platform, id string) (*domain.PieConfig, error)
	RenderLine(w io.Writer, cfg *domain.ChartConfig) error
	RenderPie(w io.Writer, cfg *domain.PieConfig) error
}

type Service struct {
	accountRepository repository.AccountRepository
	size              int
	color             ColorFunc
}

func NewService(accountRepository repository.AccountRepository, cfg config.Chart) ChartService {
	return NewServiceWithColor(accountRepository, cfg, RandomColor)
}

func NewServiceWithColor(accountRepository repository.AccountRepository, cfg config.Chart, color ColorFunc) ChartService {
	return &Service{
		accountRepository: accountRepository,
		size:              cfg.Size,
		color:             color,
	}
}

func (s *Service) AccountChart(ctx context.Context, platform domain.Platform, id, query string) (*domain.ChartConfig, error) {
	metric, err := metricFor(platform, query)
	if err != nil {
		return nil, err
	}

	acc, err := s.accountRepository.FindByExternalID(ctx, platform, id)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform":   platform.Name,
			"account_id": id,
		}).Error("Erro ao buscar conta para o gráfico")
		return nil, NewChartError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}
	if acc == nil {
		return nil, NewChartError(ErrAccountAbsent, apiErrors.ErrAccountNotFound,
			fmt.Sprintf("Conta %s não encontrada no %s", id, platform.Name))
	}

	datasets := []domain.Dataset{BuildDataset(acc, metric.Key, s.color())}
	if !hasPoints(datasets) {
		return nil, NewChartError(ErrEmptyDataset, apiErrors.ErrEmptyDataset,
			fmt.Sprintf("Conta %s não possui valores de %s", id, metric.Label))
	}

	return LineChartConfig(metric, datasets, s.size), nil
}

func (s *Service) CompareChart(ctx context.Context, platform domain.Platform, query, actors string) (*domain.ChartConfig, error) {
	metric, err := metricFor(platform, query)
	if err != nil {
		return nil, err
	}

	ids, err := ParseActors(actors)
	if err != nil {
		return nil, NewChartError(err, apiErrors.ErrInvalidActors, "Informe ao menos um ator no parâmetro actors")
	}

	accounts, err := s.accountRepository.FindByExternalIDs(ctx, platform, ids)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform": platform.Name,
			"actors":   ids,
		}).Error("Erro ao buscar contas para comparação")
		return nil, NewChartError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Erro ao buscar contas no banco de dados")
	}

	datasets := make([]domain.Dataset, 0, len(accounts))
	for _, acc := range accounts {
		datasets = append(datasets, BuildDataset(acc, metric.Key, s.color()))
	}
	if !hasPoints(datasets) {
		return nil, NewChartError(ErrEmptyDataset, apiErrors.ErrEmptyDataset,
			fmt.Sprintf("Nenhum valor de %s para os atores informados", metric.Label))
	}

	return LineChartConfig(metric, datasets, s.size), nil
}

func (s *Service) LatestPie(ctx context.Context, platform domain.Platform, id string) (*domain.PieConfig, error) {
	acc, err := s.accountRepository.FindByExternalID(ctx, platform, id)
	if err != nil {
		return nil, NewChartError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}
	if acc == nil {
		return nil, NewChartError(ErrAccountAbsent, apiErrors.ErrAccountNotFound,
			fmt.Sprintf("Conta %s não encontrada no %s", id, platform.Name))
	}

	latest := account.Latest(acc.History, platform.MetricKeys(), platform.LatestQuota)

	slices := make([]domain.PieSlice, 0, len(latest))
	for _, metric := range platform.Metrics {
		value, ok := latest[metric.Key]
		if !ok || value <= 0 {
			continue
		}
		slices = append(slices, domain.PieSlice{
			Label: metric.Label,
			Value: value,
			Color: s.color(),
		})
	}

	if len(slices) == 0 {
		return nil, NewChartError(ErrEmptyDataset, apiErrors.ErrEmptyDataset,
			fmt.Sprintf("Conta %s não possui valores recentes", id))
	}

	return &domain.PieConfig{
		Type:   "pie",
		Title:  acc.Name,
		Slices: slices,
		Width:  s.size,
		Height: s.size,
	}, nil
}

func (s *Service) RenderLine(w io.Writer, cfg *domain.ChartConfig) error {
	if err := RenderLine(w, cfg); err != nil {
		return NewChartError(errors.Join(ErrRender, err), apiErrors.ErrChartRender, "Falha ao desenhar o gráfico")
	}
	metrics.ChartsRendered.WithLabelValues("line", FormatPNG).Inc()
	return nil
}

func (s *Service) RenderPie(w io.Writer, cfg *domain.PieConfig) error {
	if err := RenderPie(w, cfg); err != nil {
		return NewChartError(errors.Join(ErrRender, err), apiErrors.ErrChartRender, "Falha ao desenhar o gráfico")
	}
	metrics.ChartsRendered.WithLabelValues("pie", FormatPNG).Inc()
	return nil
}

// ParseActors separa a lista de atores por vírgula descartando itens vazios
func ParseActors(raw string) ([]string, error) {
	actors := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if actor := strings.TrimSpace(part); actor != "" {
			actors = append(actors, actor)
		}
	}
	if len(actors) == 0 {
		return nil, ErrInvalidActors
	}
	return actors, nil
}

func metricFor(platform domain.Platform, query string) (domain.Metric, error) {
	metric, ok := platform.Metric(query)
	if !ok {
		return domain.Metric{}, NewChartError(ErrUnknownQuery, apiErrors.ErrInvalidQuery,
			fmt.Sprintf("Consulta %s não existe para %s", query, platform.Name))
	}
	return metric, nil
}
