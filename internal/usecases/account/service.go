package account

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/infrastructure/repository"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
)

const latestRel = "latest"

type AccountService interface {
	ListAccounts(ctx context.Context, platform domain.Platform, baseURL string) (*domain.AccountListResponse, error)
	GetAccount(ctx context.Context, platform domain.Platform, id, baseURL string) (*domain.AccountDetailResponse, error)
	GetLatest(ctx context.Context, platform domain.Platform, id string) (*domain.LatestResponse, error)
	Queries(platform domain.Platform) []domain.Metric
}

type Service struct {
	accountRepository repository.AccountRepository
}

func NewService(accountRepository repository.AccountRepository) AccountService {
	return &Service{
		accountRepository: accountRepository,
	}
}

func (s *Service) ListAccounts(ctx context.Context, platform domain.Platform, baseURL string) (*domain.AccountListResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx, platform)
	if err != nil {
		logrus.WithError(err).WithField("platform", platform.Name).Error("Erro ao listar contas")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrListAccounts, "Falha ao listar contas no banco de dados")
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		links := make([]domain.Link, 0, 1)
		if acc.ExternalID != nil {
			links = append(links, domain.Link{
				Rel:  fmt.Sprintf("%s.account", platform.Name),
				Href: fmt.Sprintf("%s/%s/%s", baseURL, platform.Name, *acc.ExternalID),
			})
		}

		summaries = append(summaries, domain.AccountSummary{
			Name:       acc.Name,
			ExternalID: acc.ExternalID,
			Link:       acc.Link,
			Links:      links,
		})
	}

	return &domain.AccountListResponse{
		Error:    false,
		Import:   ImportLink(platform, baseURL),
		Accounts: summaries,
	}, nil
}

func (s *Service) GetAccount(ctx context.Context, platform domain.Platform, id, baseURL string) (*domain.AccountDetailResponse, error) {
	acc, err := s.load(ctx, platform, id)
	if err != nil {
		return nil, err
	}

	return &domain.AccountDetailResponse{
		Account: acc,
		Links:   QueryLinks(platform, id, baseURL),
	}, nil
}

func (s *Service) GetLatest(ctx context.Context, platform domain.Platform, id string) (*domain.LatestResponse, error) {
	acc, err := s.load(ctx, platform, id)
	if err != nil {
		return nil, err
	}

	return &domain.LatestResponse{
		Error:  false,
		Latest: Latest(acc.History, platform.MetricKeys(), platform.LatestQuota),
	}, nil
}

func (s *Service) Queries(platform domain.Platform) []domain.Metric {
	return platform.Metrics
}

func (s *Service) load(ctx context.Context, platform domain.Platform, id string) (*domain.Account, error) {
	if id == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrAccountNotFound, "ID da conta é obrigatório")
	}

	acc, err := s.accountRepository.FindByExternalID(ctx, platform, id)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform":   platform.Name,
			"account_id": id,
		}).Error("Erro ao buscar conta")
		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar conta no banco de dados")
	}

	if acc == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, id,
			fmt.Sprintf("Conta %s não encontrada no %s", id, platform.Name))
	}

	return acc, nil
}

// ImportLink aponta para a rota de importação da plataforma
func ImportLink(platform domain.Platform, baseURL string) domain.Link {
	return domain.Link{
		Rel:  fmt.Sprintf("%s.import", platform.Name),
		Href: fmt.Sprintf("%s/%s/import", baseURL, platform.Name),
	}
}

// QueryLinks lista o link dos valores mais recentes e um link por métrica da conta
func QueryLinks(platform domain.Platform, id, baseURL string) []domain.Link {
	links := make([]domain.Link, 0, len(platform.Metrics)+1)
	links = append(links, domain.Link{
		Rel:  fmt.Sprintf("%s.account.%s", platform.Name, latestRel),
		Href: fmt.Sprintf("%s/%s/%s/%s", baseURL, platform.Name, latestRel, id),
	})

	for _, metric := range platform.Metrics {
		links = append(links, domain.Link{
			Rel:  fmt.Sprintf("%s.account.%s", platform.Name, metric.Key),
			Href: fmt.Sprintf("%s/%s/%s/%s", baseURL, platform.Name, id, metric.Key),
		})
	}

	return links
}
