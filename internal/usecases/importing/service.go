package importing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/spreadsheet"
	"github.com/vfg2006/social-metrics-api/infrastructure/repository"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/social-metrics-api/pkg/metrics"
	"github.com/vfg2006/social-metrics-api/pkg/utils"
)

type ImportService interface {
	AuthURL(platform domain.Platform) (string, error)
	Import(ctx context.Context, platform domain.Platform, code, state string) (*domain.ImportReport, error)
}

// stateClaims identifica a plataforma que iniciou o consentimento no Google
type stateClaims struct {
	Platform string `json:"platform"`
	jwt.RegisteredClaims
}

type Service struct {
	accountRepository repository.AccountRepository
	spreadsheet       spreadsheet.SpreadsheetIntegrator
	cfg               *config.Config
	now               func() time.Time
}

func NewService(
	accountRepository repository.AccountRepository,
	spreadsheetIntegrator spreadsheet.SpreadsheetIntegrator,
	cfg *config.Config,
) ImportService {
	return &Service{
		accountRepository: accountRepository,
		spreadsheet:       spreadsheetIntegrator,
		cfg:               cfg,
		now:               time.Now,
	}
}

// RedirectURL é o endereço de retorno do consentimento para a plataforma
func RedirectURL(cfg *config.Config, platform domain.Platform) string {
	return fmt.Sprintf("%s/%s/import", strings.TrimSuffix(cfg.Google.RedirectBaseURL, "/"), platform.Name)
}

func (s *Service) AuthURL(platform domain.Platform) (string, error) {
	state, err := s.signState(platform)
	if err != nil {
		logrus.WithError(err).Error("Erro ao assinar o estado OAuth")
		return "", NewImportError(ErrStateSigning, apiErrors.ErrInternalServer, string(platform.Name), "Falha ao iniciar a autenticação com o Google")
	}

	return s.spreadsheet.AuthURL(state, RedirectURL(s.cfg, platform)), nil
}

func (s *Service) Import(ctx context.Context, platform domain.Platform, code, state string) (*domain.ImportReport, error) {
	platformName := string(platform.Name)

	if err := s.validateState(state, platform); err != nil {
		logrus.WithError(err).WithField("platform", platformName).Warn("Estado OAuth rejeitado")
		return nil, NewImportError(ErrInvalidState, apiErrors.ErrInvalidState, platformName, "Estado de autenticação inválido ou expirado")
	}

	layout, ok := s.cfg.Layouts[platform.Name]
	if !ok {
		return nil, NewImportError(ErrMissingLayout, apiErrors.ErrInternalServer, platformName, "Layout da planilha não configurado")
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, NewImportError(err, apiErrors.ErrInternalServer, platformName, "Falha ao gerar identificador da importação")
	}

	logger := logrus.WithFields(logrus.Fields{
		"platform": platformName,
		"run_id":   runID,
	})
	logger.Info("Iniciando importação da planilha")

	tabs, err := s.spreadsheet.FetchTabs(ctx, code, RedirectURL(s.cfg, platform))
	if err != nil {
		logger.WithError(err).Error("Erro ao obter dados da planilha")
		metrics.ImportRuns.WithLabelValues(platformName, "spreadsheet_error").Inc()
		return nil, NewImportError(ErrSpreadsheetFetch, apiErrors.ErrSpreadsheet, platformName, err.Error())
	}

	var existing []*domain.Account
	if platform.MergeOnImport {
		existing, err = s.accountRepository.FindAll(ctx, platform)
		if err != nil {
			logger.WithError(err).Error("Erro ao carregar contas existentes")
			metrics.ImportRuns.WithLabelValues(platformName, "database_error").Inc()
			return nil, NewImportError(ErrLoadExisting, apiErrors.ErrDatabaseOperation, platformName, "Falha ao carregar contas existentes")
		}
	}

	accounts, report := NewImporter(platform, layout, s.cfg.Spreadsheet.Categories).Run(tabs, existing)
	report.RunID = runID

	if err := s.accountRepository.DeleteAll(ctx, platform); err != nil {
		logger.WithError(err).Error("Erro ao limpar a coleção antes da importação")
		metrics.ImportRuns.WithLabelValues(platformName, "database_error").Inc()
		return nil, NewImportError(ErrPersist, apiErrors.ErrImport, platformName, "Falha ao limpar a coleção")
	}

	if err := s.accountRepository.SaveAll(ctx, platform, accounts); err != nil {
		logger.WithError(err).Error("Erro ao salvar contas importadas")
		metrics.ImportRuns.WithLabelValues(platformName, "database_error").Inc()
		return nil, NewImportError(ErrPersist, apiErrors.ErrImport, platformName, "Falha ao salvar contas importadas")
	}

	metrics.ImportRuns.WithLabelValues(platformName, "success").Inc()
	metrics.ImportedSamples.WithLabelValues(platformName).Add(float64(report.SamplesAppended))

	logger.WithFields(logrus.Fields{
		"tabs":               report.Tabs,
		"rows":               report.RowsRead,
		"accounts":           report.Accounts,
		"samples":            report.SamplesAppended,
		"rows_without_date":  report.RowsWithoutDate,
		"duplicates_skipped": report.DuplicatesSkipped,
	}).Info("Importação concluída")

	return &report, nil
}

func (s *Service) signState(platform domain.Platform) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := stateClaims{
		Platform: string(platform.Name),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.OAuthState.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.OAuthState.Secret))
}

func (s *Service) validateState(state string, platform domain.Platform) error {
	if state == "" {
		return errors.New("estado ausente")
	}

	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.OAuthState.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return err
	}

	if claims.Platform != string(platform.Name) {
		return fmt.Errorf("estado emitido para %q", claims.Platform)
	}
	return nil
}
