package spreadsheet

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/spreadsheet/spreadsheetclient"
	"github.com/vfg2006/social-metrics-api/internal/config"
)

type SpreadsheetIntegrator interface {
	AuthURL(state, redirectURL string) string
	FetchTabs(ctx context.Context, code, redirectURL string) ([][][]string, error)
}

type GoogleSheetsIntegrator struct {
	cfg    *config.Config
	Client spreadsheetclient.Client
}

func New(cfg *config.Config, client spreadsheetclient.Client) SpreadsheetIntegrator {
	return &GoogleSheetsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleSheetsIntegrator) AuthURL(state, redirectURL string) string {
	return s.Client.AuthCodeURL(state, redirectURL)
}

// FetchTabs troca o código de autorização e lê os intervalos configurados da planilha
func (s *GoogleSheetsIntegrator) FetchTabs(ctx context.Context, code, redirectURL string) ([][][]string, error) {
	token, err := s.Client.Exchange(ctx, code, redirectURL)
	if err != nil {
		logrus.WithError(err).Error("spreadsheet: falha ao trocar o código de autorização")
		return nil, err
	}

	tabs, err := s.Client.BatchGetValues(ctx, token, s.cfg.Spreadsheet.ID, s.cfg.Spreadsheet.Ranges)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"spreadsheet_id": s.cfg.Spreadsheet.ID,
			"ranges":         s.cfg.Spreadsheet.Ranges,
		}).WithError(err).Error("spreadsheet: falha ao ler a planilha")
		return nil, err
	}

	rows := 0
	for _, tab := range tabs {
		rows += len(tab)
	}
	logrus.WithFields(logrus.Fields{
		"tabs": len(tabs),
		"rows": rows,
	}).Debug("spreadsheet: planilha lida com sucesso")

	return tabs, nil
}
