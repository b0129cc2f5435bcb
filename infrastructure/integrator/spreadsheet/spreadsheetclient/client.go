package spreadsheetclient

import (
	"context"
	"fmt"

	"github.com/vfg2006/social-metrics-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client interface {
	AuthCodeURL(state, redirectURL string) string
	Exchange(ctx context.Context, code, redirectURL string) (*oauth2.Token, error)
	BatchGetValues(ctx context.Context, token *oauth2.Token, spreadsheetID string, ranges []string) ([][][]string, error)
}

type SheetsClient struct {
	Cfg *config.Config
	// Endpoint do OAuth e da API; sobrescritos apenas em testes
	OAuthEndpoint oauth2.Endpoint
	APIEndpoint   string
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		Cfg:           cfg,
		OAuthEndpoint: google.Endpoint,
	}
}

func (c *SheetsClient) oauthConfig(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.Cfg.Google.ClientID,
		ClientSecret: c.Cfg.Google.ClientSecret,
		Endpoint:     c.OAuthEndpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{sheets.SpreadsheetsReadonlyScope},
	}
}

// AuthCodeURL monta a URL de consentimento com acesso offline e consentimento forçado
func (c *SheetsClient) AuthCodeURL(state, redirectURL string) string {
	return c.oauthConfig(redirectURL).AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (c *SheetsClient) Exchange(ctx context.Context, code, redirectURL string) (*oauth2.Token, error) {
	token, err := c.oauthConfig(redirectURL).Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("spreadsheetclient: troca do código OAuth: %w", err)
	}
	return token, nil
}

// BatchGetValues lê cada intervalo como uma aba de linhas de texto
func (c *SheetsClient) BatchGetValues(ctx context.Context, token *oauth2.Token, spreadsheetID string, ranges []string) ([][][]string, error) {
	opts := []option.ClientOption{
		option.WithHTTPClient(c.oauthConfig("").Client(ctx, token)),
	}
	if c.APIEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.APIEndpoint))
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("spreadsheetclient: criação do serviço: %w", err)
	}

	resp, err := srv.Spreadsheets.Values.BatchGet(spreadsheetID).
		Ranges(ranges...).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("spreadsheetclient: leitura da planilha %s: %w", spreadsheetID, err)
	}

	tabs := make([][][]string, 0, len(resp.ValueRanges))
	for _, vr := range resp.ValueRanges {
		rows := make([][]string, 0, len(vr.Values))
		for _, values := range vr.Values {
			row := make([]string, len(values))
			for i, v := range values {
				if s, ok := v.(string); ok {
					row[i] = s
				} else if v != nil {
					row[i] = fmt.Sprint(v)
				}
			}
			rows = append(rows, row)
		}
		tabs = append(tabs, rows)
	}

	return tabs, nil
}
