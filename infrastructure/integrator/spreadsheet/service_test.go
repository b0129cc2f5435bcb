package spreadsheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/spreadsheet/spreadsheetclient"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"golang.org/x/oauth2"
)

func TestGoogleSheetsIntegrator_FetchTabs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/token":
			w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
		case "/v4/spreadsheets/planilha/values:batchGet":
			w.Write([]byte(`{"valueRanges":[{"values":[["Nome"],["Coletivo A"],["Coletivo B"]]}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := &config.Config{
		Spreadsheet: config.Spreadsheet{ID: "planilha", Ranges: []string{"A:Y"}},
	}
	client := &spreadsheetclient.SheetsClient{
		Cfg: cfg,
		OAuthEndpoint: oauth2.Endpoint{
			TokenURL:  server.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		APIEndpoint: server.URL + "/",
	}

	tabs, err := New(cfg, client).FetchTabs(context.Background(), "codigo", "http://localhost/facebook/import")
	require.NoError(t, err)

	require.Len(t, tabs, 1)
	assert.Len(t, tabs[0], 3)
	assert.Equal(t, "Coletivo B", tabs[0][2][0])
}

func TestGoogleSheetsIntegrator_FetchTabs_ExchangeFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	cfg := &config.Config{}
	client := &spreadsheetclient.SheetsClient{
		Cfg: cfg,
		OAuthEndpoint: oauth2.Endpoint{
			TokenURL:  server.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	_, err := New(cfg, client).FetchTabs(context.Background(), "codigo", "http://localhost/facebook/import")
	assert.Error(t, err)
}
