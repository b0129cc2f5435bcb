package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-metrics-api/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Server:   Server{Port: "3000", SyncRequestsPerMinute: 10},
		Database: Database{URI: "mongodb://localhost:27017", Name: "resocie"},
		Google:   Google{RedirectBaseURL: "http://localhost:3000"},
		Spreadsheet: Spreadsheet{
			ID:         "planilha",
			Ranges:     []string{"A:Y"},
			Categories: []string{"Sem categoria"},
		},
		OAuthState: OAuthState{Secret: "segredo", TTL: 10 * time.Minute},
		Monitor: Monitor{
			RequestsPerSecond:     5,
			MaxConcurrentRequests: 3,
			BreakerFailures:       5,
		},
		Chart: Chart{Size: 700},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		expectErr bool
	}{
		{
			name:   "Configuração completa",
			mutate: func(c *Config) {},
		},
		{
			name:      "Sem porta",
			mutate:    func(c *Config) { c.Server.Port = "" },
			expectErr: true,
		},
		{
			name:      "URL de retorno inválida",
			mutate:    func(c *Config) { c.Google.RedirectBaseURL = "localhost" },
			expectErr: true,
		},
		{
			name:      "Sem intervalos da planilha",
			mutate:    func(c *Config) { c.Spreadsheet.Ranges = nil },
			expectErr: true,
		},
		{
			name:      "Gráfico pequeno demais",
			mutate:    func(c *Config) { c.Chart.Size = 50 },
			expectErr: true,
		},
		{
			name:      "Monitor sem limite de requisições",
			mutate:    func(c *Config) { c.Monitor.RequestsPerSecond = 0 },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultSheetLayouts(t *testing.T) {
	layouts := DefaultSheetLayouts()

	for _, platform := range domain.Platforms() {
		layout, ok := layouts[platform.Name]
		require.True(t, ok, "layout ausente para %s", platform.Name)

		for _, key := range platform.MetricKeys() {
			_, ok := layout.MetricColumns[key]
			assert.True(t, ok, "coluna de %s ausente em %s", key, platform.Name)
		}
		assert.Equal(t, platform.HasCampaigns, layout.CampaignsColumn >= 0)
	}
}

func TestNewConfig(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SPREADSHEET_RANGES", "A:Y,Z:Z")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"A:Y", "Z:Z"}, cfg.Spreadsheet.Ranges)
	assert.Equal(t, 10*time.Minute, cfg.OAuthState.TTL)
	assert.Equal(t, 700, cfg.Chart.Size)
	assert.Len(t, cfg.Layouts, 4)
}
