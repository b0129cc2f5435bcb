package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/social-metrics-api/internal/domain"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Google      Google      `mapstructure:",squash"`
	Spreadsheet Spreadsheet `mapstructure:",squash"`
	OAuthState  OAuthState  `mapstructure:",squash"`
	Monitor     Monitor     `mapstructure:",squash"`
	MonitorSync MonitorSync `mapstructure:",squash"`
	Chart       Chart       `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`

	Layouts map[domain.PlatformName]domain.SheetLayout `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required"`
	// Limite de requisições por minuto nas rotas de importação e atualização
	SyncRequestsPerMinute int `mapstructure:"sync_requests_per_minute" validate:"gte=1"`
}

type Database struct {
	URI     string        `mapstructure:"mongo_uri" validate:"required"`
	Name    string        `mapstructure:"mongo_database" validate:"required"`
	Timeout time.Duration `mapstructure:"mongo_timeout"`
	MaxPool uint64        `mapstructure:"mongo_max_pool_size"`
	MinPool uint64        `mapstructure:"mongo_min_pool_size"`
}

type Google struct {
	ClientID        string `mapstructure:"google_client_id"`
	ClientSecret    string `mapstructure:"google_client_secret"`
	RedirectBaseURL string `mapstructure:"google_redirect_base_url" validate:"required,url"`
}

type Spreadsheet struct {
	ID         string   `mapstructure:"spreadsheet_id" validate:"required"`
	Ranges     []string `mapstructure:"spreadsheet_ranges" validate:"min=1"`
	Categories []string `mapstructure:"spreadsheet_categories" validate:"min=1"`
}

type OAuthState struct {
	Secret string        `mapstructure:"oauth_state_secret" validate:"required"`
	TTL    time.Duration `mapstructure:"oauth_state_ttl"`
}

type Monitor struct {
	TwitterURL            string        `mapstructure:"twitter_monitor_url"`
	YoutubeURL            string        `mapstructure:"youtube_monitor_url"`
	Timeout               time.Duration `mapstructure:"monitor_timeout"`
	RequestsPerSecond     float64       `mapstructure:"monitor_requests_per_second" validate:"gt=0"`
	MaxConcurrentRequests int           `mapstructure:"monitor_max_concurrent_requests" validate:"gte=1"`
	BreakerFailures       uint32        `mapstructure:"monitor_breaker_failures" validate:"gte=1"`
	BreakerTimeout        time.Duration `mapstructure:"monitor_breaker_timeout"`
}

type MonitorSync struct {
	CronSchedule string `mapstructure:"monitor_sync_cron"`
	Enabled      bool   `mapstructure:"monitor_sync_enabled"`
}

type Chart struct {
	Size int `mapstructure:"chart_size" validate:"gte=100"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)
	viper.SetDefault("SYNC_REQUESTS_PER_MINUTE", 10)

	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "resocie")
	viper.SetDefault("MONGO_TIMEOUT", "10s")
	viper.SetDefault("MONGO_MAX_POOL_SIZE", 50)
	viper.SetDefault("MONGO_MIN_POOL_SIZE", 10)

	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_BASE_URL", "http://localhost:3000")

	viper.SetDefault("SPREADSHEET_ID", "1yesZHlR3Mo0qpuH7VTFB8_zyl6p_H-b1khh-wlB3O_Q")
	viper.SetDefault("SPREADSHEET_RANGES", "A:Y")
	viper.SetDefault("SPREADSHEET_CATEGORIES", "Sem categoria")

	viper.SetDefault("OAUTH_STATE_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("OAUTH_STATE_TTL", "10m")

	viper.SetDefault("TWITTER_MONITOR_URL", "http://localhost:5000")
	viper.SetDefault("YOUTUBE_MONITOR_URL", "http://localhost:5001")
	viper.SetDefault("MONITOR_TIMEOUT", "30s")
	viper.SetDefault("MONITOR_REQUESTS_PER_SECOND", 5)
	viper.SetDefault("MONITOR_MAX_CONCURRENT_REQUESTS", 3)
	viper.SetDefault("MONITOR_BREAKER_FAILURES", 5)
	viper.SetDefault("MONITOR_BREAKER_TIMEOUT", "60s")

	viper.SetDefault("MONITOR_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("MONITOR_SYNC_ENABLED", false)

	viper.SetDefault("CHART_SIZE", 700)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Layouts = DefaultSheetLayouts()

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as restrições declaradas nas tags `validate`
func Validate(config *Config) error {
	v := validator.New()
	if err := v.Struct(config); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	return nil
}

// DefaultSheetLayouts retorna as colunas de cada plataforma na planilha do observatório
func DefaultSheetLayouts() map[domain.PlatformName]domain.SheetLayout {
	return map[domain.PlatformName]domain.SheetLayout{
		domain.PlatformFacebook: {
			NameColumn: 0,
			LinkColumn: 1,
			DateColumn: 4,
			MetricColumns: map[string]int{
				"likes":     2,
				"followers": 3,
			},
			CampaignsColumn: -1,
		},
		domain.PlatformTwitter: {
			NameColumn: 0,
			LinkColumn: 7,
			DateColumn: 14,
			MetricColumns: map[string]int{
				"tweets":    8,
				"following": 9,
				"followers": 10,
				"likes":     11,
				"moments":   12,
			},
			CampaignsColumn: 13,
		},
		domain.PlatformInstagram: {
			NameColumn: 0,
			LinkColumn: 15,
			DateColumn: 19,
			MetricColumns: map[string]int{
				"followers":    16,
				"following":    17,
				"num_of_posts": 18,
			},
			CampaignsColumn: -1,
		},
		domain.PlatformYoutube: {
			NameColumn: 0,
			LinkColumn: 20,
			DateColumn: 24,
			MetricColumns: map[string]int{
				"subscribers": 21,
				"videos":      22,
				"views":       23,
			},
			CampaignsColumn: -1,
		},
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
