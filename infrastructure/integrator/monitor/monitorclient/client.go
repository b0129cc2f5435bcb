package monitorclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	monitordomain "github.com/vfg2006/social-metrics-api/infrastructure/integrator/monitor/domain"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"github.com/vfg2006/social-metrics-api/pkg/metrics"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnexpectedStatus = errors.New("monitor respondeu com status inesperado")

type Client interface {
	GetTwitterActors(ctx context.Context) ([]string, error)
	GetTwitterDates(ctx context.Context) ([]string, error)
	GetTwitterActor(ctx context.Context, actor, date string) (*monitordomain.TwitterCounts, error)
	GetYoutubeActors(ctx context.Context) ([]string, error)
	GetYoutubeDates(ctx context.Context) ([]string, error)
	GetYoutubeChannel(ctx context.Context, actor, date string) (*monitordomain.YoutubeCounts, error)
}

type MonitorClient struct {
	cfg        config.Monitor
	httpClient *http.Client
	limiter    *rate.Limiter
	breakers   map[string]*gobreaker.CircuitBreaker[[]byte]
}

func NewClient(cfg config.Monitor) Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.MaxConcurrentRequests
	if burst < 1 {
		burst = 1
	}

	return &MonitorClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		breakers: map[string]*gobreaker.CircuitBreaker[[]byte]{
			"twitter": newBreaker("monitor-twitter", cfg),
			"youtube": newBreaker("monitor-youtube", cfg),
		},
	}
}

func newBreaker(name string, cfg config.Monitor) *gobreaker.CircuitBreaker[[]byte] {
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker do monitor mudou de estado")
		},
	})
}

// ActorPath troca espaços por sublinhados como o monitor espera
func ActorPath(actor string) string {
	return strings.ReplaceAll(actor, " ", "_")
}

func (c *MonitorClient) get(ctx context.Context, platform, url string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := c.breakers[platform].Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		metrics.MonitorRequests.WithLabelValues(platform, "error").Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform": platform,
			"url":      url,
		}).Debug("Falha na consulta ao monitor")
		return err
	}

	metrics.MonitorRequests.WithLabelValues(platform, "success").Inc()

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("resposta inválida do monitor: %w", err)
	}
	return nil
}
