package monitor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/infrastructure/integrator/monitor/monitorclient"
	"github.com/vfg2006/social-metrics-api/internal/domain"
)

const (
	twitterDateLayout = "2006-01-02"
	youtubeDateLayout = "02-01-2006"
	dateLength        = 10
)

var ErrUnsupportedPlatform = errors.New("plataforma sem monitor de dados")

type MonitorIntegrator interface {
	Actors(ctx context.Context, platform domain.PlatformName) ([]string, error)
	Dates(ctx context.Context, platform domain.PlatformName) ([]time.Time, error)
	Sample(ctx context.Context, platform domain.PlatformName, actor string, date time.Time) (*domain.Sample, error)
	NewAccount(platform domain.PlatformName, actor string) *domain.Account
}

type DataMonitorIntegrator struct {
	Client monitorclient.Client
}

func New(client monitorclient.Client) *DataMonitorIntegrator {
	return &DataMonitorIntegrator{
		Client: client,
	}
}

func (m *DataMonitorIntegrator) Actors(ctx context.Context, platform domain.PlatformName) ([]string, error) {
	switch platform {
	case domain.PlatformTwitter:
		return m.Client.GetTwitterActors(ctx)
	case domain.PlatformYoutube:
		return m.Client.GetYoutubeActors(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)
	}
}

// Dates devolve as datas do monitor em ordem cronológica, descartando as ilegíveis
func (m *DataMonitorIntegrator) Dates(ctx context.Context, platform domain.PlatformName) ([]time.Time, error) {
	var (
		raw    []string
		layout string
		err    error
	)

	switch platform {
	case domain.PlatformTwitter:
		raw, err = m.Client.GetTwitterDates(ctx)
		layout = twitterDateLayout
	case domain.PlatformYoutube:
		raw, err = m.Client.GetYoutubeDates(ctx)
		layout = youtubeDateLayout
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)
	}
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(raw))
	seen := make(map[time.Time]bool, len(raw))
	for _, value := range raw {
		if len(value) > dateLength {
			value = value[:dateLength]
		}
		date, err := time.Parse(layout, value)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"platform": platform,
				"date":     value,
			}).Warn("Data do monitor ignorada")
			continue
		}
		if seen[date] {
			continue
		}
		seen[date] = true
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (m *DataMonitorIntegrator) Sample(ctx context.Context, platform domain.PlatformName, actor string, date time.Time) (*domain.Sample, error) {
	switch platform {
	case domain.PlatformTwitter:
		counts, err := m.Client.GetTwitterActor(ctx, actor, date.Format(twitterDateLayout))
		if err != nil {
			return nil, err
		}
		return &domain.Sample{
			Date: date,
			Metrics: map[string]*int64{
				"tweets":    counts.TweetsCount,
				"followers": counts.FollowersCount,
				"following": counts.FollowingCount,
				"likes":     counts.LikesCount,
			},
		}, nil
	case domain.PlatformYoutube:
		counts, err := m.Client.GetYoutubeChannel(ctx, actor, date.Format(youtubeDateLayout))
		if err != nil {
			return nil, err
		}
		return &domain.Sample{
			Date: date,
			Metrics: map[string]*int64{
				"subscribers": counts.Subscribers,
				"videos":      counts.VideoCount,
				"views":       counts.ViewCount,
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)
	}
}

// NewAccount cria a conta de um ator que o monitor conhece e a base ainda não
func (m *DataMonitorIntegrator) NewAccount(platform domain.PlatformName, actor string) *domain.Account {
	acc := &domain.Account{
		Name:    actor,
		History: []domain.Sample{},
	}

	switch platform {
	case domain.PlatformTwitter:
		id := actor
		acc.ExternalID = &id
	case domain.PlatformYoutube:
		link := fmt.Sprintf("https://youtube.com/channel/%s", actor)
		acc.Link = &link
	}

	return acc
}
