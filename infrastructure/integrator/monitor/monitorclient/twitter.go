package monitorclient

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	monitordomain "github.com/vfg2006/social-metrics-api/infrastructure/integrator/monitor/domain"
)

const twitterPlatform = "twitter"

func (c *MonitorClient) GetTwitterActors(ctx context.Context) ([]string, error) {
	var response monitordomain.ActorsResponse
	if err := c.get(ctx, twitterPlatform, fmt.Sprintf("%s/api/actors", c.cfg.TwitterURL), &response); err != nil {
		return nil, err
	}
	return response.Actors, nil
}

func (c *MonitorClient) GetTwitterDates(ctx context.Context) ([]string, error) {
	var response monitordomain.DatesResponse
	if err := c.get(ctx, twitterPlatform, fmt.Sprintf("%s/api/actors/datetime", c.cfg.TwitterURL), &response); err != nil {
		return nil, err
	}
	return response.Dates, nil
}

// GetTwitterActor lê o único objeto aninhado da resposta, cuja chave varia por ator
func (c *MonitorClient) GetTwitterActor(ctx context.Context, actor, date string) (*monitordomain.TwitterCounts, error) {
	url := fmt.Sprintf("%s/api/actor/%s/%s", c.cfg.TwitterURL, ActorPath(actor), date)

	var response map[string]jsoniter.RawMessage
	if err := c.get(ctx, twitterPlatform, url, &response); err != nil {
		return nil, err
	}

	for _, raw := range response {
		counts := &monitordomain.TwitterCounts{}
		if err := json.Unmarshal(raw, counts); err != nil {
			return nil, fmt.Errorf("contadores inválidos para %s em %s: %w", actor, date, err)
		}
		return counts, nil
	}

	return nil, fmt.Errorf("monitor não retornou dados para %s em %s", actor, date)
}
