package monitorclient

import (
	"context"
	"fmt"

	monitordomain "github.com/vfg2006/social-metrics-api/infrastructure/integrator/monitor/domain"
)

const youtubePlatform = "youtube"

func (c *MonitorClient) GetYoutubeActors(ctx context.Context) ([]string, error) {
	var response monitordomain.ActorsResponse
	if err := c.get(ctx, youtubePlatform, fmt.Sprintf("%s/actors", c.cfg.YoutubeURL), &response); err != nil {
		return nil, err
	}
	return response.Actors, nil
}

func (c *MonitorClient) GetYoutubeDates(ctx context.Context) ([]string, error) {
	var response monitordomain.DatesResponse
	if err := c.get(ctx, youtubePlatform, fmt.Sprintf("%s/dates", c.cfg.YoutubeURL), &response); err != nil {
		return nil, err
	}
	return response.Dates, nil
}

func (c *MonitorClient) GetYoutubeChannel(ctx context.Context, actor, date string) (*monitordomain.YoutubeCounts, error) {
	url := fmt.Sprintf("%s/%s/canal/%s", c.cfg.YoutubeURL, date, ActorPath(actor))

	counts := &monitordomain.YoutubeCounts{}
	if err := c.get(ctx, youtubePlatform, url, counts); err != nil {
		return nil, err
	}
	return counts, nil
}
