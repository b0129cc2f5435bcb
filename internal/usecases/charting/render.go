package charting

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderLine desenha o gráfico de linha em PNG
func RenderLine(w io.Writer, cfg *domain.ChartConfig) error {
	axis := cfg.Options.YAxis.Ticks
	if axis == nil {
		axis = &emptyAxis
	}

	series := make([]chart.Series, 0, len(cfg.Data.Datasets))
	var minX, maxX time.Time
	for _, ds := range cfg.Data.Datasets {
		if len(ds.Points) == 0 {
			continue
		}

		xs := make([]time.Time, 0, len(ds.Points))
		ys := make([]float64, 0, len(ds.Points))
		for _, p := range ds.Points {
			xs = append(xs, p.X)
			ys = append(ys, float64(p.Y))
			if minX.IsZero() || p.X.Before(minX) {
				minX = p.X
			}
			if maxX.IsZero() || p.X.After(maxX) {
				maxX = p.X
			}
		}

		color := hexColor(ds.Color)
		series = append(series, chart.TimeSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				DotColor:    color,
				StrokeWidth: 2,
				DotWidth:    3,
			},
		})
	}

	if len(series) == 0 {
		return fmt.Errorf("gráfico sem pontos")
	}

	// um único dia gera um intervalo nulo no eixo X
	if !maxX.After(minX) {
		minX = minX.AddDate(0, 0, -1)
		maxX = maxX.AddDate(0, 0, 1)
	}

	graph := chart.Chart{
		Title:  cfg.Options.Title.Text,
		Width:  cfg.Options.Width,
		Height: cfg.Options.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           cfg.Options.XAxis.Label,
			ValueFormatter: chart.TimeValueFormatterWithFormat("01/2006"),
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(minX),
				Max: chart.TimeToFloat64(maxX),
			},
		},
		YAxis: chart.YAxis{
			Name: cfg.Options.YAxis.Label,
			Range: &chart.ContinuousRange{
				Min: float64(axis.Min),
				Max: float64(axis.Max),
			},
			Ticks: yTicks(*axis),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}

	return graph.Render(chart.PNG, w)
}

// RenderPie desenha a pizza dos valores mais recentes em PNG
func RenderPie(w io.Writer, cfg *domain.PieConfig) error {
	values := make([]chart.Value, 0, len(cfg.Slices))
	for _, slice := range cfg.Slices {
		if slice.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %d", slice.Label, slice.Value),
			Value: float64(slice.Value),
			Style: chart.Style{FillColor: hexColor(slice.Color)},
		})
	}

	if len(values) == 0 {
		return fmt.Errorf("gráfico sem valores positivos")
	}

	pie := chart.PieChart{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Values: values,
	}

	return pie.Render(chart.PNG, w)
}

// yTicks gera marcações a cada passo entre o mínimo e o máximo
func yTicks(axis domain.Axis) []chart.Tick {
	step := axis.Step
	if step <= 0 {
		step = 1
	}

	ticks := make([]chart.Tick, 0)
	for v := axis.Min; v <= axis.Max; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: fmt.Sprintf("%d", v)})
	}
	if len(ticks) == 0 || ticks[len(ticks)-1].Value < float64(axis.Max) {
		ticks = append(ticks, chart.Tick{Value: float64(axis.Max), Label: fmt.Sprintf("%d", axis.Max)})
	}
	return ticks
}

func hexColor(color string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(color, "#"))
}
