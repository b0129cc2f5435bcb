package charting

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/vfg2006/social-metrics-api/internal/domain"
)

const maxLabelLength = 80

// ColorFunc gera a cor de um conjunto de dados no formato "#RRGGBB"
type ColorFunc func() string

func RandomColor() string {
	return fmt.Sprintf("#%06X", rand.Intn(0x1000000))
}

// BuildDataset extrai os pontos não nulos da métrica no histórico da conta
func BuildDataset(acc *domain.Account, metric string, color string) domain.Dataset {
	points := make([]domain.Point, 0, len(acc.History))
	for _, sample := range acc.History {
		if v := sample.Value(metric); v != nil {
			points = append(points, domain.Point{X: sample.Date, Y: *v})
		}
	}

	return domain.Dataset{
		Label:  DatasetLabel(acc.Name, acc.LinkValue()),
		Color:  color,
		Fill:   false,
		Points: points,
	}
}

// DatasetLabel quebra a linha antes do link quando o rótulo ficaria longo demais
func DatasetLabel(name, link string) string {
	if link == "" {
		return name
	}
	if utf8.RuneCountInString(name)+utf8.RuneCountInString(link) > maxLabelLength {
		return fmt.Sprintf("%s\n(%s)", name, link)
	}
	return fmt.Sprintf("%s (%s)", name, link)
}

func EvolutionTitle(label string) string {
	return fmt.Sprintf("Evolução temporal de %s", label)
}

// LineChartConfig monta a configuração declarativa do gráfico de linha
func LineChartConfig(metric domain.Metric, datasets []domain.Dataset, size int) *domain.ChartConfig {
	series := make([][]domain.Point, 0, len(datasets))
	for _, ds := range datasets {
		series = append(series, ds.Points)
	}
	axis := ScaleAxis(series)

	return &domain.ChartConfig{
		Type: "line",
		Data: domain.ChartData{Datasets: datasets},
		Options: domain.ChartOptions{
			Title: domain.ChartTitle{
				Display: true,
				Text:    EvolutionTitle(metric.Label),
			},
			XAxis: domain.ChartScale{
				Type:  "time",
				Label: "Data",
				Time: &domain.TimeScale{
					Unit:          "month",
					DisplayFormat: "MM/YYYY",
				},
			},
			YAxis: domain.ChartScale{
				Label: fmt.Sprintf("Nº de %s", metric.Label),
				Ticks: &axis,
			},
			Width:  size,
			Height: size,
		},
	}
}

func hasPoints(datasets []domain.Dataset) bool {
	for _, ds := range datasets {
		if len(ds.Points) > 0 {
			return true
		}
	}
	return false
}
