package charting

import (
	"math"

	"github.com/vfg2006/social-metrics-api/internal/domain"
)

const marginPercent = 0.05

var emptyAxis = domain.Axis{Min: 0, Max: 10, Step: 1}

// ScaleAxis calcula mínimo, máximo e passo do eixo Y para um conjunto de séries.
//
// Os limites recebem uma margem de 5% e são arredondados para uma granularidade
// derivada do desvio padrão dos valores. O passo nunca é zero e o mínimo nunca é negativo.
func ScaleAxis(series [][]domain.Point) domain.Axis {
	count, nonEmpty := 0, 0
	sum := 0.0
	minRaw, maxRaw := math.Inf(1), math.Inf(-1)

	for _, s := range series {
		if len(s) > 0 {
			nonEmpty++
		}
		for _, p := range s {
			y := float64(p.Y)
			count++
			sum += y
			minRaw = math.Min(minRaw, y)
			maxRaw = math.Max(maxRaw, y)
		}
	}

	if count == 0 {
		return emptyAxis
	}

	mean := sum / float64(count)
	variance := 0.0
	for _, s := range series {
		for _, p := range s {
			variance += math.Pow(float64(p.Y)-mean, 2)
		}
	}
	stdDev := math.Ceil(math.Sqrt(variance / float64(count)))

	margin := (maxRaw - minRaw) * marginPercent
	if margin == 0 {
		margin = math.Abs(maxRaw) * marginPercent
		if margin == 0 {
			margin = 1
		}
	}

	maxValue := maxRaw + margin
	minValue := minRaw - margin

	pointsPerSeries := float64(count) / float64(nonEmpty)
	rawStep := math.Round((maxValue - minValue) / (pointsPerSeries * 2))

	granularity := roundingGranularity(stdDev-rawStep, maxValue-minValue)

	step := rawStep + granularity - math.Mod(rawStep, granularity)
	snappedMax := maxValue + granularity - math.Mod(maxValue, granularity)
	snappedMin := minValue - math.Mod(minValue, granularity)

	if math.Abs(maxRaw-snappedMax) > step {
		snappedMax = maxValue
	}
	if math.Abs(minRaw-snappedMin) < step {
		snappedMin = minRaw - math.Mod(minRaw, granularity)
	}
	if snappedMin <= 0 {
		snappedMin = 0
	}

	return domain.Axis{
		Min:  int64(math.Floor(snappedMin)),
		Max:  int64(math.Ceil(snappedMax)),
		Step: int64(step),
	}
}

// roundingGranularity é uma potência de dez uma ordem abaixo da base, nunca menor que 1.
// Quando a base não é positiva usa-se a amplitude do eixo.
func roundingGranularity(base, span float64) float64 {
	if base <= 0 {
		base = span
	}
	if base <= 0 {
		return 1
	}

	g := math.Pow(10, math.Round(math.Log10(base))-1)
	if g < 1 {
		return 1
	}
	return g
}
