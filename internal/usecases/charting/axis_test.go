package charting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-metrics-api/internal/domain"
)

func series(values ...int64) []domain.Point {
	start := time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	points := make([]domain.Point, 0, len(values))
	for i, v := range values {
		points = append(points, domain.Point{X: start.AddDate(0, i, 0), Y: v})
	}
	return points
}

func TestScaleAxis(t *testing.T) {
	tests := []struct {
		name   string
		series [][]domain.Point
		want   domain.Axis
	}{
		{
			name:   "Série constante",
			series: [][]domain.Point{series(100, 100, 100, 100, 100)},
			want:   domain.Axis{Min: 95, Max: 105, Step: 2},
		},
		{
			name:   "Série crescente pequena",
			series: [][]domain.Point{series(10, 20, 30, 40, 50)},
			want:   domain.Axis{Min: 10, Max: 53, Step: 5},
		},
		{
			name:   "Série na casa dos milhares",
			series: [][]domain.Point{series(1000, 2000, 3000)},
			want:   domain.Axis{Min: 1000, Max: 3200, Step: 400},
		},
		{
			name:   "Sem pontos",
			series: [][]domain.Point{{}, {}},
			want:   domain.Axis{Min: 0, Max: 10, Step: 1},
		},
		{
			name:   "Sem séries",
			series: nil,
			want:   domain.Axis{Min: 0, Max: 10, Step: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScaleAxis(tt.series))
		})
	}
}

func TestScaleAxis_FlatSeriesBounds(t *testing.T) {
	axis := ScaleAxis([][]domain.Point{series(100, 100, 100)})

	assert.Less(t, axis.Min, int64(100))
	assert.GreaterOrEqual(t, axis.Max, int64(105))
	assert.Greater(t, axis.Step, int64(0))
}

func TestScaleAxis_Invariants(t *testing.T) {
	inputs := [][][]domain.Point{
		{series(0, 0, 0)},
		{series(1, 2)},
		{series(5)},
		{series(120000, 125000, 131000, 140000), series(90000, 91000)},
		{series(3, 1000000)},
	}

	for _, input := range inputs {
		axis := ScaleAxis(input)

		assert.GreaterOrEqual(t, axis.Min, int64(0))
		assert.Greater(t, axis.Step, int64(0))
		assert.Greater(t, axis.Max, axis.Min)

		for _, s := range input {
			for _, p := range s {
				assert.LessOrEqual(t, p.Y, axis.Max)
			}
		}
	}
}

func TestRoundingGranularity(t *testing.T) {
	assert.Equal(t, 1.0, roundingGranularity(11, 100))
	assert.Equal(t, 100.0, roundingGranularity(450, 2200))
	assert.Equal(t, 1.0, roundingGranularity(-1, 10))
	assert.Equal(t, 1.0, roundingGranularity(0, 0))
	assert.Equal(t, 1000.0, roundingGranularity(-5, 25000))
}
