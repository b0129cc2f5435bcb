package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCellValid(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"-", false},
		{"s", false},
		{"S", false},
		{"s/", false},
		{"S/", false},
		{"12", true},
		{"https://facebook.com/x", true},
		{"0", true},
		{" ", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCellValid(tt.value))
		})
	}
}

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int64
	}{
		{name: "Separador de milhar com ponto", raw: "12.365", want: int64Ptr(12365)},
		{name: "Separador de milhar com vírgula", raw: "1,234,567", want: int64Ptr(1234567)},
		{name: "Número simples", raw: "42", want: int64Ptr(42)},
		{name: "Prefixo numérico", raw: "123abc", want: int64Ptr(123)},
		{name: "Espaço inicial", raw: "  77", want: int64Ptr(77)},
		{name: "Negativo", raw: "-15", want: int64Ptr(-15)},
		{name: "Texto", raw: "not a number", want: nil},
		{name: "Vazio", raw: "", want: nil},
		{name: "Estouro", raw: "99999999999999999999999", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceNumber(tt.raw))
		})
	}
}

func TestCoerceDate(t *testing.T) {
	last := []string{"01", "02", "2018"}

	assert.Equal(t, []string{"10", "03", "2018"}, CoerceDate("10/03/2018", last))
	assert.Equal(t, last, CoerceDate("", last))
	assert.Equal(t, last, CoerceDate("10-03-2018", last))
	assert.Equal(t, last, CoerceDate("10/03", last))
	assert.Nil(t, CoerceDate("", nil))
}

func TestDateFromParts(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  time.Time
		ok    bool
	}{
		{
			name:  "Ano com quatro dígitos",
			parts: []string{"10", "03", "2018"},
			want:  time.Date(2018, time.March, 10, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "Ano com dois dígitos no século atual",
			parts: []string{"1", "12", "17"},
			want:  time.Date(2017, time.December, 1, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "Ano com dois dígitos no século passado",
			parts: []string{"5", "6", "98"},
			want:  time.Date(1998, time.June, 5, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "Mês inválido", parts: []string{"10", "13", "2018"}},
		{name: "Dia inexistente", parts: []string{"31", "02", "2018"}},
		{name: "Texto", parts: []string{"a", "b", "c"}},
		{name: "Partes insuficientes", parts: []string{"10", "03"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DateFromParts(tt.parts)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
