package importing

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// marcadores usados na planilha para "sem dado"
var invalidMarkers = map[string]struct{}{
	"-":  {},
	"S":  {},
	"S/": {},
}

// IsCellValid indica se a célula contém um dado aproveitável
func IsCellValid(value string) bool {
	if value == "" {
		return false
	}
	_, invalid := invalidMarkers[strings.ToUpper(value)]
	return !invalid
}

// CoerceNumber remove separadores de milhar ("." e ",") e lê o prefixo inteiro.
// Espaços iniciais e sinal são aceitos; retorna nil quando não há dígitos.
func CoerceNumber(raw string) *int64 {
	cleaned := strings.NewReplacer(".", "", ",", "").Replace(raw)
	cleaned = strings.TrimLeftFunc(cleaned, unicode.IsSpace)

	sign := ""
	if cleaned != "" && (cleaned[0] == '+' || cleaned[0] == '-') {
		sign = cleaned[:1]
		cleaned = cleaned[1:]
	}

	end := 0
	for end < len(cleaned) && cleaned[end] >= '0' && cleaned[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}

	n, err := strconv.ParseInt(sign+cleaned[:end], 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// CoerceDate separa uma data "dd/mm/aaaa" em partes.
// Entradas vazias ou sem três partes devolvem a última data conhecida.
func CoerceDate(raw string, last []string) []string {
	if raw == "" {
		return last
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return last
	}
	return parts
}

// DateFromParts monta a data (UTC, meia-noite) a partir de [dia, mês, ano].
// Anos com dois dígitos seguem a convenção 0-49 → 2000, 50-99 → 1900.
func DateFromParts(parts []string) (time.Time, bool) {
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	yearPart := strings.TrimSpace(parts[2])
	year, err := strconv.Atoi(yearPart)
	if err != nil || year < 0 {
		return time.Time{}, false
	}

	if len(yearPart) <= 2 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}
