package account

import (
	"sort"

	"github.com/vfg2006/social-metrics-api/internal/domain"
)

// Latest devolve o valor não nulo mais recente de cada métrica.
// O histórico é ordenado por data (estável) e percorrido do mais novo para o mais antigo;
// a busca termina quando quota métricas foram resolvidas ou o histórico acaba.
func Latest(history []domain.Sample, metrics []string, quota int) map[string]int64 {
	latest := make(map[string]int64, len(metrics))
	if quota <= 0 || len(history) == 0 {
		return latest
	}

	ordered := make([]domain.Sample, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	for i := len(ordered) - 1; i >= 0 && len(latest) < quota; i-- {
		for _, metric := range metrics {
			if _, found := latest[metric]; found {
				continue
			}
			if v := ordered[i].Value(metric); v != nil {
				latest[metric] = *v
				if len(latest) >= quota {
					break
				}
			}
		}
	}

	return latest
}
