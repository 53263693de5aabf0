package aggregating

import "sort"

// grouper acumula buckets por chave preservando a ordem de primeira aparição,
// para que a ordenação final seja determinística mesmo com somas empatadas.
type grouper[K comparable, V any] struct {
	order []K
	items map[K]*V
}

func newGrouper[K comparable, V any]() *grouper[K, V] {
	return &grouper[K, V]{items: make(map[K]*V)}
}

// at retorna o bucket da chave, criando com init na primeira aparição.
func (g *grouper[K, V]) at(key K, init func() *V) *V {
	if v, ok := g.items[key]; ok {
		return v
	}
	v := init()
	g.items[key] = v
	g.order = append(g.order, key)
	return v
}

// values retorna os buckets na ordem de primeira aparição.
func (g *grouper[K, V]) values() []*V {
	out := make([]*V, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, g.items[key])
	}
	return out
}

// sortByDesc ordena decrescente pela medida extraída; empates mantêm a ordem
// de entrada.
func sortByDesc[V any](items []*V, measure func(*V) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return measure(items[i]) > measure(items[j])
	})
}

// topN limita a lista aos n primeiros; n <= 0 não limita.
func topN[V any](items []*V, n int) []*V {
	if n > 0 && n < len(items) {
		return items[:n]
	}
	return items
}

// deref materializa a lista de ponteiros em valores para a resposta JSON.
func deref[V any](items []*V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}
