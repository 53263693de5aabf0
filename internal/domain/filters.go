package domain

import (
	"sort"
	"strings"
)

// Filter é uma restrição opcional sobre um dataset: igualdade exata de texto
// sobre o campo correspondente. Valor vazio não impõe restrição.
type Filter struct {
	Name  string
	Value string
}

// FilterSet é o conjunto ordenado de filtros ativos de uma requisição.
// Todos os filtros presentes são combinados com AND.
type FilterSet []Filter

// Get retorna o valor do filtro, se presente e não vazio.
func (fs FilterSet) Get(name string) (string, bool) {
	for _, f := range fs {
		if f.Name == name && f.Value != "" {
			return f.Value, true
		}
	}
	return "", false
}

// With retorna um novo FilterSet com o filtro adicionado (se o valor não for vazio).
func (fs FilterSet) With(name, value string) FilterSet {
	if value == "" {
		return fs
	}
	out := make(FilterSet, 0, len(fs)+1)
	out = append(out, fs...)
	return append(out, Filter{Name: name, Value: value})
}

// Without retorna um novo FilterSet sem o filtro informado. Usado pelas opções
// dinâmicas de filtro, que consideram apenas os demais filtros ativos.
func (fs FilterSet) Without(name string) FilterSet {
	out := make(FilterSet, 0, len(fs))
	for _, f := range fs {
		if f.Name != name {
			out = append(out, f)
		}
	}
	return out
}

// IsEmpty informa se nenhum filtro efetivo está presente.
func (fs FilterSet) IsEmpty() bool {
	for _, f := range fs {
		if f.Value != "" {
			return false
		}
	}
	return true
}

// Canonical produz a forma canônica e determinística do conjunto de filtros:
// pares nome=valor ordenados por nome e unidos por "&". É a base da chave de
// cache, independente de ordem de chegada dos parâmetros.
func (fs FilterSet) Canonical() string {
	pairs := make([]string, 0, len(fs))
	for _, f := range fs {
		if f.Value == "" {
			continue
		}
		pairs = append(pairs, f.Name+"="+f.Value)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "&")
}
