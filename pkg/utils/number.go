package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFormattedNumber converte strings numéricas formatadas à brasileira
// ("R$ 1.234,56", "10%") em float64. Falhas de conversão degradam para 0.
//
// A ordem importa: o ponto de milhar precisa ser removido antes da troca da
// vírgula decimal, senão "1.234,56" é corrompido.
func ParseFormattedNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
