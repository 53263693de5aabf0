package domain

import "strings"

// TicketCategory é a taxonomia fixa em que os rótulos livres de tipo de
// ingresso são classificados.
type TicketCategory string

const (
	CategoryFrontStage  TicketCategory = "Front Stage"
	CategoryBackstage   TicketCategory = "Backstage"
	CategoryOpenBar     TicketCategory = "Open Bar"
	CategoryOpen        TicketCategory = "Open"
	CategoryArena       TicketCategory = "Arena"
	CategoryPremium     TicketCategory = "Premium"
	CategoryPista       TicketCategory = "Pista"
	CategoryCamarote    TicketCategory = "Camarote"
	CategoryVIP         TicketCategory = "VIP"
	CategoryGramado     TicketCategory = "Gramado"
	CategoryCortesia    TicketCategory = "Cortesia"
	CategoryMeiaEntrada TicketCategory = "Meia Entrada"
	CategoryInteira     TicketCategory = "Inteira"
	CategoryOutros      TicketCategory = "Outros"
)

// NormalizeTicketType classifica um rótulo livre de tipo de ingresso na
// taxonomia fixa. A ordem das regras é invariante de carga: rótulos que casam
// com mais de uma palavra-chave resolvem para a regra de maior prioridade
// ("MEIA PISTA" é Pista, não Meia Entrada).
func NormalizeTicketType(label string) TicketCategory {
	upper := strings.ToUpper(strings.TrimSpace(label))
	if upper == "" {
		return CategoryOutros
	}

	switch {
	case strings.Contains(upper, "FRONT"):
		return CategoryFrontStage
	case strings.Contains(upper, "BACKSTAGE"), strings.Contains(upper, "BACK STAGE"):
		return CategoryBackstage
	case strings.Contains(upper, "OPEN BAR"):
		return CategoryOpenBar
	case strings.Contains(upper, "OPEN"):
		return CategoryOpen
	case strings.Contains(upper, "ARENA"):
		return CategoryArena
	case strings.Contains(upper, "PREMIUM"):
		return CategoryPremium
	case strings.Contains(upper, "PISTA"):
		return CategoryPista
	case strings.Contains(upper, "CAMAROTE"):
		return CategoryCamarote
	case strings.Contains(upper, "VIP"):
		return CategoryVIP
	case strings.Contains(upper, "GRAMADO"):
		return CategoryGramado
	case strings.Contains(upper, "CORTESIA"), strings.Contains(upper, "COURTESY"):
		return CategoryCortesia
	case strings.Contains(upper, "MEIA"):
		return CategoryMeiaEntrada
	case strings.Contains(upper, "INTEIRA"):
		return CategoryInteira
	default:
		return CategoryOutros
	}
}
