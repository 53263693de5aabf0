package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTicketType(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected TicketCategory
	}{
		{
			name:     "front stage antes de vip",
			label:    "FRONT VIP",
			expected: CategoryFrontStage,
		},
		{
			name:     "meia pista resolve para pista",
			label:    "MEIA PISTA",
			expected: CategoryPista,
		},
		{
			name:     "open bar antes de open",
			label:    "LOTE OPEN BAR",
			expected: CategoryOpenBar,
		},
		{
			name:     "camarote",
			label:    "Camarote Premium Lote 2",
			expected: CategoryPremium,
		},
		{
			name:     "vip simples",
			label:    "Ingresso VIP",
			expected: CategoryVIP,
		},
		{
			name:     "cortesia",
			label:    "cortesia imprensa",
			expected: CategoryCortesia,
		},
		{
			name:     "meia entrada",
			label:    "MEIA ESTUDANTE",
			expected: CategoryMeiaEntrada,
		},
		{
			name:     "inteira",
			label:    "INTEIRA 2º LOTE",
			expected: CategoryInteira,
		},
		{
			name:     "caixa baixa normaliza igual",
			label:    "pista premium",
			expected: CategoryPremium,
		},
		{
			name:     "sem correspondencia",
			label:    "Combo Especial",
			expected: CategoryOutros,
		},
		{
			name:     "rotulo vazio",
			label:    "",
			expected: CategoryOutros,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTicketType(tt.label))
		})
	}
}
