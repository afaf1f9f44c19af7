package contracting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContract = `CONTRATO DE PRESTAÇÃO DE SERVIÇOS
CONTRATANTE: Padaria Pão Quente
LTDA, pessoa jurídica de direito privado, inscrita no CNPJ sob o nº 00.000.000/0001-00
Valor da Parcela: R$ 6.602,01 mensais
Valor de implementação (pontual): R$ 27.735,00
Data de início do projeto: 21 de fevereiro de 2026; prazo de 12 meses
`

func TestParseContract(t *testing.T) {
	hints := ParseContract(sampleContract)

	assert.Equal(t, "Padaria Pão Quente LTDA", hints.ClientName)
	assert.InDelta(t, 6602.01, hints.RecurringFee, 0.001)
	assert.InDelta(t, 27735.0, hints.OneTimeFee, 0.001)
	require.NotNil(t, hints.StartDate)
	assert.Equal(t, time.Date(2026, time.February, 21, 0, 0, 0, 0, time.UTC), *hints.StartDate)
}

func TestParseContract_CamposAusentes(t *testing.T) {
	hints := ParseContract("Documento sem nenhum dos campos conhecidos")

	assert.Empty(t, hints.ClientName)
	assert.Zero(t, hints.RecurringFee)
	assert.Zero(t, hints.OneTimeFee)
	assert.Nil(t, hints.StartDate)
}

func TestParseContract_DataAteFimDaLinha(t *testing.T) {
	hints := ParseContract("Data de início do projeto: 3 de março de 2025\nOutra linha")

	require.NotNil(t, hints.StartDate)
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), *hints.StartDate)
}

func TestParseBrazilianCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"6.602,01", 6602.01},
		{"27.735,00", 27735},
		{"1.234.567,89", 1234567.89},
		{"500", 500},
		{"99,9", 99.9},
		{"6.602,01.", 6602.01},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseBrazilianCurrency(tt.input), 0.001)
		})
	}
}

func TestParseBrazilianDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		ok       bool
	}{
		{"21 de fevereiro de 2026", time.Date(2026, time.February, 21, 0, 0, 0, 0, time.UTC), true},
		{"1 de Janeiro de 2025.", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"15 de marco de 2024", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), true},
		{"31 de fevereiro de 2026", time.Time{}, false},
		{"21 de brumário de 2026", time.Time{}, false},
		{"21/02/2026", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			date, ok := ParseBrazilianDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, date)
		})
	}
}
