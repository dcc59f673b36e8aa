package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexibleDate(t *testing.T) {
	reference := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		value      any
		expected   time.Time
		expectedOK bool
	}{
		{
			name:       "Data já convertida é usada como está",
			value:      reference,
			expected:   reference,
			expectedOK: true,
		},
		{
			name:       "Número é tratado como epoch em milissegundos",
			value:      float64(1704067200000),
			expected:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedOK: true,
		},
		{
			name:       "String numérica é tratada como epoch em milissegundos",
			value:      "1704067200000",
			expected:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedOK: true,
		},
		{
			name:       "Data de calendário estrita",
			value:      "2024-01-15",
			expected:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			expectedOK: true,
		},
		{
			name:       "Formato brasileiro cai no parser permissivo",
			value:      "15/01/2024",
			expected:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			expectedOK: true,
		},
		{
			name:       "String inválida retorna sentinela de epoch",
			value:      "não é uma data",
			expected:   EpochSentinel(),
			expectedOK: false,
		},
		{
			name:       "String vazia retorna sentinela de epoch",
			value:      "",
			expected:   EpochSentinel(),
			expectedOK: false,
		},
		{
			name:       "Nulo retorna sentinela de epoch",
			value:      nil,
			expected:   EpochSentinel(),
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := ParseFlexibleDate(tt.value)

			assert.Equal(t, tt.expectedOK, ok)
			assert.True(t, tt.expected.Equal(date), "esperado %s, obtido %s", tt.expected, date)
		})
	}
}

func TestHasDateValue(t *testing.T) {
	assert.False(t, HasDateValue(nil))
	assert.False(t, HasDateValue(""))
	assert.False(t, HasDateValue("   "))
	assert.True(t, HasDateValue("2024-01-15"))
	assert.True(t, HasDateValue("lixo")) // valor presente, mesmo que inválido
	assert.True(t, HasDateValue(float64(0)))
}
