package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinsight/clinic-insights-api/internal/domain"
)

func TestCustomerAcquisitionCost(t *testing.T) {
	tests := []struct {
		name          string
		expensesCents int64
		newPatients   int64
		expected      int64
	}{
		{
			name:          "Divisão exata",
			expensesCents: 1000000,
			newPatients:   20,
			expected:      50000,
		},
		{
			name:          "Dízima arredonda para o centavo mais próximo",
			expensesCents: 100000,
			newPatients:   3,
			expected:      33333,
		},
		{
			name:          "Sem pacientes novos retorna zero",
			expensesCents: 500000,
			newPatients:   0,
			expected:      0,
		},
		{
			name:          "Pacientes negativos retorna zero",
			expensesCents: 500000,
			newPatients:   -3,
			expected:      0,
		},
		{
			name:          "Investimento negativo retorna zero",
			expensesCents: -1,
			newPatients:   10,
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CustomerAcquisitionCost(tt.expensesCents, tt.newPatients))
		})
	}
}

func TestLifetimeValue(t *testing.T) {
	assert.Equal(t, int64(200000), LifetimeValue(10000000, 50))
	assert.Equal(t, int64(0), LifetimeValue(10000000, 0))
	assert.Equal(t, int64(0), LifetimeValue(-500, 10))
}

func TestReturnOnInvestment(t *testing.T) {
	tests := []struct {
		name            string
		revenueCents    int64
		investmentCents int64
		expected        float64
	}{
		{
			name:            "Retorno de quatro vezes o investimento",
			revenueCents:    5000000,
			investmentCents: 1000000,
			expected:        400,
		},
		{
			name:            "Investimento zero retorna zero",
			revenueCents:    5000000,
			investmentCents: 0,
			expected:        0,
		},
		{
			name:            "Investimento negativo retorna zero",
			revenueCents:    5000000,
			investmentCents: -100,
			expected:        0,
		},
		{
			name:            "Receita negativa vale perda total",
			revenueCents:    -50000,
			investmentCents: 1000000,
			expected:        -100,
		},
		{
			name:            "Arredondamento com duas casas decimais",
			revenueCents:    1033300,
			investmentCents: 1000000,
			expected:        3.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReturnOnInvestment(tt.revenueCents, tt.investmentCents))
		})
	}
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 12.5, ConversionRate(25, 200))
	assert.Equal(t, 0.1, ConversionRate(1, 1000))
	assert.Equal(t, 0.0, ConversionRate(10, 0))
	assert.Equal(t, 0.0, ConversionRate(-1, 100))
}

func TestLTVCACRatio(t *testing.T) {
	assert.Equal(t, 4.0, LTVCACRatio(200000, 50000))
	assert.Equal(t, 0.0, LTVCACRatio(200000, 0))
	assert.Equal(t, 0.0, LTVCACRatio(-200000, 50000))
	assert.Equal(t, 0.0, LTVCACRatio(200000, -1))
}

func TestRatioQuality(t *testing.T) {
	tests := []struct {
		name          string
		ratio         float64
		expectedLabel string
	}{
		{name: "Razão alta é excelente", ratio: 4.5, expectedLabel: "excellent"},
		{name: "Limite inferior de excelente", ratio: 3, expectedLabel: "excellent"},
		{name: "Razão boa", ratio: 2.5, expectedLabel: "good"},
		{name: "Razão aceitável", ratio: 1.2, expectedLabel: "acceptable"},
		{name: "Razão crítica", ratio: 0.5, expectedLabel: "critical"},
		{name: "Razão zero é desconhecida", ratio: 0, expectedLabel: "unknown"},
		{name: "Razão negativa é desconhecida", ratio: -1, expectedLabel: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedLabel, RatioQuality(tt.ratio).Label)
		})
	}
}

func TestTargetCAC(t *testing.T) {
	assert.Equal(t, int64(66667), TargetCAC(200000, DefaultLTVCACRatio))
	assert.Equal(t, int64(0), TargetCAC(200000, 0))
	assert.Equal(t, int64(0), TargetCAC(200000, -2))
	assert.Equal(t, int64(0), TargetCAC(-200000, DefaultLTVCACRatio))
}

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, 20.0, GrowthRate(120, 100))
	assert.Equal(t, -20.0, GrowthRate(80, 100))
	assert.Equal(t, 0.0, GrowthRate(120, 0))
	assert.Equal(t, 0.0, GrowthRate(120, -10))
}

func TestPaybackPeriodMonths(t *testing.T) {
	assert.Equal(t, 2.5, PaybackPeriodMonths(50000, 20000))
	assert.Equal(t, 0.0, PaybackPeriodMonths(50000, 0))
	assert.Equal(t, 0.0, PaybackPeriodMonths(0, 20000))
	assert.Equal(t, 0.0, PaybackPeriodMonths(-10, 20000))
}

func TestBuildReport(t *testing.T) {
	figures := domain.MarketingFigures{
		Period:                        "01-2024",
		AdSpendCents:                  1000000,
		NewPatients:                   20,
		TotalPatients:                 50,
		TotalRevenueCents:             10000000,
		PreviousRevenueCents:          8000000,
		Leads:                         200,
		Conversions:                   25,
		MonthlyRevenuePerPatientCents: 20000,
	}

	report := BuildReport(figures)

	assert.Equal(t, "01-2024", report.Period)
	assert.Equal(t, int64(50000), report.CACCents)
	assert.Equal(t, int64(200000), report.LTVCents)
	assert.Equal(t, 900.0, report.ROIPercent)
	assert.Equal(t, 12.5, report.ConversionRatePercent)
	assert.Equal(t, 4.0, report.LTVCACRatio)
	assert.Equal(t, "excellent", report.RatioQuality.Label)
	assert.Equal(t, int64(66667), report.TargetCACCents)
	assert.Equal(t, 25.0, report.RevenueGrowthPercent)
	assert.Equal(t, 2.5, report.PaybackPeriodMonths)
}
