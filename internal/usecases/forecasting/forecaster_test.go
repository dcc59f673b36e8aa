package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinsight/clinic-insights-api/internal/domain"
	"github.com/clinsight/clinic-insights-api/internal/usecases/aggregating"
)

func scenarioTreatments() []domain.TreatmentRecord {
	// Janeiro: 50000; Fevereiro: 10000 + 20000 + 30000 = 60000
	return []domain.TreatmentRecord{
		{ID: "T1", TreatmentDate: "2024-01-20", PriceCents: 50000},
		{ID: "T2", TreatmentDate: "2024-02-05", PriceCents: 10000},
		{ID: "T3", TreatmentDate: "2024-02-12", PriceCents: 20000},
		{ID: "T4", TreatmentDate: "2024-02-28", PriceCents: 30000},
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name     string
		buckets  []*aggregating.MonthlyBucket
		expected domain.Trend
	}{
		{
			name: "Crescimento acima de 5 por cento",
			buckets: []*aggregating.MonthlyBucket{
				{RevenueCents: 50000},
				{RevenueCents: 60000}, // 60000 > 50000 * 1.05
			},
			expected: domain.TrendIncreasing,
		},
		{
			name: "Queda abaixo de 5 por cento",
			buckets: []*aggregating.MonthlyBucket{
				{RevenueCents: 50000},
				{RevenueCents: 40000}, // 40000 < 50000 * 0.95
			},
			expected: domain.TrendDecreasing,
		},
		{
			name: "Variação dentro da banda é estável",
			buckets: []*aggregating.MonthlyBucket{
				{RevenueCents: 50000},
				{RevenueCents: 51000},
			},
			expected: domain.TrendStable,
		},
		{
			name: "Exatamente no limiar superior é estável",
			buckets: []*aggregating.MonthlyBucket{
				{RevenueCents: 100000},
				{RevenueCents: 105000}, // não é estritamente maior que 100000 * 1.05
			},
			expected: domain.TrendStable,
		},
		{
			name: "Um único balde é estável",
			buckets: []*aggregating.MonthlyBucket{
				{RevenueCents: 50000},
			},
			expected: domain.TrendStable,
		},
		{
			name:     "Série vazia é estável",
			buckets:  []*aggregating.MonthlyBucket{},
			expected: domain.TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := &aggregating.MonthlySeries{Buckets: tt.buckets}
			assert.Equal(t, tt.expected, ClassifyTrend(series))
		})
	}
}

func TestForecast_CenarioDeCrescimento(t *testing.T) {
	series := aggregating.BucketByMonth(scenarioTreatments())
	predictions := Forecast(series)

	// Próximo mês: receita do último balde, confiança 0.4 + 4/100
	nextMonth := predictions.NextMonth
	assert.Equal(t, int64(60000), nextMonth.PredictedValueCents)
	assert.Equal(t, domain.TrendIncreasing, nextMonth.Trend)
	assert.InDelta(t, 0.44, nextMonth.Confidence, 1e-9)
	assert.Equal(t, int64(51000), nextMonth.ConfidenceInterval.LowerCents) // 60000 - 15%
	assert.Equal(t, int64(69000), nextMonth.ConfidenceInterval.UpperCents) // 60000 + 15%

	// Próximo trimestre: média mensal (55000) x 3, confiança -0.05, banda de 20%
	nextQuarter := predictions.NextQuarter
	assert.Equal(t, int64(165000), nextQuarter.PredictedValueCents)
	assert.InDelta(t, 0.39, nextQuarter.Confidence, 1e-9)
	assert.Equal(t, int64(132000), nextQuarter.ConfidenceInterval.LowerCents)
	assert.Equal(t, int64(198000), nextQuarter.ConfidenceInterval.UpperCents)

	// Fim de ano: 110000 observados + 55000 x 10 meses restantes, banda de 10%
	yearEnd := predictions.YearEnd
	assert.Equal(t, int64(660000), yearEnd.PredictedValueCents)
	assert.InDelta(t, 0.34, yearEnd.Confidence, 1e-9)
	assert.Equal(t, int64(594000), yearEnd.ConfidenceInterval.LowerCents)
	assert.Equal(t, int64(726000), yearEnd.ConfidenceInterval.UpperCents)
}

func TestForecast_ConfiancaComTetoDeCinquentaRegistros(t *testing.T) {
	treatments := make([]domain.TreatmentRecord, 0, 80)
	for i := 0; i < 80; i++ {
		treatments = append(treatments, domain.TreatmentRecord{
			TreatmentDate: "2024-03-10",
			PriceCents:    1000,
		})
	}

	predictions := Forecast(aggregating.BucketByMonth(treatments))

	// 0.4 + min(80, 50)/100 = 0.9
	assert.InDelta(t, 0.9, predictions.NextMonth.Confidence, 1e-9)
}

func TestForecast_SemAtendimentosRetornaSentinela(t *testing.T) {
	predictions := Forecast(aggregating.BucketByMonth(nil))

	for _, prediction := range []domain.RevenuePrediction{
		predictions.NextMonth,
		predictions.NextQuarter,
		predictions.YearEnd,
	} {
		assert.Equal(t, int64(0), prediction.PredictedValueCents)
		assert.Equal(t, domain.TrendStable, prediction.Trend)
		assert.Equal(t, 0.5, prediction.Confidence)
		assert.Equal(t, domain.ConfidenceInterval{}, prediction.ConfidenceInterval)
	}
}

// Duas execuções sobre a mesma entrada imutável produzem resultados idênticos:
// o forecaster não guarda estado entre chamadas
func TestForecast_Idempotente(t *testing.T) {
	treatments := scenarioTreatments()

	first := Forecast(aggregating.BucketByMonth(treatments))
	second := Forecast(aggregating.BucketByMonth(treatments))

	assert.Equal(t, first, second)
}

func TestForecast_LimiteInferiorNaoNegativo(t *testing.T) {
	series := &aggregating.MonthlySeries{
		Buckets: []*aggregating.MonthlyBucket{
			{RevenueCents: 1, TreatmentCount: 1},
		},
	}

	predictions := Forecast(series)

	assert.GreaterOrEqual(t, predictions.NextMonth.ConfidenceInterval.LowerCents, int64(0))
	assert.GreaterOrEqual(t, predictions.NextQuarter.ConfidenceInterval.LowerCents, int64(0))
	assert.GreaterOrEqual(t, predictions.YearEnd.ConfidenceInterval.LowerCents, int64(0))
}
