// Package forecasting classifica a tendência de receita e projeta receita futura a
// partir da série mensal agregada. As previsões são heurísticas determinísticas sobre
// os agregados históricos, não um modelo estatístico: as bandas de confiança existem
// para comunicar incerteza ao painel, e os multiplicadores são constantes contratuais.
package forecasting

import (
	"math"

	"github.com/clinsight/clinic-insights-api/internal/domain"
	"github.com/clinsight/clinic-insights-api/internal/usecases/aggregating"
	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

const (
	// Limiares de classificação de tendência sobre a razão latest/previous
	increaseThreshold = 1.05
	decreaseThreshold = 0.95

	// Bandas de intervalo de confiança por horizonte
	nextMonthBand   = 0.15
	nextQuarterBand = 0.20
	yearEndBand     = 0.10

	// Confiança = clamp(0.4 + min(n, 50)/100, 0, 1), onde n é o total de atendimentos
	baseConfidence     = 0.4
	confidenceCountCap = 50

	// Penalidades de confiança dos horizontes mais longos
	nextQuarterConfidencePenalty = 0.05
	yearEndConfidencePenalty     = 0.10

	// Confiança da previsão sentinela quando não há atendimentos qualificados
	emptyConfidence = 0.5

	monthsInYear    = 12
	monthsInQuarter = 3
)

// ClassifyTrend compara os dois baldes mais recentes. Com menos de dois baldes a
// tendência é estável.
func ClassifyTrend(series *aggregating.MonthlySeries) domain.Trend {
	latest := series.Latest()
	previous := series.Previous()
	if latest == nil || previous == nil {
		return domain.TrendStable
	}

	latestRevenue := float64(latest.RevenueCents)
	previousRevenue := float64(previous.RevenueCents)

	switch {
	case latestRevenue > previousRevenue*increaseThreshold:
		return domain.TrendIncreasing
	case latestRevenue < previousRevenue*decreaseThreshold:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

// Forecast projeta a receita do próximo mês, do próximo trimestre e do fim do ano
func Forecast(series *aggregating.MonthlySeries) domain.RevenuePredictions {
	if series == nil || series.TotalTreatmentCount() == 0 {
		return EmptyPredictions()
	}

	trend := ClassifyTrend(series)
	confidence := baseCaseConfidence(series.TotalTreatmentCount())
	average := series.AverageMonthlyRevenue()

	return domain.RevenuePredictions{
		NextMonth:   nextMonthPrediction(series, trend, confidence, average),
		NextQuarter: nextQuarterPrediction(trend, confidence, average),
		YearEnd:     yearEndPrediction(series, trend, confidence, average),
	}
}

// EmptyPredictions é a estrutura sentinela usada quando não há atendimentos
// qualificados: valor zero, tendência estável e confiança 0.5
func EmptyPredictions() domain.RevenuePredictions {
	sentinel := domain.RevenuePrediction{
		Trend:      domain.TrendStable,
		Confidence: emptyConfidence,
	}

	return domain.RevenuePredictions{
		NextMonth:   sentinel,
		NextQuarter: sentinel,
		YearEnd:     sentinel,
	}
}

// baseCaseConfidence cresce com o volume de atendimentos até o teto de 50 registros
func baseCaseConfidence(treatmentCount int) float64 {
	counted := math.Min(float64(treatmentCount), confidenceCountCap)
	return utils.Clamp(baseConfidence+counted/100, 0, 1)
}

func nextMonthPrediction(series *aggregating.MonthlySeries, trend domain.Trend, confidence, average float64) domain.RevenuePrediction {
	var predicted int64
	if latest := series.Latest(); latest != nil {
		predicted = latest.RevenueCents
	} else {
		predicted = utils.RoundCents(average)
	}

	return domain.RevenuePrediction{
		PredictedValueCents: predicted,
		Trend:               trend,
		Confidence:          confidence,
		ConfidenceInterval:  intervalAround(predicted, nextMonthBand),
	}
}

func nextQuarterPrediction(trend domain.Trend, confidence, average float64) domain.RevenuePrediction {
	predicted := utils.RoundCents(average * monthsInQuarter)

	return domain.RevenuePrediction{
		PredictedValueCents: predicted,
		Trend:               trend,
		Confidence:          utils.Clamp(confidence-nextQuarterConfidencePenalty, 0, 1),
		ConfidenceInterval:  intervalAround(predicted, nextQuarterBand),
	}
}

// yearEndPrediction soma a receita observada com a média mensal projetada sobre os
// meses restantes do ano civil, relativos ao mês mais recente observado
func yearEndPrediction(series *aggregating.MonthlySeries, trend domain.Trend, confidence, average float64) domain.RevenuePrediction {
	observed := series.TotalRevenueCents()

	monthsRemaining := 0
	if latest := series.Latest(); latest != nil {
		monthsRemaining = monthsInYear - int(latest.Key.Month)
	}

	predicted := observed + utils.RoundCents(average*float64(monthsRemaining))

	return domain.RevenuePrediction{
		PredictedValueCents: predicted,
		Trend:               trend,
		Confidence:          utils.Clamp(confidence-yearEndConfidencePenalty, 0, 1),
		ConfidenceInterval:  intervalAround(predicted, yearEndBand),
	}
}

// intervalAround calcula a banda predicted ± band, com limite inferior não negativo
func intervalAround(predicted int64, band float64) domain.ConfidenceInterval {
	delta := utils.RoundCents(float64(predicted) * band)

	lower := predicted - delta
	if lower < 0 {
		lower = 0
	}

	return domain.ConfidenceInterval{
		LowerCents: lower,
		UpperCents: predicted + delta,
	}
}
