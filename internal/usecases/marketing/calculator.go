// Package marketing calcula as unit economics de marketing da clínica: CAC, LTV,
// ROI, taxa de conversão, razão LTV:CAC, CAC alvo, crescimento e payback.
//
// Todas as funções são totais: entrada degenerada (denominador não positivo, valor
// negativo) resolve para o valor sentinela documentado em vez de erro, porque o
// resultado alimenta painéis que devem exibir "0" ou "sem dados", nunca quebrar.
// Valores monetários são inteiros em centavos.
package marketing

import (
	"github.com/clinsight/clinic-insights-api/internal/domain"
	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

// DefaultLTVCACRatio é a razão LTV:CAC alvo padrão usada no cálculo de CAC alvo
const DefaultLTVCACRatio = 3.0

// negativeRevenueROIPercent é a sentinela de ROI para receita negativa com
// investimento positivo: perda total
const negativeRevenueROIPercent = -100.0

// CustomerAcquisitionCost divide o investimento de marketing pelos pacientes novos
// do período, arredondando para o centavo mais próximo
func CustomerAcquisitionCost(expensesCents, newPatients int64) int64 {
	if newPatients <= 0 || expensesCents < 0 {
		return 0
	}

	return utils.DivideCents(expensesCents, newPatients)
}

// LifetimeValue divide a receita acumulada pelo total de pacientes, arredondando
// para o centavo mais próximo
func LifetimeValue(totalRevenueCents, totalPatients int64) int64 {
	if totalPatients <= 0 || totalRevenueCents < 0 {
		return 0
	}

	return utils.DivideCents(totalRevenueCents, totalPatients)
}

// ReturnOnInvestment calcula (receita - investimento) / investimento como percentual
// com duas casas decimais. Receita negativa com investimento positivo vale -100.
func ReturnOnInvestment(revenueCents, investmentCents int64) float64 {
	if investmentCents <= 0 {
		return 0
	}

	if revenueCents < 0 {
		return negativeRevenueROIPercent
	}

	roi := float64(revenueCents-investmentCents) / float64(investmentCents) * 100
	return utils.RoundWithTwoDecimalPlace(roi)
}

// ConversionRate calcula convertidos/leads como percentual com duas casas decimais
func ConversionRate(converted, leads int64) float64 {
	if leads <= 0 || converted < 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(converted) / float64(leads) * 100)
}

// LTVCACRatio calcula a razão LTV/CAC com duas casas decimais
func LTVCACRatio(ltvCents, cacCents int64) float64 {
	if cacCents <= 0 || ltvCents < 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(ltvCents) / float64(cacCents))
}

// RatioQuality classifica qualitativamente a razão LTV:CAC
func RatioQuality(ratio float64) domain.RatioQuality {
	switch {
	case ratio >= 3:
		return domain.RatioQuality{Label: "excellent", Description: "Cada real investido em aquisição retorna três ou mais em valor de paciente"}
	case ratio >= 2:
		return domain.RatioQuality{Label: "good", Description: "Retorno saudável sobre o custo de aquisição"}
	case ratio >= 1:
		return domain.RatioQuality{Label: "acceptable", Description: "Aquisição se paga, mas com margem apertada"}
	case ratio > 0:
		return domain.RatioQuality{Label: "critical", Description: "Custo de aquisição acima do valor do paciente"}
	default:
		return domain.RatioQuality{Label: "unknown", Description: "Dados insuficientes para avaliar a razão"}
	}
}

// TargetCAC calcula o CAC alvo para atingir a razão LTV:CAC desejada
func TargetCAC(desiredLTVCents int64, ratio float64) int64 {
	if ratio <= 0 || desiredLTVCents < 0 {
		return 0
	}

	return utils.RoundCents(float64(desiredLTVCents) / ratio)
}

// GrowthRate calcula a variação percentual entre dois períodos, com duas casas
// decimais. Período anterior não positivo vale 0.
func GrowthRate(current, previous int64) float64 {
	if previous <= 0 {
		return 0
	}

	rate := float64(current-previous) / float64(previous) * 100
	return utils.RoundWithTwoDecimalPlace(rate)
}

// PaybackPeriodMonths calcula em quantos meses a receita mensal média por paciente
// recupera o custo de aquisição, com uma casa decimal
func PaybackPeriodMonths(cacCents, monthlyRevenueCents int64) float64 {
	if monthlyRevenueCents <= 0 || cacCents <= 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(float64(cacCents) / float64(monthlyRevenueCents))
}

// BuildReport compõe as unit economics de um período em um único resumo
func BuildReport(figures domain.MarketingFigures) *domain.MarketingReport {
	cac := CustomerAcquisitionCost(figures.AdSpendCents, figures.NewPatients)
	ltv := LifetimeValue(figures.TotalRevenueCents, figures.TotalPatients)
	ratio := LTVCACRatio(ltv, cac)

	return &domain.MarketingReport{
		Period:                figures.Period,
		CACCents:              cac,
		LTVCents:              ltv,
		ROIPercent:            ReturnOnInvestment(figures.TotalRevenueCents, figures.AdSpendCents),
		ConversionRatePercent: ConversionRate(figures.Conversions, figures.Leads),
		LTVCACRatio:           ratio,
		RatioQuality:          RatioQuality(ratio),
		TargetCACCents:        TargetCAC(ltv, DefaultLTVCACRatio),
		RevenueGrowthPercent:  GrowthRate(figures.TotalRevenueCents, figures.PreviousRevenueCents),
		PaybackPeriodMonths:   PaybackPeriodMonths(cac, figures.MonthlyRevenuePerPatientCents),
	}
}
