// Package analyzing calcula os rankings de desempenho de serviços, as métricas de
// coorte de pacientes e as métricas de capacidade operacional
package analyzing

import (
	"sort"
	"time"

	"github.com/clinsight/clinic-insights-api/internal/domain"
	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

const (
	// MaxRankedServices limita o tamanho de cada ranking de serviços
	MaxRankedServices = 10

	// GrowthHorizonTreatments é o horizonte de crescimento projetado por serviço
	GrowthHorizonTreatments = 5

	// Janelas de recência para detecção de queda de demanda, medidas a partir do
	// instante de referência: recente = últimos 30 dias, anterior = 30-60 dias
	RecencyWindowDays = 30

	hoursPerDay = 24
)

// roiSentinelPercent é o ROI atribuído a serviços lucrativos sem custo registrado
const roiSentinelPercent = 100.0

// serviceStats acumula os números de um serviço ao longo dos atendimentos, na ordem
// de entrada (a ordem estável desempata os rankings)
type serviceStats struct {
	serviceID     string
	revenueCents  int64
	costCents     int64
	profitCents   int64
	frequency     int
	recentCount   int
	previousCount int
	lastSeen      time.Time
}

// AnalyzeServices produz os três rankings de serviços a partir dos atendimentos
// concluídos. O instante de referência ancora as janelas de recência.
func AnalyzeServices(treatments []domain.TreatmentRecord, now time.Time) domain.ServiceAnalysis {
	stats := collectServiceStats(treatments, now)

	return domain.ServiceAnalysis{
		MostProfitable:      mostProfitable(stats),
		GrowthOpportunities: growthOpportunities(stats),
		DecliningServices:   decliningServices(stats),
	}
}

func collectServiceStats(treatments []domain.TreatmentRecord, now time.Time) []*serviceStats {
	byService := make(map[string]*serviceStats)
	ordered := make([]*serviceStats, 0)

	for _, treatment := range treatments {
		stats, exists := byService[treatment.ServiceID]
		if !exists {
			stats = &serviceStats{serviceID: treatment.ServiceID}
			byService[treatment.ServiceID] = stats
			ordered = append(ordered, stats)
		}

		cost := treatment.CostCents()
		stats.revenueCents += treatment.PriceCents
		stats.costCents += cost
		stats.profitCents += treatment.PriceCents - cost
		stats.frequency++

		date, ok := utils.ParseFlexibleDate(treatment.TreatmentDate)
		if !ok {
			// Sentinela de epoch fica fora de qualquer janela de recência
			continue
		}

		ageDays := now.Sub(date).Hours() / hoursPerDay
		switch {
		case ageDays <= RecencyWindowDays:
			stats.recentCount++
		case ageDays <= 2*RecencyWindowDays:
			stats.previousCount++
		}

		if date.After(stats.lastSeen) {
			stats.lastSeen = date
		}
	}

	return ordered
}

// returnOnCostPercent calcula lucro/custo como percentual com uma casa decimal.
// Custo zero com lucro positivo vale a sentinela de 100%; custo zero sem lucro vale 0.
func returnOnCostPercent(profitCents, costCents int64) float64 {
	if costCents <= 0 {
		if profitCents > 0 {
			return roiSentinelPercent
		}
		return 0
	}

	return utils.RoundWithOneDecimalPlace(float64(profitCents) / float64(costCents) * 100)
}

// mostProfitable ordena os serviços por retorno sobre custo, descendente. Empates
// mantêm a ordem de entrada (sem chave secundária).
func mostProfitable(stats []*serviceStats) []domain.ProfitableService {
	ranked := make([]*serviceStats, len(stats))
	copy(ranked, stats)

	sort.SliceStable(ranked, func(i, j int) bool {
		return returnOnCostPercent(ranked[i].profitCents, ranked[i].costCents) >
			returnOnCostPercent(ranked[j].profitCents, ranked[j].costCents)
	})

	items := make([]domain.ProfitableService, 0, MaxRankedServices)
	for _, s := range truncateRanking(ranked) {
		items = append(items, domain.ProfitableService{
			ServiceID:    s.serviceID,
			RevenueCents: s.revenueCents,
			ProfitCents:  s.profitCents,
			ROIPercent:   returnOnCostPercent(s.profitCents, s.costCents),
			Frequency:    s.frequency,
		})
	}

	return items
}

// growthOpportunities seleciona serviços com lucro acumulado positivo e projeta o
// potencial sobre o horizonte fixo de atendimentos, ordenando pela margem média por
// atendimento, descendente
func growthOpportunities(stats []*serviceStats) []domain.GrowthOpportunity {
	profitable := make([]*serviceStats, 0, len(stats))
	for _, s := range stats {
		if s.profitCents > 0 {
			profitable = append(profitable, s)
		}
	}

	sort.SliceStable(profitable, func(i, j int) bool {
		return averageProfit(profitable[i]) > averageProfit(profitable[j])
	})

	items := make([]domain.GrowthOpportunity, 0, MaxRankedServices)
	for _, s := range truncateRanking(profitable) {
		perTreatment := averageProfit(s)
		items = append(items, domain.GrowthOpportunity{
			ServiceID:               s.serviceID,
			ProfitPerTreatmentCents: utils.RoundCents(perTreatment),
			PotentialCents:          utils.RoundCents(perTreatment * GrowthHorizonTreatments),
			Frequency:               s.frequency,
		})
	}

	return items
}

// decliningServices seleciona serviços cuja contagem recente caiu em relação à janela
// anterior, ordenando pela taxa de queda ascendente (queda mais forte primeiro)
func decliningServices(stats []*serviceStats) []domain.DecliningService {
	declining := make([]*serviceStats, 0, len(stats))
	for _, s := range stats {
		if s.recentCount < s.previousCount {
			declining = append(declining, s)
		}
	}

	sort.SliceStable(declining, func(i, j int) bool {
		return declineRate(declining[i]) < declineRate(declining[j])
	})

	items := make([]domain.DecliningService, 0, MaxRankedServices)
	for _, s := range truncateRanking(declining) {
		items = append(items, domain.DecliningService{
			ServiceID:     s.serviceID,
			RecentCount:   s.recentCount,
			PreviousCount: s.previousCount,
			DeclineRate:   declineRate(s),
		})
	}

	return items
}

func averageProfit(s *serviceStats) float64 {
	if s.frequency == 0 {
		return 0
	}
	return float64(s.profitCents) / float64(s.frequency)
}

// declineRate calcula (recente - anterior) / anterior, limitado a -1. Como só entram
// serviços com recente < anterior, o resultado é sempre negativo.
func declineRate(s *serviceStats) float64 {
	if s.previousCount == 0 {
		return 0
	}

	rate := float64(s.recentCount-s.previousCount) / float64(s.previousCount)
	return utils.RoundWithTwoDecimalPlace(utils.Clamp(rate, -1, 0))
}

func truncateRanking(stats []*serviceStats) []*serviceStats {
	if len(stats) > MaxRankedServices {
		return stats[:MaxRankedServices]
	}
	return stats
}
