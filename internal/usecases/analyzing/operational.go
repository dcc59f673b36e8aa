package analyzing

import (
	"github.com/clinsight/clinic-insights-api/internal/domain"
	"github.com/clinsight/clinic-insights-api/internal/usecases/aggregating"
	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

// DailyCapacityMinutes é a capacidade produtiva teórica de um dia de trabalho
// (8 horas). Constante do motor de análise; a configuração de horários da aplicação
// principal é uma superfície separada e não influencia este cálculo.
const DailyCapacityMinutes = 8 * 60

// AnalyzeOperations calcula a média de minutos produtivos por dia ativo e a utilização
// da capacidade teórica, a partir dos atendimentos concluídos
func AnalyzeOperations(treatments []domain.TreatmentRecord) domain.OperationalMetrics {
	byDay := aggregating.MinutesByDay(treatments)
	if len(byDay) == 0 {
		return domain.OperationalMetrics{}
	}

	var totalMinutes int64
	for _, minutes := range byDay {
		totalMinutes += minutes
	}

	averagePerDay := float64(totalMinutes) / float64(len(byDay))
	utilization := utils.Clamp(averagePerDay/DailyCapacityMinutes, 0, 1)

	return domain.OperationalMetrics{
		AverageMinutesPerDay: utils.RoundWithTwoDecimalPlace(averagePerDay),
		CapacityUtilization:  utils.RoundWithTwoDecimalPlace(utilization),
	}
}
