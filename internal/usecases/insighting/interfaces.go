package insighting

import (
	"time"

	"github.com/clinsight/clinic-insights-api/internal/domain"
)

// Insighter define a interface do orquestrador de insights de negócio
type Insighter interface {
	// Analyze calcula o agregado completo de insights usando o instante atual como
	// referência das janelas de recência
	Analyze(treatments []domain.TreatmentRecord, patients []domain.PatientRecord) *domain.BusinessInsights

	// AnalyzeAt é a variante parametrizada com instante de referência explícito
	AnalyzeAt(treatments []domain.TreatmentRecord, patients []domain.PatientRecord, now time.Time) *domain.BusinessInsights

	// RecentActivity monta o feed dos atendimentos mais recentes, descartando
	// registros com data inválida
	RecentActivity(treatments []domain.TreatmentRecord, limit int) []domain.ActivityEntry
}
