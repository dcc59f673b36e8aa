// Package insighting orquestra os analisadores do motor financeiro em um único
// agregado de insights de negócio. O motor é puro e sem estado: cada chamada recalcula
// tudo a partir das listas de entrada e descarta os agregados intermediários.
package insighting

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinsight/clinic-insights-api/internal/domain"
	"github.com/clinsight/clinic-insights-api/internal/usecases/aggregating"
	"github.com/clinsight/clinic-insights-api/internal/usecases/analyzing"
	"github.com/clinsight/clinic-insights-api/internal/usecases/forecasting"
	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

// DefaultActivityLimit é o tamanho padrão do feed de atividades
const DefaultActivityLimit = 20

// Service implementa a interface Insighter
type Service struct{}

// NewService cria uma nova instância do orquestrador de insights
func NewService() Insighter {
	return &Service{}
}

// Analyze calcula o agregado completo de insights para o instante atual
func (s *Service) Analyze(treatments []domain.TreatmentRecord, patients []domain.PatientRecord) *domain.BusinessInsights {
	return s.AnalyzeAt(treatments, patients, time.Now())
}

// AnalyzeAt filtra os atendimentos concluídos e compõe previsões de receita, análise
// de serviços, coorte de pacientes e métricas operacionais. Lista vazia retorna a
// estrutura sentinela sem invocar os analisadores, evitando os caminhos de divisão
// por zero logo na raiz.
func (s *Service) AnalyzeAt(treatments []domain.TreatmentRecord, patients []domain.PatientRecord, now time.Time) *domain.BusinessInsights {
	completed := filterCompleted(treatments)

	if len(completed) == 0 {
		logrus.Debug("Nenhum atendimento concluído, retornando insights sentinela")
		return emptyInsights()
	}

	series := aggregating.BucketByMonth(completed)

	logrus.WithFields(logrus.Fields{
		"completed_treatments": len(completed),
		"monthly_buckets":      len(series.Buckets),
		"patients":             len(patients),
	}).Debug("Calculando insights de negócio")

	return &domain.BusinessInsights{
		RevenuePredictions: forecasting.Forecast(series),
		ServiceAnalysis:    analyzing.AnalyzeServices(completed, now),
		PatientInsights:    analyzing.AnalyzePatients(completed, patients, now),
		OperationalMetrics: analyzing.AnalyzeOperations(completed),
	}
}

// RecentActivity monta o feed dos atendimentos mais recentes, ordenado da data mais
// nova para a mais antiga. Ao contrário da agregação de receita, o feed descarta
// registros cuja data não pôde ser interpretada.
func (s *Service) RecentActivity(treatments []domain.TreatmentRecord, limit int) []domain.ActivityEntry {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	entries := make([]domain.ActivityEntry, 0, len(treatments))
	for _, treatment := range treatments {
		date, ok := utils.ParseFlexibleDate(treatment.TreatmentDate)
		if !ok {
			continue
		}

		entries = append(entries, domain.ActivityEntry{
			TreatmentID: treatment.ID,
			ServiceID:   treatment.ServiceID,
			PatientID:   treatment.PatientID,
			Date:        date,
			PriceCents:  treatment.PriceCents,
			Status:      domain.NormalizeTreatmentStatus(treatment.Status),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}

func filterCompleted(treatments []domain.TreatmentRecord) []domain.TreatmentRecord {
	completed := make([]domain.TreatmentRecord, 0, len(treatments))
	for _, treatment := range treatments {
		if treatment.IsCompleted() {
			completed = append(completed, treatment)
		}
	}
	return completed
}

// emptyInsights é a estrutura zerada retornada para entrada vazia; as previsões usam
// a mesma sentinela do forecaster (estável, confiança 0.5)
func emptyInsights() *domain.BusinessInsights {
	return &domain.BusinessInsights{
		RevenuePredictions: forecasting.EmptyPredictions(),
		ServiceAnalysis: domain.ServiceAnalysis{
			MostProfitable:      []domain.ProfitableService{},
			GrowthOpportunities: []domain.GrowthOpportunity{},
			DecliningServices:   []domain.DecliningService{},
		},
	}
}
