package analyzing

import (
	"time"

	"github.com/clinsight/clinic-insights-api/internal/domain"
	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

// patientStats acumula receita e atendimentos de um paciente
type patientStats struct {
	revenueCents   int64
	treatmentCount int
	firstTreatment time.Time
	hasFirstDate   bool
}

// AnalyzePatients calcula as métricas de coorte a partir dos atendimentos concluídos
// e do cadastro de pacientes. O cadastro define os denominadores de lifetime value e
// retenção; a aquisição conta pacientes cujo primeiro atendimento caiu nos últimos
// 30 dias antes do instante de referência.
func AnalyzePatients(treatments []domain.TreatmentRecord, patients []domain.PatientRecord, now time.Time) domain.PatientInsights {
	byPatient := make(map[string]*patientStats)

	var totalRevenue int64
	for _, treatment := range treatments {
		stats, exists := byPatient[treatment.PatientID]
		if !exists {
			stats = &patientStats{}
			byPatient[treatment.PatientID] = stats
		}

		stats.revenueCents += treatment.PriceCents
		stats.treatmentCount++
		totalRevenue += treatment.PriceCents

		date, ok := utils.ParseFlexibleDate(treatment.TreatmentDate)
		if !ok {
			continue
		}

		if !stats.hasFirstDate || date.Before(stats.firstTreatment) {
			stats.firstTreatment = date
			stats.hasFirstDate = true
		}
	}

	totalPatients := int64(len(patients))

	repeatPatients := 0
	acquired := 0
	for _, stats := range byPatient {
		if stats.treatmentCount > 1 {
			repeatPatients++
		}

		if stats.hasFirstDate {
			ageDays := now.Sub(stats.firstTreatment).Hours() / hoursPerDay
			if ageDays <= RecencyWindowDays {
				acquired++
			}
		}
	}

	retention := 0.0
	if totalPatients > 0 {
		retention = utils.Clamp(float64(repeatPatients)/float64(totalPatients), 0, 1)
	}

	return domain.PatientInsights{
		LifetimeValueCents: utils.DivideCents(totalRevenue, totalPatients),
		RetentionRate:      utils.RoundWithTwoDecimalPlace(retention),
		AcquisitionRate:    acquired,
	}
}
