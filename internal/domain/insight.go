package domain

import "time"

// Trend classifica a direção da receita entre os dois períodos mais recentes
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// ConfidenceInterval é a banda de confiança de uma previsão, em centavos.
// O limite inferior nunca é negativo.
type ConfidenceInterval struct {
	LowerCents int64 `json:"lower_cents"`
	UpperCents int64 `json:"upper_cents"`
}

// RevenuePrediction é uma previsão de receita com banda de confiança.
// Confidence é uma fração 0-1.
type RevenuePrediction struct {
	PredictedValueCents int64              `json:"predicted_value_cents"`
	Trend               Trend              `json:"trend"`
	Confidence          float64            `json:"confidence"`
	ConfidenceInterval  ConfidenceInterval `json:"confidence_interval"`
}

// RevenuePredictions agrupa as três previsões de receita
type RevenuePredictions struct {
	NextMonth   RevenuePrediction `json:"next_month"`
	NextQuarter RevenuePrediction `json:"next_quarter"`
	YearEnd     RevenuePrediction `json:"year_end"`
}

// ProfitableService é um item do ranking de retorno sobre custo.
// ROIPercent é percentual inteiro com uma casa decimal (150.0 = 150%).
type ProfitableService struct {
	ServiceID    string  `json:"service_id"`
	RevenueCents int64   `json:"revenue_cents"`
	ProfitCents  int64   `json:"profit_cents"`
	ROIPercent   float64 `json:"roi_percent"`
	Frequency    int     `json:"frequency"`
}

// GrowthOpportunity é um serviço lucrativo com potencial de crescimento projetado
// sobre um horizonte fixo de atendimentos adicionais
type GrowthOpportunity struct {
	ServiceID               string `json:"service_id"`
	ProfitPerTreatmentCents int64  `json:"profit_per_treatment_cents"`
	PotentialCents          int64  `json:"potential_cents"`
	Frequency               int    `json:"frequency"`
}

// DecliningService é um serviço cuja demanda recente (30 dias) caiu em relação à
// janela anterior (30-60 dias). DeclineRate é uma fração negativa em [-1, 0).
type DecliningService struct {
	ServiceID     string  `json:"service_id"`
	RecentCount   int     `json:"recent_count"`
	PreviousCount int     `json:"previous_count"`
	DeclineRate   float64 `json:"decline_rate"`
}

// ServiceAnalysis agrupa os três rankings de desempenho de serviços
type ServiceAnalysis struct {
	MostProfitable      []ProfitableService `json:"most_profitable"`
	GrowthOpportunities []GrowthOpportunity `json:"growth_opportunities"`
	DecliningServices   []DecliningService  `json:"declining_services"`
}

// PatientInsights agrupa as métricas de coorte de pacientes.
// RetentionRate é uma fração 0-1; AcquisitionRate é uma contagem de pacientes novos
// nos últimos 30 dias — o nome "rate" é histórico e faz parte do contrato.
type PatientInsights struct {
	LifetimeValueCents int64   `json:"lifetime_value_cents"`
	RetentionRate      float64 `json:"retention_rate"`
	AcquisitionRate    int     `json:"acquisition_rate"`
}

// OperationalMetrics agrupa as métricas de capacidade operacional.
// CapacityUtilization é uma fração 0-1 sobre a capacidade teórica de 8 horas por dia.
type OperationalMetrics struct {
	CapacityUtilization  float64 `json:"capacity_utilization"`
	AverageMinutesPerDay float64 `json:"average_minutes_per_day"`
}

// BusinessInsights é o agregado completo produzido pelo orquestrador
type BusinessInsights struct {
	RevenuePredictions RevenuePredictions `json:"revenue_predictions"`
	ServiceAnalysis    ServiceAnalysis    `json:"service_analysis"`
	PatientInsights    PatientInsights    `json:"patient_insights"`
	OperationalMetrics OperationalMetrics `json:"operational_metrics"`
}

// ActivityEntry é um item do feed de atividades recentes. Registros com data
// inválida são descartados do feed, ao contrário da agregação de receita.
type ActivityEntry struct {
	TreatmentID string          `json:"treatment_id"`
	ServiceID   string          `json:"service_id"`
	PatientID   string          `json:"patient_id"`
	Date        time.Time       `json:"date"`
	PriceCents  int64           `json:"price_cents"`
	Status      TreatmentStatus `json:"status"`
}
