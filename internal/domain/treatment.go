// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// TreatmentStatus representa o status de um atendimento
type TreatmentStatus string

const (
	TreatmentStatusPending   TreatmentStatus = "pending"
	TreatmentStatusCompleted TreatmentStatus = "completed"
	TreatmentStatusCancelled TreatmentStatus = "cancelled"
)

// Aliases legados ainda presentes em exportações antigas, normalizados para pending
const (
	legacyStatusScheduled  = "scheduled"
	legacyStatusInProgress = "in_progress"
)

// NormalizeTreatmentStatus converte o status bruto da exportação para o conjunto
// canônico pending | completed | cancelled
func NormalizeTreatmentStatus(raw string) TreatmentStatus {
	switch raw {
	case string(TreatmentStatusCompleted):
		return TreatmentStatusCompleted
	case string(TreatmentStatusCancelled):
		return TreatmentStatusCancelled
	case legacyStatusScheduled, legacyStatusInProgress:
		return TreatmentStatusPending
	default:
		return TreatmentStatusPending
	}
}

// TreatmentRecord representa um atendimento registrado pela aplicação principal.
// Todos os valores monetários são inteiros em centavos; valores em reais nunca são
// armazenados como float.
type TreatmentRecord struct {
	ID        string `json:"id"`
	ServiceID string `json:"service_id"`
	PatientID string `json:"patient_id"`

	// TreatmentDate chega em formato heterogêneo: string de data, epoch em
	// milissegundos (número ou string numérica) ou data já convertida
	TreatmentDate any `json:"treatment_date"`

	PriceCents          int64 `json:"price_cents"`
	VariableCostCents   int64 `json:"variable_cost_cents"`
	FixedPerMinuteCents int64 `json:"fixed_per_minute_cents"`
	Minutes             int64 `json:"minutes"`

	// MarginPct é percentual inteiro aplicado no momento do atendimento (60 = 60%).
	// Não confundir com as frações 0-1 usadas em retention_rate e capacity_utilization.
	MarginPct float64 `json:"margin_pct"`

	Status string `json:"status"`
}

// CostCents calcula o custo total do atendimento (custo variável + custo fixo por minuto)
func (t TreatmentRecord) CostCents() int64 {
	return t.VariableCostCents + t.FixedPerMinuteCents*t.Minutes
}

// ProfitCents calcula o lucro do atendimento
func (t TreatmentRecord) ProfitCents() int64 {
	return t.PriceCents - t.CostCents()
}

// IsCompleted indica se o atendimento conta como receita para as análises
func (t TreatmentRecord) IsCompleted() bool {
	return NormalizeTreatmentStatus(t.Status) == TreatmentStatusCompleted
}
