package domain

// PatientRecord representa um paciente cadastrado na aplicação principal
type PatientRecord struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// CreatedAt chega no mesmo formato heterogêneo de TreatmentDate
	CreatedAt any `json:"created_at"`
}
