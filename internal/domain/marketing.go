package domain

// MarketingFigures são os números brutos de marketing de um período, exportados pela
// aplicação principal. Valores monetários em centavos.
type MarketingFigures struct {
	Period                        string `json:"period"` // Período no formato mm-yyyy (ex: 01-2024)
	AdSpendCents                  int64  `json:"ad_spend_cents"`
	NewPatients                   int64  `json:"new_patients"`
	TotalPatients                 int64  `json:"total_patients"`
	TotalRevenueCents             int64  `json:"total_revenue_cents"`
	PreviousRevenueCents          int64  `json:"previous_revenue_cents"`
	Leads                         int64  `json:"leads"`
	Conversions                   int64  `json:"conversions"`
	MonthlyRevenuePerPatientCents int64  `json:"monthly_revenue_per_patient_cents"`
}

// RatioQuality é a classificação qualitativa da razão LTV:CAC
type RatioQuality struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// MarketingReport é o resumo de unit economics de marketing de um período.
// ROIPercent, ConversionRatePercent e RevenueGrowthPercent são percentuais inteiros
// com duas casas decimais; LTVCACRatio é uma razão adimensional.
type MarketingReport struct {
	Period                string       `json:"period"`
	CACCents              int64        `json:"cac_cents"`
	LTVCents              int64        `json:"ltv_cents"`
	ROIPercent            float64      `json:"roi_percent"`
	ConversionRatePercent float64      `json:"conversion_rate_percent"`
	LTVCACRatio           float64      `json:"ltv_cac_ratio"`
	RatioQuality          RatioQuality `json:"ratio_quality"`
	TargetCACCents        int64        `json:"target_cac_cents"`
	RevenueGrowthPercent  float64      `json:"revenue_growth_percent"`
	PaybackPeriodMonths   float64      `json:"payback_period_months"`
}
