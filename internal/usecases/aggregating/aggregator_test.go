package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clinsight/clinic-insights-api/internal/domain"
)

func TestBucketByMonth(t *testing.T) {
	treatments := []domain.TreatmentRecord{
		{ID: "T1", TreatmentDate: "2024-01-20", PriceCents: 50000, Status: "completed"},
		{ID: "T2", TreatmentDate: "2024-02-05", PriceCents: 10000, Status: "completed"},
		{ID: "T3", TreatmentDate: "2024-02-12", PriceCents: 20000, Status: "completed"},
		{ID: "T4", TreatmentDate: "2024-02-28", PriceCents: 30000, Status: "completed"},
	}

	series := BucketByMonth(treatments)

	assert.Len(t, series.Buckets, 2)
	assert.Equal(t, MonthKey{Year: 2024, Month: time.January}, series.Buckets[0].Key)
	assert.Equal(t, MonthKey{Year: 2024, Month: time.February}, series.Buckets[1].Key)

	latest := series.Latest()
	previous := series.Previous()
	assert.Equal(t, int64(60000), latest.RevenueCents)
	assert.Equal(t, 3, latest.TreatmentCount)
	assert.Equal(t, int64(50000), previous.RevenueCents)
	assert.Equal(t, 1, previous.TreatmentCount)
}

func TestBucketByMonth_FiltraRegistrosInvalidos(t *testing.T) {
	treatments := []domain.TreatmentRecord{
		{ID: "T1", TreatmentDate: "2024-02-05", PriceCents: 10000},
		{ID: "T2", TreatmentDate: "", PriceCents: 99999},           // sem data
		{ID: "T3", TreatmentDate: nil, PriceCents: 99999},          // sem data
		{ID: "T4", TreatmentDate: "2024-02-10", PriceCents: 0},     // preço não positivo
		{ID: "T5", TreatmentDate: "2024-02-11", PriceCents: -500},  // preço não positivo
		{ID: "T6", TreatmentDate: "não é data", PriceCents: 40000}, // data inválida vai para o balde da sentinela
	}

	series := BucketByMonth(treatments)

	// O balde da sentinela de epoch (janeiro de 1970) vem antes de 2024
	assert.Len(t, series.Buckets, 2)
	assert.Equal(t, MonthKey{Year: 1970, Month: time.January}, series.Buckets[0].Key)
	assert.Equal(t, int64(40000), series.Buckets[0].RevenueCents)
	assert.Equal(t, int64(10000), series.Buckets[1].RevenueCents)
}

// A soma das receitas dos baldes deve bater com a soma dos preços dos registros
// qualificados (data presente e preço positivo)
func TestBucketByMonth_InvarianteDeSoma(t *testing.T) {
	treatments := []domain.TreatmentRecord{
		{ID: "T1", TreatmentDate: "2023-11-02", PriceCents: 12345},
		{ID: "T2", TreatmentDate: "2023-12-15", PriceCents: 23456},
		{ID: "T3", TreatmentDate: "2024-01-10", PriceCents: 34567},
		{ID: "T4", TreatmentDate: "data inválida", PriceCents: 1000},
		{ID: "T5", TreatmentDate: "", PriceCents: 77777},
		{ID: "T6", TreatmentDate: "2024-01-20", PriceCents: 0},
	}

	series := BucketByMonth(treatments)

	var expected int64 = 12345 + 23456 + 34567 + 1000
	assert.Equal(t, expected, series.TotalRevenueCents())
	assert.Equal(t, 4, series.TotalTreatmentCount())
}

func TestMonthlySeries_SerieVazia(t *testing.T) {
	series := BucketByMonth(nil)

	assert.Empty(t, series.Buckets)
	assert.Nil(t, series.Latest())
	assert.Nil(t, series.Previous())
	assert.Equal(t, int64(0), series.TotalRevenueCents())
	assert.Equal(t, 0.0, series.AverageMonthlyRevenue())
}

func TestMinutesByDay(t *testing.T) {
	treatments := []domain.TreatmentRecord{
		{ID: "T1", TreatmentDate: "2024-02-05", Minutes: 300},
		{ID: "T2", TreatmentDate: "2024-02-05", Minutes: 180},
		{ID: "T3", TreatmentDate: "2024-02-06", Minutes: 240},
		{ID: "T4", TreatmentDate: "", Minutes: 999}, // sem data é ignorado
	}

	byDay := MinutesByDay(treatments)

	assert.Len(t, byDay, 2)
	assert.Equal(t, int64(480), byDay[DayKey{Year: 2024, Month: time.February, Day: 5}])
	assert.Equal(t, int64(240), byDay[DayKey{Year: 2024, Month: time.February, Day: 6}])
}

func TestMonthKey_Before(t *testing.T) {
	assert.True(t, MonthKey{2023, time.December}.Before(MonthKey{2024, time.January}))
	assert.True(t, MonthKey{2024, time.January}.Before(MonthKey{2024, time.February}))
	assert.False(t, MonthKey{2024, time.February}.Before(MonthKey{2024, time.February}))
	assert.False(t, MonthKey{2024, time.March}.Before(MonthKey{2024, time.February}))
}

func TestMonthKey_String(t *testing.T) {
	assert.Equal(t, "2024-2", MonthKey{Year: 2024, Month: time.February}.String())
}
