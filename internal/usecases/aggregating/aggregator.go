// Package aggregating agrupa atendimentos em baldes mensais e diários para as
// análises de tendência, previsão e capacidade
package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinsight/clinic-insights-api/internal/domain"
	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

// MonthKey identifica um balde mensal por ano e mês. Chave de valor explícita em vez
// de concatenação de strings, para não depender de formatação por locale.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyFor extrai a chave mensal de um instante
func MonthKeyFor(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Before indica se a chave precede outra na ordem do calendário
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%d-%d", k.Year, int(k.Month))
}

// DayKey identifica um balde diário por ano, mês e dia
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DayKeyFor extrai a chave diária de um instante
func DayKeyFor(t time.Time) DayKey {
	return DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// MonthlyBucket acumula receita e contagem de atendimentos de um mês
type MonthlyBucket struct {
	Key            MonthKey
	RevenueCents   int64
	TreatmentCount int
}

// MonthlySeries é a série ordenada de baldes mensais
type MonthlySeries struct {
	Buckets []*MonthlyBucket
}

// Latest retorna o balde mais recente da série, ou nil se vazia
func (s *MonthlySeries) Latest() *MonthlyBucket {
	if len(s.Buckets) == 0 {
		return nil
	}
	return s.Buckets[len(s.Buckets)-1]
}

// Previous retorna o penúltimo balde da série, ou nil se houver menos de dois
func (s *MonthlySeries) Previous() *MonthlyBucket {
	if len(s.Buckets) < 2 {
		return nil
	}
	return s.Buckets[len(s.Buckets)-2]
}

// TotalRevenueCents soma a receita de todos os baldes
func (s *MonthlySeries) TotalRevenueCents() int64 {
	var total int64
	for _, bucket := range s.Buckets {
		total += bucket.RevenueCents
	}
	return total
}

// TotalTreatmentCount soma os atendimentos de todos os baldes
func (s *MonthlySeries) TotalTreatmentCount() int {
	total := 0
	for _, bucket := range s.Buckets {
		total += bucket.TreatmentCount
	}
	return total
}

// AverageMonthlyRevenue calcula a receita média mensal observada, sem arredondar
func (s *MonthlySeries) AverageMonthlyRevenue() float64 {
	if len(s.Buckets) == 0 {
		return 0
	}
	return float64(s.TotalRevenueCents()) / float64(len(s.Buckets))
}

// BucketByMonth agrupa os atendimentos em baldes mensais ordenados do mais antigo para
// o mais recente. Registros sem data ou com preço não positivo são filtrados; registros
// com data inválida caem no balde da sentinela de epoch em vez de serem descartados —
// esse é o comportamento esperado pela agregação de tendência de receita.
func BucketByMonth(treatments []domain.TreatmentRecord) *MonthlySeries {
	byMonth := make(map[MonthKey]*MonthlyBucket)

	for _, treatment := range treatments {
		if !utils.HasDateValue(treatment.TreatmentDate) || treatment.PriceCents <= 0 {
			continue
		}

		date, ok := utils.ParseFlexibleDate(treatment.TreatmentDate)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"treatment_id": treatment.ID,
				"raw_date":     treatment.TreatmentDate,
			}).Debug("Data de atendimento inválida, usando sentinela de epoch")
		}

		key := MonthKeyFor(date)
		bucket, exists := byMonth[key]
		if !exists {
			bucket = &MonthlyBucket{Key: key}
			byMonth[key] = bucket
		}

		bucket.RevenueCents += treatment.PriceCents
		bucket.TreatmentCount++
	}

	buckets := make([]*MonthlyBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		buckets = append(buckets, bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key.Before(buckets[j].Key)
	})

	return &MonthlySeries{Buckets: buckets}
}

// MinutesByDay agrupa os minutos produtivos dos atendimentos por dia de calendário.
// Registros sem data são ignorados; datas inválidas caem no dia da sentinela.
func MinutesByDay(treatments []domain.TreatmentRecord) map[DayKey]int64 {
	byDay := make(map[DayKey]int64)

	for _, treatment := range treatments {
		if !utils.HasDateValue(treatment.TreatmentDate) {
			continue
		}

		date, _ := utils.ParseFlexibleDate(treatment.TreatmentDate)
		byDay[DayKeyFor(date)] += treatment.Minutes
	}

	return byDay
}
