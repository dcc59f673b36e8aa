// Package scheduler contém o serviço de agendamento do snapshot periódico de insights
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clinsight/clinic-insights-api/infrastructure/export"
	"github.com/clinsight/clinic-insights-api/internal/config"
	"github.com/clinsight/clinic-insights-api/internal/tracking"
	"github.com/clinsight/clinic-insights-api/internal/usecases/insighting"
)

// snapshotEventName identifica o evento emitido a cada snapshot calculado
const snapshotEventName = "business_insights_snapshot"

type InsightsSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// InsightsSnapshotService recalcula periodicamente os insights de negócio a partir da
// fonte de registros e emite um resumo para o tracker de analytics
type InsightsSnapshotService struct {
	scheduler          *gocron.Scheduler
	source             export.RecordSource
	insighter          insighting.Insighter
	tracker            tracking.Tracker
	config             InsightsSnapshotConfig
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewInsightsSnapshotService(
	source export.RecordSource,
	insighter insighting.Insighter,
	tracker tracking.Tracker,
	cfg *config.Config,
) *InsightsSnapshotService {
	snapshotConfig := InsightsSnapshotConfig{
		CronSchedule: cfg.InsightsSnapshot.CronSchedule, // Default: 5h da manhã todos os dias
		Enabled:      cfg.InsightsSnapshot.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshot de insights carregada")

	return &InsightsSnapshotService{
		scheduler: scheduler,
		source:    source,
		insighter: insighter,
		tracker:   tracker,
		config:    snapshotConfig,
	}
}

func (s *InsightsSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro no snapshot de insights")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de insights: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot executa um ciclo completo: busca registros, recalcula os insights e
// emite o evento de resumo. Execuções sobrepostas são descartadas.
func (s *InsightsSnapshotService) RunSnapshot() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Snapshot de insights já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	correlationID := uuid.New().String()
	log := logrus.WithField("correlation_id", correlationID)

	log.Info("Iniciando snapshot de insights")

	treatments, err := s.source.ListTreatments()
	if err != nil {
		log.WithError(err).Error("Erro ao buscar atendimentos para o snapshot de insights")
		return err
	}

	patients, err := s.source.ListPatients()
	if err != nil {
		log.WithError(err).Error("Erro ao buscar pacientes para o snapshot de insights")
		return err
	}

	insights := s.insighter.Analyze(treatments, patients)

	s.tracker.Track(tracking.NewEvent(snapshotEventName, map[string]any{
		"correlation_id":       correlationID,
		"treatments":           len(treatments),
		"patients":             len(patients),
		"next_month_trend":     insights.RevenuePredictions.NextMonth.Trend,
		"next_month_predicted": insights.RevenuePredictions.NextMonth.PredictedValueCents,
		"lifetime_value_cents": insights.PatientInsights.LifetimeValueCents,
		"capacity_utilization": insights.OperationalMetrics.CapacityUtilization,
		"declining_services":   len(insights.ServiceAnalysis.DecliningServices),
	}))

	log.Info("Snapshot de insights concluído")

	return nil
}
