package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinsight/clinic-insights-api/infrastructure/export"
	"github.com/clinsight/clinic-insights-api/internal/config"
	"github.com/clinsight/clinic-insights-api/internal/scheduler"
	"github.com/clinsight/clinic-insights-api/internal/tracking"
	"github.com/clinsight/clinic-insights-api/internal/usecases/insighting"
	"github.com/clinsight/clinic-insights-api/internal/usecases/marketing"
	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source := export.NewFileSource(cfg.Export)
	insighter := insighting.NewService()
	tracker := tracking.NewLogTracker()

	snapshotService := scheduler.NewInsightsSnapshotService(source, insighter, tracker, cfg)

	// Com o snapshot agendado habilitado, o processo fica residente emitindo eventos;
	// caso contrário, calcula uma vez e imprime o agregado
	if cfg.InsightsSnapshot.Enabled {
		if err := snapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao iniciar o agendador de snapshot de insights")
		}
		logrus.Info("Agendador de snapshot de insights iniciado com sucesso")

		<-ctx.Done()
		logrus.Info("Encerrando o agendador de snapshot de insights")
		return
	}

	if err := runOnce(source, insighter); err != nil {
		logrus.Fatal(err)
	}
}

// runOnce carrega as exportações, calcula o agregado de insights e o imprime em JSON
func runOnce(source *export.FileSource, insighter insighting.Insighter) error {
	treatments, err := source.ListTreatments()
	if err != nil {
		return err
	}

	patients, err := source.ListPatients()
	if err != nil {
		return err
	}

	insights := insighter.Analyze(treatments, patients)
	fmt.Println(utils.PrettyJson(insights))

	activity := insighter.RecentActivity(treatments, insighting.DefaultActivityLimit)
	logrus.WithField("entries", len(activity)).Info("Feed de atividades calculado")

	// Resumo de marketing apenas quando a exportação do período está configurada
	figures, err := source.LoadMarketingFigures()
	if err != nil {
		return err
	}

	if figures != nil {
		fmt.Println(utils.PrettyJson(marketing.BuildReport(*figures)))
	}

	return nil
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
