package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Export           Export           `mapstructure:",squash"`
	InsightsSnapshot InsightsSnapshot `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Export aponta para os arquivos JSON exportados pela aplicação principal.
// A capacidade diária de 8 horas e as janelas de recência de 30/60 dias são
// constantes do motor e propositalmente não aparecem aqui.
type Export struct {
	TreatmentsPath string `mapstructure:"export_treatments_path"`
	PatientsPath   string `mapstructure:"export_patients_path"`
	MarketingPath  string `mapstructure:"export_marketing_path"`
}

type InsightsSnapshot struct {
	CronSchedule string `mapstructure:"insights_snapshot_cron"`
	Enabled      bool   `mapstructure:"insights_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("EXPORT_TREATMENTS_PATH", "data/treatments.json")
	viper.SetDefault("EXPORT_PATIENTS_PATH", "data/patients.json")
	viper.SetDefault("EXPORT_MARKETING_PATH", "")

	// Defaults do snapshot diário de insights
	viper.SetDefault("INSIGHTS_SNAPSHOT_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("INSIGHTS_SNAPSHOT_ENABLED", false)    // Habilitar snapshot agendado
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
