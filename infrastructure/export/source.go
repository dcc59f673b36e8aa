// Package export fornece a fonte de registros para o motor de insights. A busca e a
// persistência dos dados pertencem à aplicação principal; este pacote apenas lê as
// exportações que ela produz e as entrega no formato do domínio.
package export

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/clinsight/clinic-insights-api/internal/config"
	"github.com/clinsight/clinic-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RecordSource é a camada chamadora responsável por entregar os registros de um
// tenant ao motor de insights
type RecordSource interface {
	ListTreatments() ([]domain.TreatmentRecord, error)
	ListPatients() ([]domain.PatientRecord, error)
}

// FileSource implementa RecordSource sobre arquivos JSON exportados pela aplicação
// principal
type FileSource struct {
	treatmentsPath string
	patientsPath   string
	marketingPath  string
}

// NewFileSource cria uma fonte de registros a partir dos caminhos configurados
func NewFileSource(cfg config.Export) *FileSource {
	return &FileSource{
		treatmentsPath: cfg.TreatmentsPath,
		patientsPath:   cfg.PatientsPath,
		marketingPath:  cfg.MarketingPath,
	}
}

// ListTreatments carrega os atendimentos exportados
func (s *FileSource) ListTreatments() ([]domain.TreatmentRecord, error) {
	var treatments []domain.TreatmentRecord
	if err := s.readInto(s.treatmentsPath, &treatments); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar exportação de atendimentos")
	}

	return treatments, nil
}

// ListPatients carrega os pacientes exportados. Arquivo não configurado devolve
// lista vazia: as métricas de coorte degradam para os sentinelas documentados.
func (s *FileSource) ListPatients() ([]domain.PatientRecord, error) {
	if s.patientsPath == "" {
		return []domain.PatientRecord{}, nil
	}

	var patients []domain.PatientRecord
	if err := s.readInto(s.patientsPath, &patients); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar exportação de pacientes")
	}

	return patients, nil
}

// LoadMarketingFigures carrega os números de marketing do período, se exportados
func (s *FileSource) LoadMarketingFigures() (*domain.MarketingFigures, error) {
	if s.marketingPath == "" {
		return nil, nil
	}

	figures := &domain.MarketingFigures{}
	if err := s.readInto(s.marketingPath, figures); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar exportação de marketing")
	}

	return figures, nil
}

func (s *FileSource) readInto(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler arquivo %s", path)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return errors.Wrapf(err, "erro ao interpretar JSON de %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Debug("Exportação carregada")

	return nil
}
