// Package tracking define o destino injetável de eventos de analytics da aplicação.
// O motor de análise não depende deste pacote; apenas o agendador e o binário o
// conectam, o que mantém os cálculos testáveis sem mock de rede.
package tracking

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinsight/clinic-insights-api/pkg/utils"
)

// Event é um evento de analytics fire-and-forget
type Event struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Tracker é o destino de eventos de analytics
type Tracker interface {
	Track(event Event)
}

// NewEvent cria um evento com identificador curto e instante atual
func NewEvent(name string, payload map[string]any) Event {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador de evento de analytics")
	}

	return Event{
		ID:         id,
		Name:       name,
		Payload:    payload,
		OccurredAt: time.Now(),
	}
}

// LogTracker registra eventos no log estruturado. Serve como implementação padrão
// quando nenhum coletor externo está configurado.
type LogTracker struct{}

// NewLogTracker cria um tracker que escreve eventos no log
func NewLogTracker() *LogTracker {
	return &LogTracker{}
}

// Track registra o evento no log em nível info
func (t *LogTracker) Track(event Event) {
	logrus.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"event_name":  event.Name,
		"occurred_at": event.OccurredAt.Format(time.RFC3339),
		"payload":     utils.CompactJson(event.Payload),
	}).Info("Evento de analytics registrado")
}
