package utils

import (
	"strconv"
	"strings"
	"time"
)

// permissiveLayouts são os formatos aceitos pelo parser genérico, tentados em ordem
var permissiveLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// EpochSentinel é a data sentinela retornada quando nenhuma tentativa de parsing funciona.
// Quem agrega tendências de receita usa a sentinela como balde do mês de 1970; quem monta
// o feed de atividades descarta o registro. As duas políticas são intencionais.
func EpochSentinel() time.Time {
	return time.UnixMilli(0).UTC()
}

// ParseFlexibleDate normaliza um valor de data heterogêneo (data já convertida, epoch em
// milissegundos como número ou string numérica, ou string de data) para um instante único.
// Nunca retorna erro: em caso de falha devolve a sentinela de epoch e ok=false, e cada
// chamador decide se descarta o registro ou aceita a sentinela.
func ParseFlexibleDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return EpochSentinel(), false
	case time.Time:
		if v.IsZero() {
			return EpochSentinel(), false
		}
		return v, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return EpochSentinel(), false
		}
		return *v, true
	case int:
		return time.UnixMilli(int64(v)).UTC(), true
	case int64:
		return time.UnixMilli(v).UTC(), true
	case float64:
		return time.UnixMilli(int64(v)).UTC(), true
	case string:
		return parseDateString(v)
	default:
		return EpochSentinel(), false
	}
}

// parseDateString tenta, nesta ordem: epoch em milissegundos, data de calendário estrita
// e por fim os formatos do parser permissivo
func parseDateString(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EpochSentinel(), false
	}

	if millis, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), true
	}

	if date, err := time.Parse(time.DateOnly, trimmed); err == nil {
		return date, true
	}

	for _, layout := range permissiveLayouts {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return date, true
		}
	}

	return EpochSentinel(), false
}

// HasDateValue indica se o registro trouxe algum valor de data (mesmo que inválido).
// Registros sem data alguma são filtrados pela agregação antes do parsing.
func HasDateValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}
