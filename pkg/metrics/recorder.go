package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Provider recebe as métricas do emulador. Implementado por statsd
// (Datadog) e pelo descarte usado quando métricas estão desligadas.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Identificadores das métricas emitidas pelo emulador.
const (
	MetricRequests     = "requests"
	MetricLatency      = "latency"
	MetricHookDuration = "hook_duration"
	MetricHookErrors   = "hook_errors"
	MetricFaults       = "faults"
)

type kind int

const (
	counter kind = iota
	histogram
)

type metric struct {
	name string
	kind kind
}

var catalog = map[string]metric{
	MetricRequests:     {"requests.count", counter},
	MetricLatency:      {"requests.latency_ms", histogram},
	MetricHookDuration: {"hooks.duration_ms", histogram},
	MetricHookErrors:   {"hooks.errors", counter},
	MetricFaults:       {"faults.injected", counter},
}

// Recorder traduz eventos do dispatcher em chamadas ao Provider.
// Falhas de envio são apenas logadas: métricas nunca alteram a resposta.
// Um Recorder nil é válido e descarta tudo.
type Recorder struct {
	provider Provider
}

func NewRecorder(provider Provider) *Recorder {
	return &Recorder{provider: provider}
}

// Request registra uma requisição concluída.
func (r *Recorder) Request(action string, status int, elapsed time.Duration) {
	tags := []string{"action:" + tagValue(action), "status:" + strconv.Itoa(status)}
	r.emit(MetricRequests, 1, tags)
	r.emit(MetricLatency, millis(elapsed), tags)
}

// Hook registra uma execução de hook.
func (r *Recorder) Hook(action string, elapsed time.Duration, err error) {
	tags := []string{"action:" + tagValue(action)}
	r.emit(MetricHookDuration, millis(elapsed), tags)
	if err != nil {
		r.emit(MetricHookErrors, 1, tags)
	}
}

// Fault registra um erro forçado pela configuração de falhas.
func (r *Recorder) Fault(action, errorType string) {
	r.emit(MetricFaults, 1, []string{"action:" + tagValue(action), "error_type:" + errorType})
}

func (r *Recorder) emit(id string, value float64, tags []string) {
	if r == nil || r.provider == nil {
		return
	}

	if err := r.send(id, value, tags); err != nil {
		log.Warn().Err(err).Str("metric", id).Msg("falha ao enviar métrica")
	}
}

func (r *Recorder) send(id string, value float64, tags []string) error {
	m, ok := catalog[id]
	if !ok {
		return fmt.Errorf("métrica não definida: %s", id)
	}

	if m.kind == histogram {
		return r.provider.Histogram(m.name, value, tags)
	}
	return r.provider.Count(m.name, value, tags)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Requisições sem ação resolvida ainda são contabilizadas
func tagValue(action string) string {
	if action == "" {
		return "unknown"
	}
	return action
}
