package observability

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/cognito-emulator/pkg/config"
	"github.com/raywall/cognito-emulator/pkg/metrics"
)

// Service identifica o emulador nas tags globais do statsd.
const Service = "cognito-emulator"

// Noop descarta as métricas quando o Datadog está desligado.
type Noop struct{}

func (Noop) Count(string, float64, []string) error     { return nil }
func (Noop) Histogram(string, float64, []string) error { return nil }

// Datadog envia as métricas do dispatcher via DogStatsD.
type Datadog struct {
	client statsd.ClientInterface
	rate   float64
}

func NewDatadog(client statsd.ClientInterface, rate float64) *Datadog {
	if rate <= 0 || rate > 1 {
		rate = 1
	}
	return &Datadog{client: client, rate: rate}
}

func (d *Datadog) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, d.rate)
}

func (d *Datadog) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, d.rate)
}

// Close descarrega o buffer do cliente statsd.
func (d *Datadog) Close() error {
	return d.client.Close()
}

// SetupMetrics escolhe o provider conforme metrics.datadog. O runtime
// (local ou lambda) entra nas tags globais junto das tags configuradas.
func SetupMetrics(cfg config.MetricsConf, runtime string) (metrics.Provider, error) {
	dd := cfg.Datadog
	if !dd.Enabled {
		return Noop{}, nil
	}

	tags := append([]string{"service:" + Service, "runtime:" + runtime}, dd.Tags...)
	client, err := statsd.New(dd.Addr,
		statsd.WithNamespace(dd.Namespace),
		statsd.WithTags(tags),
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no datadog statsd em %s: %w", dd.Addr, err)
	}

	return NewDatadog(client, dd.SampleRate), nil
}
