package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	opts, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", opts.Server.Host)
	assert.Equal(t, 8080, opts.Server.Port)
	assert.Equal(t, "local", opts.Server.Runtime)
	assert.Equal(t, "./user_pools.yml", opts.Faults.Source)
	assert.Equal(t, "./templates", opts.Templates.Dir)
	assert.Equal(t, "./hooks", opts.Hooks.Dir)
	assert.Equal(t, "cel", opts.Hooks.Engine)
	assert.Equal(t, 2*time.Second, opts.Hooks.Timeout)
	assert.Equal(t, "debug", opts.Logging.Level)
	assert.Equal(t, "json", opts.Logging.Format)
	assert.True(t, opts.Logging.Enabled)
	assert.False(t, opts.Metrics.Datadog.Enabled)
	assert.Equal(t, 1.0, opts.Metrics.Datadog.SampleRate)
	assert.Empty(t, opts.Metrics.Datadog.Tags)

	assert.NoError(t, NewValidator().Validate(opts))
}

func TestLoad_ArquivoDeOpcoes(t *testing.T) {
	t.Setenv("EMULATOR_HOOKS_ENGINE", "none")
	t.Setenv("POOL_BUCKET", "emulator-faults")
	t.Setenv("DD_SAMPLE_RATE", "0.2")

	path := filepath.Join(t.TempDir(), "options.yml")
	content := `
server:
  port: 9229
  timeout: 5s
logging:
  level: info
  format: console
faults:
  source: s3://${env.POOL_BUCKET}/user_pools.yml
hooks:
  engine: exec
  timeout: 500ms
metrics:
  datadog:
    tags: ["env:test", "team:auth"]
    sample_rate: 0.8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 9229, opts.Server.Port)
	assert.Equal(t, 5*time.Second, opts.Server.Timeout)
	assert.Equal(t, "127.0.0.1", opts.Server.Host, "chaves ausentes mantêm o default")
	assert.Equal(t, "info", opts.Logging.Level)
	assert.Equal(t, "s3://emulator-faults/user_pools.yml", opts.Faults.Source)
	assert.Equal(t, "none", opts.Hooks.Engine, "ambiente vence o arquivo")
	assert.Equal(t, 500*time.Millisecond, opts.Hooks.Timeout)
	assert.Equal(t, []string{"env:test", "team:auth"}, opts.Metrics.Datadog.Tags)
	assert.Equal(t, 0.2, opts.Metrics.Datadog.SampleRate)
}

func TestLoad_SemArquivo(t *testing.T) {
	opts, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 8080, opts.Server.Port)
}

func TestLoad_Erros(t *testing.T) {
	t.Run("Arquivo inexistente", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nao-existe.yml"))
		assert.ErrorContains(t, err, "não encontrado")
	})

	t.Run("YAML malformado", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "options.yml")
		require.NoError(t, os.WriteFile(path, []byte("server: [port"), 0o644))

		_, err := Load(context.Background(), path)
		assert.ErrorContains(t, err, "decodificar")
	})

	t.Run("Variável com tipo inválido", func(t *testing.T) {
		t.Setenv("EMULATOR_PORT", "porta")
		_, err := Load(context.Background(), "")
		assert.Error(t, err)
	})
}
