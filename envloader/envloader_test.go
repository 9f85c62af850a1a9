package envloader

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

type serverConf struct {
	Host    string        `env:"EMU_HOST" envDefault:"127.0.0.1"`
	Port    int           `env:"EMU_PORT" envDefault:"8080"`
	Timeout time.Duration `env:"EMU_TIMEOUT" envDefault:"2s"`
	Debug   bool          `env:"EMU_DEBUG"`
}

type appConf struct {
	Server  serverConf
	Hooks   *hooksConf
	Origins []string `env:"EMU_ORIGINS"`
	Ratio   float64  `env:"EMU_RATIO" envDefault:"0.5"`
	Max     uint16   `env:"EMU_MAX" envDefault:"10"`
	NoTag   string
}

type hooksConf struct {
	Dir string `env:"EMU_HOOKS" envDefault:"./hooks"`
}

func TestLoadWith_Defaults(t *testing.T) {
	var cfg appConf
	require.NoError(t, LoadWith(&cfg, mapLookup(nil)))

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.Timeout)
	assert.False(t, cfg.Server.Debug)
	require.NotNil(t, cfg.Hooks)
	assert.Equal(t, "./hooks", cfg.Hooks.Dir)
	assert.Nil(t, cfg.Origins)
	assert.Equal(t, 0.5, cfg.Ratio)
	assert.Equal(t, uint16(10), cfg.Max)
	assert.Empty(t, cfg.NoTag)
}

func TestLoadWith_AmbienteSobrescreveDefault(t *testing.T) {
	var cfg appConf
	err := LoadWith(&cfg, mapLookup(map[string]string{
		"EMU_HOST":    "0.0.0.0",
		"EMU_PORT":    "9229",
		"EMU_TIMEOUT": "150ms",
		"EMU_DEBUG":   "TRUE",
		"EMU_ORIGINS": "a, b,,c",
		"EMU_HOOKS":   "/etc/hooks",
		"EMU_RATIO":   "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9229, cfg.Server.Port)
	assert.Equal(t, 150*time.Millisecond, cfg.Server.Timeout)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Origins)
	assert.Equal(t, "/etc/hooks", cfg.Hooks.Dir)
	assert.Equal(t, 0.5, cfg.Ratio, "variável vazia deve cair no default")
}

func TestLoad_ProcessEnv(t *testing.T) {
	t.Setenv("EMU_PORT", "7000")

	var cfg appConf
	require.NoError(t, Load(&cfg))
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_InvalidConfig(t *testing.T) {
	var cfg appConf

	err := Load(cfg)
	var invalid *InvalidConfigError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, err.Error(), "got struct")

	s := "x"
	err = Load(&s)
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, err.Error(), "pointer to string")
}

func TestLoadWith_ConversionErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"Inteiro", map[string]string{"EMU_PORT": "abc"}, strconv.ErrSyntax},
		{"Overflow", map[string]string{"EMU_MAX": "70000"}, strconv.ErrRange},
		{"Bool", map[string]string{"EMU_DEBUG": "talvez"}, strconv.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg appConf
			err := LoadWith(&cfg, mapLookup(tt.env))

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("Duração", func(t *testing.T) {
		var cfg appConf
		err := LoadWith(&cfg, mapLookup(map[string]string{"EMU_TIMEOUT": "dois segundos"}))
		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "Timeout", fieldErr.FieldName)
		assert.Equal(t, "EMU_TIMEOUT", fieldErr.EnvVar)
	})
}

func TestLoadWith_UnsupportedType(t *testing.T) {
	type conf struct {
		Ports []int `env:"EMU_PORTS"`
	}
	var cfg conf
	err := LoadWith(&cfg, mapLookup(map[string]string{"EMU_PORTS": "1,2"}))

	var unsupported *UnsupportedTypeError
	assert.True(t, errors.As(err, &unsupported))
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() { MustLoad("não é ponteiro") })
	assert.NotPanics(t, func() { MustLoad(&appConf{}) })
}

func TestOverlay(t *testing.T) {
	t.Setenv("EMU_PORT", "9229")

	cfg := appConf{Server: serverConf{Host: "0.0.0.0", Port: 1}, Ratio: 0.9}
	require.NoError(t, Overlay(&cfg))

	assert.Equal(t, 9229, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "valor existente não volta ao default")
	assert.Equal(t, 0.9, cfg.Ratio)
	assert.Equal(t, "", cfg.Hooks.Dir)

	assert.Error(t, Overlay(cfg))
}
