package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/cognito-emulator/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Service identifica os logs emitidos pelo emulador.
const Service = "cognito-emulator"

// Configure inicializa o logger global a partir das opções de logging.
func Configure(cfg config.LoggingConf) zerolog.Logger {
	return configure(cfg, os.Stdout)
}

func configure(cfg config.LoggingConf, out io.Writer) zerolog.Logger {
	// Nível padrão: info
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	output := out
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Str("service", Service).
		Logger()

	log.Logger = logger
	// zerolog.Ctx sem logger no contexto cai no global
	zerolog.DefaultContextLogger = &log.Logger
	return logger
}
