package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/raywall/cognito-emulator/pkg/config"
	"github.com/raywall/cognito-emulator/pkg/engine"
	"github.com/raywall/cognito-emulator/pkg/faults"
	"github.com/raywall/cognito-emulator/pkg/hooks"
	"github.com/raywall/cognito-emulator/pkg/logger"
	"github.com/raywall/cognito-emulator/pkg/metrics"
	"github.com/raywall/cognito-emulator/pkg/observability"
	"github.com/raywall/cognito-emulator/pkg/render"
	"github.com/raywall/cognito-emulator/pkg/transport"
	"github.com/raywall/cognito-emulator/pkg/userpools"
	"github.com/rs/zerolog/log"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("FATAL")
	}
}

type flags struct {
	options   string
	config    string
	templates string
	hooks     string
	port      int
	level     string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("emulator", flag.ContinueOnError)
	fs.StringVar(&f.options, "options", os.Getenv("EMULATOR_OPTIONS_PATH"), "arquivo YAML de opções do emulador")
	fs.StringVar(&f.config, "config", "", "configuração de falhas: caminho, s3://bucket/key ou dynamodb://tabela/chave")
	fs.StringVar(&f.templates, "templates", "", "diretório raiz dos templates")
	fs.StringVar(&f.hooks, "hooks", "", "diretório dos hooks")
	fs.IntVar(&f.port, "port", 0, "porta HTTP")
	fs.StringVar(&f.level, "level", "", "nível de log (debug, info, warn, error)")
	err := fs.Parse(args)
	return f, err
}

// apply sobrepõe as opções com as flags informadas
func (f flags) apply(opts *config.Options) {
	if f.config != "" {
		opts.Faults.Source = f.config
	}
	if f.templates != "" {
		opts.Templates.Dir = f.templates
	}
	if f.hooks != "" {
		opts.Hooks.Dir = f.hooks
	}
	if f.port != 0 {
		opts.Server.Port = f.port
	}
	if f.level != "" {
		opts.Logging.Level = f.level
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	// 1. Opções: defaults, arquivo, ambiente e flags
	opts, err := config.Load(ctx, f.options)
	if err != nil {
		return err
	}
	f.apply(opts)

	if err := config.NewValidator().Validate(opts); err != nil {
		return err
	}

	logger.Configure(opts.Logging)

	// 2. Dependências de boot
	provider, err := observability.SetupMetrics(opts.Metrics, opts.Server.Runtime)
	if err != nil {
		return fmt.Errorf("falha métricas: %w", err)
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}

	store, err := faults.Load(ctx, opts.Faults.Source, opts.Faults.Region)
	if err != nil {
		return err
	}

	invoker, err := hooks.New(opts.Hooks)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(render.LoadDir(opts.Templates.Dir), render.Defaults())

	dispatcher := engine.NewDispatcher(userpools.NewCatalog(),
		engine.WithFaults(store),
		engine.WithHooks(invoker),
		engine.WithRenderer(renderer),
		engine.WithMetrics(metrics.NewRecorder(provider)),
	)

	log.Info().
		Str("runtime", opts.Server.Runtime).
		Str("faults", opts.Faults.Source).
		Str("templates", opts.Templates.Dir).
		Str("hooks", opts.Hooks.Engine).
		Msg("emulador iniciado")

	// 3. Seleciona Runtime Strategy
	switch opts.Server.Runtime {
	case "lambda":
		handler := transport.NewLambdaHandler(dispatcher, opts.Server.Timeout)
		lambdaStarter(handler.Handle)
		return nil
	default:
		return serverStarter(ctx, dispatcher, opts.Server)
	}
}
