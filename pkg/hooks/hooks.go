// Package hooks executa lógica opcional por ação antes da renderização.
// O resultado de um hook é um objeto JSON mesclado ao contexto do template.
package hooks

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/raywall/cognito-emulator/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/stoewer/go-strcase"
)

// EmptyResult é devolvido quando não há hook para a ação.
const EmptyResult = "{}"

// Invoker executa o hook registrado para uma ação.
type Invoker interface {
	Invoke(ctx context.Context, action, request string) (string, error)
}

// Error indica falha na execução de um hook. O dispatcher trata como
// resultado vazio.
type Error struct {
	Action string
	Err    error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func newError(action string, err error, msg string) *Error {
	return &Error{
		Action: action,
		Err: errors.WrapWithContext(err, errors.CodeExecutionFailed, msg, map[string]interface{}{
			"action": action,
		}),
	}
}

// IsHookError informa se err veio da execução de um hook.
func IsHookError(err error) bool {
	var herr *Error
	return stderrors.As(err, &herr)
}

// HandlerName devolve o nome do arquivo de hook para a ação, sem extensão.
func HandlerName(action string) string {
	return strcase.SnakeCase(action)
}

// New escolhe a engine de hooks conforme as opções.
func New(cfg config.HooksConf) (Invoker, error) {
	switch cfg.Engine {
	case "", "none":
		return Noop{}, nil
	case "cel":
		return NewCEL(cfg.Dir, cfg.Timeout)
	case "exec":
		return NewExec(cfg.Dir, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("engine de hooks desconhecida: %s", cfg.Engine)
	}
}

// Noop nunca executa nada.
type Noop struct{}

func (Noop) Invoke(context.Context, string, string) (string, error) {
	return EmptyResult, nil
}

// scan lista os arquivos de dir com a extensão ext, indexados pelo nome
// sem extensão. Diretório ausente resulta em mapa vazio.
func scan(dir, ext string) map[string]string {
	files := make(map[string]string)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Info().Err(err).Str("dir", dir).Msg("diretório de hooks indisponível, seguindo sem hooks")
		return files
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		files[name] = filepath.Join(dir, entry.Name())
	}

	return files
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
