package hooks

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmgilman/go/exec"
	"github.com/rs/zerolog/log"
)

// ExecExtension é a extensão dos hooks executáveis.
const ExecExtension = ".hook"

// Exec roda hooks como processos: "<arquivo> <Ação> <requisição JSON>".
// A saída padrão deve ser um objeto JSON.
type Exec struct {
	files   map[string]string
	timeout time.Duration
}

// NewExec registra os arquivos .hook executáveis de dir.
func NewExec(dir string, timeout time.Duration) *Exec {
	files := scan(dir, ExecExtension)
	log.Debug().Int("count", len(files)).Str("dir", dir).Msg("hooks executáveis carregados")
	return &Exec{files: files, timeout: timeout}
}

func (e *Exec) Invoke(ctx context.Context, action, request string) (string, error) {
	path, ok := e.files[HandlerName(action)]
	if !ok {
		return EmptyResult, nil
	}

	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	// Um Command por chamada: a configuração local é mutável
	cmd := exec.New(exec.WithContext(ctx), exec.WithInheritEnv())
	res, err := cmd.Run(path, action, request)
	if err != nil {
		return "", newError(action, err, "falha ao executar hook")
	}

	stdout := strings.TrimSpace(res.Stdout)
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &obj); err != nil {
		return "", newError(action, err, "saída do hook não é JSON")
	}
	if obj == nil {
		return "", newError(action, errors.New("saída nula"), "saída do hook não é um objeto")
	}

	return stdout, nil
}
