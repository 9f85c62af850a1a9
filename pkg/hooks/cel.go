package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"
	"time"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/structpb"
)

// CELExtension é a extensão dos hooks escritos em CEL.
const CELExtension = ".cel"

var structType = reflect.TypeOf(&structpb.Struct{})

// CEL avalia expressões CEL compiladas na inicialização. Cada expressão
// recebe as variáveis "request" (corpo decodificado) e "action" e deve
// produzir um mapa.
type CEL struct {
	programs map[string]cel.Program
	timeout  time.Duration
}

func newCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.StdLib(),
		cel.Declarations(
			decls.NewVar("request", decls.Dyn),
			decls.NewVar("action", decls.String),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("erro fatal CEL init: %w", err)
	}
	return env, nil
}

// NewCEL compila os arquivos .cel de dir. Arquivos que não compilam são
// ignorados com aviso.
func NewCEL(dir string, timeout time.Duration) (*CEL, error) {
	env, err := newCELEnv()
	if err != nil {
		return nil, err
	}

	programs := make(map[string]cel.Program)
	for name, path := range scan(dir, CELExtension) {
		source, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("falha ao ler hook")
			continue
		}

		prg, err := compile(env, string(source))
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("hook ignorado")
			continue
		}
		programs[name] = prg
	}

	log.Debug().Int("count", len(programs)).Str("dir", dir).Msg("hooks CEL carregados")
	return &CEL{programs: programs, timeout: timeout}, nil
}

func compile(env *cel.Env, expr string) (cel.Program, error) {
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("erro de compilação CEL: %w", issues.Err())
	}

	prg, err := env.Program(ast, cel.InterruptCheckFrequency(100))
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar programa CEL: %w", err)
	}
	return prg, nil
}

// Names devolve os hooks registrados, em ordem.
func (c *CEL) Names() []string {
	names := make([]string, 0, len(c.programs))
	for name := range c.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *CEL) Invoke(ctx context.Context, action, request string) (string, error) {
	prg, ok := c.programs[HandlerName(action)]
	if !ok {
		return EmptyResult, nil
	}

	var input map[string]interface{}
	if err := json.Unmarshal([]byte(request), &input); err != nil {
		return "", newError(action, err, "requisição inválida para o hook")
	}
	if input == nil {
		input = map[string]interface{}{}
	}

	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	out, _, err := prg.ContextEval(ctx, map[string]interface{}{
		"request": input,
		"action":  action,
	})
	if err != nil {
		return "", newError(action, err, "erro execução CEL")
	}

	native, err := out.ConvertToNative(structType)
	if err != nil {
		return "", newError(action, err, "resultado do hook não é um mapa")
	}

	result, err := json.Marshal(native.(*structpb.Struct).AsMap())
	if err != nil {
		return "", newError(action, err, "falha ao serializar resultado do hook")
	}

	return string(result), nil
}
