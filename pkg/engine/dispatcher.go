package engine

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/raywall/cognito-emulator/pkg/action"
	"github.com/raywall/cognito-emulator/pkg/awserr"
	"github.com/raywall/cognito-emulator/pkg/faults"
	"github.com/raywall/cognito-emulator/pkg/hooks"
	"github.com/raywall/cognito-emulator/pkg/metrics"
	"github.com/raywall/cognito-emulator/pkg/render"
	"github.com/rs/zerolog"
)

// Dispatcher conduz cada requisição pelo fluxo: resolução da ação,
// decodificação, falha injetada, validação, hook e renderização.
// Todos os campos são somente leitura após a construção.
type Dispatcher struct {
	catalog  *action.Catalog
	faults   *faults.Store
	hooks    hooks.Invoker
	renderer *render.Renderer
	metrics  *metrics.Recorder
}

type Option func(*Dispatcher)

func WithFaults(store *faults.Store) Option {
	return func(d *Dispatcher) { d.faults = store }
}

func WithHooks(inv hooks.Invoker) Option {
	return func(d *Dispatcher) { d.hooks = inv }
}

func WithRenderer(r *render.Renderer) Option {
	return func(d *Dispatcher) { d.renderer = r }
}

func WithMetrics(r *metrics.Recorder) Option {
	return func(d *Dispatcher) { d.metrics = r }
}

// NewDispatcher cria o dispatcher. Sem opções, não há falhas nem hooks e
// apenas os templates embutidos são usados.
func NewDispatcher(catalog *action.Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		catalog:  catalog,
		faults:   faults.NewStore(nil),
		hooks:    hooks.Noop{},
		renderer: render.NewRenderer(nil, render.Defaults()),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle produz exatamente uma resposta para a entrada.
func (d *Dispatcher) Handle(ctx context.Context, in Input) Response {
	start := time.Now()
	name, resp := d.dispatch(ctx, in)

	zerolog.Ctx(ctx).Debug().
		Str("action", name).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("requisição processada")

	d.metrics.Request(name, resp.StatusCode, time.Since(start))
	return resp
}

func (d *Dispatcher) dispatch(ctx context.Context, in Input) (string, Response) {
	logger := zerolog.Ctx(ctx)

	// 1. Resolução da ação
	name, err := action.Resolve(in.Target, in.Body, in.Query)
	if err != nil {
		if errors.Is(err, action.ErrMissingAction) {
			return "", commonError(awserr.MissingAction, "")
		}
		logger.Debug().Err(err).Msg("corpo malformado")
		return "", commonError(awserr.InternalFailure, "request body is not valid JSON")
	}

	schema, ok := d.catalog.Lookup(name)
	if !ok {
		return name, commonError(awserr.InvalidAction, "")
	}

	// 2. Decodificação
	req, err := schema.Decode(in.Body)
	if err != nil {
		logger.Debug().Err(err).Str("action", name).Msg("falha ao decodificar requisição")
		return name, commonError(awserr.InternalFailure, err.Error())
	}

	// 3. Falha injetada
	if resp, forced := d.forcedFault(ctx, schema); forced {
		return name, resp
	}

	// 4. Validação
	if err := schema.Validate(req); err != nil {
		logger.Debug().Err(err).Str("action", name).Msg("requisição inválida")
		return name, commonError(awserr.InvalidParameterValue, err.Error())
	}

	requestJSON, err := json.Marshal(req)
	if err != nil {
		return name, commonError(awserr.InternalFailure, err.Error())
	}

	// 5. Hook
	hookJSON := d.invokeHook(ctx, name, requestJSON)
	if resp, forced := hookError(ctx, schema, hookJSON); forced {
		return name, resp
	}

	if schema.Output == action.OutputEmpty {
		return name, Response{
			StatusCode: 200,
			Headers:    map[string]string{"Content-Type": awserr.ContentType},
		}
	}

	// 6. Renderização
	tplName := name
	if t, ok := d.faults.Template(name); ok {
		tplName = t
	}

	data, err := render.BuildContext(requestJSON, hookJSON)
	if err != nil {
		logger.Error().Err(err).Str("action", name).Msg("falha ao montar contexto do template")
		return name, commonError(awserr.InternalFailure, err.Error())
	}

	body, err := d.renderer.Render(render.TemplateName(tplName), data)
	if err != nil {
		logger.Error().Err(err).Str("action", name).Str("template", tplName).Msg("falha ao renderizar resposta")
		return name, commonError(awserr.InternalFailure, err.Error())
	}

	return name, Response{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": awserr.ContentType},
		Body:       []byte(body),
	}
}

func (d *Dispatcher) forcedFault(ctx context.Context, schema *action.Schema) (Response, bool) {
	errType, ok := d.faults.ErrorType(schema.Name)
	if !ok {
		return Response{}, false
	}

	resErr, err := awserr.Parse(schema.Errors, errType)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("action", schema.Name).Msg("erro configurado ignorado")
		return Response{}, false
	}

	msg, _ := d.faults.Message(schema.Name)
	zerolog.Ctx(ctx).Debug().Str("action", schema.Name).Str("error_type", errType).Msg("falha injetada")
	d.metrics.Fault(schema.Name, errType)

	return ErrorResponse(resErr, msg), true
}

// invokeHook nunca falha: erros viram resultado vazio.
func (d *Dispatcher) invokeHook(ctx context.Context, name string, request []byte) []byte {
	start := time.Now()
	out, err := d.hooks.Invoke(ctx, name, string(request))
	d.metrics.Hook(name, time.Since(start), err)

	if err != nil {
		level := zerolog.WarnLevel
		if !hooks.IsHookError(err) {
			// erro fora do contrato do Invoker
			level = zerolog.ErrorLevel
		}
		zerolog.Ctx(ctx).WithLevel(level).Err(err).Str("action", name).Msg("falha no hook, seguindo sem resultado")
		return []byte(hooks.EmptyResult)
	}
	return []byte(out)
}

// hookError interpreta um resultado de hook no formato do envelope de erro.
func hookError(ctx context.Context, schema *action.Schema, hookJSON []byte) (Response, bool) {
	var env awserr.Envelope
	if err := json.Unmarshal(hookJSON, &env); err != nil || env.Type == "" {
		return Response{}, false
	}

	resErr, err := awserr.Parse(schema.Errors, env.Type)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("action", schema.Name).Msg("erro devolvido pelo hook ignorado")
		return Response{}, false
	}
	return ErrorResponse(resErr, env.Message), true
}
