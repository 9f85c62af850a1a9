package injector

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/raywall/cognito-emulator/pkg/awscfg"
)

// Captura padrões ${tipo.chave}
// Ex: ${env.POOL_ID}, ${ssm./emulator/pool}, ${secret.emulator#api_key}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// Resolver busca o valor de uma chave em uma fonte.
type Resolver func(ctx context.Context, key string) (string, error)

type Injector struct {
	resolvers map[string]Resolver
}

// Option customiza o Injector.
type Option func(*Injector)

// WithResolver substitui a fonte informada (env, ssm ou secret).
func WithResolver(source string, r Resolver) Option {
	return func(i *Injector) {
		i.resolvers[source] = r
	}
}

func New(opts ...Option) *Injector {
	i := &Injector{
		resolvers: map[string]Resolver{
			"env":    lookupEnv,
			"ssm":    lookupSSM,
			"secret": lookupSecret,
		},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inject aplica as tags env e interpola strings "${...}" em toda a struct.
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for k := 0; k < t.NumField(); k++ {
			field := t.Field(k)
			value := v.Field(k)

			if err := i.processStructTags(field, value); err != nil {
				return err
			}

			if value.Kind() == reflect.String && value.CanSet() {
				newValue, err := i.Interpolate(ctx, value.String())
				if err != nil {
					return fmt.Errorf("falha ao interpolar campo '%s': %w", field.Name, err)
				}
				value.SetString(newValue)
				continue
			}

			if value.CanSet() || value.Kind() == reflect.Ptr {
				if err := i.injectRecursive(ctx, value); err != nil {
					return err
				}
			}
		}

	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String && !v.IsNil() {
			return i.injectMap(ctx, v)
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			elem := v.Index(j)
			if elem.Kind() == reflect.String {
				s, err := i.Interpolate(ctx, elem.String())
				if err != nil {
					return err
				}
				elem.SetString(s)
				continue
			}
			if err := i.injectRecursive(ctx, elem); err != nil {
				return err
			}
		}
	}
	return nil
}

// processStructTags aplica a variável da tag env quando ela está definida.
func (i *Injector) processStructTags(field reflect.StructField, value reflect.Value) error {
	if !value.CanSet() {
		return nil
	}
	if tag := field.Tag.Get("env"); tag != "" {
		if val, exists := os.LookupEnv(tag); exists && val != "" {
			if err := setField(value, val); err != nil {
				return fmt.Errorf("valor inválido em %s para o campo '%s': %w", tag, field.Name, err)
			}
		}
	}
	return nil
}

// Interpolate substitui todos os placeholders de input.
// O primeiro erro de resolução interrompe a interpolação.
func (i *Injector) Interpolate(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		sub := pattern.FindStringSubmatch(match)
		resolve, ok := i.resolvers[sub[1]]
		if !ok {
			return match
		}

		val, resolveErr := resolve(ctx, sub[2])
		if resolveErr != nil {
			err = fmt.Errorf("falha ao resolver %s: %w", match, resolveErr)
			return match
		}
		return val
	})

	return result, err
}

func (i *Injector) injectMap(ctx context.Context, v reflect.Value) error {
	iter := v.MapRange()
	updates := make(map[string]reflect.Value)

	for iter.Next() {
		key := iter.Key()
		val := iter.Value()

		elem := val
		if val.Kind() == reflect.Interface {
			elem = val.Elem()
		}
		if !elem.IsValid() {
			continue
		}

		switch elem.Kind() {
		case reflect.String:
			newVal, err := i.Interpolate(ctx, elem.String())
			if err != nil {
				return err
			}
			updates[key.String()] = reflect.ValueOf(newVal).Convert(v.Type().Elem())
		case reflect.Map:
			if err := i.injectMap(ctx, elem); err != nil {
				return err
			}
		}
	}

	for k, val := range updates {
		v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), val)
	}
	return nil
}

func lookupEnv(_ context.Context, key string) (string, error) {
	// Variável ausente vira string vazia
	return os.Getenv(key), nil
}

func lookupSSM(ctx context.Context, key string) (string, error) {
	return awscfg.Parameter(ctx, os.Getenv("AWS_REGION"), key)
}

func lookupSecret(ctx context.Context, key string) (string, error) {
	return awscfg.Secret(ctx, os.Getenv("AWS_REGION"), key)
}

var durationType = reflect.TypeOf(time.Duration(0))

func setField(field reflect.Value, val string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(val)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err != nil {
			return err
		}
		field.SetBool(b)
	}
	return nil
}
