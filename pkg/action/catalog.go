package action

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/cognito-emulator/pkg/awserr"
)

// Request é o contrato mínimo de uma requisição de action.
type Request interface {
	ActionName() string
}

// Output indica o formato da resposta de sucesso.
type Output int

const (
	// OutputJSON renderiza um template.
	OutputJSON Output = iota
	// OutputEmpty responde 200 sem corpo.
	OutputEmpty
)

func (o Output) String() string {
	if o == OutputEmpty {
		return "empty"
	}
	return "json"
}

// Schema descreve uma action registrada no catálogo.
type Schema struct {
	Name   string
	Errors awserr.Kinds
	Output Output

	decode   func([]byte) (Request, error)
	validate *validator.Validate
}

// Decode desserializa o corpo na struct da action.
func (s *Schema) Decode(body []byte) (Request, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	req, err := s.decode(body)
	if err != nil {
		return nil, &DecodeError{Action: s.Name, Err: err}
	}
	return req, nil
}

// Validate aplica as regras declaradas nas tags da struct.
func (s *Schema) Validate(req Request) error {
	if err := s.validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return newValidationError(s.Name, verrs)
		}
		return fmt.Errorf("cannot validate %sRequest: %w", s.Name, err)
	}
	return nil
}

// Catalog é o registro imutável (após o boot) das actions suportadas.
type Catalog struct {
	schemas  map[string]*Schema
	validate *validator.Validate
}

// NewCatalog cria um catálogo vazio usando o validador informado.
func NewCatalog(v *validator.Validate) *Catalog {
	return &Catalog{
		schemas:  make(map[string]*Schema),
		validate: v,
	}
}

// Register adiciona a action T ao catálogo. O nome vem de T.ActionName().
func Register[T Request](c *Catalog, errs awserr.Kinds, out Output) {
	var zero T
	name := zero.ActionName()
	if _, dup := c.schemas[name]; dup {
		panic(fmt.Sprintf("action: '%s' registrada mais de uma vez", name))
	}
	for _, e := range errs.Names() {
		if _, common := awserr.ParseCommon(e); common {
			panic(fmt.Sprintf("action: erro '%s' de '%s' colide com um erro comum", e, name))
		}
	}

	c.schemas[name] = &Schema{
		Name:   name,
		Errors: errs,
		Output: out,
		decode: func(body []byte) (Request, error) {
			var req T
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}
			return req, nil
		},
		validate: c.validate,
	}
}

// Lookup busca o schema de uma action.
func (c *Catalog) Lookup(name string) (*Schema, bool) {
	s, ok := c.schemas[name]
	return s, ok
}

// Names lista as actions registradas em ordem alfabética.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.schemas))
	for name := range c.schemas {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len retorna o total de actions registradas.
func (c *Catalog) Len() int { return len(c.schemas) }

// DecodeError indica que o corpo não pôde ser convertido na struct da action.
type DecodeError struct {
	Action string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot deserialize %sRequest: %v", e.Action, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError agrega as violações de regra de uma requisição.
type ValidationError struct {
	Action     string
	Violations []string
}

func newValidationError(action string, verrs validator.ValidationErrors) *ValidationError {
	ve := &ValidationError{Action: action}
	for _, e := range verrs {
		ve.Violations = append(ve.Violations, fmt.Sprintf("Value at '%s' failed to satisfy constraint: %s", e.Field(), constraint(e)))
	}
	return ve
}

func (e *ValidationError) Error() string {
	noun := "error"
	if len(e.Violations) > 1 {
		noun = "errors"
	}
	return fmt.Sprintf("%d validation %s detected: %s", len(e.Violations), noun, strings.Join(e.Violations, "; "))
}

// constraint descreve a regra violada no vocabulário das mensagens da AWS.
func constraint(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Member must not be null"
	case "min":
		return fmt.Sprintf("Member must have %s greater than or equal to %s", measure(e.Kind()), e.Param())
	case "max":
		return fmt.Sprintf("Member must have %s less than or equal to %s", measure(e.Kind()), e.Param())
	case "oneof":
		return fmt.Sprintf("Member must satisfy enum value set: [%s]", strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Member must satisfy rule '%s'", e.Tag())
	}
}

func measure(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "value"
	}
	return "length"
}
