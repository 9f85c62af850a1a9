package faults

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/raywall/cognito-emulator/pkg/config/injector"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Cada ação aponta para um mapa de escalares (ou nada).
const documentSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": ["object", "null"],
    "additionalProperties": {
      "type": ["string", "number", "boolean", "null"]
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// Parse decodifica um documento YAML (ou JSON), confere o formato e
// interpola os placeholders "${...}" dos valores.
func Parse(ctx context.Context, data []byte) (*Store, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "YAML malformado")
	}
	if doc == nil {
		return NewStore(nil), nil
	}

	if err := checkShape(doc); err != nil {
		return nil, err
	}

	inj := injector.New()
	entries := make(map[string]map[string]string)

	for action, raw := range doc.(map[string]interface{}) {
		kv := make(map[string]string)
		values, _ := raw.(map[string]interface{})

		for key, value := range values {
			if value == nil {
				continue
			}
			s, err := inj.Interpolate(ctx, fmt.Sprint(value))
			if err != nil {
				return nil, errors.WithContext(
					errors.Wrap(err, errors.CodeInvalidConfig, "falha na injeção de variáveis"),
					"action", action)
			}
			kv[key] = s
		}
		entries[action] = kv
	}

	return NewStore(entries), nil
}

func checkShape(doc interface{}) error {
	// Chaves não string viram map[interface{}]interface{} no yaml.v3
	if _, ok := doc.(map[string]interface{}); !ok {
		return errors.New(errors.CodeSchemaFailed, "documento de falhas deve ser um mapa de ações")
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return errors.Wrap(err, errors.CodeSchemaFailed, "falha ao validar formato do documento")
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return errors.Newf(errors.CodeSchemaFailed, "formato inválido: %s", strings.Join(msgs, "; "))
}
