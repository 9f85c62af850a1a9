package action

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
)

const (
	// TargetHeader carrega "<ServicePrefix>.<ActionName>".
	TargetHeader = "X-Amz-Target"
	// Field é o nome do campo no corpo e do parâmetro de query.
	Field = "Action"
)

var (
	ErrMissingAction = errors.New("nenhuma action informada na requisição")
	ErrMalformedBody = errors.New("corpo da requisição não é um JSON válido")
)

// Resolve determina a action efetiva da requisição.
// Precedência: campo "Action" do corpo, header de target e por último a query.
func Resolve(target string, body []byte, query url.Values) (string, error) {
	fromBody, err := bodyAction(body)
	if err != nil {
		return "", err
	}
	if fromBody != "" {
		return fromBody, nil
	}

	if name := targetAction(target); name != "" {
		return name, nil
	}

	if name := strings.TrimSpace(query.Get(Field)); name != "" {
		return name, nil
	}

	return "", ErrMissingAction
}

func bodyAction(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", nil
	}

	var doc interface{}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return "", errors.Join(ErrMalformedBody, err)
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return "", nil
	}
	name, _ := obj[Field].(string)
	return strings.TrimSpace(name), nil
}

// targetAction remove o prefixo do serviço ("AWSCognitoIdentityProviderService.").
func targetAction(target string) string {
	target = strings.TrimSpace(target)
	if i := strings.LastIndex(target, "."); i >= 0 {
		target = target[i+1:]
	}
	return target
}
