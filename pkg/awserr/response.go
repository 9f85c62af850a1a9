package awserr

import (
	"errors"
	"fmt"
)

const (
	// HeaderErrorType carrega o nome do erro na resposta.
	HeaderErrorType = "x-amzn-ErrorType"
	// HeaderErrorMessage carrega a mensagem legível do erro.
	HeaderErrorMessage = "x-amzn-ErrorMessage"
	// ContentType é o content-type usado pelo protocolo JSON 1.1.
	ContentType = "application/x-amz-json-1.1"
	// DefaultMessage é usada quando nenhuma mensagem foi configurada.
	DefaultMessage = "DUMMY ERROR MESSAGE"
)

// ErrUnknownError indica que o nome não existe nem na action nem nos erros comuns.
var ErrUnknownError = errors.New("erro desconhecido")

// ResponseError é a composição de um erro comum ou de um erro da action.
type ResponseError struct {
	name   string
	status int
	common bool
}

// Common converte um erro comum em ResponseError.
func Common(c CommonError) ResponseError {
	return ResponseError{name: string(c), status: c.StatusCode(), common: true}
}

// Parse resolve um nome primeiro entre os erros da action e depois entre os comuns.
func Parse(kinds Kinds, name string) (ResponseError, error) {
	if status, ok := kinds.Status(name); ok {
		return ResponseError{name: name, status: status}, nil
	}
	if c, ok := ParseCommon(name); ok {
		return Common(c), nil
	}
	return ResponseError{}, fmt.Errorf("%w: '%s'", ErrUnknownError, name)
}

// Name é o tipo de erro enviado no fio e também a chave usada na injeção de falhas.
func (e ResponseError) Name() string { return e.name }

func (e ResponseError) StatusCode() int { return e.status }

// IsCommon indica se o erro veio da tabela de erros comuns.
func (e ResponseError) IsCommon() bool { return e.common }

func (e ResponseError) String() string { return e.name }

// Envelope é o corpo JSON de uma resposta de erro.
type Envelope struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}
