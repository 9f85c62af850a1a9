package engine

import (
	"fmt"

	"github.com/raywall/cognito-emulator/pkg/awserr"
	"github.com/raywall/cognito-emulator/pkg/render"
)

// ErrorResponse monta a resposta de erro no formato do protocolo JSON 1.1.
// Mensagem vazia usa awserr.DefaultMessage.
func ErrorResponse(e awserr.ResponseError, msg string) Response {
	if msg == "" {
		msg = awserr.DefaultMessage
	}

	body := fmt.Sprintf(`{"__type":"%s","message":"%s"}`,
		render.EscapeJSONString(e.Name()), render.EscapeJSONString(msg))

	return Response{
		StatusCode: e.StatusCode(),
		Headers: map[string]string{
			"Content-Type":            awserr.ContentType,
			awserr.HeaderErrorType:    e.Name(),
			awserr.HeaderErrorMessage: msg,
		},
		Body: []byte(body),
	}
}

func commonError(c awserr.CommonError, msg string) Response {
	return ErrorResponse(awserr.Common(c), msg)
}
