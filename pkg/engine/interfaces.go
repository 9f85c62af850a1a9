package engine

import (
	"context"
	"net/url"
)

// Input é a requisição já extraída do transporte (HTTP ou Lambda).
type Input struct {
	// Target é o valor do header X-Amz-Target.
	Target string
	Body   []byte
	Query  url.Values
}

// Response é a resposta completa a ser escrita pelo transporte.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Handler é a interface de tempo de execução. Deve ser thread-safe, pois
// é chamada concorrentemente por cada requisição HTTP/evento.
type Handler interface {
	Handle(ctx context.Context, in Input) Response
}
