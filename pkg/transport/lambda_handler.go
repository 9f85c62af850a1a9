package transport

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/raywall/cognito-emulator/pkg/awserr"
	"github.com/raywall/cognito-emulator/pkg/engine"
	"github.com/rs/zerolog/log"
)

// LambdaHandler adapta eventos do API Gateway para o mesmo Handler do HTTP.
type LambdaHandler struct {
	h       engine.Handler
	timeout time.Duration
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(h engine.Handler, timeout time.Duration) *LambdaHandler {
	return &LambdaHandler{h: h, timeout: timeout}
}

// Handle processa a requisição Lambda
func (l *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	// Headers do API Gateway podem chegar com qualquer capitalização
	corrID := header(req.Headers, HeaderCorrelationID)
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			logger.Warn().Err(err).Msg("corpo base64 inválido")
			resp := engine.ErrorResponse(awserr.Common(awserr.InternalFailure), "invalid base64 body")
			return toProxyResponse(resp, corrID), nil
		}
		body = decoded
	}

	resp := l.h.Handle(ctx, engine.Input{
		Target: header(req.Headers, HeaderTarget),
		Body:   body,
		Query:  query(req),
	})

	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("lambda request completed")

	return toProxyResponse(resp, corrID), nil
}

func toProxyResponse(resp engine.Response, corrID string) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	headers[HeaderCorrelationID] = corrID

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(resp.Body),
	}
}

func header(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	canonical := http.CanonicalHeaderKey(name)
	for k, v := range headers {
		if http.CanonicalHeaderKey(k) == canonical {
			return v
		}
	}
	return ""
}

func query(req events.APIGatewayProxyRequest) url.Values {
	values := url.Values{}
	for k, vs := range req.MultiValueQueryStringParameters {
		for _, v := range vs {
			values.Add(k, v)
		}
	}
	for k, v := range req.QueryStringParameters {
		if _, ok := values[k]; !ok {
			values.Set(k, v)
		}
	}
	return values
}
