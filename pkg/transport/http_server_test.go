package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/raywall/cognito-emulator/pkg/awserr"
	"github.com/raywall/cognito-emulator/pkg/config"
	"github.com/raywall/cognito-emulator/pkg/engine"
	"github.com/raywall/cognito-emulator/pkg/userpools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(engine.NewDispatcher(userpools.NewCatalog()), time.Second))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, target, body string, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", awserr.ContentType)
	if target != "" {
		req.Header.Set(HeaderTarget, target)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_Sucesso(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv, "AWSCognitoIdentityProviderService.AdminGetUser",
		`{"UserPoolId":"us-east-1_abc","Username":"ana"}`, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, awserr.ContentType, resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(HeaderCorrelationID))
	assert.NotEmpty(t, resp.Header.Get(HeaderLatency))

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ana", out["Username"])
}

func TestRouter_AcaoSemSaida(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv, "AWSCognitoIdentityProviderService.AdminDeleteUser",
		`{"UserPoolId":"us-east-1_abc","Username":"ana"}`, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestRouter_Erro(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv, "", `{"Username":"ana"}`, map[string]string{HeaderCorrelationID: "corr-123"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MissingAction", resp.Header.Get(awserr.HeaderErrorType))
	assert.Equal(t, awserr.DefaultMessage, resp.Header.Get(awserr.HeaderErrorMessage))
	assert.Equal(t, "corr-123", resp.Header.Get(HeaderCorrelationID))

	var env awserr.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "MissingAction", env.Type)
}

func TestRouter_AcaoNoCorpoEQuery(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv, "", `{"Action":"ListUserPools","MaxResults":10}`, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/?Action=DescribeUserPool", strings.NewReader(`{"UserPoolId":"us-east-1_abc"}`))
	qresp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer qresp.Body.Close()
	assert.Equal(t, http.StatusOK, qresp.StatusCode)
}

func TestRouter_MetodoNaoPermitido(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStartHTTPServer_Encerramento(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- StartHTTPServer(ctx, engine.NewDispatcher(userpools.NewCatalog()), config.ServerConf{
			Host: "127.0.0.1", Port: 0, Timeout: time.Second,
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não encerrou")
	}
}
