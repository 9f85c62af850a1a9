package hooks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	jerrors "github.com/jmgilman/go/errors"
	"github.com/raywall/cognito-emulator/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHook(t *testing.T, dir, name, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), mode))
}

func TestHandlerName(t *testing.T) {
	assert.Equal(t, "admin_get_user", HandlerName("AdminGetUser"))
	assert.Equal(t, "sign_up", HandlerName("SignUp"))
	assert.Equal(t, "list_users", HandlerName("ListUsers"))
}

func TestNew(t *testing.T) {
	dir := t.TempDir()

	inv, err := New(config.HooksConf{Engine: "none"})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, inv)

	inv, err = New(config.HooksConf{Engine: "cel", Dir: dir, Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &CEL{}, inv)

	inv, err = New(config.HooksConf{Engine: "exec", Dir: dir, Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &Exec{}, inv)

	_, err = New(config.HooksConf{Engine: "lua"})
	assert.ErrorContains(t, err, "lua")
}

func TestNoop(t *testing.T) {
	out, err := Noop{}.Invoke(context.Background(), "AdminGetUser", `{}`)
	require.NoError(t, err)
	assert.Equal(t, EmptyResult, out)
}

func TestCEL_Invoke(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "sign_up.cel", `{"UserSub": "sub-" + request.Username, "UserConfirmed": action == "SignUp"}`, 0o644)
	writeHook(t, dir, "admin_get_user.cel", `{"__type": "UserNotFoundException", "message": "usuário " + request.Username + " não existe"}`, 0o644)
	writeHook(t, dir, "admin_delete_user.cel", `"não é mapa"`, 0o644)
	writeHook(t, dir, "admin_enable_user.cel", `{"x": request.Inexistente}`, 0o644)
	writeHook(t, dir, "quebrado.cel", `{"a": `, 0o644)
	writeHook(t, dir, "ignorado.txt", `{}`, 0o644)

	inv, err := NewCEL(dir, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin_delete_user", "admin_enable_user", "admin_get_user", "sign_up"}, inv.Names())

	ctx := context.Background()

	t.Run("Resultado mapa", func(t *testing.T) {
		out, err := inv.Invoke(ctx, "SignUp", `{"Username":"ana","ClientId":"c"}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"UserSub":"sub-ana","UserConfirmed":true}`, out)
	})

	t.Run("Resultado forçando erro", func(t *testing.T) {
		out, err := inv.Invoke(ctx, "AdminGetUser", `{"Username":"ana"}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"__type":"UserNotFoundException","message":"usuário ana não existe"}`, out)
	})

	t.Run("Sem hook", func(t *testing.T) {
		out, err := inv.Invoke(ctx, "ListUsers", `{}`)
		require.NoError(t, err)
		assert.Equal(t, EmptyResult, out)
	})

	t.Run("Resultado não mapa", func(t *testing.T) {
		_, err := inv.Invoke(ctx, "AdminDeleteUser", `{}`)
		require.Error(t, err)
		assert.True(t, IsHookError(err))
		assert.Equal(t, jerrors.CodeExecutionFailed, jerrors.GetCode(err))
	})

	t.Run("Erro de avaliação", func(t *testing.T) {
		_, err := inv.Invoke(ctx, "AdminEnableUser", `{"Username":"ana"}`)
		var herr *Error
		require.True(t, errors.As(err, &herr))
		assert.Equal(t, "AdminEnableUser", herr.Action)
	})

	t.Run("Requisição inválida", func(t *testing.T) {
		_, err := inv.Invoke(ctx, "SignUp", `não json`)
		assert.True(t, IsHookError(err))
	})
}

func TestCEL_DiretorioAusente(t *testing.T) {
	inv, err := NewCEL(filepath.Join(t.TempDir(), "nao-existe"), time.Second)
	require.NoError(t, err)
	assert.Empty(t, inv.Names())
}

func TestExec_Invoke(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hooks executáveis dependem de /bin/sh")
	}

	dir := t.TempDir()
	writeHook(t, dir, "admin_get_user.hook", "#!/bin/sh\nprintf '{\"action\":\"%s\",\"request\":%s}' \"$1\" \"$2\"\n", 0o755)
	writeHook(t, dir, "sign_up.hook", "#!/bin/sh\necho 'texto livre'\n", 0o755)
	writeHook(t, dir, "admin_delete_user.hook", "#!/bin/sh\necho '{}' >&2\nexit 3\n", 0o755)
	writeHook(t, dir, "list_users.hook", "#!/bin/sh\nexec sleep 5\n", 0o755)

	inv := NewExec(dir, 200*time.Millisecond)
	ctx := context.Background()

	t.Run("Saída JSON", func(t *testing.T) {
		out, err := inv.Invoke(ctx, "AdminGetUser", `{"Username":"ana"}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"action":"AdminGetUser","request":{"Username":"ana"}}`, out)
	})

	t.Run("Sem hook", func(t *testing.T) {
		out, err := inv.Invoke(ctx, "GetUser", `{}`)
		require.NoError(t, err)
		assert.Equal(t, EmptyResult, out)
	})

	t.Run("Saída não JSON", func(t *testing.T) {
		_, err := inv.Invoke(ctx, "SignUp", `{}`)
		assert.True(t, IsHookError(err))
	})

	t.Run("Código de saída diferente de zero", func(t *testing.T) {
		_, err := inv.Invoke(ctx, "AdminDeleteUser", `{}`)
		assert.True(t, IsHookError(err))
		assert.Equal(t, jerrors.CodeExecutionFailed, jerrors.GetCode(err))
	})

	t.Run("Timeout", func(t *testing.T) {
		start := time.Now()
		_, err := inv.Invoke(ctx, "ListUsers", `{}`)
		assert.True(t, IsHookError(err))
		assert.Less(t, time.Since(start), 4*time.Second)
	})
}
