package action

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/cognito-emulator/pkg/awserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRequest struct {
	Name  string  `json:"Name" validate:"required,max=5"`
	Count *int64  `json:"Count,omitempty" validate:"omitempty,min=1"`
	Note  *string `json:"Note,omitempty"`
}

func (pingRequest) ActionName() string { return "Ping" }

type pongRequest struct{}

func (pongRequest) ActionName() string { return "Pong" }

func newTestCatalog() *Catalog {
	c := NewCatalog(validator.New())
	Register[pingRequest](c, awserr.NewKinds(awserr.Client("PingException")), OutputJSON)
	Register[pongRequest](c, awserr.NewKinds(), OutputEmpty)
	return c
}

func TestCatalog_Register(t *testing.T) {
	c := newTestCatalog()

	assert.Equal(t, []string{"Ping", "Pong"}, c.Names())
	assert.Equal(t, 2, c.Len())

	s, ok := c.Lookup("Ping")
	require.True(t, ok)
	assert.Equal(t, OutputJSON, s.Output)
	assert.True(t, s.Errors.Has("PingException"))

	s, ok = c.Lookup("Pong")
	require.True(t, ok)
	assert.Equal(t, "empty", s.Output.String())

	_, ok = c.Lookup("Nope")
	assert.False(t, ok)
}

func TestCatalog_RegisterDuplicado(t *testing.T) {
	c := newTestCatalog()
	assert.Panics(t, func() {
		Register[pingRequest](c, awserr.NewKinds(), OutputJSON)
	})
}

func TestCatalog_ErroQueColideComComum(t *testing.T) {
	c := NewCatalog(validator.New())
	assert.Panics(t, func() {
		Register[pingRequest](c, awserr.NewKinds(awserr.Client("MissingAction")), OutputJSON)
	})
}

func TestSchema_DecodeAndValidate(t *testing.T) {
	c := newTestCatalog()
	s, _ := c.Lookup("Ping")

	t.Run("Válido", func(t *testing.T) {
		req, err := s.Decode([]byte(`{"Name":"abc","Count":2,"Extra":"ignorado"}`))
		require.NoError(t, err)
		assert.Equal(t, "Ping", req.ActionName())
		assert.NoError(t, s.Validate(req))
	})

	t.Run("Corpo vazio vira objeto vazio", func(t *testing.T) {
		req, err := s.Decode(nil)
		require.NoError(t, err)

		err = s.Validate(req)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "1 validation error detected: Value at 'Name' failed to satisfy constraint: Member must not be null", verr.Error())
	})

	t.Run("Tipo incompatível", func(t *testing.T) {
		_, err := s.Decode([]byte(`{"Name":10}`))
		var derr *DecodeError
		require.True(t, errors.As(err, &derr))
		assert.Contains(t, derr.Error(), "cannot deserialize PingRequest")
	})

	t.Run("Opcional presente e inválido", func(t *testing.T) {
		req, err := s.Decode([]byte(`{"Name":"abc","Count":0}`))
		require.NoError(t, err)
		assert.Error(t, s.Validate(req))
	})

	t.Run("Várias violações", func(t *testing.T) {
		req, err := s.Decode([]byte(`{"Name":"abcdefgh","Count":0}`))
		require.NoError(t, err)

		err = s.Validate(req)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Violations, 2)
		assert.Contains(t, verr.Error(), "2 validation errors detected")
		assert.Contains(t, verr.Error(), "Value at 'Name' failed to satisfy constraint: Member must have length less than or equal to 5")
		assert.Contains(t, verr.Error(), "Value at 'Count' failed to satisfy constraint: Member must have value greater than or equal to 1")
		assert.NotContains(t, verr.Error(), "pingRequest")
	})

	t.Run("Opcional ausente", func(t *testing.T) {
		req, err := s.Decode([]byte(`{"Name":"abc"}`))
		require.NoError(t, err)
		assert.NoError(t, s.Validate(req))
	})
}
