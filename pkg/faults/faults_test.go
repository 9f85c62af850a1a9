package faults

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	jerrors "github.com/jmgilman/go/errors"
	"github.com/raywall/cognito-emulator/pkg/userpools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockS3Loader struct {
	GetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func (m *MockS3Loader) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return m.GetObjectFunc(ctx, params, optFns...)
}

type MockDynamoLoader struct {
	GetItemFunc func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

func (m *MockDynamoLoader) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return m.GetItemFunc(ctx, params, optFns...)
}

const sampleDoc = `
AdminCreateUser:
  error_type: UsernameExistsException
  error_message: usuário já existe
AdminGetUser:
  status_name: InternalFailure
AdminDeleteUser:
  template: AdminDeleteUserLento
  retries: 3
  enabled: true
ListUsers:
`

// --- Testes ---

func TestStore(t *testing.T) {
	store, err := Parse(context.Background(), []byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"AdminCreateUser", "AdminDeleteUser", "AdminGetUser", "ListUsers"}, store.Actions())
	assert.Equal(t, 4, store.Len())

	v, ok := store.ErrorType("AdminCreateUser")
	assert.True(t, ok)
	assert.Equal(t, "UsernameExistsException", v)

	v, ok = store.Message("AdminCreateUser")
	assert.True(t, ok)
	assert.Equal(t, "usuário já existe", v)

	v, ok = store.ErrorType("AdminGetUser")
	assert.True(t, ok, "status_name é alias de error_type")
	assert.Equal(t, "InternalFailure", v)

	v, ok = store.Template("AdminDeleteUser")
	assert.True(t, ok)
	assert.Equal(t, "AdminDeleteUserLento", v)

	v, _ = store.Lookup("AdminDeleteUser", "retries")
	assert.Equal(t, "3", v, "escalares viram texto")
	v, _ = store.Lookup("AdminDeleteUser", "enabled")
	assert.Equal(t, "true", v)

	assert.Empty(t, store.Keys("ListUsers"))
	_, ok = store.ErrorType("ListUsers")
	assert.False(t, ok)
	_, ok = store.Lookup("SignUp", KeyErrorType)
	assert.False(t, ok)
}

func TestStore_ErrorTypePrevaleceSobreAlias(t *testing.T) {
	store := NewStore(map[string]map[string]string{
		"AdminGetUser": {KeyErrorType: "UserNotFoundException", KeyStatusName: "InternalFailure"},
	})
	v, _ := store.ErrorType("AdminGetUser")
	assert.Equal(t, "UserNotFoundException", v)
}

func TestStore_Nil(t *testing.T) {
	var store *Store
	_, ok := store.Lookup("AdminGetUser", KeyErrorType)
	assert.False(t, ok)
	_, ok = store.ErrorType("AdminGetUser")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
	assert.Nil(t, store.Actions())
}

func TestParse(t *testing.T) {
	ctx := context.Background()

	t.Run("JSON é aceito", func(t *testing.T) {
		store, err := Parse(ctx, []byte(`{"SignUp":{"error_type":"InvalidPasswordException"}}`))
		require.NoError(t, err)
		v, _ := store.ErrorType("SignUp")
		assert.Equal(t, "InvalidPasswordException", v)
	})

	t.Run("Documento vazio", func(t *testing.T) {
		store, err := Parse(ctx, []byte("  \n"))
		require.NoError(t, err)
		assert.Zero(t, store.Len())
	})

	t.Run("Interpolação de ambiente", func(t *testing.T) {
		t.Setenv("FAULT_MESSAGE", "limite atingido")
		store, err := Parse(ctx, []byte("SignUp:\n  error_type: LimitExceededException\n  error_message: \"${env.FAULT_MESSAGE}!\"\n"))
		require.NoError(t, err)
		v, _ := store.Message("SignUp")
		assert.Equal(t, "limite atingido!", v)
	})

	t.Run("YAML malformado", func(t *testing.T) {
		_, err := Parse(ctx, []byte("AdminGetUser: [error_type"))
		require.Error(t, err)
		assert.Equal(t, jerrors.CodeInvalidConfig, jerrors.GetCode(err))
	})

	t.Run("Raiz não é mapa", func(t *testing.T) {
		_, err := Parse(ctx, []byte("- AdminGetUser\n- SignUp\n"))
		require.Error(t, err)
		assert.Equal(t, jerrors.CodeSchemaFailed, jerrors.GetCode(err))
	})

	t.Run("Ação com lista", func(t *testing.T) {
		_, err := Parse(ctx, []byte("AdminGetUser:\n  - error_type\n"))
		require.Error(t, err)
		assert.Equal(t, jerrors.CodeSchemaFailed, jerrors.GetCode(err))
	})

	t.Run("Valor aninhado", func(t *testing.T) {
		_, err := Parse(ctx, []byte("AdminGetUser:\n  error_type:\n    name: X\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "formato inválido")
	})
}

func TestLoad_Local(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "user_pools.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	t.Run("Caminho simples", func(t *testing.T) {
		store, err := Load(ctx, path, "")
		require.NoError(t, err)
		assert.Equal(t, 4, store.Len())
	})

	t.Run("Prefixo file://", func(t *testing.T) {
		store, err := Load(ctx, "file://"+path, "")
		require.NoError(t, err)
		assert.Equal(t, 4, store.Len())
	})

	t.Run("Arquivo ausente", func(t *testing.T) {
		store, err := Load(ctx, filepath.Join(dir, "nao-existe.yml"), "")
		require.NoError(t, err)
		assert.Zero(t, store.Len())
	})

	t.Run("Arquivo malformado", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(bad, []byte("AdminGetUser: [x"), 0o644))

		_, err := Load(ctx, bad, "")
		require.Error(t, err)
		assert.Equal(t, jerrors.CodeInvalidConfig, jerrors.GetCode(err))
		assert.Contains(t, err.Error(), "configuração de falhas inválida")
	})
}

func TestLoadFromS3(t *testing.T) {
	mock := &MockS3Loader{
		GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			if *params.Bucket != "emulator" || *params.Key != "faults/user_pools.yml" {
				return nil, errors.New("objeto inexistente")
			}
			return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(sampleDoc))}, nil
		},
	}

	data, err := loadFromS3(context.Background(), mock, "s3://emulator/faults/user_pools.yml")
	require.NoError(t, err)
	assert.Equal(t, sampleDoc, string(data))

	_, err = loadFromS3(context.Background(), mock, "s3://outro/key.yml")
	assert.ErrorContains(t, err, "objeto inexistente")
}

func TestLoadFromDynamoDB(t *testing.T) {
	var captured *dynamodb.GetItemInput
	mock := &MockDynamoLoader{
		GetItemFunc: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			captured = params
			key, _ := params.Key["name"].(*types.AttributeValueMemberS)
			if key == nil || key.Value != "faults" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
				"name": &types.AttributeValueMemberS{Value: "faults"},
				"yaml": &types.AttributeValueMemberS{Value: sampleDoc},
				"size": &types.AttributeValueMemberN{Value: "10"},
			}}, nil
		},
	}
	ctx := context.Background()

	t.Run("Coluna e chave customizadas", func(t *testing.T) {
		data, err := loadFromDynamoDB(ctx, mock, "dynamodb://emulator-config/faults?col=yaml&pk=name")
		require.NoError(t, err)
		assert.Equal(t, sampleDoc, string(data))
		assert.Equal(t, "emulator-config", *captured.TableName)
	})

	t.Run("Item inexistente", func(t *testing.T) {
		_, err := loadFromDynamoDB(ctx, mock, "dynamodb://emulator-config/outro?col=yaml&pk=name")
		assert.ErrorContains(t, err, "não encontrado")
	})

	t.Run("Coluna não texto", func(t *testing.T) {
		_, err := loadFromDynamoDB(ctx, mock, "dynamodb://emulator-config/faults?col=size&pk=name")
		assert.ErrorContains(t, err, "coluna 'size'")
	})

	t.Run("Defaults de coluna e chave", func(t *testing.T) {
		_, err := loadFromDynamoDB(ctx, mock, "dynamodb://emulator-config/faults")
		assert.Error(t, err)
		_, hasID := captured.Key["id"]
		assert.True(t, hasID)
	})
}

func TestAnalyze(t *testing.T) {
	catalog := userpools.NewCatalog()

	t.Run("Configuração válida", func(t *testing.T) {
		store := NewStore(map[string]map[string]string{
			"AdminCreateUser": {KeyErrorType: "UsernameExistsException", KeyErrorMessage: "já existe"},
			"AdminGetUser":    {KeyStatusName: "InternalFailure"},
			"ListUsers":       {KeyTemplate: "ListUsersVazio"},
		})

		report := Analyze(store, catalog)
		assert.True(t, report.Valid)
		assert.Empty(t, report.Errors)
		assert.Empty(t, report.Warnings)
	})

	t.Run("Problemas", func(t *testing.T) {
		store := NewStore(map[string]map[string]string{
			"CreateBucket":    {KeyErrorType: "InternalFailure"},
			"AdminGetUser":    {KeyErrorType: "BucketAlreadyExists"},
			"AdminDeleteUser": {"delay": "2s", KeyErrorMessage: "sem efeito"},
			"SignUp":          {KeyErrorType: "InternalFailure", KeyStatusName: "InternalFailure"},
		})

		report := Analyze(store, catalog)
		assert.False(t, report.Valid)
		require.Len(t, report.Errors, 2)
		assert.Contains(t, report.Errors[0], "AdminGetUser")
		assert.Contains(t, report.Errors[1], "CreateBucket: ação desconhecida")
		assert.Len(t, report.Warnings, 3)
	})
}
