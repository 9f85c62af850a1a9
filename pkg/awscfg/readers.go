package awscfg

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMClient abstrai o SDK para permitir mocks.
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SecretsClient abstrai o SDK para permitir mocks.
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Parameter lê um parâmetro do Parameter Store (com decrypt).
func Parameter(ctx context.Context, region, name string) (string, error) {
	cfg, err := Load(ctx, region)
	if err != nil {
		return "", err
	}
	return parameter(ctx, ssm.NewFromConfig(cfg), name)
}

func parameter(ctx context.Context, client SSMClient, name string) (string, error) {
	decrypt := true
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: &decrypt,
	})
	if err != nil {
		return "", fmt.Errorf("erro no SSM GetParameter '%s': %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parâmetro '%s' sem valor", name)
	}
	return *out.Parameter.Value, nil
}

// Secret lê um segredo do Secrets Manager. O formato "id#campo" seleciona
// uma chave de um segredo JSON.
func Secret(ctx context.Context, region, ref string) (string, error) {
	cfg, err := Load(ctx, region)
	if err != nil {
		return "", err
	}
	return secret(ctx, secretsmanager.NewFromConfig(cfg), ref)
}

func secret(ctx context.Context, client SecretsClient, ref string) (string, error) {
	id, field, hasField := strings.Cut(ref, "#")

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &id,
	})
	if err != nil {
		return "", fmt.Errorf("erro no SecretsManager '%s': %w", id, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("segredo '%s' sem SecretString", id)
	}

	val := *out.SecretString
	if !hasField {
		return val, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return "", fmt.Errorf("segredo '%s' não é um JSON: %w", id, err)
	}
	v, ok := data[field]
	if !ok {
		return "", fmt.Errorf("campo '%s' ausente no segredo '%s'", field, id)
	}
	return fmt.Sprintf("%v", v), nil
}
