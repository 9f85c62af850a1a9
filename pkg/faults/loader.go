package faults

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmgilman/go/errors"
	"github.com/raywall/cognito-emulator/pkg/awscfg"
	"github.com/rs/zerolog/log"
)

// --- Interfaces para Mocking ---

type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type DynamoGetter interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Load lê a configuração de falhas de source: caminho local (com ou sem
// file://), s3://bucket/key ou dynamodb://tabela/chave?col=config&pk=id.
// Arquivo local ausente resulta em Store vazio.
func Load(ctx context.Context, source, region string) (*Store, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case strings.HasPrefix(source, "s3://"):
		cfg, cfgErr := awscfg.Load(ctx, region)
		if cfgErr != nil {
			return nil, errors.Wrap(cfgErr, errors.CodeInvalidConfig, "falha ao carregar configuração AWS")
		}
		data, err = loadFromS3(ctx, s3.NewFromConfig(cfg), source)

	case strings.HasPrefix(source, "dynamodb://"):
		cfg, cfgErr := awscfg.Load(ctx, region)
		if cfgErr != nil {
			return nil, errors.Wrap(cfgErr, errors.CodeInvalidConfig, "falha ao carregar configuração AWS")
		}
		data, err = loadFromDynamoDB(ctx, dynamodb.NewFromConfig(cfg), source)

	default:
		data, err = loadFromFile(source)
		if stderrors.Is(err, os.ErrNotExist) {
			log.Info().Str("source", source).Msg("configuração de falhas não encontrada, seguindo sem falhas")
			return NewStore(nil), nil
		}
	}

	if err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "falha leitura da configuração de falhas"),
			"source", source)
	}

	store, err := Parse(ctx, data)
	if err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "configuração de falhas inválida"),
			"source", source)
	}

	log.Info().Str("source", source).Int("actions", store.Len()).Msg("configuração de falhas carregada")
	return store, nil
}

// --- Estratégias de carregamento ---

func loadFromFile(path string) ([]byte, error) {
	return os.ReadFile(strings.TrimPrefix(path, "file://"))
}

func loadFromS3(ctx context.Context, client S3Downloader, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func loadFromDynamoDB(ctx context.Context, client DynamoGetter, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL DynamoDB inválida: %w", err)
	}

	tableName := u.Host
	pkValue := strings.TrimPrefix(u.Path, "/")

	colName := u.Query().Get("col")
	if colName == "" {
		colName = "config"
	}

	pkName := u.Query().Get("pk")
	if pkName == "" {
		pkName = "id"
	}

	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key: map[string]types.AttributeValue{
			pkName: &types.AttributeValueMemberS{Value: pkValue},
		},
	})
	if err != nil {
		return nil, err
	}

	if out.Item == nil {
		return nil, fmt.Errorf("item '%s' não encontrado na tabela %s", pkValue, tableName)
	}

	var item map[string]interface{}
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, err
	}

	content, ok := item[colName].(string)
	if !ok || content == "" {
		return nil, fmt.Errorf("coluna '%s' inválida ou vazia no DynamoDB", colName)
	}

	return []byte(content), nil
}
