package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/raywall/cognito-emulator/envloader"
	"github.com/raywall/cognito-emulator/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// Default monta as opções a partir dos defaults e do ambiente.
func Default() (*Options, error) {
	opts := &Options{}
	if err := envloader.Load(opts); err != nil {
		return nil, fmt.Errorf("falha ao carregar variáveis de ambiente: %w", err)
	}
	return opts, nil
}

// Load aplica as camadas de configuração: defaults e ambiente, arquivo YAML
// opcional em path e por fim a interpolação de placeholders "${...}".
// As variáveis de ambiente continuam valendo sobre o arquivo.
func Load(ctx context.Context, path string) (*Options, error) {
	opts, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("arquivo de opções não encontrado: %s", path)
		case err != nil:
			return nil, fmt.Errorf("falha ao ler arquivo de opções: %w", err)
		}

		if err := yaml.Unmarshal(data, opts); err != nil {
			return nil, fmt.Errorf("falha ao decodificar arquivo de opções: %w", err)
		}

		if err := envloader.Overlay(opts); err != nil {
			return nil, fmt.Errorf("falha ao carregar variáveis de ambiente: %w", err)
		}
	}

	if err := injector.New().Inject(ctx, opts); err != nil {
		return nil, fmt.Errorf("falha na injeção de valores: %w", err)
	}

	return opts, nil
}
