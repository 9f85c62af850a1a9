package config

import "time"

// Options é a raiz da configuração do emulador.
type Options struct {
	Server    ServerConf    `yaml:"server"`
	Logging   LoggingConf   `yaml:"logging"`
	Faults    FaultsConf    `yaml:"faults"`
	Templates TemplatesConf `yaml:"templates"`
	Hooks     HooksConf     `yaml:"hooks"`
	Metrics   MetricsConf   `yaml:"metrics"`
}

// ServerConf contém as configurações de runtime.
type ServerConf struct {
	Host    string        `yaml:"host" env:"EMULATOR_HOST" envDefault:"127.0.0.1" validate:"required"`
	Port    int           `yaml:"port" env:"EMULATOR_PORT" envDefault:"8080" validate:"min=0,max=65535"`
	Runtime string        `yaml:"runtime" env:"EMULATOR_RUNTIME" envDefault:"local" validate:"required,oneof=local lambda"`
	Timeout time.Duration `yaml:"timeout" env:"EMULATOR_TIMEOUT" envDefault:"30s" validate:"gt=0"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"EMULATOR_LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"EMULATOR_LOG_LEVEL" envDefault:"debug" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" env:"EMULATOR_LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

// FaultsConf aponta para a fonte de injeção de erros: caminho local,
// s3://bucket/key ou dynamodb://tabela/chave.
type FaultsConf struct {
	Source string `yaml:"source" env:"EMULATOR_CONFIG_PATH" envDefault:"./user_pools.yml"`
	Region string `yaml:"region" env:"AWS_REGION"`
}

type TemplatesConf struct {
	Dir string `yaml:"dir" env:"EMULATOR_TEMPLATES_PATH" envDefault:"./templates"`
}

type HooksConf struct {
	Dir     string        `yaml:"dir" env:"EMULATOR_HOOKS_PATH" envDefault:"./hooks"`
	Engine  string        `yaml:"engine" env:"EMULATOR_HOOKS_ENGINE" envDefault:"cel" validate:"oneof=cel exec none"`
	Timeout time.Duration `yaml:"timeout" env:"EMULATOR_HOOKS_TIMEOUT" envDefault:"2s" validate:"gt=0"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"cognito_emulator."`
	Tags      []string `yaml:"tags" env:"DD_TAGS"`
	// 0 equivale a 1, sem amostragem.
	SampleRate float64 `yaml:"sample_rate" env:"DD_SAMPLE_RATE" envDefault:"1" validate:"gte=0,lte=1"`
}
