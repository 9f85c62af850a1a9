package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(opts *Options) error {
	if err := cv.validate.Struct(opts); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	if err := cv.validateSemantics(opts); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(opts *Options) error {
	// Fontes remotas precisam de bucket/tabela e chave
	if src := opts.Faults.Source; strings.Contains(src, "://") {
		u, err := url.Parse(src)
		if err != nil {
			return fmt.Errorf("fonte de faults inválida '%s': %w", src, err)
		}
		switch u.Scheme {
		case "file":
		case "s3", "dynamodb":
			if u.Host == "" || strings.Trim(u.Path, "/") == "" {
				return fmt.Errorf("fonte '%s' deve informar %s://<recurso>/<chave>", src, u.Scheme)
			}
		default:
			return fmt.Errorf("esquema '%s' não suportado para a fonte de faults", u.Scheme)
		}
	}

	if opts.Server.Runtime == "local" && opts.Server.Port == 0 {
		return fmt.Errorf("server.port é obrigatório no runtime local")
	}

	return nil
}
