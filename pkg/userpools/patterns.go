package userpools

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Padrões dos campos conforme a documentação da API de user pools.
// A checagem é feita com MatchString sem âncoras, o mesmo comportamento
// permissivo do serviço emulado.
var patterns = map[string]*regexp.Regexp{
	"awsname":      regexp.MustCompile(`[\w\s+=,.@-]+`),
	"poolid":       regexp.MustCompile(`[\w-]+`),
	"clientid":     regexp.MustCompile(`[\w+]+`),
	"devicekey":    regexp.MustCompile(`[\w-]+_[0-9a-f-]+`),
	"accesstoken":  regexp.MustCompile(`[A-Za-z0-9_=.-]+`),
	"password":     regexp.MustCompile(`[\S]+`),
	"confcode":     regexp.MustCompile(`[\S]+`),
	"secrethash":   regexp.MustCompile(`[\w+=/]+`),
	"nonblank":     regexp.MustCompile(`[\S]+`),
	"eventid":      regexp.MustCompile(`[\w+-]+`),
	"awsarn":       regexp.MustCompile(`arn:[\w+=/,.@-]+:[\w+=/,.@-]+:([\w+=/,.@-]*)?:[0-9]*:[\w+=/,.@-]+`),
	"attrname":     regexp.MustCompile(`[\p{L}\p{M}\p{S}\p{N}\p{P}]+`),
	"providername": regexp.MustCompile(`[^_][\p{L}\p{M}\p{S}\p{N}\p{P}][^_]+`),
	"rsidentifier": regexp.MustCompile(`[\x21\x23-\x5B\x5D-\x7E]+`),
	"scopename":    regexp.MustCompile(`[\x21\x23-\x2E\x30-\x5B\x5D-\x7E]+`),
	"awsurl":       regexp.MustCompile(`[\p{L}\p{M}\p{S}\p{N}\p{P}]+`),
	"smsmessage":   regexp.MustCompile(`.*\{####\}.*`),
}

// NewValidator cria o validador com os padrões da API registrados como tags.
// Os nomes de campo nos erros seguem os nomes do JSON.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, re := range patterns {
		re := re
		// Registro só falha com tag vazia ou função nil
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	return v
}
