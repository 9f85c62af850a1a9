package faults

import (
	"fmt"

	"github.com/raywall/cognito-emulator/pkg/action"
	"github.com/raywall/cognito-emulator/pkg/awserr"
)

// Report contém o resultado detalhado da análise.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Analyze confere a configuração de falhas contra o catálogo de ações.
// Não é usado no atendimento: em runtime qualquer nome é forçado como está.
func Analyze(store *Store, catalog *action.Catalog) Report {
	report := Report{Valid: true, Errors: []string{}, Warnings: []string{}}

	known := make(map[string]bool, len(KnownKeys))
	for _, k := range KnownKeys {
		known[k] = true
	}

	for _, name := range store.Actions() {
		schema, ok := catalog.Lookup(name)
		if !ok {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: ação desconhecida", name))
			continue
		}

		for _, key := range store.Keys(name) {
			if !known[key] {
				report.Warnings = append(report.Warnings, fmt.Sprintf("%s: chave '%s' ignorada", name, key))
			}
		}

		_, hasType := store.Lookup(name, KeyErrorType)
		_, hasStatus := store.Lookup(name, KeyStatusName)
		if hasType && hasStatus {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: '%s' e '%s' definidos, vale '%s'", name, KeyErrorType, KeyStatusName, KeyErrorType))
		}

		if errType, ok := store.ErrorType(name); ok {
			if _, err := awserr.Parse(schema.Errors, errType); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
			}
		}

		if _, ok := store.Message(name); ok {
			if _, forced := store.ErrorType(name); !forced {
				report.Warnings = append(report.Warnings, fmt.Sprintf("%s: '%s' sem '%s' não tem efeito", name, KeyErrorMessage, KeyErrorType))
			}
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}
