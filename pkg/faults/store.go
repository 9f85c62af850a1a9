// Package faults guarda a configuração de injeção de erros por ação.
//
// O documento é um mapa de ações para pares chave/valor:
//
//	AdminCreateUser:
//	  error_type: UsernameExistsException
//	  error_message: usuário já existe
//	AdminGetUser:
//	  template: AdminGetUserDesabilitado
package faults

import "sort"

// Chaves reconhecidas em cada ação.
const (
	KeyErrorType    = "error_type"
	KeyStatusName   = "status_name"
	KeyErrorMessage = "error_message"
	KeyTemplate     = "template"
)

// KnownKeys lista as chaves com significado para o emulador.
var KnownKeys = []string{KeyErrorType, KeyStatusName, KeyErrorMessage, KeyTemplate}

// Store é somente leitura depois de criado. Um Store nil equivale a vazio.
type Store struct {
	actions map[string]map[string]string
}

// NewStore copia entries para um novo Store.
func NewStore(entries map[string]map[string]string) *Store {
	actions := make(map[string]map[string]string, len(entries))
	for action, kv := range entries {
		cp := make(map[string]string, len(kv))
		for k, v := range kv {
			cp[k] = v
		}
		actions[action] = cp
	}
	return &Store{actions: actions}
}

// Lookup busca o valor de key na ação.
func (s *Store) Lookup(action, key string) (string, bool) {
	if s == nil {
		return "", false
	}
	kv, ok := s.actions[action]
	if !ok {
		return "", false
	}
	v, ok := kv[key]
	return v, ok
}

// ErrorType devolve o nome do erro forçado. status_name é aceito como alias.
func (s *Store) ErrorType(action string) (string, bool) {
	if v, ok := s.Lookup(action, KeyErrorType); ok && v != "" {
		return v, true
	}
	if v, ok := s.Lookup(action, KeyStatusName); ok && v != "" {
		return v, true
	}
	return "", false
}

func (s *Store) Message(action string) (string, bool) {
	return s.Lookup(action, KeyErrorMessage)
}

// Template devolve o nome de template que substitui o nome da ação.
func (s *Store) Template(action string) (string, bool) {
	v, ok := s.Lookup(action, KeyTemplate)
	return v, ok && v != ""
}

// Actions lista as ações configuradas em ordem alfabética.
func (s *Store) Actions() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.actions))
	for name := range s.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys lista as chaves configuradas para a ação.
func (s *Store) Keys(action string) []string {
	if s == nil {
		return nil
	}
	kv := s.actions[action]
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.actions)
}
