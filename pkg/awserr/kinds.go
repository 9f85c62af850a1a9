package awserr

import (
	"fmt"
	"net/http"
	"sort"
)

// Group associa um conjunto de nomes de erro a um único status HTTP.
type Group struct {
	status int
	names  []string
}

// Client agrupa erros causados pelo cliente (400).
func Client(names ...string) Group {
	return Group{status: http.StatusBadRequest, names: names}
}

// Internal agrupa erros internos do serviço (500).
func Internal(names ...string) Group {
	return Group{status: http.StatusInternalServerError, names: names}
}

// Kinds é o conjunto fechado de erros de domínio de uma action.
// É imutável depois de construído.
type Kinds struct {
	status map[string]int
}

// NewKinds monta a tabela de erros de uma action.
// Um nome repetido entre grupos é erro de programação e causa panic.
func NewKinds(groups ...Group) Kinds {
	k := Kinds{status: make(map[string]int)}
	for _, g := range groups {
		for _, name := range g.names {
			if _, dup := k.status[name]; dup {
				panic(fmt.Sprintf("awserr: erro '%s' declarado mais de uma vez", name))
			}
			k.status[name] = g.status
		}
	}
	return k
}

// Status retorna o status HTTP de um erro da action.
func (k Kinds) Status(name string) (int, bool) {
	status, ok := k.status[name]
	return status, ok
}

// Has indica se o nome pertence ao conjunto.
func (k Kinds) Has(name string) bool {
	_, ok := k.status[name]
	return ok
}

// Names lista os erros em ordem alfabética.
func (k Kinds) Names() []string {
	out := make([]string, 0, len(k.status))
	for name := range k.status {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len retorna a quantidade de erros declarados.
func (k Kinds) Len() int { return len(k.status) }
