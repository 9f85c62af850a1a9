package render

import (
	"bytes"
	"embed"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
)

// Namespace é o diretório dos templates de user pool dentro de cada raiz.
const Namespace = "user_pools"

//go:embed defaults
var defaultsFS embed.FS

// TemplateName compõe o caminho convencional do template de uma action.
func TemplateName(action string) string {
	return path.Join(Namespace, action+".json")
}

// fsLoader resolve caminhos sempre a partir da raiz do registry.
type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Abs(_, name string) string {
	return path.Clean(strings.TrimPrefix(name, "/"))
}

func (l fsLoader) Get(name string) (io.Reader, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Registry é o conjunto imutável de templates compilados de uma raiz.
type Registry struct {
	name      string
	templates map[string]*pongo2.Template
}

// Load compila todos os arquivos *.json de fsys.
// Um template com erro de sintaxe é registrado em log e ignorado.
func Load(name string, fsys fs.FS) (*Registry, error) {
	set := pongo2.NewSet(name, fsLoader{fsys: fsys})
	reg := &Registry{name: name, templates: make(map[string]*pongo2.Template)}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}

		tpl, err := set.FromFile(p)
		if err != nil {
			log.Warn().Err(err).Str("registry", name).Str("template", p).Msg("Template inválido ignorado")
			return nil
		}
		reg.templates[p] = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("registry", name).Int("templates", len(reg.templates)).Msg("Templates carregados")
	return reg, nil
}

// LoadDir carrega a raiz de templates do usuário.
// Diretório ausente ou ilegível resulta em nil (registry inexistente).
func LoadDir(dir string) *Registry {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Info().Str("dir", dir).Msg("Diretório de templates não encontrado, usando apenas os templates embutidos")
		return nil
	}

	reg, err := Load(dir, os.DirFS(dir))
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("Falha ao ler diretório de templates")
		return nil
	}
	return reg
}

// Defaults retorna o registry com os templates embutidos no binário.
func Defaults() *Registry {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		panic(err)
	}
	reg, err := Load("defaults", sub)
	if err != nil {
		panic(err)
	}
	return reg
}

// Lookup busca um template compilado. Aceita receiver nil.
func (r *Registry) Lookup(name string) (*pongo2.Template, bool) {
	if r == nil {
		return nil, false
	}
	tpl, ok := r.templates[name]
	return tpl, ok
}

// Names lista os templates do registry em ordem alfabética.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.templates))
	for name := range r.templates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.templates)
}
