package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ErrTemplateNotFound indica que nenhum registry possui o template.
var ErrTemplateNotFound = errors.New("template not found")

func init() {
	// O corpo é JSON, não HTML.
	pongo2.SetAutoescape(false)

	mustRegister("jsonescape", filterJSONEscape)
	mustRegister("tojson", filterJSON)
}

func mustRegister(name string, fn pongo2.FilterFunction) {
	if pongo2.FilterExists(name) {
		return
	}
	if err := pongo2.RegisterFilter(name, fn); err != nil {
		panic(err)
	}
}

// Renderer resolve templates na ordem: registry primário, depois o padrão.
type Renderer struct {
	primary  *Registry
	fallback *Registry
}

// NewRenderer cria o renderer. Qualquer registry pode ser nil.
func NewRenderer(primary, fallback *Registry) *Renderer {
	return &Renderer{primary: primary, fallback: fallback}
}

// Render executa o template name com o contexto informado.
// O padrão só é consultado quando o primário não tem o template; uma falha
// de execução no primário é devolvida como erro.
func (r *Renderer) Render(name string, data map[string]interface{}) (string, error) {
	for _, reg := range []*Registry{r.primary, r.fallback} {
		tpl, ok := reg.Lookup(name)
		if !ok {
			continue
		}

		out, err := tpl.Execute(execContext(data))
		if err != nil {
			log.Error().Err(err).Str("registry", reg.name).Str("template", name).Msg("Falha ao renderizar template")
			return "", fmt.Errorf("template render failed: %s: %w", name, err)
		}
		return out, nil
	}
	return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}

func execContext(data map[string]interface{}) pongo2.Context {
	ctx := pongo2.Context{
		"uuid": func() string { return uuid.NewString() },
		"now":  func() int64 { return time.Now().Unix() },
	}
	for k, v := range data {
		ctx[k] = v
	}
	return ctx
}

// BuildContext monta o contexto de renderização: campos da requisição
// no primeiro nível, com as chaves do hook sobrescrevendo em caso de colisão.
// Chaves que não são identificadores válidos são descartadas.
func BuildContext(request []byte, hook []byte) (map[string]interface{}, error) {
	ctx := make(map[string]interface{})

	for _, src := range []struct {
		label string
		data  []byte
	}{{"requisição", request}, {"hook", hook}} {
		if len(bytes.TrimSpace(src.data)) == 0 {
			continue
		}

		var m map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(src.data))
		dec.UseNumber()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("falha ao decodificar contexto do %s: %w", src.label, err)
		}
		for k, v := range m {
			if !identifier.MatchString(k) {
				continue
			}
			ctx[k] = v
		}
	}
	return ctx, nil
}

// EscapeJSONString escapa s para uso dentro de uma string JSON.
func EscapeJSONString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '/':
			b.WriteString(`\/`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// filterJSONEscape aplica EscapeJSONString e troca os demais caracteres
// de controle por \u00XX, que o JSON não aceita crus.
func filterJSONEscape(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(escapeControl(EscapeJSONString(in.String()))), nil
}

func escapeControl(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, c := range s {
		if isControl(c) {
			fmt.Fprintf(&b, `\u%04x`, c)
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func isControl(c rune) bool { return c < 0x20 }

// filterJSON serializa o valor como JSON. O parâmetro, se houver, é
// emitido literalmente quando o valor está ausente.
func filterJSON(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		if param != nil && !param.IsNil() {
			return pongo2.AsSafeValue(param.String()), nil
		}
		return pongo2.AsSafeValue("null"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(in.Interface()); err != nil {
		return nil, &pongo2.Error{OrigError: err, Sender: "filter:tojson"}
	}
	return pongo2.AsSafeValue(strings.TrimSuffix(buf.String(), "\n")), nil
}
