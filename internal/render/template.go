package render

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/andrewkroh/go-redfish-gen/internal/model"
)

//go:embed templates/source.go.tmpl
var defaultTemplate string

// TemplateRenderer renders a model through a text/template. Templates get
// the sprig function set plus the helpers in templateFuncs.
type TemplateRenderer struct {
	tmpl          *template.Template
	commonPackage string
}

// templateData is what a template sees: the model fields plus settings that
// are not part of the model.
type templateData struct {
	*model.Model
	CommonPackage string
}

// NewTemplateRenderer parses text as a template.
func NewTemplateRenderer(text, commonPackage string) (*TemplateRenderer, error) {
	tmpl, err := template.New("source").
		Funcs(sprig.TxtFuncMap()).
		Funcs(templateFuncs).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &TemplateRenderer{tmpl: tmpl, commonPackage: commonPackage}, nil
}

// Render executes the template.
func (r *TemplateRenderer) Render(w io.Writer, m *model.Model) error {
	data := templateData{Model: m, CommonPackage: r.commonPackage}
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}

var templateFuncs = template.FuncMap{
	// comment renders a description as line comments.
	"comment": func(description string) string {
		lines := model.CommentLines(description)
		for i, l := range lines {
			lines[i] = "// " + l
		}
		return strings.Join(lines, "\n")
	},
	"goType": goType,
	"goTag":  goTag,
}

// goType spells a type reference in Go syntax.
func goType(ref model.TypeRef) string {
	switch {
	case ref.Slice:
		elem := model.TypeRef{}
		if ref.Element != nil {
			elem = *ref.Element
		}
		return "[]" + goType(elem)
	case ref.Common != "":
		return "common." + ref.Common
	case ref.Named != "":
		return ref.Named
	}
	switch ref.Builtin {
	case model.Integer:
		return "int"
	case model.Number:
		return "float64"
	case model.Boolean:
		return "bool"
	case model.Raw:
		return "json.RawMessage"
	case "":
		return "any"
	default:
		return ref.Builtin
	}
}

// goTag returns the struct tag carrying the wire name, or "" when the field
// name matches the property key.
func goTag(ref model.TypeRef) string {
	if ref.WireName == "" {
		return ""
	}
	return `json:"` + ref.WireName + `"`
}
