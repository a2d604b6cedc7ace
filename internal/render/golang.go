package render

import (
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/andrewkroh/go-redfish-gen/internal/model"
)

// GoRenderer emits Go declarations with jennifer, which takes care of
// imports and gofmt formatting.
type GoRenderer struct {
	CommonPackage string
}

// Render writes a Go source file for m.
func (r *GoRenderer) Render(w io.Writer, m *model.Model) error {
	f := jen.NewFile(m.PackageName)
	f.HeaderComment("Code generated by redfish-gen. DO NOT EDIT.")
	f.ImportName(r.CommonPackage, "common")

	for _, e := range m.Enums {
		r.enum(f, e)
	}
	for _, c := range m.Classes {
		r.class(f, c)
	}

	if err := f.Render(w); err != nil {
		return fmt.Errorf("rendering go source for %s: %w", m.ObjectName, err)
	}
	return nil
}

func (r *GoRenderer) enum(f *jen.File, e *model.Enum) {
	f.Line()
	comments(e.Description, f.Comment)
	f.Type().Id(e.Name).String()

	defs := make([]jen.Code, 0, len(e.Members)*2)
	for i, mem := range e.Members {
		if i > 0 {
			defs = append(defs, jen.Line())
		}
		for _, line := range model.CommentLines(mem.Description) {
			defs = append(defs, jen.Comment(line))
		}
		defs = append(defs, jen.Id(mem.Identifier+e.Name).Id(e.Name).Op("=").Lit(mem.RawValue))
	}
	f.Const().Defs(defs...)
}

func (r *GoRenderer) class(f *jen.File, c *model.Class) {
	f.Line()
	comments(c.Description, f.Comment)

	var fields []jen.Code
	if c.IsEntity {
		fields = append(fields, jen.Qual(r.CommonPackage, model.CommonEntity))
	}
	for _, attr := range c.Attributes {
		if len(fields) > 0 {
			fields = append(fields, jen.Line())
		}
		for _, line := range model.CommentLines(attr.Description) {
			fields = append(fields, jen.Comment(line))
		}
		field := jen.Id(attr.Name).Add(r.typeCode(attr.Type))
		if attr.Type.WireName != "" {
			field.Tag(map[string]string{"json": attr.Type.WireName})
		}
		fields = append(fields, field)
	}
	f.Type().Id(c.Name).Struct(fields...)

	if len(c.MutableAttributeNames) > 0 {
		f.Line()
		f.Commentf("Writable %s properties:", c.Name)
		for _, name := range c.MutableAttributeNames {
			f.Commentf("  - %s", name)
		}
	}
}

func (r *GoRenderer) typeCode(ref model.TypeRef) *jen.Statement {
	switch {
	case ref.Slice:
		elem := model.TypeRef{}
		if ref.Element != nil {
			elem = *ref.Element
		}
		return jen.Index().Add(r.typeCode(elem))
	case ref.Common != "":
		return jen.Qual(r.CommonPackage, ref.Common)
	case ref.Named != "":
		return jen.Id(ref.Named)
	}
	switch ref.Builtin {
	case model.String:
		return jen.String()
	case model.Integer:
		return jen.Int()
	case model.Number:
		return jen.Float64()
	case model.Boolean:
		return jen.Bool()
	case model.Raw:
		return jen.Qual("encoding/json", "RawMessage")
	case "":
		return jen.Any()
	default:
		return jen.Id(ref.Builtin)
	}
}

// comments emits each line of a description through add.
func comments(description string, add func(string) *jen.Statement) {
	for _, line := range model.CommentLines(description) {
		add(line)
	}
}
