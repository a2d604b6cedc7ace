package generator

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andrewkroh/go-redfish-gen/internal/model"
)

// Overrides holds class, enum and field adjustments loaded from a YAML file.
// They are applied after mapping, for the cases where schema conventions
// produce a poor binding.
type Overrides struct {
	Classes map[string]ClassOverride `yaml:"classes"`
	Enums   map[string]EnumOverride  `yaml:"enums"`
}

// ClassOverride holds overrides for a single class, keyed by the generated
// class name.
type ClassOverride struct {
	Name   string                   `yaml:"name,omitempty"`
	Doc    string                   `yaml:"doc,omitempty"`
	Fields map[string]FieldOverride `yaml:"fields,omitempty"` // keyed by schema property name
	Omit   []string                 `yaml:"omit,omitempty"`   // schema property names to drop
}

// FieldOverride holds overrides for a single field.
type FieldOverride struct {
	Name string `yaml:"name,omitempty"`
	Doc  string `yaml:"doc,omitempty"`
	Type string `yaml:"type,omitempty"` // "int", "[]string", "list<common.Link>", "raw"
}

// EnumOverride holds overrides for a single enum.
type EnumOverride struct {
	Name    string            `yaml:"name,omitempty"`
	Doc     string            `yaml:"doc,omitempty"`
	Members map[string]string `yaml:"members,omitempty"` // raw value → identifier
}

// LoadOverrides reads and parses an overrides file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing overrides: %w", err)
	}
	return &o, nil
}

// Apply modifies the model in place. Renamed classes and enums are also
// renamed wherever a field refers to them.
func (o *Overrides) Apply(m *model.Model) {
	if o == nil {
		return
	}

	// Sorted for a deterministic result when renames chain.
	classNames := make([]string, 0, len(o.Classes))
	for name := range o.Classes {
		classNames = append(classNames, name)
	}
	sort.Strings(classNames)

	for _, name := range classNames {
		ov := o.Classes[name]
		class := findClass(m, name)
		if class == nil {
			continue
		}

		if ov.Name != "" && ov.Name != class.Name {
			renameType(m, class.Name, ov.Name)
			class.Name = ov.Name
		}
		if ov.Doc != "" {
			class.Description = ov.Doc
		}
		applyFieldOverrides(class, ov)
	}

	enumNames := make([]string, 0, len(o.Enums))
	for name := range o.Enums {
		enumNames = append(enumNames, name)
	}
	sort.Strings(enumNames)

	for _, name := range enumNames {
		ov := o.Enums[name]
		for _, e := range m.Enums {
			if e.Name != name {
				continue
			}
			if ov.Name != "" && ov.Name != e.Name {
				renameType(m, e.Name, ov.Name)
				e.Name = ov.Name
			}
			if ov.Doc != "" {
				e.Description = ov.Doc
			}
			for i := range e.Members {
				if ident, ok := ov.Members[e.Members[i].RawValue]; ok {
					e.Members[i].Identifier = ident
				}
			}
		}
	}
}

func applyFieldOverrides(class *model.Class, ov ClassOverride) {
	omit := make(map[string]bool, len(ov.Omit))
	for _, p := range ov.Omit {
		omit[p] = true
	}

	kept := class.Attributes[:0]
	var dropped []string
	for _, f := range class.Attributes {
		if omit[f.JSONName] {
			dropped = append(dropped, f.Name)
			continue
		}
		if fo, ok := ov.Fields[f.JSONName]; ok {
			if fo.Name != "" {
				renameMutable(class, f.Name, fo.Name)
				f.Name = fo.Name
			}
			if fo.Doc != "" {
				f.Description = fo.Doc
			}
			if fo.Type != "" {
				wire := f.Type.WireName
				f.Type = parseTypeRef(fo.Type)
				f.Type.WireName = wire
			}
		}
		kept = append(kept, f)
	}
	class.Attributes = kept

	for _, name := range dropped {
		removeMutable(class, name)
	}
}

func findClass(m *model.Model, name string) *model.Class {
	for _, c := range m.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// renameType replaces references to oldName in every field of the model.
func renameType(m *model.Model, oldName, newName string) {
	for _, c := range m.Classes {
		for i := range c.Attributes {
			updateTypeRef(&c.Attributes[i].Type, oldName, newName)
		}
	}
}

// updateTypeRef replaces references to oldName with newName.
func updateTypeRef(ref *model.TypeRef, oldName, newName string) {
	if ref.Named == oldName {
		ref.Named = newName
	}
	if ref.Element != nil {
		updateTypeRef(ref.Element, oldName, newName)
	}
}

func renameMutable(class *model.Class, oldName, newName string) {
	for i, n := range class.MutableAttributeNames {
		if n == oldName {
			class.MutableAttributeNames[i] = newName
		}
	}
}

func removeMutable(class *model.Class, name string) {
	kept := class.MutableAttributeNames[:0]
	for _, n := range class.MutableAttributeNames {
		if n != name {
			kept = append(kept, n)
		}
	}
	class.MutableAttributeNames = kept
}

// parseTypeRef parses a type string into a TypeRef. Both Go spellings
// ("int", "[]string", "json.RawMessage") and the notation of
// model.TypeRef.String ("integer", "list<string>", "raw") are accepted.
func parseTypeRef(s string) model.TypeRef {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "[]") {
		return model.SliceOf(parseTypeRef(s[2:]))
	}
	if elem, ok := strings.CutPrefix(s, "list<"); ok && strings.HasSuffix(elem, ">") {
		return model.SliceOf(parseTypeRef(strings.TrimSuffix(elem, ">")))
	}

	switch s {
	case "int", "int64", "integer":
		return builtin(model.Integer)
	case "float64", "number":
		return builtin(model.Number)
	case "bool", "boolean":
		return builtin(model.Boolean)
	case "string":
		return builtin(model.String)
	case "json.RawMessage", "raw":
		return builtin(model.Raw)
	}

	if name, ok := strings.CutPrefix(s, "common."); ok && name != "" {
		return model.TypeRef{Common: name}
	}
	if s != "" {
		return model.TypeRef{Named: s}
	}
	return builtin(model.String)
}
