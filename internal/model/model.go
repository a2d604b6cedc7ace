// Package model holds the target-neutral description of the types generated
// from a Redfish or Swordfish schema. The mapper builds a Model once and hands
// it to a renderer; nothing mutates it afterwards except the optional
// overrides pass.
package model

import "strings"

// Model is the parameter structure handed to a renderer.
type Model struct {
	ObjectName  string   `yaml:"object_name"`
	PackageName string   `yaml:"package"`
	Classes     []*Class `yaml:"classes"`
	Enums       []*Enum  `yaml:"enums"`
}

// Class describes a struct generated from an object definition.
type Class struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// IsEntity is set when the definition carries Name, Id or @odata.id.
	// Those properties are provided by the common entity type and are not
	// part of Attributes.
	IsEntity bool `yaml:"is_entity"`

	Attributes            []Field  `yaml:"attributes"`
	MutableAttributeNames []string `yaml:"mutable_attributes,omitempty"`
}

// Field describes one attribute of a Class.
type Field struct {
	Name        string  `yaml:"name"`
	JSONName    string  `yaml:"json_name"` // property key in the schema
	Type        TypeRef `yaml:"type"`
	Description string  `yaml:"description"`
}

// Enum describes a string enumeration.
type Enum struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Members     []Member `yaml:"members"`
}

// Member is a single enumerated value.
type Member struct {
	Identifier  string `yaml:"identifier"`
	RawValue    string `yaml:"value"`
	Description string `yaml:"description"`
}

// Attribute returns the attribute with the given field name.
func (c *Class) Attribute(name string) (Field, bool) {
	for _, f := range c.Attributes {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// IsMutable reports whether the named attribute is writable.
func (c *Class) IsMutable(name string) bool {
	for _, n := range c.MutableAttributeNames {
		if n == name {
			return true
		}
	}
	return false
}

// UsesCommon reports whether any attribute refers to the common package or
// any class embeds the common entity.
func (m *Model) UsesCommon() bool {
	for _, c := range m.Classes {
		if c.IsEntity {
			return true
		}
		for _, f := range c.Attributes {
			if f.Type.refersTo(func(r TypeRef) bool { return r.Common != "" }) {
				return true
			}
		}
	}
	return false
}

// UsesRawJSON reports whether any attribute holds an uninterpreted payload.
func (m *Model) UsesRawJSON() bool {
	for _, c := range m.Classes {
		for _, f := range c.Attributes {
			if f.Type.refersTo(TypeRef.IsRaw) {
				return true
			}
		}
	}
	return false
}

// CommentLines splits a normalized description into its wrapped lines.
func CommentLines(description string) []string {
	if description == "" {
		return nil
	}
	return strings.Split(description, "\n")
}
