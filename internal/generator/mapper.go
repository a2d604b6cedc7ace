package generator

import (
	"github.com/go-logr/logr"

	"github.com/andrewkroh/go-redfish-gen/internal/model"
)

// Options tune how names and comments are produced.
type Options struct {
	Comments CommentFormatter

	// ReservedWords are identifiers of the target language that generated
	// names must not collide with. Nil selects the Go keywords.
	ReservedWords []string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Comments: DefaultCommentFormatter()}
}

// DefinitionKind classifies a schema definition.
type DefinitionKind int

const (
	DefinitionSkipped DefinitionKind = iota
	DefinitionObject
	DefinitionEnum
)

func (k DefinitionKind) String() string {
	switch k {
	case DefinitionObject:
		return "object"
	case DefinitionEnum:
		return "enum"
	default:
		return "skipped"
	}
}

// Classify decides whether a definition becomes a class, an enum or
// nothing. The Actions container and Action descriptors (objects with both
// target and title properties) describe invokable operations rather than
// data, so they are skipped.
func Classify(name string, def *Schema) DefinitionKind {
	if name == "Actions" || def == nil || def.IsBooleanSchema() {
		return DefinitionSkipped
	}
	if def.Type.Single() == "object" {
		if def.Properties.Has("target") && def.Properties.Has("title") {
			return DefinitionSkipped
		}
		return DefinitionObject
	}
	if len(def.Enum) > 0 {
		return DefinitionEnum
	}
	return DefinitionSkipped
}

// Mapper converts the definitions of a versioned schema document into a
// model.
type Mapper struct {
	log      logr.Logger
	names    *Namer
	comments CommentFormatter
}

// NewMapper creates a Mapper.
func NewMapper(log logr.Logger, opts Options) *Mapper {
	return &Mapper{
		log:      log,
		names:    NewNamer(opts.ReservedWords),
		comments: opts.Comments,
	}
}

// Map walks the definitions of doc in document order.
func (m *Mapper) Map(doc *Schema, objectName, packageName string) *model.Model {
	out := &model.Model{
		ObjectName:  objectName,
		PackageName: packageName,
	}

	for name, def := range doc.Definitions.All() {
		switch Classify(name, def) {
		case DefinitionObject:
			out.Classes = append(out.Classes, m.mapClass(name, def))
		case DefinitionEnum:
			out.Enums = append(out.Enums, m.mapEnum(name, def))
		default:
			m.log.V(1).Info("Skipping definition", "name", name)
		}
	}
	return out
}

func (m *Mapper) mapClass(name string, def *Schema) *model.Class {
	ident := m.names.Identifier(name)
	class := &model.Class{
		Name:        ident,
		Description: m.comments.Format(ident, descriptionOf(def)),
	}

	for prop, s := range def.Properties.All() {
		if entityProperties[prop] {
			class.IsEntity = true
			continue
		}
		if s == nil || s.IsDeprecated() {
			continue
		}

		field := model.Field{
			Name:        m.names.FieldName(prop),
			JSONName:    prop,
			Type:        m.normalizeTypeRef(InferType(prop, s)),
			Description: m.comments.Format(prop, descriptionOf(s)),
		}
		class.Attributes = append(class.Attributes, field)
		if !s.IsReadOnly() {
			class.MutableAttributeNames = append(class.MutableAttributeNames, field.Name)
		}
	}
	return class
}

func (m *Mapper) mapEnum(name string, def *Schema) *model.Enum {
	ident := m.names.Identifier(name)
	enum := &model.Enum{
		Name:        ident,
		Description: m.comments.Format(ident, descriptionOf(def)),
	}

	// Member comments never use a link word; the member name is already
	// qualified with the enum name.
	memberComments := m.comments
	memberComments.LinkWord = ""

	for _, value := range def.EnumStrings() {
		memberIdent := m.names.Identifier(value)
		desc := def.EnumLongDescriptions[value]
		if desc == "" {
			desc = def.EnumDescriptions[value]
		}
		enum.Members = append(enum.Members, model.Member{
			Identifier:  memberIdent,
			RawValue:    value,
			Description: memberComments.Format(memberIdent+ident, desc),
		})
	}
	return enum
}

// normalizeTypeRef turns named references into identifiers so they match
// the names given to the generated classes and enums.
func (m *Mapper) normalizeTypeRef(ref model.TypeRef) model.TypeRef {
	if ref.Named != "" {
		ref.Named = m.names.Identifier(ref.Named)
	}
	if ref.Element != nil {
		elem := m.normalizeTypeRef(*ref.Element)
		ref.Element = &elem
	}
	return ref
}
