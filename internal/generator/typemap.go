package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/andrewkroh/go-redfish-gen/internal/model"
)

// typeRule maps a property to a type when it applies.
type typeRule struct {
	name  string
	infer func(prop string, s *Schema) (model.TypeRef, bool)
}

// typeRules is evaluated in order; the first rule that applies decides the
// base type of a property.
var typeRules = []typeRule{
	{"count", func(prop string, _ *Schema) (model.TypeRef, bool) {
		return builtin(model.Integer), strings.HasSuffix(strings.ToLower(prop), "count")
	}},
	{"status", namedProperty("Status", model.TypeRef{Common: model.CommonStatus})},
	{"identifier", namedProperty("Identifier", model.TypeRef{Common: model.CommonIdentifier})},
	{"description", namedProperty("Description", builtin(model.String))},
	{"uuid", namedProperty("UUID", builtin(model.String))},
	{"oem", namedProperty("Oem", builtin(model.Raw))},
	{"object", func(prop string, s *Schema) (model.TypeRef, bool) {
		return model.TypeRef{Named: prop}, s.Type.Single() == "object"
	}},
	{"primitive", inferPrimitive},
	{"anyOf", inferAnyOf},
	{"items", func(_ string, s *Schema) (model.TypeRef, bool) {
		if s.Items == nil || s.Items.Ref == "" {
			return model.TypeRef{}, false
		}
		return model.TypeRef{Named: refTypeName(s.Items.Ref)}, true
	}},
	{"link", func(prop string, _ *Schema) (model.TypeRef, bool) {
		r, _ := utf8.DecodeRuneInString(prop)
		ok := unicode.IsLower(r) && !strings.Contains(strings.ToLower(prop), "odata")
		return model.TypeRef{Common: model.CommonLink}, ok
	}},
}

// InferType returns the type of a property. The base type comes from the
// first matching rule in typeRules, falling back to string. Array schemas
// wrap the base type in a sequence, and properties whose field name differs
// from their key carry the key as the wire name.
func InferType(prop string, s *Schema) model.TypeRef {
	if s == nil {
		s = &Schema{}
	}

	ref := builtin(model.String)
	for _, rule := range typeRules {
		if r, ok := rule.infer(prop, s); ok {
			ref = r
			break
		}
	}

	if s.Type.Single() == "array" {
		ref = model.SliceOf(ref)
	}
	if needsWireTag(prop) {
		ref.WireName = prop
	}
	return ref
}

func builtin(name string) model.TypeRef {
	return model.TypeRef{Builtin: name}
}

// namedProperty matches one exact property name.
func namedProperty(name string, ref model.TypeRef) func(string, *Schema) (model.TypeRef, bool) {
	return func(prop string, _ *Schema) (model.TypeRef, bool) {
		return ref, prop == name
	}
}

// primitiveTypes can appear as a single declared type and still be handled
// like a one element list of alternatives.
var primitiveTypes = map[string]bool{
	"string":  true,
	"integer": true,
	"number":  true,
	"boolean": true,
}

// inferPrimitive handles nullable unions such as ["integer", "null"]. Null
// alternatives are skipped and the last remaining alternative wins.
func inferPrimitive(_ string, s *Schema) (model.TypeRef, bool) {
	if !s.Type.IsList() && !primitiveTypes[s.Type.Single()] {
		return model.TypeRef{}, false
	}

	ref := builtin(model.String)
	for _, kind := range s.Type.Values() {
		switch kind {
		case "null":
			continue
		case "integer":
			ref = builtin(model.Integer)
		case "number":
			ref = builtin(model.Number)
		case "boolean":
			ref = builtin(model.Boolean)
		default:
			ref = builtin(kind)
		}
	}
	return ref, true
}

// inferAnyOf handles polymorphic references, directly on the property or on
// its items. The first alternative with a $ref names the type.
func inferAnyOf(_ string, s *Schema) (model.TypeRef, bool) {
	alts := s.AnyOf
	if len(alts) == 0 && s.Items != nil {
		alts = s.Items.AnyOf
	}
	if len(alts) == 0 {
		return model.TypeRef{}, false
	}

	for _, alt := range alts {
		if alt != nil && alt.Ref != "" {
			return model.TypeRef{Named: refTypeName(alt.Ref)}, true
		}
	}
	return builtin(model.String), true
}
