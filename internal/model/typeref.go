package model

// Builtin type tokens. Any other Builtin value is a schema type name that was
// passed through verbatim.
const (
	String  = "string"
	Integer = "integer"
	Number  = "number"
	Boolean = "boolean"
	Raw     = "raw" // uninterpreted JSON payload
)

// Shared types owned by the common package of the client library.
const (
	CommonStatus     = "Status"
	CommonIdentifier = "Identifier"
	CommonLink       = "Link"
	CommonEntity     = "Entity"
)

// TypeRef is a reference to a type, with modifiers. Exactly one of Builtin,
// Named, Common or Slice is set.
type TypeRef struct {
	Builtin string   `yaml:"builtin,omitempty"`
	Named   string   `yaml:"named,omitempty"`  // type generated from a schema definition
	Common  string   `yaml:"common,omitempty"` // type from the common package
	Slice   bool     `yaml:"slice,omitempty"`
	Element *TypeRef `yaml:"element,omitempty"`

	// WireName is the literal property key when it differs from the
	// generated field name.
	WireName string `yaml:"wire_name,omitempty"`
}

// SliceOf wraps elem in a sequence type. The wire name annotation moves to
// the sequence so the field keeps its serialization tag.
func SliceOf(elem TypeRef) TypeRef {
	wire := elem.WireName
	elem.WireName = ""
	return TypeRef{Slice: true, Element: &elem, WireName: wire}
}

// IsRaw returns true if this type ref is an uninterpreted payload.
func (r TypeRef) IsRaw() bool {
	return r.Builtin == Raw
}

// String returns a language neutral notation for the type: builtin tokens
// as is, "common.<Name>" for shared types and "list<T>" for sequences. An
// unset type is "unknown". Renderers spell types in their own syntax.
func (r TypeRef) String() string {
	switch {
	case r.Slice:
		elem := "unknown"
		if r.Element != nil {
			elem = r.Element.String()
		}
		return "list<" + elem + ">"
	case r.Common != "":
		return "common." + r.Common
	case r.Named != "":
		return r.Named
	case r.Builtin == "":
		return "unknown"
	default:
		return r.Builtin
	}
}

func (r TypeRef) refersTo(pred func(TypeRef) bool) bool {
	if pred(r) {
		return true
	}
	return r.Element != nil && r.Element.refersTo(pred)
}
