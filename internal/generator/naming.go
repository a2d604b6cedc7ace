package generator

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// commonNameChanges maps property keys to the field names used for them.
// Fields renamed here keep their original key in a serialization tag.
var commonNameChanges = map[string]string{
	"Oem": "OEM",
	"Id":  "ID",
}

// digitWords spells out a leading digit, which is not allowed to start an
// identifier.
var digitWords = [10]string{
	"Zero", "One", "Two", "Three", "Four",
	"Five", "Six", "Seven", "Eight", "Nine",
}

// goKeywords is the default reserved word set.
var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer",
	"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
	"interface", "map", "package", "range", "return", "select", "struct",
	"switch", "type", "var",
}

// entityProperties mark a definition as an addressable resource. They are
// supplied by the common entity type and never emitted as attributes.
var entityProperties = map[string]bool{
	"Name":      true,
	"Id":        true,
	"@odata.id": true,
}

var nonIdentChars = regexp.MustCompile(`[^A-Za-z0-9]`)

// Namer normalizes raw schema names into bare identifiers for a target
// language.
type Namer struct {
	reserved map[string]bool
}

// NewNamer creates a Namer that avoids the given reserved words. A nil list
// selects the Go keywords.
func NewNamer(reserved []string) *Namer {
	if reserved == nil {
		reserved = goKeywords
	}
	n := &Namer{reserved: make(map[string]bool, len(reserved))}
	for _, w := range reserved {
		n.reserved[w] = true
	}
	return n
}

var defaultNamer = NewNamer(nil)

// NormalizeIdentifier cleans a raw name using the Go keyword set.
func NormalizeIdentifier(name string) string {
	return defaultNamer.Identifier(name)
}

// Identifier strips every character outside [A-Za-z0-9], spells out a
// leading digit and capitalizes names that collide with a reserved word.
// The result is stable: applying Identifier to its own output returns the
// same string.
func (n *Namer) Identifier(name string) string {
	out := nonIdentChars.ReplaceAllString(name, "")
	if out == "" {
		return "Empty"
	}
	if c := out[0]; c >= '0' && c <= '9' {
		out = digitWords[c-'0'] + out[1:]
	}
	if n.reserved[out] {
		out = capitalize(out)
	}
	return out
}

// FieldName returns the field identifier for a property key.
//
//	"Oem"                 → "OEM"
//	"@odata.id"           → "ODataID"
//	"@odata.type"         → "ODataType"
//	"Members@odata.count" → "MembersCount"
//	"Power-State"         → "PowerState"
func (n *Namer) FieldName(prop string) string {
	if renamed, ok := commonNameChanges[prop]; ok {
		return renamed
	}
	if strings.Contains(prop, "@odata") {
		return n.Identifier(odataFieldName(prop))
	}
	return n.Identifier(prop)
}

// odataFieldName composes a name for an OData annotation. The "@odata"
// marker becomes "OData", or disappears for count annotations, and the
// annotation term is title cased.
func odataFieldName(prop string) string {
	parts := strings.Split(prop, ".")
	last := parts[len(parts)-1]

	replacement := "OData"
	if strings.Contains(last, "count") {
		replacement = ""
	}

	// A Caser holds state, so each call gets its own.
	suffix := cases.Title(language.Und).String(last)
	if renamed, ok := commonNameChanges[suffix]; ok {
		suffix = renamed
	}
	return strings.Replace(parts[0], "@odata", replacement, 1) + suffix
}

// needsWireTag reports whether the generated field name can differ from the
// property key, which then has to be carried in a serialization tag.
func needsWireTag(prop string) bool {
	if strings.Contains(prop, "odata") {
		return true
	}
	_, renamed := commonNameChanges[prop]
	return renamed
}

// capitalize returns s with its first rune uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
