package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"os"
	"strings"

	"github.com/go-logr/logr"
)

// ErrEmptyDocument is returned when a schema locator yields no content.
var ErrEmptyDocument = errors.New("empty schema document")

// Schema represents a Redfish JSON Schema document or one of its nodes. Only
// the keywords needed for code generation are included.
//
// In JSON Schema, a schema can be either a boolean or an object. The
// BooleanSchema field captures the boolean form; when non-nil, all other
// fields are ignored.
type Schema struct {
	BooleanSchema *bool `json:"-"`

	// Core
	Ref         string     `json:"$ref,omitempty"`
	ID          string     `json:"$id,omitempty"`
	Definitions *SchemaMap `json:"definitions,omitempty"`

	// Metadata
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	LongDescription string `json:"longDescription,omitempty"`

	// Type
	Type                 SchemaType        `json:"type,omitempty"`
	Enum                 []json.RawMessage `json:"enum,omitempty"`
	EnumDescriptions     map[string]string `json:"enumDescriptions,omitempty"`
	EnumLongDescriptions map[string]string `json:"enumLongDescriptions,omitempty"`

	// Object
	Properties *SchemaMap `json:"properties,omitempty"`
	Required   []string   `json:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// Redfish annotations. The schemas spell readonly in lower case and
	// carry a deprecation message rather than a boolean.
	ReadOnly   *bool           `json:"readonly,omitempty"`
	Deprecated json.RawMessage `json:"deprecated,omitempty"`
}

// UnmarshalJSON handles both boolean schemas (true/false) and object schemas.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.BooleanSchema = &b
		return nil
	}

	// Use an alias to avoid infinite recursion.
	type schemaAlias Schema
	var sa schemaAlias
	if err := json.Unmarshal(data, &sa); err != nil {
		return err
	}
	*s = Schema(sa)
	return nil
}

// IsBooleanSchema returns true if this schema is a bare boolean value.
func (s *Schema) IsBooleanSchema() bool {
	return s.BooleanSchema != nil
}

// IsDeprecated reports whether the property carries a deprecation marker.
// Redfish uses a message string; an empty string or false does not count.
func (s *Schema) IsDeprecated() bool {
	raw := bytes.TrimSpace(s.Deprecated)
	switch string(raw) {
	case "", "null", "false", `""`:
		return false
	}
	return true
}

// IsReadOnly reports whether the property is read-only. A missing readonly
// keyword is treated as read-only.
func (s *Schema) IsReadOnly() bool {
	return s.ReadOnly == nil || *s.ReadOnly
}

// EnumStrings returns the enum values as strings. Non-string enum values
// are returned as their JSON representation.
func (s *Schema) EnumStrings() []string {
	var result []string
	for _, raw := range s.Enum {
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			result = append(result, str)
			continue
		}
		result = append(result, strings.TrimSpace(string(raw)))
	}
	return result
}

// Definition returns the named definition of a document.
func (s *Schema) Definition(name string) (*Schema, bool) {
	return s.Definitions.Get(name)
}

// SchemaType handles JSON Schema "type" which can be a string or array of strings.
type SchemaType struct {
	values []string
	list   bool
}

// Single returns the type when it was declared as a plain string, otherwise "".
func (t SchemaType) Single() string {
	if !t.list && len(t.values) == 1 {
		return t.values[0]
	}
	return ""
}

// Values returns all type values.
func (t SchemaType) Values() []string {
	return t.values
}

// IsList returns true if the type was declared as an array of alternatives.
func (t SchemaType) IsList() bool {
	return t.list
}

// UnmarshalJSON handles "type": "string" and "type": ["string", "null"].
func (t *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		t.values = []string{single}
		t.list = false
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		t.values = arr
		t.list = true
		return nil
	}
	return fmt.Errorf("cannot unmarshal type: %s", string(data))
}

// MarshalJSON encodes the type as a string or array.
func (t SchemaType) MarshalJSON() ([]byte, error) {
	if !t.list && len(t.values) == 1 {
		return json.Marshal(t.values[0])
	}
	return json.Marshal(t.values)
}

// SchemaMap is a JSON object of named schemas that remembers the order in
// which its keys appeared in the document. Generated output follows that
// order so it stays diffable across schema releases.
type SchemaMap struct {
	keys   []string
	values map[string]*Schema
}

// UnmarshalJSON decodes the object token by token to capture key order.
func (m *SchemaMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	m.keys = nil
	m.values = make(map[string]*Schema)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", keyTok)
		}
		var s Schema
		if err := dec.Decode(&s); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		m.Set(key, &s)
	}
	// Consume the closing brace.
	_, err = dec.Token()
	return err
}

// Set adds or replaces a schema. A replaced key keeps its original position.
func (m *SchemaMap) Set(name string, s *Schema) {
	if m.values == nil {
		m.values = make(map[string]*Schema)
	}
	if _, exists := m.values[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.values[name] = s
}

// Get returns the schema stored under name.
func (m *SchemaMap) Get(name string) (*Schema, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.values[name]
	return s, ok
}

// Has reports whether name is present.
func (m *SchemaMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Len returns the number of entries.
func (m *SchemaMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the names in document order.
func (m *SchemaMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// All iterates over the entries in document order.
func (m *SchemaMap) All() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Loader retrieves a schema document by URL or local path.
type Loader interface {
	Load(ctx context.Context, locator string) (*Schema, error)
}

// SchemaLoader loads and caches schema documents from HTTP(S) URLs or the
// local filesystem.
type SchemaLoader struct {
	client  *http.Client
	log     logr.Logger
	schemas map[string]*Schema
}

// NewSchemaLoader creates a loader. A nil client uses http.DefaultClient.
func NewSchemaLoader(log logr.Logger, client *http.Client) *SchemaLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &SchemaLoader{
		client:  client,
		log:     log,
		schemas: make(map[string]*Schema),
	}
}

// Load reads and parses the schema document at locator. Documents are
// cached by locator.
func (l *SchemaLoader) Load(ctx context.Context, locator string) (*Schema, error) {
	if s, ok := l.schemas[locator]; ok {
		return s, nil
	}

	var (
		s   *Schema
		err error
	)
	if isRemote(locator) {
		s, err = l.fetch(ctx, locator)
	} else {
		s, err = l.readFile(locator)
	}
	if err != nil {
		return nil, err
	}

	l.schemas[locator] = s
	return s, nil
}

func (l *SchemaLoader) fetch(ctx context.Context, url string) (*Schema, error) {
	l.log.V(1).Info("Fetching schema", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		l.log.Error(nil, "Unexpected schema response", "url", url, "status", resp.Status, "payload", string(data))
		return nil, fmt.Errorf("loading schema %s: unexpected status %s", url, resp.Status)
	}

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		l.log.Error(err, "Error with schema data", "url", url, "payload", string(data))
		return nil, fmt.Errorf("parsing schema %s: %w", url, err)
	}
	return &s, nil
}

func (l *SchemaLoader) readFile(path string) (*Schema, error) {
	l.log.V(1).Info("Reading schema", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("loading schema %s: %w", path, ErrEmptyDocument)
	}

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	return &s, nil
}

func isRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}
