package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// baseDocument returns a base schema document whose top-level definition
// references the given versioned files.
func baseDocument(t *testing.T, object string, refs ...string) *Schema {
	t.Helper()
	alts := make([]string, 0, len(refs))
	for _, ref := range refs {
		alts = append(alts, fmt.Sprintf(`{"$ref": %q}`, ref))
	}
	return mustSchema(t, fmt.Sprintf(`{"definitions": {%q: {"anyOf": [%s]}}}`, object, strings.Join(alts, ",")))
}

const idRef = "http://redfish.dmtf.org/schemas/v1/odata-v4.json#/definitions/idRef"

func TestLatestVersionRef(t *testing.T) {
	tests := []struct {
		name   string
		refs   []string
		want   string
		wantOK bool
	}{
		{
			name: "highest of several",
			refs: []string{
				idRef,
				"http://redfish.dmtf.org/schemas/v1/Drive.v1_0_0.json#/definitions/Drive",
				"http://redfish.dmtf.org/schemas/v1/Drive.v1_2_1.json#/definitions/Drive",
				"http://redfish.dmtf.org/schemas/v1/Drive.v1_2_0.json#/definitions/Drive",
			},
			want:   "http://redfish.dmtf.org/schemas/v1/Drive.v1_2_1.json",
			wantOK: true,
		},
		{
			name: "numeric comparison",
			refs: []string{
				"Drive.v1_9_0.json#/definitions/Drive",
				"Drive.v1_10_0.json#/definitions/Drive",
				"Drive.v1_2_0.json#/definitions/Drive",
			},
			want:   "Drive.v1_10_0.json",
			wantOK: true,
		},
		{
			name: "major outranks minor",
			refs: []string{
				"Drive.v2_0_0.json#/definitions/Drive",
				"Drive.v1_99_99.json#/definitions/Drive",
			},
			want:   "Drive.v2_0_0.json",
			wantOK: true,
		},
		{
			name: "first of equal versions wins",
			refs: []string{
				"a/Drive.v1_1_0.json#/definitions/Drive",
				"b/Drive.v1_1_0.json#/definitions/Drive",
			},
			want:   "a/Drive.v1_1_0.json",
			wantOK: true,
		},
		{
			name:   "only identity reference",
			refs:   []string{idRef},
			wantOK: false,
		},
		{
			name:   "unversioned reference",
			refs:   []string{"http://redfish.dmtf.org/schemas/v1/Resource.json#/definitions/Item"},
			wantOK: false,
		},
		{
			name:   "no references",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LatestVersionRef(baseDocument(t, "Drive", tt.refs...), "Drive")
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("LatestVersionRef() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLatestVersionRefMissingDefinition(t *testing.T) {
	doc := baseDocument(t, "Drive", "Drive.v1_0_0.json#/definitions/Drive")
	if got, ok := LatestVersionRef(doc, "Storage"); ok {
		t.Errorf("LatestVersionRef() = %q, want no reference", got)
	}
	if got, ok := LatestVersionRef(&Schema{}, "Drive"); ok {
		t.Errorf("LatestVersionRef() on empty document = %q, want no reference", got)
	}
}

func TestResolveVersionLocator(t *testing.T) {
	const (
		absRef = "http://redfish.dmtf.org/schemas/v1/Drive.v1_2_1.json#/definitions/Drive"
		relRef = "Drive.v1_2_1.json#/definitions/Drive"
	)

	tests := []struct {
		name     string
		ref      string
		base     string
		localDir string
		want     string
	}{
		{
			name:     "local directory replaces location",
			ref:      absRef,
			base:     filepath.Join("schemas", "Drive.json"),
			localDir: "schemas",
			want:     filepath.Join("schemas", "Drive.v1_2_1.json"),
		},
		{
			name: "absolute reference",
			ref:  absRef,
			base: "https://mirror.example.com/redfish/Drive.json",
			want: "http://redfish.dmtf.org/schemas/v1/Drive.v1_2_1.json",
		},
		{
			name: "relative reference against remote base",
			ref:  relRef,
			base: "https://mirror.example.com/redfish/Drive.json",
			want: "https://mirror.example.com/redfish/Drive.v1_2_1.json",
		},
		{
			name: "relative reference against local base",
			ref:  relRef,
			base: filepath.Join("schemas", "Drive.json"),
			want: filepath.Join("schemas", "Drive.v1_2_1.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := baseDocument(t, "Drive", idRef, tt.ref)
			got, ok := ResolveVersionLocator(doc, "Drive", tt.base, tt.localDir)
			if !ok {
				t.Fatal("expected a versioned locator")
			}
			if got != tt.want {
				t.Errorf("ResolveVersionLocator() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveVersionLocatorUnversioned(t *testing.T) {
	doc := baseDocument(t, "ServiceRoot", idRef)
	if got, ok := ResolveVersionLocator(doc, "ServiceRoot", "ServiceRoot.json", ""); ok {
		t.Errorf("ResolveVersionLocator() = %q, want no redirect", got)
	}
}

func TestSplitRef(t *testing.T) {
	tests := []struct {
		ref          string
		wantFile     string
		wantFragment string
	}{
		{"#/definitions/foo", "", "/definitions/foo"},
		{"Drive.v1_2_1.json#/definitions/Drive", "Drive.v1_2_1.json", "/definitions/Drive"},
		{"Drive.v1_2_1.json", "Drive.v1_2_1.json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			file, fragment := splitRef(tt.ref)
			if file != tt.wantFile || fragment != tt.wantFragment {
				t.Errorf("splitRef(%q) = (%q, %q), want (%q, %q)", tt.ref, file, fragment, tt.wantFile, tt.wantFragment)
			}
		})
	}
}
