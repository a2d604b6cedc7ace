package generator

import (
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionPattern matches the vMAJOR_MINOR_ERRATA segment of a versioned
// schema file name such as "Drive.v1_2_1.json".
var versionPattern = regexp.MustCompile(`v(\d+)_(\d+)_(\d+)`)

// LatestVersionRef inspects the anyOf list of the object's top-level
// definition and returns the file part of the reference with the highest
// version. References to idRef are identity links and never selected.
// Comparison is numeric on (major, minor, errata); a later reference only
// wins when it is strictly greater.
func LatestVersionRef(doc *Schema, objectName string) (string, bool) {
	def, ok := doc.Definition(objectName)
	if !ok {
		return "", false
	}

	var (
		best    *semver.Version
		bestRef string
	)
	for _, alt := range def.AnyOf {
		if alt == nil || alt.Ref == "" || strings.Contains(alt.Ref, "idRef") {
			continue
		}
		ref, _ := splitRef(alt.Ref)
		v, ok := refVersion(ref)
		if !ok {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestRef = ref
		}
	}
	return bestRef, best != nil
}

// refVersion extracts the version encoded in a schema file reference.
func refVersion(ref string) (*semver.Version, bool) {
	m := versionPattern.FindStringSubmatch(path.Base(ref))
	if m == nil {
		return nil, false
	}
	var parts [3]uint64
	for i := range parts {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return nil, false
		}
		parts[i] = n
	}
	return semver.New(parts[0], parts[1], parts[2], "", ""), true
}

// ResolveVersionLocator returns the locator of the versioned schema that
// should be loaded in place of the base document. With a local directory the
// file name of the reference is looked up there; otherwise relative
// references are resolved against the base locator. The second return value
// is false when the base document has no versioned reference for the object,
// in which case the base document is already the one to map.
func ResolveVersionLocator(doc *Schema, objectName, baseLocator, localDir string) (string, bool) {
	ref, ok := LatestVersionRef(doc, objectName)
	if !ok {
		return "", false
	}

	if localDir != "" {
		return filepath.Join(localDir, path.Base(ref)), true
	}
	if isRemote(ref) {
		return ref, true
	}
	if isRemote(baseLocator) {
		base, err := url.Parse(baseLocator)
		if err != nil {
			return "", false
		}
		rel, err := url.Parse(ref)
		if err != nil {
			return "", false
		}
		return base.ResolveReference(rel).String(), true
	}
	return filepath.Join(filepath.Dir(baseLocator), filepath.FromSlash(ref)), true
}

// splitRef splits a $ref into file part and fragment part.
// Examples:
//
//	"#/definitions/foo"                    → ("", "/definitions/foo")
//	"Drive.v1_2_1.json#/definitions/Drive" → ("Drive.v1_2_1.json", "/definitions/Drive")
//	"Drive.v1_2_1.json"                    → ("Drive.v1_2_1.json", "")
func splitRef(ref string) (filePart, fragmentPart string) {
	idx := strings.Index(ref, "#")
	if idx < 0 {
		return ref, ""
	}
	return ref[:idx], ref[idx+1:]
}

// refTypeName returns the trailing path segment of a reference, which is
// the name of the referenced definition.
func refTypeName(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
