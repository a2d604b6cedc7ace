package generator

import (
	"regexp"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// cannedComments replace the schema prose for properties that appear in
// nearly every Redfish schema. The upstream wording for these varies from
// file to file. First match wins.
var cannedComments = []struct {
	name string
	text string
}{
	{"Description", "Description provides a description of this resource."},
	{"Id", "ID uniquely identifies the resource."},
	{"Name", "Name is the name of the resource or array element."},
	{"@odata.context", "ODataContext is the odata context."},
	{"@odata.etag", "ODataEtag is the odata etag."},
	{"@odata.id", "ODataID is the odata identifier."},
	{"@odata.type", "ODataType is the odata type."},
	{"Identifier", "Identifier shall be unique within the managed ecosystem."},
}

// Comment defaults.
const (
	DefaultCutPoint  = "shall"
	DefaultWrapWidth = 70
)

var repeatedSpaces = regexp.MustCompile(` {2,}`)

// CommentFormatter turns schema descriptions into wrapped comment text.
type CommentFormatter struct {
	// CutPoint drops everything before its first occurrence. Upstream
	// descriptions often lead with boilerplate before the normative
	// sentence.
	CutPoint string

	// LinkWord is placed between the name and the description, e.g. "is".
	LinkWord string

	// Width is the column at which lines are wrapped.
	Width int
}

// DefaultCommentFormatter returns the formatter used when nothing is
// configured.
func DefaultCommentFormatter() CommentFormatter {
	return CommentFormatter{CutPoint: DefaultCutPoint, Width: DefaultWrapWidth}
}

// Format returns the comment for name as newline separated lines, without
// any comment markers.
func (f CommentFormatter) Format(name, description string) string {
	if text, ok := cannedComment(name); ok {
		return text
	}
	if description == "" {
		return name + " is"
	}

	description = repeatedSpaces.ReplaceAllString(description, " ")
	description = strings.ReplaceAll(description, "`", "'")
	if f.CutPoint != "" {
		if idx := strings.Index(description, f.CutPoint); idx >= 0 {
			description = description[idx:]
		}
	}

	prefix := name
	if f.LinkWord != "" {
		prefix += " " + f.LinkWord
	}
	return strings.Join(wrap(prefix+" "+description, f.Width), "\n")
}

func cannedComment(name string) (string, bool) {
	for _, c := range cannedComments {
		if c.name == name {
			return c.text, true
		}
	}
	return "", false
}

// wrap fills words into lines of at most width columns. Words longer than
// the width (usually URIs) are kept whole on their own line, and hyphenated
// words are never split.
func wrap(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return []string{text}
	}

	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(text))
	_ = w.Close()

	var lines []string
	for _, line := range strings.Split(w.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// descriptionOf prefers the long description of a schema node.
func descriptionOf(s *Schema) string {
	if s.LongDescription != "" {
		return s.LongDescription
	}
	return s.Description
}
