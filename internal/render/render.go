// Package render turns a model into source text. The mapper knows nothing
// about the target language; everything language specific lives here.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrewkroh/go-redfish-gen/internal/model"
)

// Output formats.
const (
	FormatTemplate = "template"
	FormatGo       = "go"
	FormatYAML     = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTemplate, FormatGo, FormatYAML}

// DefaultCommonPackage is the import path of the package that provides the
// shared Entity, Status, Identifier and Link types.
const DefaultCommonPackage = "github.com/stmcginnis/gofish/common"

// Renderer writes the source for a model.
type Renderer interface {
	Render(w io.Writer, m *model.Model) error
}

// Config selects and configures a renderer.
type Config struct {
	Format        string
	TemplateFile  string
	CommonPackage string
}

// New returns the renderer for cfg.Format. An empty format selects the
// template renderer.
func New(cfg Config) (Renderer, error) {
	if cfg.CommonPackage == "" {
		cfg.CommonPackage = DefaultCommonPackage
	}

	switch cfg.Format {
	case FormatTemplate, "":
		if cfg.TemplateFile == "" {
			return NewTemplateRenderer(defaultTemplate, cfg.CommonPackage)
		}
		text, err := readTemplate(cfg.TemplateFile)
		if err != nil {
			return nil, err
		}
		return NewTemplateRenderer(text, cfg.CommonPackage)
	case FormatGo:
		return &GoRenderer{CommonPackage: cfg.CommonPackage}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: %s)", cfg.Format, strings.Join(Formats, ", "))
	}
}

func readTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("reading template %s: file is empty", path)
	}
	return string(data), nil
}
