package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"github.com/andrewkroh/go-redfish-gen/internal/model"
	"github.com/andrewkroh/go-redfish-gen/internal/render"
)

// Schema modes select the published schema repository.
const (
	ModeRedfish   = "redfish"
	ModeSwordfish = "swordfish"
)

// Published schema locations.
const (
	DefaultRedfishBaseURL   = "http://redfish.dmtf.org/schemas/v1/"
	DefaultSwordfishBaseURL = "http://redfish.dmtf.org/schemas/swordfish/v1/"
)

// ErrUnknownMode is returned for a schema mode other than redfish or
// swordfish.
var ErrUnknownMode = errors.New("unknown schema mode")

// Config holds all configuration for a generator run.
type Config struct {
	Object        string // Schema object name, e.g. "Drive".
	Mode          string // ModeRedfish or ModeSwordfish.
	LocalPath     string // Directory holding the schema files; replaces the base URL.
	OutputFile    string // Empty writes to the generator's stdout.
	PackageName   string // Defaults to Mode.
	Format        string // Renderer format, see render.Formats.
	TemplateFile  string // Template for the template format; empty uses the built-in one.
	OverridesFile string // Optional overrides YAML.
	CommonPackage string // Import path of the common package for the go format.

	RedfishBaseURL   string
	SwordfishBaseURL string

	Options Options
}

// SchemaLocator returns the locator of the base schema document for the
// configured object.
func (c Config) SchemaLocator() (string, error) {
	var base string
	switch c.Mode {
	case ModeRedfish:
		base = valueOr(c.RedfishBaseURL, DefaultRedfishBaseURL)
	case ModeSwordfish:
		base = valueOr(c.SwordfishBaseURL, DefaultSwordfishBaseURL)
	default:
		return "", fmt.Errorf("%w %q: must be %s or %s", ErrUnknownMode, c.Mode, ModeRedfish, ModeSwordfish)
	}

	if c.LocalPath != "" {
		return filepath.Join(c.LocalPath, c.Object) + ".json", nil
	}
	return base + c.Object + ".json", nil
}

func (c Config) packageName() string {
	return valueOr(c.PackageName, c.Mode)
}

// Generator runs the schema to source pipeline for one object at a time.
type Generator struct {
	Loader Loader
	Log    logr.Logger
	Stdout io.Writer
}

// Generate loads the schema for the configured object, switches to its
// latest versioned document when there is one, and maps it to a model.
func (g *Generator) Generate(ctx context.Context, cfg Config) (*model.Model, error) {
	locator, err := cfg.SchemaLocator()
	if err != nil {
		return nil, err
	}
	log := g.Log.WithValues("object", cfg.Object)

	doc, err := g.Loader.Load(ctx, locator)
	if err != nil {
		return nil, err
	}

	if versioned, ok := ResolveVersionLocator(doc, cfg.Object, locator, cfg.LocalPath); ok {
		log.V(1).Info("Using versioned schema", "locator", versioned)
		if doc, err = g.Loader.Load(ctx, versioned); err != nil {
			return nil, err
		}
	} else {
		log.V(1).Info("No versioned schema referenced, mapping base document", "locator", locator)
	}

	mapper := NewMapper(log, cfg.Options)
	return mapper.Map(doc, cfg.Object, cfg.packageName()), nil
}

// Run executes the full pipeline for cfg.Object and writes the rendered
// source.
func (g *Generator) Run(ctx context.Context, cfg Config) error {
	return g.RunFile(ctx, cfg, cfg.Object)
}

// RunFile generates several objects into a single output, cfg.OutputFile or
// stdout. The classes and enums of the objects are joined in the given order
// and validated together, so a name defined by two of them is an error.
func (g *Generator) RunFile(ctx context.Context, cfg Config, objects ...string) error {
	if len(objects) == 0 {
		return errors.New("no objects to generate")
	}
	name := strings.Join(objects, ", ")

	// Configuration problems surface before any schema is fetched.
	if _, err := cfg.SchemaLocator(); err != nil {
		return err
	}
	renderer, err := render.New(render.Config{
		Format:        cfg.Format,
		TemplateFile:  cfg.TemplateFile,
		CommonPackage: cfg.CommonPackage,
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	var overrides *Overrides
	if cfg.OverridesFile != "" {
		if overrides, err = LoadOverrides(cfg.OverridesFile); err != nil {
			return err
		}
	}

	var m *model.Model
	for _, object := range objects {
		objCfg := cfg
		objCfg.Object = object
		om, err := g.Generate(ctx, objCfg)
		if err != nil {
			return fmt.Errorf("generating %s: %w", object, err)
		}
		if m == nil {
			m = om
			continue
		}
		m.Classes = append(m.Classes, om.Classes...)
		m.Enums = append(m.Enums, om.Enums...)
	}
	overrides.Apply(m)
	if err := validate(m); err != nil {
		return fmt.Errorf("generating %s: %w", name, err)
	}

	// Render into memory so a failure never leaves a partial file.
	var buf bytes.Buffer
	if err := renderer.Render(&buf, m); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}

	if cfg.OutputFile == "" {
		_, err := g.Stdout.Write(buf.Bytes())
		return err
	}
	path := outputPath(cfg.OutputFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	g.Log.Info("Wrote generated source", "objects", objects, "path", path)
	return nil
}

// outputPath lower cases the file name, following the naming of the Go
// files in the client library.
func outputPath(p string) string {
	dir, file := filepath.Split(p)
	return filepath.Join(dir, strings.ToLower(file))
}

// validate checks for name collisions in the generated model.
func validate(m *model.Model) error {
	typeNames := make(map[string]string) // name → kind
	for _, c := range m.Classes {
		if kind, ok := typeNames[c.Name]; ok {
			return fmt.Errorf("class %q conflicts with %s of the same name", c.Name, kind)
		}
		typeNames[c.Name] = "class"

		fields := make(map[string]bool, len(c.Attributes))
		for _, f := range c.Attributes {
			if fields[f.Name] {
				return fmt.Errorf("class %q has duplicate field %q", c.Name, f.Name)
			}
			fields[f.Name] = true
		}
	}
	for _, e := range m.Enums {
		if kind, ok := typeNames[e.Name]; ok {
			return fmt.Errorf("enum %q conflicts with %s of the same name", e.Name, kind)
		}
		typeNames[e.Name] = "enum"

		members := make(map[string]string, len(e.Members))
		for _, mem := range e.Members {
			if existing, ok := members[mem.Identifier]; ok {
				return fmt.Errorf("enum %q values %q and %q share identifier %q",
					e.Name, existing, mem.RawValue, mem.Identifier)
			}
			members[mem.Identifier] = mem.RawValue
		}
	}
	return nil
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
