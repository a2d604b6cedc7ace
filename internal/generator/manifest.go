package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest lists the schema objects generated by a batch run.
type Manifest struct {
	OutputDir string              `yaml:"output_dir"`
	Objects   map[string][]string `yaml:"objects"` // mode → object names
	Files     map[string][]string `yaml:"files"`   // filename → object names
	// Reverse lookup: object name → filename.
	lookup map[string]string
}

// Job is a single object to generate.
type Job struct {
	Object     string
	Mode       string
	OutputFile string
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	m.buildLookup()
	return &m, nil
}

// buildLookup creates the reverse lookup table.
func (m *Manifest) buildLookup() {
	m.lookup = make(map[string]string)
	for file, objects := range m.Files {
		for _, object := range objects {
			m.lookup[object] = file
		}
	}
}

// OutputFileFor returns the output file name for an object. Several objects
// may share a file. Objects that are not in the files table get their lower
// cased name with a .go suffix.
func (m *Manifest) OutputFileFor(object string) string {
	if m != nil && m.lookup != nil {
		if file, ok := m.lookup[object]; ok {
			return file
		}
	}
	return strings.ToLower(object) + ".go"
}

// Jobs returns one job per listed object, redfish objects first, each mode
// in manifest order.
func (m *Manifest) Jobs() []Job {
	var jobs []Job
	for _, mode := range m.modes() {
		for _, object := range m.Objects[mode] {
			jobs = append(jobs, Job{
				Object:     object,
				Mode:       mode,
				OutputFile: filepath.Join(m.OutputDir, mode, m.OutputFileFor(object)),
			})
		}
	}
	return jobs
}

// modes returns the known modes first, then any others in sorted order so
// that they are rejected with ErrUnknownMode rather than silently ignored.
func (m *Manifest) modes() []string {
	var unknown []string
	for mode := range m.Objects {
		if mode != ModeRedfish && mode != ModeSwordfish {
			unknown = append(unknown, mode)
		}
	}
	slices.Sort(unknown)
	return append([]string{ModeRedfish, ModeSwordfish}, unknown...)
}
