package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/andrewkroh/go-redfish-gen/internal/model"
)

// YAMLRenderer writes the model itself. It is useful for reviewing what a
// schema maps to and for feeding other generators.
type YAMLRenderer struct{}

// Render encodes the model as YAML.
func (YAMLRenderer) Render(w io.Writer, m *model.Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	return enc.Close()
}
