package commands

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/andrewkroh/go-redfish-gen/internal/generator"
	"github.com/andrewkroh/go-redfish-gen/internal/render"
)

// outputFlags are shared by generate and batch.
type outputFlags struct {
	localPath     string
	format        string
	templateFile  string
	packageName   string
	overridesFile string
	commonPackage string
}

func (o *outputFlags) register(f *pflag.FlagSet) {
	f.StringVarP(&o.localPath, "local", "l", "", "read schemas from this directory instead of the published location")
	f.StringVar(&o.format, "format", render.FormatTemplate, "output format: "+strings.Join(render.Formats, ", "))
	f.StringVar(&o.templateFile, "template", "", "template file for the template format (default: built-in Go template)")
	f.StringVar(&o.packageName, "package", "", "package name of the generated source (default: the schema type)")
	f.StringVar(&o.overridesFile, "overrides", "", "YAML file with name, doc and type overrides")
	f.StringVar(&o.commonPackage, "common-package", "", "import path of the common package (default: from config)")
}

func (o *outputFlags) apply(cfg *generator.Config) {
	cfg.LocalPath = o.localPath
	cfg.Format = o.format
	cfg.TemplateFile = o.templateFile
	cfg.PackageName = o.packageName
	cfg.OverridesFile = o.overridesFile
	if o.commonPackage != "" {
		cfg.CommonPackage = o.commonPackage
	}
}
