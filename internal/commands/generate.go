package commands

import (
	"github.com/spf13/cobra"

	"github.com/andrewkroh/go-redfish-gen/internal/generator"
)

func registerGenerateCmd(parent *cobra.Command) {
	var (
		mode   string
		output string
		flags  outputFlags
	)

	cmd := &cobra.Command{
		Use:   "generate OBJECT",
		Short: "Generate source for one schema object",
		Long: `Generate source for one schema object. The base schema OBJECT.json is read
from the published schema location, or from --local, and the latest versioned
schema it references is mapped and rendered.`,
		Example: `  # Drive types from the published Redfish schemas, to stdout
  redfish-gen generate Drive

  # A Swordfish object from a local schema bundle, written to a file
  redfish-gen generate StoragePool -t swordfish -l ./schemas/swordfish -o storagepool.go

  # Dump the intermediate model
  redfish-gen generate Drive --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFromCommand(cmd)
			if err != nil {
				return err
			}

			cfg := a.baseConfig()
			cfg.Object = args[0]
			cfg.Mode = mode
			cfg.OutputFile = output
			flags.apply(&cfg)

			gen := &generator.Generator{
				Loader: a.newLoader(),
				Log:    a.log,
				Stdout: cmd.OutOrStdout(),
			}
			return gen.Run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&mode, "type", "t", generator.ModeRedfish, "schema repository: redfish or swordfish")
	f.StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	flags.register(f)

	parent.AddCommand(cmd)
}
