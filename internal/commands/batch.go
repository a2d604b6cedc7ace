package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewkroh/go-redfish-gen/internal/generator"
)

func registerBatchCmd(parent *cobra.Command, v *viper.Viper) {
	var (
		outputDir string
		flags     outputFlags
	)

	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Generate every object listed in a manifest",
		Long: `Generate every object listed in a YAML manifest. Output goes to
OUTPUT_DIR/<type>/<file>, where the file name comes from the manifest's files
table or defaults to the lower cased object name.`,
		Example: `  # Regenerate the client library from a local schema bundle
  redfish-gen batch objects.yml -l ./schemas --concurrency 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFromCommand(cmd)
			if err != nil {
				return err
			}

			m, err := generator.LoadManifest(args[0])
			if err != nil {
				return err
			}
			if outputDir != "" {
				m.OutputDir = outputDir
			}

			base := a.baseConfig()
			flags.apply(&base)

			b := &generator.Batch{
				NewLoader:   a.newLoader,
				Log:         a.log,
				Concurrency: a.cfg.Concurrency,
			}
			return b.Run(cmd.Context(), base, m)
		},
	}

	f := cmd.Flags()
	f.StringVar(&outputDir, "output-dir", "", "output directory (default: the manifest's output_dir)")
	f.Int("concurrency", 4, "number of objects generated in parallel")
	flags.register(f)
	mustBind(v, f, map[string]string{"concurrency": "concurrency"})

	parent.AddCommand(cmd)
}
