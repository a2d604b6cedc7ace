// Package commands contains the redfish-gen command definitions.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andrewkroh/go-redfish-gen/internal/config"
)

// NewRootCmd creates the root command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "redfish-gen",
		Short: "Generate typed client source from Redfish and Swordfish JSON schemas",
		Long: `redfish-gen reads the JSON schema of a Redfish or Swordfish object, picks the
latest versioned schema it references and renders its definitions as typed
source for a client library.

Settings are read from an optional YAML config file and REDFISHGEN_*
environment variables; flags take precedence over both.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadApp(v),
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a YAML config file")
	flags.String("log-level", "info", "log level: error, info or debug")
	flags.String("log-format", config.LogFormatText, "log format: text, json or console")
	flags.BoolP("verbose", "v", false, "shorthand for --log-level=debug")
	mustBind(v, flags, map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
	})

	registerGenerateCmd(rootCmd)
	registerBatchCmd(rootCmd, v)
	registerVersionCmd(rootCmd)

	return rootCmd
}

// mustBind binds flags that are defined alongside the call; a failure is a
// programming error.
func mustBind(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	if err := config.BindFlags(v, flags, keys); err != nil {
		panic(err)
	}
}
