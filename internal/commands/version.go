package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewkroh/go-redfish-gen/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	}
	parent.AddCommand(cmd)
}
