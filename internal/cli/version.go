package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quirk/pkg/quirk"
)

const modulePath = "github.com/mesh-intelligence/quirk"

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quirk version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "quirk v%s\nmodule: %s\n", quirk.Version, modulePath)
			return nil
		},
	}
}
