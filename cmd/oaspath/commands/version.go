package commands

import (
	"github.com/spf13/cobra"

	"github.com/oaskit/oaspath"
	"github.com/oaskit/oaspath/internal/cliutil"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cliutil.Writef(cmd.OutOrStdout(), "%s\n", oaspath.UserAgent())
			cliutil.Writef(cmd.OutOrStdout(), "%s\n", oaspath.BuildInfo())
		},
	}
}
