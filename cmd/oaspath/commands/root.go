// Package commands provides the cobra commands of the oaspath CLI.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/oaskit/oaspath/codec"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	logger  *slog.Logger
}

// NewRootCommand builds the oaspath command tree.
func NewRootCommand() *cobra.Command {
	ro := &rootOptions{}
	root := &cobra.Command{
		Use:           "oaspath",
		Short:         "Format, convert, inspect and build OpenAPI Path Item documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if ro.verbose {
				level = slog.LevelDebug
			}
			ro.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVar(&ro.verbose, "verbose", false, "log decode and encode steps to stderr")

	root.AddCommand(
		newFmtCommand(ro),
		newConvertCommand(ro),
		newNewCommand(ro),
		newMethodsCommand(ro),
		newMCPCommand(),
		newVersionCommand(),
	)
	return root
}

// codecLogger adapts the command logger for the codec package.
func (ro *rootOptions) codecLogger() codec.Logger {
	if ro.logger == nil {
		return codec.NopLogger{}
	}
	return codec.NewSlogAdapter(ro.logger)
}

// log returns the command logger, discarding output before PersistentPreRun.
func (ro *rootOptions) log() *slog.Logger {
	if ro.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return ro.logger
}
