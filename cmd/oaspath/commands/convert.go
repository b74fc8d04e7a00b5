package commands

import (
	"github.com/spf13/cobra"
)

// ConvertFlags contains flags for the convert command.
type ConvertFlags struct {
	To     string
	Indent int
	Output string
	Paths  bool
}

func newConvertCommand(ro *rootOptions) *cobra.Command {
	flags := &ConvertFlags{}
	cmd := &cobra.Command{
		Use:   "convert --to json|yaml [file|-]",
		Short: "Convert a path item between JSON and YAML",
		Example: `  oaspath convert --to json pets.yaml -o pets.json
  cat pets.json | oaspath convert --to yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, ro, argOrStdin(args), &FmtFlags{
				Format: flags.To,
				Indent: flags.Indent,
				Output: flags.Output,
				Paths:  flags.Paths,
			})
		},
	}
	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "target format: json or yaml (required)")
	cmd.Flags().IntVar(&flags.Indent, "indent", 2, "indentation width, 0 for compact JSON")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.Paths, "paths", false, "input is a paths map keyed by path template")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
