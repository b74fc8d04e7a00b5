package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oaskit/oaspath/codec"
	"github.com/oaskit/oaspath/internal/cliutil"
)

// FmtFlags contains flags for the fmt command.
type FmtFlags struct {
	Format string
	Indent int
	Output string
	Paths  bool
}

func newFmtCommand(ro *rootOptions) *cobra.Command {
	flags := &FmtFlags{}
	cmd := &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Rewrite a path item in canonical field order",
		Long: `Decode a path item and encode it again with known fields in canonical order
(summary, description, get ... trace, servers, parameters) followed by x-
extensions sorted by key. Unknown keys that are not extensions are dropped.

Reads stdin when no file is given or the file is "-".`,
		Example: `  oaspath fmt pets.yaml
  oaspath fmt --format json --indent 4 pets.yaml -o pets.json
  cat paths.yaml | oaspath fmt --paths`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, ro, argOrStdin(args), flags)
		},
	}
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "output format: json or yaml (default: input format)")
	cmd.Flags().IntVar(&flags.Indent, "indent", 2, "indentation width, 0 for compact JSON")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.Paths, "paths", false, "input is a paths map keyed by path template")
	return cmd
}

func runFmt(cmd *cobra.Command, ro *rootOptions, path string, flags *FmtFlags) error {
	if flags.Output != "" && path != StdinFilePath && cliutil.SameFile(flags.Output, path) {
		return fmt.Errorf("output file %s would overwrite input file %s", flags.Output, path)
	}
	in, err := readInput(cmd, ro, path, flags.Paths)
	if err != nil {
		return err
	}
	format, err := parseOutputFormat(flags.Format, in.format)
	if err != nil {
		return err
	}
	out, err := codec.Encode(in.value(),
		codec.WithFormat(format),
		codec.WithIndent(flags.Indent),
		codec.WithSourceName(FormatSourcePath(path)),
		codec.WithLogger(ro.codecLogger()),
	)
	if err != nil {
		return err
	}
	if format == codec.FormatJSON && flags.Indent == 0 {
		out = append(out, '\n')
	}
	return cliutil.WriteOutput(cmd.OutOrStdout(), flags.Output, out)
}
