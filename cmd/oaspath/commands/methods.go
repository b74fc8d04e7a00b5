package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oaskit/oaspath/codec"
	"github.com/oaskit/oaspath/internal/cliutil"
	"github.com/oaskit/oaspath/oas"
)

// MethodRow describes one operation of a path item.
type MethodRow struct {
	Path        string   `json:"path,omitempty" yaml:"path,omitempty"`
	Method      string   `json:"method" yaml:"method"`
	OperationID string   `json:"operation_id,omitempty" yaml:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// MethodsFlags contains flags for the methods command.
type MethodsFlags struct {
	Format string
	Paths  bool
}

func newMethodsCommand(ro *rootOptions) *cobra.Command {
	flags := &MethodsFlags{}
	cmd := &cobra.Command{
		Use:   "methods [file|-]",
		Short: "List the operations defined on a path item",
		Example: `  oaspath methods pets.yaml
  oaspath methods --paths --format json paths.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMethods(cmd, ro, argOrStdin(args), flags)
		},
	}
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&flags.Paths, "paths", false, "input is a paths map keyed by path template")
	return cmd
}

func runMethods(cmd *cobra.Command, ro *rootOptions, path string, flags *MethodsFlags) error {
	structured := codec.FormatUnknown
	if flags.Format != "text" {
		f, err := parseOutputFormat(flags.Format, codec.FormatUnknown)
		if err != nil {
			return fmt.Errorf("invalid format '%s'. Valid formats: text, json, yaml", flags.Format)
		}
		structured = f
	}

	in, err := readInput(cmd, ro, path, flags.Paths)
	if err != nil {
		return err
	}
	var rows []MethodRow
	if flags.Paths {
		for _, key := range in.paths.SortedKeys() {
			rows = append(rows, collectMethods(key, in.paths.Get(key))...)
		}
	} else {
		rows = collectMethods("", in.item)
	}

	if structured != codec.FormatUnknown {
		if rows == nil {
			rows = []MethodRow{}
		}
		out, err := codec.Encode(rows, codec.WithFormat(structured), codec.WithIndent(2))
		if err != nil {
			return err
		}
		return cliutil.WriteOutput(cmd.OutOrStdout(), "", out)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, row := range rows {
		prefix := ""
		if flags.Paths {
			prefix = row.Path + "\t"
		}
		m, _ := oas.ParseMethod(row.Method)
		cliutil.Writef(w, "%s%s\t%s\t%s\n", prefix, m.HTTPMethod(), row.OperationID, row.Summary)
	}
	return w.Flush()
}

// collectMethods returns one row per operation of item, in canonical order.
func collectMethods(path string, item *oas.PathItem) []MethodRow {
	if item == nil {
		return nil
	}
	rows := make([]MethodRow, 0, item.OperationCount())
	for m, op := range item.Operations() {
		rows = append(rows, MethodRow{
			Path:        path,
			Method:      m.String(),
			OperationID: op.OperationID,
			Summary:     op.Summary,
			Tags:        op.Tags,
			Deprecated:  op.Deprecated,
		})
	}
	return rows
}
