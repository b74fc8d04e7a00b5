package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oaskit/oaspath/builder"
	"github.com/oaskit/oaspath/codec"
	"github.com/oaskit/oaspath/internal/cliutil"
	"github.com/oaskit/oaspath/oas"
)

// NewFlags contains flags for the new command.
type NewFlags struct {
	Method          string
	OperationID     string
	Summary         string
	Description     string
	Tags            []string
	Deprecated      bool
	PathSummary     string
	PathDescription string
	Servers         []string
	Params          []string
	ParamRefs       []string
	Extensions      []string
	Path            string
	Format          string
	Indent          int
	Output          string
}

func newNewCommand(ro *rootOptions) *cobra.Command {
	flags := &NewFlags{}
	cmd := &cobra.Command{
		Use:   "new --method <method> [flags]",
		Short: "Create a path item holding a single operation",
		Long: `Create a path item with one operation bound to the given HTTP method.

Parameters are given as name:in or name:in:required, where in is one of
query, header, path or cookie. Path parameters are always required.
With --path the result is a paths map keyed by that template.`,
		Example: `  oaspath new --method get --operation-id listPets --param limit:query
  oaspath new --method delete --path /pets/{id} --param id:path --format json
  oaspath new --method post --server https://api.example.com --extension x-internal=true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNew(cmd, ro, flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.Method, "method", "m", "", "HTTP method: get, put, post, delete, options, head, patch or trace (required)")
	f.StringVar(&flags.OperationID, "operation-id", "", "operationId of the operation")
	f.StringVar(&flags.Summary, "summary", "", "operation summary")
	f.StringVar(&flags.Description, "description", "", "operation description")
	f.StringSliceVar(&flags.Tags, "tag", nil, "operation tag (repeatable)")
	f.BoolVar(&flags.Deprecated, "deprecated", false, "mark the operation deprecated")
	f.StringVar(&flags.PathSummary, "path-summary", "", "path item summary")
	f.StringVar(&flags.PathDescription, "path-description", "", "path item description")
	f.StringArrayVar(&flags.Servers, "server", nil, "path level server URL (repeatable)")
	f.StringArrayVar(&flags.Params, "param", nil, "path level parameter as name:in[:required] (repeatable)")
	f.StringArrayVar(&flags.ParamRefs, "param-ref", nil, "path level parameter $ref (repeatable)")
	f.StringArrayVar(&flags.Extensions, "extension", nil, "path item extension as x-key=value (repeatable)")
	f.StringVar(&flags.Path, "path", "", "wrap the result in a paths map under this template")
	f.StringVarP(&flags.Format, "format", "f", "yaml", "output format: json or yaml")
	f.IntVar(&flags.Indent, "indent", 2, "indentation width, 0 for compact JSON")
	f.StringVarP(&flags.Output, "output", "o", "", "output file path (default: stdout)")
	_ = cmd.MarkFlagRequired("method")
	return cmd
}

func runNew(cmd *cobra.Command, ro *rootOptions, flags *NewFlags) error {
	method, ok := oas.ParseMethod(flags.Method)
	if !ok {
		return fmt.Errorf("invalid method '%s'. Valid methods: get, put, post, delete, options, head, patch, trace", flags.Method)
	}
	format, err := parseOutputFormat(flags.Format, codec.FormatYAML)
	if err != nil {
		return err
	}
	opts, err := newPathOptions(flags)
	if err != nil {
		return err
	}

	op := &oas.Operation{
		OperationID: flags.OperationID,
		Summary:     flags.Summary,
		Description: flags.Description,
		Tags:        flags.Tags,
		Deprecated:  flags.Deprecated,
	}

	var doc any
	if flags.Path != "" {
		paths, err := builder.NewPaths().AddOperation(flags.Path, method, op, opts...).Build()
		if err != nil {
			return err
		}
		doc = paths
	} else {
		doc = builder.ForMethod[oas.PathItem](method, op, opts...)
	}

	ro.log().Debug("built path item", "method", method.String(), "path", flags.Path)
	out, err := codec.Encode(doc,
		codec.WithFormat(format),
		codec.WithIndent(flags.Indent),
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

func newPathOptions(flags *NewFlags) ([]builder.PathOption, error) {
	opts := []builder.PathOption{
		builder.WithSummary(flags.PathSummary),
		builder.WithDescription(flags.PathDescription),
	}
	for _, url := range flags.Servers {
		opts = append(opts, builder.WithServerURL(url))
	}
	for _, spec := range flags.Params {
		param, err := ParseParamFlag(spec)
		if err != nil {
			return nil, err
		}
		opts = append(opts, builder.WithParameter(param))
	}
	for _, ref := range flags.ParamRefs {
		opts = append(opts, builder.WithParameterRef(ref))
	}
	for _, ext := range flags.Extensions {
		key, value, found := strings.Cut(ext, "=")
		if !found {
			return nil, fmt.Errorf("invalid extension '%s': expected x-key=value", ext)
		}
		opts = append(opts, builder.WithExtension(key, value))
	}
	if err := builder.CheckOptions(opts...); err != nil {
		return nil, err
	}
	return opts, nil
}

// ParseParamFlag parses a name:in[:required] parameter flag value.
func ParseParamFlag(spec string) (*oas.Parameter, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return nil, fmt.Errorf("invalid parameter '%s': expected name:in[:required]", spec)
	}
	param := &oas.Parameter{Name: parts[0], In: parts[1]}
	switch param.In {
	case oas.ParamInQuery, oas.ParamInHeader, oas.ParamInCookie:
	case oas.ParamInPath:
		param.Required = true
	default:
		return nil, fmt.Errorf("invalid parameter '%s': location must be query, header, path or cookie", spec)
	}
	if len(parts) == 3 {
		if parts[2] != "required" {
			return nil, fmt.Errorf("invalid parameter '%s': third field must be \"required\"", spec)
		}
		param.Required = true
	}
	return param, nil
}
