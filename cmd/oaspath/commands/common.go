package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oaskit/oaspath/codec"
	"github.com/oaskit/oaspath/oas"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// FormatSourcePath returns a display-friendly name for an input path.
func FormatSourcePath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// input is a decoded document read from a file or stdin.
type input struct {
	item   *oas.PathItem
	paths  oas.Paths
	format codec.Format
}

// value returns whichever document was decoded.
func (in *input) value() any {
	if in.paths != nil {
		return in.paths
	}
	return in.item
}

// readInput reads path (or stdin for "-") and decodes a path item, or a
// paths map when asPaths is set. The format comes from the file
// extension when it has a known one, otherwise from the content.
func readInput(cmd *cobra.Command, ro *rootOptions, path string, asPaths bool) (*input, error) {
	source := FormatSourcePath(path)
	opts := []codec.Option{
		codec.WithSourceName(source),
		codec.WithLogger(ro.codecLogger()),
	}

	var data []byte
	var err error
	if path == StdinFilePath {
		data, err = codec.ReadAll(cmd.InOrStdin(), opts...)
	} else {
		data, err = readFile(path, opts)
		opts = append(opts, codec.WithFormat(codec.DetectFormatFromPath(path)))
	}
	if err != nil {
		return nil, err
	}

	format, err := codec.DetectFormat(data, opts...)
	if err != nil {
		return nil, err
	}
	in := &input{format: format}
	if asPaths {
		in.paths, err = codec.DecodePaths(data, opts...)
		if err == nil && in.paths == nil {
			in.paths = oas.Paths{}
		}
	} else {
		in.item, err = codec.DecodePathItem(data, opts...)
	}
	if err != nil {
		return nil, err
	}
	return in, nil
}

func readFile(path string, opts []codec.Option) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // G304 - path is a user-supplied CLI argument
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return codec.ReadAll(f, opts...)
}

// parseOutputFormat maps a --format flag value, where "" keeps fallback.
func parseOutputFormat(name string, fallback codec.Format) (codec.Format, error) {
	if name == "" {
		return fallback, nil
	}
	f := codec.ParseFormat(name)
	if f == codec.FormatUnknown {
		return codec.FormatUnknown, fmt.Errorf("invalid format '%s'. Valid formats: json, yaml", name)
	}
	return f, nil
}

// argOrStdin returns the single positional argument, or "-" when none is given.
func argOrStdin(args []string) string {
	if len(args) == 0 {
		return StdinFilePath
	}
	return args[0]
}
