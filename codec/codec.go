package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/oaskit/oaspath/internal/jsontree"
	"github.com/oaskit/oaspath/oas"
	"github.com/oaskit/oaspath/oaserrors"
)

// DecodePathItem decodes a single path item from JSON or YAML.
func DecodePathItem(data []byte, opts ...Option) (*oas.PathItem, error) {
	return decode[oas.PathItem](data, opts)
}

// DecodePaths decodes a map of path templates to path items.
func DecodePaths(data []byte, opts ...Option) (oas.Paths, error) {
	paths, err := decode[oas.Paths](data, opts)
	if err != nil {
		return nil, err
	}
	return *paths, nil
}

// DecodeOperation decodes a single operation.
func DecodeOperation(data []byte, opts ...Option) (*oas.Operation, error) {
	return decode[oas.Operation](data, opts)
}

// ReadFile reads and decodes a path item file. The format is taken from
// WithFormat, then the file extension, then the content.
func ReadFile(path string, opts ...Option) (*oas.PathItem, error) {
	data, err := readFile(path, opts)
	if err != nil {
		return nil, err
	}
	return DecodePathItem(data, append([]Option{WithSourceName(path), withPathFormat(path)}, opts...)...)
}

// ReadPathsFile reads and decodes a file holding a paths map.
func ReadPathsFile(path string, opts ...Option) (oas.Paths, error) {
	data, err := readFile(path, opts)
	if err != nil {
		return nil, err
	}
	return DecodePaths(data, append([]Option{WithSourceName(path), withPathFormat(path)}, opts...)...)
}

// ReadAll reads r up to the configured size limit.
func ReadAll(r io.Reader, opts ...Option) ([]byte, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid options: %w", err)
	}
	data, err := io.ReadAll(io.LimitReader(r, cfg.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("codec: failed to read %s: %w", cfg.sourceName, err)
	}
	if int64(len(data)) > cfg.maxSize {
		return nil, tooLarge(cfg, int64(len(data)))
	}
	return data, nil
}

// Encode writes v, any oas model value, as JSON (the default) or YAML.
// Model values passed by value, such as an oas.PathItem, are encoded as if
// passed by pointer.
func Encode(v any, opts ...Option) ([]byte, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid options: %w", err)
	}
	v = modelPointer(v)

	format := cfg.format
	if format == FormatUnknown {
		format = FormatJSON
	}
	cfg.logger.Debug("encoding", "source", cfg.sourceName, "format", string(format), "indent", cfg.indent)

	switch format {
	case FormatYAML:
		return encodeYAML(v, cfg.indent)
	default:
		if cfg.indent > 0 {
			out, err := json.MarshalIndent(v, "", indentString(cfg.indent))
			if err != nil {
				return nil, fmt.Errorf("codec: failed to encode JSON: %w", err)
			}
			return append(out, '\n'), nil
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("codec: failed to encode JSON: %w", err)
		}
		return out, nil
	}
}

// DetectFormat returns the format decode would use for data with opts.
func DetectFormat(data []byte, opts ...Option) (Format, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return FormatUnknown, fmt.Errorf("codec: invalid options: %w", err)
	}
	return resolveFormat(cfg, data), nil
}

// modelPointer returns a pointer to a copy of v when v is a non-pointer
// value whose pointer type implements jsontree.Encoder. Other values are
// returned unchanged.
func modelPointer(v any) any {
	if v == nil {
		return nil
	}
	if _, ok := v.(jsontree.Encoder); ok {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return v
	}
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	if _, ok := ptr.Interface().(jsontree.Encoder); ok {
		return ptr.Interface()
	}
	return v
}

func encodeYAML(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("codec: failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("codec: failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func indentString(n int) string {
	return string(bytes.Repeat([]byte{' '}, n))
}

// decode parses data into a generic tree and hands it to T's decoder.
func decode[T any, PT interface {
	*T
	jsontree.Decoder
}](data []byte, opts []Option) (*T, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid options: %w", err)
	}
	if int64(len(data)) > cfg.maxSize {
		return nil, tooLarge(cfg, int64(len(data)))
	}

	format := resolveFormat(cfg, data)
	if format == FormatUnknown {
		return nil, &oaserrors.ParseError{
			Path:    cfg.sourceName,
			Message: "empty document",
		}
	}
	log := cfg.logger.With("source", cfg.sourceName, "format", string(format))
	log.Debug("decoding", "size", FormatBytes(int64(len(data))))

	raw, err := parseTree(data, format, cfg.sourceName)
	if err != nil {
		log.Warn("parse failed", "error", err)
		return nil, err
	}

	out := PT(new(T))
	if err := out.DecodeTree(raw, ""); err != nil {
		var decErr *oaserrors.DecodeError
		if errors.As(err, &decErr) {
			log.Warn("decode failed", "path", decErr.Path, "expected", decErr.Expected, "actual", decErr.Actual)
		}
		return nil, err
	}
	log.Debug("decoded")
	return (*T)(out), nil
}

// parseTree turns JSON or YAML bytes into map[string]any / []any / scalars.
func parseTree(data []byte, format Format, source string) (any, error) {
	var raw any
	if format == FormatJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, jsonParseError(data, err, source)
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, yamlParseError(err, source)
	}
	return jsontree.Normalize(raw), nil
}

func jsonParseError(data []byte, err error, source string) error {
	pe := &oaserrors.ParseError{Path: source, Format: string(FormatJSON), Cause: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Line, pe.Column = lineColumn(data, syntaxErr.Offset)
	}
	return pe
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	col := int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col
}

var yamlPosition = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

func yamlParseError(err error, source string) error {
	pe := &oaserrors.ParseError{Path: source, Format: string(FormatYAML), Cause: err}
	if m := yamlPosition.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			pe.Column, _ = strconv.Atoi(m[2])
		}
	}
	return pe
}

func resolveFormat(cfg *config, data []byte) Format {
	if cfg.format != FormatUnknown {
		return cfg.format
	}
	return DetectFormatFromContent(data)
}

// withPathFormat applies the file extension's format unless it is unknown.
// Options passed after it, such as WithFormat, still take precedence.
func withPathFormat(path string) Option {
	return func(cfg *config) error {
		if f := DetectFormatFromPath(path); f != FormatUnknown {
			cfg.format = f
		}
		return nil
	}
}

func readFile(path string, opts []Option) ([]byte, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid options: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("codec: failed to read %s: %w", path, err)
	}
	if info.Size() > cfg.maxSize {
		cfg.sourceName = path
		return nil, tooLarge(cfg, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: failed to read %s: %w", path, err)
	}
	cfg.logger.Debug("read file", "path", path, "size", FormatBytes(int64(len(data))))
	return data, nil
}

func tooLarge(cfg *config, size int64) error {
	return &oaserrors.ConfigError{
		Option:  "max-size",
		Value:   FormatBytes(size),
		Message: fmt.Sprintf("%s exceeds the %s limit", cfg.sourceName, FormatBytes(cfg.maxSize)),
	}
}
