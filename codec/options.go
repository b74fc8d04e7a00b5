package codec

import (
	"github.com/oaskit/oaspath/oaserrors"
)

// DefaultMaxSize is the input size limit applied when WithMaxSize is not used.
const DefaultMaxSize int64 = 10 << 20

// maxIndent bounds WithIndent.
const maxIndent = 8

// Option configures a decode or encode call.
type Option func(*config) error

// config holds configuration for a codec call.
type config struct {
	format     Format
	indent     int
	logger     Logger
	sourceName string
	maxSize    int64
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		format:     FormatUnknown,
		logger:     NopLogger{},
		sourceName: "<input>",
		maxSize:    DefaultMaxSize,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithFormat forces the input or output format instead of detecting it.
// FormatUnknown restores detection.
func WithFormat(format Format) Option {
	return func(cfg *config) error {
		switch format {
		case FormatJSON, FormatYAML, FormatUnknown:
			cfg.format = format
			return nil
		}
		return &oaserrors.ConfigError{
			Option:  "format",
			Value:   string(format),
			Message: "must be json or yaml",
		}
	}
}

// WithIndent sets the number of spaces used to indent encoded output.
// Zero produces compact JSON and the YAML library's default indentation.
func WithIndent(spaces int) Option {
	return func(cfg *config) error {
		if spaces < 0 || spaces > maxIndent {
			return &oaserrors.ConfigError{
				Option:  "indent",
				Value:   spaces,
				Message: "must be between 0 and 8",
			}
		}
		cfg.indent = spaces
		return nil
	}
}

// WithLogger sets the logger. A nil logger restores the NopLogger default.
func WithLogger(logger Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithSourceName sets the name used for the input in errors and logs.
func WithSourceName(name string) Option {
	return func(cfg *config) error {
		cfg.sourceName = name
		return nil
	}
}

// WithMaxSize limits the input size in bytes. Zero means DefaultMaxSize.
func WithMaxSize(limit int64) Option {
	return func(cfg *config) error {
		if limit < 0 {
			return &oaserrors.ConfigError{
				Option:  "max-size",
				Value:   limit,
				Message: "must not be negative",
			}
		}
		if limit == 0 {
			limit = DefaultMaxSize
		}
		cfg.maxSize = limit
		return nil
	}
}
