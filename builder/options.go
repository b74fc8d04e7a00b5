package builder

import (
	"errors"
	"fmt"

	"github.com/oaskit/oaspath/oas"
)

// PathOption configures the path-level fields of a built path item.
type PathOption func(*pathConfig)

// pathConfig holds the path-level fields applied via options.
type pathConfig struct {
	summary     string
	description string
	servers     []*oas.Server
	parameters  []*oas.RefOr[oas.Parameter]
	extensions  oas.Extensions
	errs        []error // reported by CheckOptions and PathsBuilder.AddOperation
}

func newPathConfig(opts []PathOption) *pathConfig {
	cfg := &pathConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// apply copies the configured fields into item.
func (cfg *pathConfig) apply(item *oas.PathItem) {
	item.Summary = cfg.summary
	item.Description = cfg.description
	item.Servers = cfg.servers
	item.Parameters = cfg.parameters
	item.Extensions = cfg.extensions
}

// WithSummary sets the path item summary.
func WithSummary(summary string) PathOption {
	return func(cfg *pathConfig) {
		cfg.summary = summary
	}
}

// WithDescription sets the path item description.
func WithDescription(description string) PathOption {
	return func(cfg *pathConfig) {
		cfg.description = description
	}
}

// WithServers appends servers that override the document servers for this path.
func WithServers(servers ...*oas.Server) PathOption {
	return func(cfg *pathConfig) {
		cfg.servers = append(cfg.servers, servers...)
	}
}

// WithServerURL appends a server with the given URL.
func WithServerURL(url string) PathOption {
	return WithServers(&oas.Server{URL: url})
}

// WithParameters appends path-level parameters, inline or by reference.
func WithParameters(params ...*oas.RefOr[oas.Parameter]) PathOption {
	return func(cfg *pathConfig) {
		cfg.parameters = append(cfg.parameters, params...)
	}
}

// WithParameter appends an inline path-level parameter.
func WithParameter(param *oas.Parameter) PathOption {
	return WithParameters(oas.NewValue(param))
}

// WithParameterRef appends a reference to a parameter defined elsewhere.
func WithParameterRef(ref string) PathOption {
	return WithParameters(oas.NewRef[oas.Parameter](ref))
}

// CheckOptions returns the errors opts would record, joined, or nil.
// The factories drop invalid option values without reporting them.
func CheckOptions(opts ...PathOption) error {
	return errors.Join(newPathConfig(opts).errs...)
}

// WithExtension sets a specification extension on the path item.
// Keys must start with "x-". Other keys are dropped; CheckOptions and
// PathsBuilder.AddOperation report them. PathsBuilder.Add receives a built
// item and cannot see them.
func WithExtension(key string, value any) PathOption {
	return func(cfg *pathConfig) {
		if err := cfg.extensions.Set(key, value); err != nil {
			cfg.errs = append(cfg.errs, &BuilderError{
				Component: ComponentExtension,
				Field:     key,
				Message:   fmt.Sprintf("extension key %q must start with \"x-\"", key),
			})
		}
	}
}
