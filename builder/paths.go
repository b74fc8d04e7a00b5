package builder

import (
	"errors"
	"strings"

	"github.com/oaskit/oaspath/oas"
)

// PathsBuilder assembles an oas.Paths map.
// Adding to an existing inline path merges into it.
type PathsBuilder struct {
	paths oas.Paths
	errs  []error
}

// NewPaths creates an empty PathsBuilder.
func NewPaths() *PathsBuilder {
	return &PathsBuilder{paths: make(oas.Paths)}
}

// Add merges item into the entry for path. The item is copied; later calls
// overwrite operation slots set by earlier ones.
func (b *PathsBuilder) Add(path string, item *oas.PathItem) *PathsBuilder {
	if !b.checkPath(path) || item == nil {
		return b
	}
	existing, ok := b.paths[path]
	switch {
	case !ok:
		b.paths[path] = oas.NewPathItemValue(item.Clone())
	case existing.IsRef():
		b.errs = append(b.errs, NewRefConflictError(path))
	default:
		existing.Value.Merge(item.Clone())
	}
	return b
}

// AddOperation adds op under method m of path, with the given path-level options.
func (b *PathsBuilder) AddOperation(path string, m oas.Method, op *oas.Operation, opts ...PathOption) *PathsBuilder {
	if !m.IsValid() {
		b.errs = append(b.errs, NewInvalidMethodError(string(m), path))
		return b
	}
	cfg := newPathConfig(opts)
	for _, err := range cfg.errs {
		if be, ok := err.(*BuilderError); ok {
			be.Path = path
		}
		b.errs = append(b.errs, err)
	}
	item := &oas.PathItem{}
	cfg.apply(item)
	item.SetOperation(m, op)
	return b.Add(path, item)
}

// AddRef sets the entry for path to a reference. It replaces any entry
// already present.
func (b *PathsBuilder) AddRef(path, ref string) *PathsBuilder {
	if b.checkPath(path) {
		b.paths[path] = oas.NewPathItemRef(ref)
	}
	return b
}

// Build returns the assembled paths and every error collected while building.
func (b *PathsBuilder) Build() (oas.Paths, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return b.paths.Clone(), nil
}

func (b *PathsBuilder) checkPath(path string) bool {
	if !strings.HasPrefix(path, "/") {
		b.errs = append(b.errs, NewInvalidPathError(path))
		return false
	}
	return true
}
