package oas

import (
	"fmt"
	"maps"
	"slices"

	"github.com/oaskit/oaspath/internal/jsontree"
)

// Extensions holds specification extensions: vendor fields whose names start
// with "x-". Values are raw JSON values (map[string]any, []any, string,
// float64, bool, nil; integers when decoded from YAML).
type Extensions map[string]any

// IsExtensionKey reports whether key names a specification extension.
func IsExtensionKey(key string) bool {
	return jsontree.IsExtensionKey(key)
}

// Get returns the value of an extension.
func (e Extensions) Get(key string) (any, bool) {
	v, ok := e[key]
	return v, ok
}

// Set stores an extension, allocating the map if needed.
// Keys that do not start with "x-" are rejected because they would not
// survive a decode.
func (e *Extensions) Set(key string, value any) error {
	if !IsExtensionKey(key) {
		return fmt.Errorf("oas: extension key %q must start with \"x-\"", key)
	}
	if *e == nil {
		*e = make(Extensions)
	}
	(*e)[key] = value
	return nil
}

// Keys returns the extension names in sorted order.
func (e Extensions) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

// Clone returns a deep copy.
func (e Extensions) Clone() Extensions {
	return Extensions(jsontree.CloneMap(e))
}

// Equals compares two extension maps by JSON value. Nil and empty maps are equal.
func (e Extensions) Equals(other Extensions) bool {
	return jsontree.EqualMaps(e, other)
}

// decodeExtensions collects the x-* keys of a decoded object.
func decodeExtensions(m map[string]any) Extensions {
	ext := jsontree.Extensions(m)
	if ext == nil {
		return nil
	}
	return Extensions(jsontree.CloneMap(ext))
}
