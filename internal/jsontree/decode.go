package jsontree

import (
	"fmt"
	"strconv"

	"github.com/oaskit/oaspath/oaserrors"
)

// Decoder is implemented by values that decode themselves from a tree.
// path is the location of v in the enclosing document and is used only
// for error reporting.
type Decoder interface {
	DecodeTree(v any, path string) error
}

// Normalize rewrites a decoded YAML tree into the shape encoding/json
// produces: mapping keys become strings and nested maps become
// map[string]any. Numbers are left as decoded.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = Normalize(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = Normalize(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = Normalize(item)
		}
		return t
	default:
		return v
	}
}

// Kind names the JSON kind of a tree value for error messages.
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any, map[any]any, *Object:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Join appends an object key to a path.
func Join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Index appends an array index to a path.
func Index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// Mismatch builds the DecodeError for a value of the wrong kind.
func Mismatch(path, expected string, got any) error {
	return &oaserrors.DecodeError{
		Path:     path,
		Expected: expected,
		Actual:   Kind(got),
	}
}

// AsObject asserts that v is an object.
func AsObject(v any, path string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Mismatch(path, "object", v)
	}
	return m, nil
}

// GetString returns m[key] as a string. A missing key yields "".
func GetString(m map[string]any, key, path string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", Mismatch(Join(path, key), "string", v)
	}
	return s, nil
}

// GetBool returns m[key] as a bool. A missing key yields false.
func GetBool(m map[string]any, key, path string) (bool, error) {
	v, ok := m[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, Mismatch(Join(path, key), "boolean", v)
	}
	return b, nil
}

// GetBoolPtr returns m[key] as a *bool, nil when the key is missing.
func GetBoolPtr(m map[string]any, key, path string) (*bool, error) {
	if _, ok := m[key]; !ok {
		return nil, nil
	}
	b, err := GetBool(m, key, path)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetArray returns m[key] as an array, nil when the key is missing.
func GetArray(m map[string]any, key, path string) ([]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, Mismatch(Join(path, key), "array", v)
	}
	return arr, nil
}

// GetObject returns m[key] as an object, nil when the key is missing.
func GetObject(m map[string]any, key, path string) (map[string]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	return AsObject(v, Join(path, key))
}

// GetStrings returns m[key] as a string slice.
func GetStrings(m map[string]any, key, path string) ([]string, error) {
	arr, err := GetArray(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	out := make([]string, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, Mismatch(Index(Join(path, key), i), "string", item)
		}
		out[i] = s
	}
	return out, nil
}

// DecodeField decodes m[key] into a freshly allocated T when the key is present.
func DecodeField[T any, PT interface {
	*T
	Decoder
}](m map[string]any, key, path string) (PT, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	out := PT(new(T))
	if err := out.DecodeTree(v, Join(path, key)); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeSlice decodes the array at m[key] element by element.
func DecodeSlice[T any, PT interface {
	*T
	Decoder
}](m map[string]any, key, path string) ([]PT, error) {
	arr, err := GetArray(m, key, path)
	if err != nil || arr == nil {
		return nil, err
	}
	out := make([]PT, len(arr))
	for i, item := range arr {
		elem := PT(new(T))
		if err := elem.DecodeTree(item, Index(Join(path, key), i)); err != nil {
			return nil, err
		}
		out[i] = elem
	}
	return out, nil
}

// Extensions collects x-* keys. Returns nil if there are none.
func Extensions(m map[string]any) map[string]any {
	var extra map[string]any
	for k, v := range m {
		if IsExtensionKey(k) {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[k] = v
		}
	}
	return extra
}

// IsExtensionKey reports whether k follows the specification extension
// naming convention.
func IsExtensionKey(k string) bool {
	return len(k) >= 2 && k[0] == 'x' && k[1] == '-'
}
