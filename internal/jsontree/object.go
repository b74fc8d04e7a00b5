package jsontree

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Object is a JSON object that remembers the order keys were set in.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty Object with room for capacity keys.
func NewObject(capacity int) *Object {
	return &Object{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// Set stores value under key. Setting an existing key replaces the value
// and keeps its original position.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// SetIfNotEmpty sets a string field only if it is not empty.
func (o *Object) SetIfNotEmpty(key, value string) {
	if value != "" {
		o.Set(key, value)
	}
}

// SetIfTrue sets a boolean field only if it is true.
func (o *Object) SetIfTrue(key string, value bool) {
	if value {
		o.Set(key, value)
	}
}

// SetIfNotNil sets a field only if value is not nil.
// Use SetTree for typed pointers, which would otherwise be wrapped in a
// non-nil interface.
func (o *Object) SetIfNotNil(key string, value any) {
	if value != nil {
		o.Set(key, value)
	}
}

// SetStrings sets a string slice field only if it has elements.
func (o *Object) SetStrings(key string, value []string) {
	if len(value) == 0 {
		return
	}
	arr := make([]any, len(value))
	for i, s := range value {
		arr[i] = s
	}
	o.Set(key, arr)
}

// SetMap sets a raw map field only if it has entries.
func (o *Object) SetMap(key string, value map[string]any) {
	if len(value) > 0 {
		o.Set(key, value)
	}
}

// MergeExtensions appends extension fields after the known fields,
// in sorted key order so output is deterministic.
// Keys that collide with an already-set field are skipped.
func (o *Object) MergeExtensions(ext map[string]any) {
	if len(ext) == 0 {
		return
	}
	for _, k := range slices.Sorted(maps.Keys(ext)) {
		if _, taken := o.values[k]; taken {
			continue
		}
		o.Set(k, ext[k])
	}
}

// Encoder is implemented by values that encode themselves into a tree.
type Encoder interface {
	EncodeTree() any
}

// SetTree sets key to v's tree when v is not a nil pointer.
func SetTree[T any, PT interface {
	*T
	Encoder
}](o *Object, key string, v PT) {
	if v != nil {
		o.Set(key, v.EncodeTree())
	}
}

// SetTreeSlice sets key to the trees of the non-nil elements. Nil elements
// are skipped, and the key is left unset when no element remains.
func SetTreeSlice[T any, PT interface {
	*T
	Encoder
}](o *Object, key string, items []PT) {
	arr := make([]any, 0, len(items))
	for _, item := range items {
		if item != nil {
			arr = append(arr, item.EncodeTree())
		}
	}
	if len(arr) > 0 {
		o.Set(key, arr)
	}
}

// MarshalJSON writes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML builds an ordered mapping node.
func (o *Object) MarshalYAML() (any, error) {
	return ValueToNode(o)
}

// ToMap converts the object and any nested objects into plain maps.
// Key order is lost.
func (o *Object) ToMap() map[string]any {
	m := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		m[k] = Plain(o.values[k])
	}
	return m
}

// Plain converts a tree that may contain *Object values into one made only
// of map[string]any, []any and scalars.
func Plain(v any) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Plain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Plain(item)
		}
		return out
	default:
		return v
	}
}
