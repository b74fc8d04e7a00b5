package oas

import (
	"encoding/json"

	"github.com/oaskit/oaspath/internal/jsontree"
	"github.com/oaskit/oaspath/oaserrors"
)

// Reference represents a JSON Reference ($ref) to an object defined
// elsewhere in the document.
type Reference struct {
	Ref         string
	Summary     string // OAS 3.1+
	Description string // OAS 3.1+
}

// EncodeTree returns the reference as an ordered JSON object.
func (r *Reference) EncodeTree() any {
	o := jsontree.NewObject(3)
	o.Set("$ref", r.Ref)
	o.SetIfNotEmpty("summary", r.Summary)
	o.SetIfNotEmpty("description", r.Description)
	return o
}

// DecodeTree fills r from a decoded JSON object.
func (r *Reference) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	var out Reference
	if out.Ref, err = jsontree.GetString(m, "$ref", path); err != nil {
		return err
	}
	if out.Summary, err = jsontree.GetString(m, "summary", path); err != nil {
		return err
	}
	if out.Description, err = jsontree.GetString(m, "description", path); err != nil {
		return err
	}
	*r = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *Reference) MarshalJSON() ([]byte, error) { return marshalTree(r) }

// UnmarshalJSON implements json.Unmarshaler.
func (r *Reference) UnmarshalJSON(data []byte) error { return unmarshalTree(data, r) }

// MarshalYAML implements yaml.Marshaler.
func (r *Reference) MarshalYAML() (any, error) { return marshalTreeYAML(r) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Reference) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, r)
}

// Equals reports whether two references are equal.
func (r *Reference) Equals(other *Reference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return *r == *other
}

// RefOr holds either an inline value of T or a reference to one.
// At most one of Ref and Value is set; when both are set Ref wins on encode.
//
// T is expected to be one of the model types in this package. Other types
// are encoded and decoded through encoding/json.
type RefOr[T any] struct {
	Ref   *Reference
	Value *T
}

// NewRef creates a reference variant.
func NewRef[T any](ref string) *RefOr[T] {
	return &RefOr[T]{Ref: &Reference{Ref: ref}}
}

// NewValue creates an inline variant.
func NewValue[T any](v *T) *RefOr[T] {
	return &RefOr[T]{Value: v}
}

// IsRef reports whether r is the reference variant.
func (r *RefOr[T]) IsRef() bool {
	return r != nil && r.Ref != nil
}

// EncodeTree encodes whichever variant is set. An unset RefOr encodes as {}.
func (r *RefOr[T]) EncodeTree() any {
	switch {
	case r.Ref != nil:
		return r.Ref.EncodeTree()
	case r.Value != nil:
		if enc, ok := any(r.Value).(jsontree.Encoder); ok {
			return enc.EncodeTree()
		}
		return foreignTree(r.Value)
	default:
		return jsontree.NewObject(0)
	}
}

// DecodeTree selects the reference variant when the object has a "$ref"
// key and the inline variant otherwise.
func (r *RefOr[T]) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	if _, ok := m["$ref"]; ok {
		var ref Reference
		if err := ref.DecodeTree(m, path); err != nil {
			return err
		}
		*r = RefOr[T]{Ref: &ref}
		return nil
	}

	value := new(T)
	if dec, ok := any(value).(jsontree.Decoder); ok {
		if err := dec.DecodeTree(m, path); err != nil {
			return err
		}
	} else if err := decodeForeign(m, path, value); err != nil {
		return err
	}
	*r = RefOr[T]{Value: value}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *RefOr[T]) MarshalJSON() ([]byte, error) {
	return marshalTree(r)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RefOr[T]) UnmarshalJSON(data []byte) error {
	return unmarshalTree(data, r)
}

// MarshalYAML implements yaml.Marshaler.
func (r *RefOr[T]) MarshalYAML() (any, error) {
	return marshalTreeYAML(r)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *RefOr[T]) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, r)
}

// Equals compares two RefOr values. Inline values are compared with their
// Equals method when T has one, and by JSON value otherwise.
func (r *RefOr[T]) Equals(other *RefOr[T]) bool {
	if r == nil || other == nil {
		return r == other
	}
	if !r.Ref.Equals(other.Ref) {
		return false
	}
	if r.Value == nil || other.Value == nil {
		return r.Value == other.Value
	}
	if eq, ok := any(r.Value).(interface{ Equals(*T) bool }); ok {
		return eq.Equals(other.Value)
	}
	return jsontree.Equal(jsontree.Plain(foreignTree(r.Value)), jsontree.Plain(foreignTree(other.Value)))
}

// Clone returns a deep copy.
func (r *RefOr[T]) Clone() *RefOr[T] {
	if r == nil {
		return nil
	}
	out := &RefOr[T]{}
	if r.Ref != nil {
		ref := *r.Ref
		out.Ref = &ref
	}
	if r.Value != nil {
		if c, ok := any(r.Value).(interface{ Clone() *T }); ok {
			out.Value = c.Clone()
		} else {
			v := *r.Value
			out.Value = &v
		}
	}
	return out
}

// foreignTree encodes a value that is not a model type through encoding/json.
func foreignTree(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	return raw
}

// decodeForeign decodes a tree into a value that is not a model type.
func decodeForeign(v any, path string, target any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &oaserrors.DecodeError{Path: path, Cause: err}
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &oaserrors.DecodeError{Path: path, Cause: err}
	}
	return nil
}

// PathItemRef is a RefOr[PathItem] that can also be built from a PathItem,
// which lets the builder package's per-method factories produce it directly.
type PathItemRef struct {
	RefOr[PathItem]
}

// NewPathItemRef creates a reference to a path item defined elsewhere.
func NewPathItemRef(ref string) *PathItemRef {
	return &PathItemRef{RefOr[PathItem]{Ref: &Reference{Ref: ref}}}
}

// NewPathItemValue wraps an inline path item.
func NewPathItemValue(item *PathItem) *PathItemRef {
	return &PathItemRef{RefOr[PathItem]{Value: item}}
}

// SetPathItem makes r the inline variant holding a copy of item.
func (r *PathItemRef) SetPathItem(item *PathItem) {
	v := &PathItem{}
	v.SetPathItem(item)
	r.RefOr = RefOr[PathItem]{Value: v}
}

// Equals compares two path item references.
func (r *PathItemRef) Equals(other *PathItemRef) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.RefOr.Equals(&other.RefOr)
}

// Clone returns a deep copy.
func (r *PathItemRef) Clone() *PathItemRef {
	if r == nil {
		return nil
	}
	return &PathItemRef{*r.RefOr.Clone()}
}
