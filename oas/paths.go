package oas

import (
	"maps"
	"slices"

	"github.com/oaskit/oaspath/internal/jsontree"
)

// Paths maps URL path templates ("/pets/{id}") to path items.
type Paths map[string]*PathItemRef

// SortedKeys returns the path templates in lexical order.
func (p Paths) SortedKeys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Get returns the inline path item for path, or nil when the path is absent
// or holds a reference.
func (p Paths) Get(path string) *PathItem {
	if r := p[path]; r != nil {
		return r.Value
	}
	return nil
}

// EncodeTree returns the paths as a JSON object ordered by path template.
func (p Paths) EncodeTree() any {
	o := jsontree.NewObject(len(p))
	for _, key := range p.SortedKeys() {
		jsontree.SetTree(o, key, p[key])
	}
	return o
}

// DecodeTree fills p from a decoded JSON object. Extension keys are skipped.
func (p *Paths) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	out := make(Paths, len(m))
	for key, raw := range m {
		if IsExtensionKey(key) {
			continue
		}
		item := &PathItemRef{}
		if err := item.DecodeTree(raw, jsontree.Join(path, key)); err != nil {
			return err
		}
		out[key] = item
	}
	*p = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Paths) MarshalJSON() ([]byte, error) { return marshalTree(p) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Paths) UnmarshalJSON(data []byte) error { return unmarshalTree(data, p) }

// MarshalYAML implements yaml.Marshaler.
func (p Paths) MarshalYAML() (any, error) { return marshalTreeYAML(p) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Paths) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, p)
}

// Equals compares two path maps. Nil and empty maps are equal.
func (p Paths) Equals(other Paths) bool {
	return maps.EqualFunc(p, other, (*PathItemRef).Equals)
}

// Clone returns a deep copy.
func (p Paths) Clone() Paths {
	if p == nil {
		return nil
	}
	out := make(Paths, len(p))
	for k, v := range p {
		out[k] = v.Clone()
	}
	return out
}
