package oas

import (
	"github.com/oaskit/oaspath/internal/jsontree"
)

// Parameter locations.
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed in a cookie
	ParamInCookie = "cookie"
)

// Parameter describes a single operation parameter.
// A parameter is identified by the combination of Name and In.
//
// Schema, Examples and Content are carried as raw JSON objects; their
// structure is defined by the surrounding document model.
type Parameter struct {
	Name            string
	In              string // "query", "header", "path", "cookie"
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool

	Style         string
	Explode       *bool
	AllowReserved bool
	Schema        map[string]any
	Example       any
	Examples      map[string]any
	Content       map[string]any

	Extensions Extensions
}

// Key returns the (name, location) pair that identifies the parameter.
func (p *Parameter) Key() (name, in string) {
	return p.Name, p.In
}

// EncodeTree returns the parameter as an ordered JSON object.
func (p *Parameter) EncodeTree() any {
	o := jsontree.NewObject(13 + len(p.Extensions))
	o.SetIfNotEmpty("name", p.Name)
	o.SetIfNotEmpty("in", p.In)
	o.SetIfNotEmpty("description", p.Description)
	o.SetIfTrue("required", p.Required)
	o.SetIfTrue("deprecated", p.Deprecated)
	o.SetIfTrue("allowEmptyValue", p.AllowEmptyValue)
	o.SetIfNotEmpty("style", p.Style)
	if p.Explode != nil {
		o.Set("explode", *p.Explode)
	}
	o.SetIfTrue("allowReserved", p.AllowReserved)
	o.SetMap("schema", p.Schema)
	o.SetIfNotNil("example", p.Example)
	o.SetMap("examples", p.Examples)
	o.SetMap("content", p.Content)
	o.MergeExtensions(p.Extensions)
	return o
}

// DecodeTree fills p from a decoded JSON object.
func (p *Parameter) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	var out Parameter
	if out.Name, err = jsontree.GetString(m, "name", path); err != nil {
		return err
	}
	if out.In, err = jsontree.GetString(m, "in", path); err != nil {
		return err
	}
	if out.Description, err = jsontree.GetString(m, "description", path); err != nil {
		return err
	}
	if out.Required, err = jsontree.GetBool(m, "required", path); err != nil {
		return err
	}
	if out.Deprecated, err = jsontree.GetBool(m, "deprecated", path); err != nil {
		return err
	}
	if out.AllowEmptyValue, err = jsontree.GetBool(m, "allowEmptyValue", path); err != nil {
		return err
	}
	if out.Style, err = jsontree.GetString(m, "style", path); err != nil {
		return err
	}
	if out.Explode, err = jsontree.GetBoolPtr(m, "explode", path); err != nil {
		return err
	}
	if out.AllowReserved, err = jsontree.GetBool(m, "allowReserved", path); err != nil {
		return err
	}
	if out.Schema, err = decodeRawMap(m, "schema", path); err != nil {
		return err
	}
	out.Example = jsontree.Clone(m["example"])
	if out.Examples, err = decodeRawMap(m, "examples", path); err != nil {
		return err
	}
	if out.Content, err = decodeRawMap(m, "content", path); err != nil {
		return err
	}
	out.Extensions = decodeExtensions(m)
	*p = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *Parameter) MarshalJSON() ([]byte, error) { return marshalTree(p) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parameter) UnmarshalJSON(data []byte) error { return unmarshalTree(data, p) }

// MarshalYAML implements yaml.Marshaler.
func (p *Parameter) MarshalYAML() (any, error) { return marshalTreeYAML(p) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Parameter) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, p)
}

// Equals compares two parameters structurally.
func (p *Parameter) Equals(other *Parameter) bool {
	if p == nil || other == nil {
		return p == other
	}

	// Boolean fields (cheapest)
	if p.Required != other.Required ||
		p.Deprecated != other.Deprecated ||
		p.AllowEmptyValue != other.AllowEmptyValue ||
		p.AllowReserved != other.AllowReserved {
		return false
	}
	if (p.Explode == nil) != (other.Explode == nil) {
		return false
	}
	if p.Explode != nil && *p.Explode != *other.Explode {
		return false
	}

	// String fields
	if p.Name != other.Name || p.In != other.In ||
		p.Description != other.Description || p.Style != other.Style {
		return false
	}

	// Raw JSON values
	if !jsontree.EqualMaps(p.Schema, other.Schema) ||
		!jsontree.Equal(p.Example, other.Example) ||
		!jsontree.EqualMaps(p.Examples, other.Examples) ||
		!jsontree.EqualMaps(p.Content, other.Content) {
		return false
	}

	return p.Extensions.Equals(other.Extensions)
}

// Clone returns a deep copy.
func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	out := *p
	if p.Explode != nil {
		explode := *p.Explode
		out.Explode = &explode
	}
	out.Schema = jsontree.CloneMap(p.Schema)
	out.Example = jsontree.Clone(p.Example)
	out.Examples = jsontree.CloneMap(p.Examples)
	out.Content = jsontree.CloneMap(p.Content)
	out.Extensions = p.Extensions.Clone()
	return &out
}
