package oas

import (
	"maps"
	"slices"

	"github.com/oaskit/oaspath/internal/jsontree"
)

// Server represents a Server object (OAS 3.0+)
type Server struct {
	URL         string
	Description string
	Variables   map[string]*ServerVariable
	Extensions  Extensions
}

// ServerVariable represents a Server Variable object (OAS 3.0+)
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
	Extensions  Extensions
}

// EncodeTree returns the server as an ordered JSON object.
func (s *Server) EncodeTree() any {
	o := jsontree.NewObject(3 + len(s.Extensions))
	o.Set("url", s.URL)
	o.SetIfNotEmpty("description", s.Description)
	if len(s.Variables) > 0 {
		vars := jsontree.NewObject(len(s.Variables))
		for _, name := range slices.Sorted(maps.Keys(s.Variables)) {
			jsontree.SetTree(vars, name, s.Variables[name])
		}
		o.Set("variables", vars)
	}
	o.MergeExtensions(s.Extensions)
	return o
}

// DecodeTree fills s from a decoded JSON object.
func (s *Server) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	var out Server
	if out.URL, err = jsontree.GetString(m, "url", path); err != nil {
		return err
	}
	if out.Description, err = jsontree.GetString(m, "description", path); err != nil {
		return err
	}
	vars, err := jsontree.GetObject(m, "variables", path)
	if err != nil {
		return err
	}
	if vars != nil {
		out.Variables = make(map[string]*ServerVariable, len(vars))
		varsPath := jsontree.Join(path, "variables")
		for name, raw := range vars {
			sv := &ServerVariable{}
			if err := sv.DecodeTree(raw, jsontree.Join(varsPath, name)); err != nil {
				return err
			}
			out.Variables[name] = sv
		}
	}
	out.Extensions = decodeExtensions(m)
	*s = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Server) MarshalJSON() ([]byte, error) { return marshalTree(s) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *Server) UnmarshalJSON(data []byte) error { return unmarshalTree(data, s) }

// MarshalYAML implements yaml.Marshaler.
func (s *Server) MarshalYAML() (any, error) { return marshalTreeYAML(s) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Server) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, s)
}

// Equals compares two servers structurally.
func (s *Server) Equals(other *Server) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.URL != other.URL || s.Description != other.Description {
		return false
	}
	if !maps.EqualFunc(s.Variables, other.Variables, (*ServerVariable).Equals) {
		return false
	}
	return s.Extensions.Equals(other.Extensions)
}

// Clone returns a deep copy.
func (s *Server) Clone() *Server {
	if s == nil {
		return nil
	}
	out := &Server{
		URL:         s.URL,
		Description: s.Description,
		Extensions:  s.Extensions.Clone(),
	}
	if s.Variables != nil {
		out.Variables = make(map[string]*ServerVariable, len(s.Variables))
		for k, v := range s.Variables {
			out.Variables[k] = v.Clone()
		}
	}
	return out
}

// EncodeTree returns the variable as an ordered JSON object.
func (sv *ServerVariable) EncodeTree() any {
	o := jsontree.NewObject(3 + len(sv.Extensions))
	o.SetStrings("enum", sv.Enum)
	o.Set("default", sv.Default)
	o.SetIfNotEmpty("description", sv.Description)
	o.MergeExtensions(sv.Extensions)
	return o
}

// DecodeTree fills sv from a decoded JSON object.
func (sv *ServerVariable) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	var out ServerVariable
	if out.Enum, err = jsontree.GetStrings(m, "enum", path); err != nil {
		return err
	}
	if out.Default, err = jsontree.GetString(m, "default", path); err != nil {
		return err
	}
	if out.Description, err = jsontree.GetString(m, "description", path); err != nil {
		return err
	}
	out.Extensions = decodeExtensions(m)
	*sv = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (sv *ServerVariable) MarshalJSON() ([]byte, error) { return marshalTree(sv) }

// UnmarshalJSON implements json.Unmarshaler.
func (sv *ServerVariable) UnmarshalJSON(data []byte) error { return unmarshalTree(data, sv) }

// MarshalYAML implements yaml.Marshaler.
func (sv *ServerVariable) MarshalYAML() (any, error) { return marshalTreeYAML(sv) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (sv *ServerVariable) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, sv)
}

// Equals compares two server variables structurally.
func (sv *ServerVariable) Equals(other *ServerVariable) bool {
	if sv == nil || other == nil {
		return sv == other
	}
	return slices.Equal(sv.Enum, other.Enum) &&
		sv.Default == other.Default &&
		sv.Description == other.Description &&
		sv.Extensions.Equals(other.Extensions)
}

// Clone returns a deep copy.
func (sv *ServerVariable) Clone() *ServerVariable {
	if sv == nil {
		return nil
	}
	return &ServerVariable{
		Enum:        slices.Clone(sv.Enum),
		Default:     sv.Default,
		Description: sv.Description,
		Extensions:  sv.Extensions.Clone(),
	}
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string
	URL         string
	Extensions  Extensions
}

// EncodeTree returns the external docs as an ordered JSON object.
func (e *ExternalDocs) EncodeTree() any {
	o := jsontree.NewObject(2 + len(e.Extensions))
	o.SetIfNotEmpty("description", e.Description)
	o.Set("url", e.URL)
	o.MergeExtensions(e.Extensions)
	return o
}

// DecodeTree fills e from a decoded JSON object.
func (e *ExternalDocs) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	var out ExternalDocs
	if out.Description, err = jsontree.GetString(m, "description", path); err != nil {
		return err
	}
	if out.URL, err = jsontree.GetString(m, "url", path); err != nil {
		return err
	}
	out.Extensions = decodeExtensions(m)
	*e = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (e *ExternalDocs) MarshalJSON() ([]byte, error) { return marshalTree(e) }

// UnmarshalJSON implements json.Unmarshaler.
func (e *ExternalDocs) UnmarshalJSON(data []byte) error { return unmarshalTree(data, e) }

// MarshalYAML implements yaml.Marshaler.
func (e *ExternalDocs) MarshalYAML() (any, error) { return marshalTreeYAML(e) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *ExternalDocs) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, e)
}

// Equals compares two external docs structurally.
func (e *ExternalDocs) Equals(other *ExternalDocs) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Description == other.Description &&
		e.URL == other.URL &&
		e.Extensions.Equals(other.Extensions)
}

// Clone returns a deep copy.
func (e *ExternalDocs) Clone() *ExternalDocs {
	if e == nil {
		return nil
	}
	return &ExternalDocs{
		Description: e.Description,
		URL:         e.URL,
		Extensions:  e.Extensions.Clone(),
	}
}
