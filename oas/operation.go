package oas

import (
	"maps"
	"slices"

	"github.com/oaskit/oaspath/internal/jsontree"
)

// SecurityRequirement maps security scheme names to the scopes required.
type SecurityRequirement map[string][]string

// Operation describes a single API operation on a path.
//
// RequestBody, Responses and Callbacks are kept as raw JSON objects.
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Parameters   []*RefOr[Parameter]
	RequestBody  map[string]any
	Responses    map[string]any
	Callbacks    map[string]any
	Deprecated   bool

	// Security is emitted whenever it is non-nil. An empty, non-nil slice
	// removes the document-level requirement for this operation.
	Security []SecurityRequirement
	Servers  []*Server

	Extensions Extensions
}

// EncodeTree returns the operation as an ordered JSON object.
func (op *Operation) EncodeTree() any {
	o := jsontree.NewObject(12 + len(op.Extensions))
	o.SetStrings("tags", op.Tags)
	o.SetIfNotEmpty("summary", op.Summary)
	o.SetIfNotEmpty("description", op.Description)
	jsontree.SetTree(o, "externalDocs", op.ExternalDocs)
	o.SetIfNotEmpty("operationId", op.OperationID)
	jsontree.SetTreeSlice(o, "parameters", op.Parameters)
	o.SetMap("requestBody", op.RequestBody)
	o.SetMap("responses", op.Responses)
	o.SetMap("callbacks", op.Callbacks)
	o.SetIfTrue("deprecated", op.Deprecated)
	if op.Security != nil {
		o.Set("security", encodeSecurity(op.Security))
	}
	jsontree.SetTreeSlice(o, "servers", op.Servers)
	o.MergeExtensions(op.Extensions)
	return o
}

func encodeSecurity(reqs []SecurityRequirement) []any {
	out := make([]any, len(reqs))
	for i, req := range reqs {
		obj := jsontree.NewObject(len(req))
		for _, name := range slices.Sorted(maps.Keys(req)) {
			scopes := make([]any, len(req[name]))
			for j, s := range req[name] {
				scopes[j] = s
			}
			obj.Set(name, scopes)
		}
		out[i] = obj
	}
	return out
}

// DecodeTree fills op from a decoded JSON object.
func (op *Operation) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	var out Operation
	if out.Tags, err = jsontree.GetStrings(m, "tags", path); err != nil {
		return err
	}
	if out.Summary, err = jsontree.GetString(m, "summary", path); err != nil {
		return err
	}
	if out.Description, err = jsontree.GetString(m, "description", path); err != nil {
		return err
	}
	if out.ExternalDocs, err = jsontree.DecodeField[ExternalDocs](m, "externalDocs", path); err != nil {
		return err
	}
	if out.OperationID, err = jsontree.GetString(m, "operationId", path); err != nil {
		return err
	}
	if out.Parameters, err = jsontree.DecodeSlice[RefOr[Parameter]](m, "parameters", path); err != nil {
		return err
	}
	if out.RequestBody, err = decodeRawMap(m, "requestBody", path); err != nil {
		return err
	}
	if out.Responses, err = decodeRawMap(m, "responses", path); err != nil {
		return err
	}
	if out.Callbacks, err = decodeRawMap(m, "callbacks", path); err != nil {
		return err
	}
	if out.Deprecated, err = jsontree.GetBool(m, "deprecated", path); err != nil {
		return err
	}
	if out.Security, err = decodeSecurity(m, path); err != nil {
		return err
	}
	if out.Servers, err = jsontree.DecodeSlice[Server](m, "servers", path); err != nil {
		return err
	}
	out.Extensions = decodeExtensions(m)
	*op = out
	return nil
}

func decodeSecurity(m map[string]any, path string) ([]SecurityRequirement, error) {
	arr, err := jsontree.GetArray(m, "security", path)
	if err != nil || arr == nil {
		return nil, err
	}
	secPath := jsontree.Join(path, "security")
	out := make([]SecurityRequirement, len(arr))
	for i, item := range arr {
		itemPath := jsontree.Index(secPath, i)
		obj, err := jsontree.AsObject(item, itemPath)
		if err != nil {
			return nil, err
		}
		req := make(SecurityRequirement, len(obj))
		for name := range obj {
			scopes, err := jsontree.GetStrings(obj, name, itemPath)
			if err != nil {
				return nil, err
			}
			if scopes == nil {
				scopes = []string{}
			}
			req[name] = scopes
		}
		out[i] = req
	}
	return out, nil
}

// MarshalJSON implements json.Marshaler.
func (op *Operation) MarshalJSON() ([]byte, error) { return marshalTree(op) }

// UnmarshalJSON implements json.Unmarshaler.
func (op *Operation) UnmarshalJSON(data []byte) error { return unmarshalTree(data, op) }

// MarshalYAML implements yaml.Marshaler.
func (op *Operation) MarshalYAML() (any, error) { return marshalTreeYAML(op) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (op *Operation) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, op)
}

// Equals compares two operations structurally.
func (op *Operation) Equals(other *Operation) bool {
	if op == nil || other == nil {
		return op == other
	}
	if op.Deprecated != other.Deprecated {
		return false
	}
	if op.OperationID != other.OperationID ||
		op.Summary != other.Summary ||
		op.Description != other.Description {
		return false
	}
	if !equalStrings(op.Tags, other.Tags) {
		return false
	}
	if !op.ExternalDocs.Equals(other.ExternalDocs) {
		return false
	}
	if !slices.EqualFunc(op.Parameters, other.Parameters, (*RefOr[Parameter]).Equals) {
		return false
	}
	if !jsontree.EqualMaps(op.RequestBody, other.RequestBody) ||
		!jsontree.EqualMaps(op.Responses, other.Responses) ||
		!jsontree.EqualMaps(op.Callbacks, other.Callbacks) {
		return false
	}
	if (op.Security == nil) != (other.Security == nil) ||
		!slices.EqualFunc(op.Security, other.Security, equalSecurityRequirement) {
		return false
	}
	if !slices.EqualFunc(op.Servers, other.Servers, (*Server).Equals) {
		return false
	}
	return op.Extensions.Equals(other.Extensions)
}

func equalSecurityRequirement(a, b SecurityRequirement) bool {
	return maps.EqualFunc(a, b, equalStrings)
}

// equalStrings treats nil and empty slices as equal.
func equalStrings(a, b []string) bool {
	return slices.Equal(a, b)
}

// Clone returns a deep copy.
func (op *Operation) Clone() *Operation {
	if op == nil {
		return nil
	}
	out := &Operation{
		Tags:         slices.Clone(op.Tags),
		Summary:      op.Summary,
		Description:  op.Description,
		ExternalDocs: op.ExternalDocs.Clone(),
		OperationID:  op.OperationID,
		Parameters:   cloneSlice(op.Parameters, (*RefOr[Parameter]).Clone),
		RequestBody:  jsontree.CloneMap(op.RequestBody),
		Responses:    jsontree.CloneMap(op.Responses),
		Callbacks:    jsontree.CloneMap(op.Callbacks),
		Deprecated:   op.Deprecated,
		Servers:      cloneSlice(op.Servers, (*Server).Clone),
		Extensions:   op.Extensions.Clone(),
	}
	if op.Security != nil {
		out.Security = make([]SecurityRequirement, len(op.Security))
		for i, req := range op.Security {
			cp := make(SecurityRequirement, len(req))
			for k, v := range req {
				cp[k] = slices.Clone(v)
			}
			out.Security[i] = cp
		}
	}
	return out
}

// cloneSlice deep copies a slice of pointers with the element's Clone method.
// A nil slice stays nil.
func cloneSlice[T any](s []*T, clone func(*T) *T) []*T {
	if s == nil {
		return nil
	}
	out := make([]*T, len(s))
	for i, v := range s {
		out[i] = clone(v)
	}
	return out
}
