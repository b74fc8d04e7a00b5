package oas

import (
	"iter"
	"slices"

	"github.com/oaskit/oaspath/internal/jsontree"
)

// PathItem describes the operations available on a single path.
// A path item may be empty; every field is optional.
type PathItem struct {
	Summary     string
	Description string

	Get     *Operation
	Put     *Operation
	Post    *Operation
	Delete  *Operation
	Options *Operation
	Head    *Operation
	Patch   *Operation
	Trace   *Operation

	// Servers overrides the document-level servers for every operation on
	// this path.
	Servers []*Server
	// Parameters apply to every operation on this path. An operation can
	// override one by redeclaring the same name and location.
	Parameters []*RefOr[Parameter]

	Extensions Extensions
}

// PathItemBuildable is the constraint for types that can be constructed from
// a PathItem. *PathItem and *PathItemRef satisfy it.
type PathItemBuildable[T any] interface {
	*T
	SetPathItem(item *PathItem)
}

// NewPathItem builds a path item from a method-to-operation map. Methods
// missing from ops are left absent; nil map entries are treated as absent.
func NewPathItem(ops map[Method]*Operation) *PathItem {
	p := &PathItem{}
	for _, m := range allMethods {
		if op, ok := ops[m]; ok {
			p.SetOperation(m, op)
		}
	}
	return p
}

// SetPathItem replaces p with a shallow copy of item. A nil item resets p
// to the empty path item.
func (p *PathItem) SetPathItem(item *PathItem) {
	if item == nil {
		*p = PathItem{}
		return
	}
	*p = *item
}

// Operation returns the operation in slot m, or nil when the slot is empty
// or m is not a known method.
func (p *PathItem) Operation(m Method) *Operation {
	switch m {
	case MethodGet:
		return p.Get
	case MethodPut:
		return p.Put
	case MethodPost:
		return p.Post
	case MethodDelete:
		return p.Delete
	case MethodOptions:
		return p.Options
	case MethodHead:
		return p.Head
	case MethodPatch:
		return p.Patch
	case MethodTrace:
		return p.Trace
	}
	return nil
}

// SetOperation stores op in slot m. A nil op clears the slot.
// It reports false when m is not a known method.
func (p *PathItem) SetOperation(m Method, op *Operation) bool {
	switch m {
	case MethodGet:
		p.Get = op
	case MethodPut:
		p.Put = op
	case MethodPost:
		p.Post = op
	case MethodDelete:
		p.Delete = op
	case MethodOptions:
		p.Options = op
	case MethodHead:
		p.Head = op
	case MethodPatch:
		p.Patch = op
	case MethodTrace:
		p.Trace = op
	default:
		return false
	}
	return true
}

// Operations iterates the present operation slots in canonical order.
func (p *PathItem) Operations() iter.Seq2[Method, *Operation] {
	return func(yield func(Method, *Operation) bool) {
		for _, m := range allMethods {
			op := p.Operation(m)
			if op == nil {
				continue
			}
			if !yield(m, op) {
				return
			}
		}
	}
}

// OperationCount returns the number of present operation slots.
func (p *PathItem) OperationCount() int {
	n := 0
	for range p.Operations() {
		n++
	}
	return n
}

// IsEmpty reports whether p carries no content at all and would encode as {}.
func (p *PathItem) IsEmpty() bool {
	return p.Summary == "" && p.Description == "" &&
		p.OperationCount() == 0 &&
		len(p.Servers) == 0 && len(p.Parameters) == 0 &&
		len(p.Extensions) == 0
}

// Merge copies the content of other into p. Non-empty summary and
// description replace p's, present operation slots overwrite p's slots,
// servers and parameters are appended and extensions are overlaid.
// Conflicts are not reported.
func (p *PathItem) Merge(other *PathItem) {
	if other == nil {
		return
	}
	if other.Summary != "" {
		p.Summary = other.Summary
	}
	if other.Description != "" {
		p.Description = other.Description
	}
	for m, op := range other.Operations() {
		p.SetOperation(m, op)
	}
	p.Servers = append(p.Servers, other.Servers...)
	p.Parameters = append(p.Parameters, other.Parameters...)
	for k, v := range other.Extensions {
		if p.Extensions == nil {
			p.Extensions = make(Extensions, len(other.Extensions))
		}
		p.Extensions[k] = v
	}
}

// EncodeTree returns the path item as an ordered JSON object.
func (p *PathItem) EncodeTree() any {
	o := jsontree.NewObject(12 + len(p.Extensions))
	o.SetIfNotEmpty("summary", p.Summary)
	o.SetIfNotEmpty("description", p.Description)
	for _, m := range allMethods {
		jsontree.SetTree(o, string(m), p.Operation(m))
	}
	jsontree.SetTreeSlice(o, "servers", p.Servers)
	jsontree.SetTreeSlice(o, "parameters", p.Parameters)
	o.MergeExtensions(p.Extensions)
	return o
}

// DecodeTree fills p from a decoded JSON object. On error p is left unchanged.
func (p *PathItem) DecodeTree(v any, path string) error {
	m, err := jsontree.AsObject(v, path)
	if err != nil {
		return err
	}
	var out PathItem
	if out.Summary, err = jsontree.GetString(m, "summary", path); err != nil {
		return err
	}
	if out.Description, err = jsontree.GetString(m, "description", path); err != nil {
		return err
	}
	for _, method := range allMethods {
		op, err := jsontree.DecodeField[Operation](m, string(method), path)
		if err != nil {
			return err
		}
		out.SetOperation(method, op)
	}
	if out.Servers, err = jsontree.DecodeSlice[Server](m, "servers", path); err != nil {
		return err
	}
	if out.Parameters, err = jsontree.DecodeSlice[RefOr[Parameter]](m, "parameters", path); err != nil {
		return err
	}
	out.Extensions = decodeExtensions(m)
	*p = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *PathItem) MarshalJSON() ([]byte, error) { return marshalTree(p) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *PathItem) UnmarshalJSON(data []byte) error { return unmarshalTree(data, p) }

// MarshalYAML implements yaml.Marshaler.
func (p *PathItem) MarshalYAML() (any, error) { return marshalTreeYAML(p) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PathItem) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshalTreeYAML(unmarshal, p)
}

// Equals compares two path items structurally.
func (p *PathItem) Equals(other *PathItem) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Summary != other.Summary || p.Description != other.Description {
		return false
	}
	for _, m := range allMethods {
		if !p.Operation(m).Equals(other.Operation(m)) {
			return false
		}
	}
	if !slices.EqualFunc(p.Servers, other.Servers, (*Server).Equals) {
		return false
	}
	if !slices.EqualFunc(p.Parameters, other.Parameters, (*RefOr[Parameter]).Equals) {
		return false
	}
	return p.Extensions.Equals(other.Extensions)
}

// Clone returns a deep copy.
func (p *PathItem) Clone() *PathItem {
	if p == nil {
		return nil
	}
	out := &PathItem{
		Summary:     p.Summary,
		Description: p.Description,
		Servers:     cloneSlice(p.Servers, (*Server).Clone),
		Parameters:  cloneSlice(p.Parameters, (*RefOr[Parameter]).Clone),
		Extensions:  p.Extensions.Clone(),
	}
	for _, m := range allMethods {
		out.SetOperation(m, p.Operation(m).Clone())
	}
	return out
}
