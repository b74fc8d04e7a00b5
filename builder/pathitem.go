package builder

import (
	"github.com/oaskit/oaspath/oas"
)

// FromPathItem converts item into any path-item-buildable type.
func FromPathItem[T any, PT oas.PathItemBuildable[T]](item *oas.PathItem) *T {
	out := PT(new(T))
	out.SetPathItem(item)
	return (*T)(out)
}

// FromOperations builds a path item from a method-to-operation map. Methods
// missing from ops stay absent.
func FromOperations[T any, PT oas.PathItemBuildable[T]](ops map[oas.Method]*oas.Operation, opts ...PathOption) *T {
	item := oas.NewPathItem(ops)
	newPathConfig(opts).apply(item)
	return FromPathItem[T, PT](item)
}

// forMethod builds a path item with op in slot m and every other slot empty.
func forMethod[T any, PT oas.PathItemBuildable[T]](m oas.Method, op *oas.Operation, opts []PathOption) *T {
	item := &oas.PathItem{}
	newPathConfig(opts).apply(item)
	item.SetOperation(m, op)
	return FromPathItem[T, PT](item)
}

// Get builds a path item whose only operation is op under GET.
func Get[T any, PT oas.PathItemBuildable[T]](op *oas.Operation, opts ...PathOption) *T {
	return forMethod[T, PT](oas.MethodGet, op, opts)
}

// Put builds a path item whose only operation is op under PUT.
func Put[T any, PT oas.PathItemBuildable[T]](op *oas.Operation, opts ...PathOption) *T {
	return forMethod[T, PT](oas.MethodPut, op, opts)
}

// Post builds a path item whose only operation is op under POST.
func Post[T any, PT oas.PathItemBuildable[T]](op *oas.Operation, opts ...PathOption) *T {
	return forMethod[T, PT](oas.MethodPost, op, opts)
}

// Delete builds a path item whose only operation is op under DELETE.
func Delete[T any, PT oas.PathItemBuildable[T]](op *oas.Operation, opts ...PathOption) *T {
	return forMethod[T, PT](oas.MethodDelete, op, opts)
}

// Options builds a path item whose only operation is op under OPTIONS.
func Options[T any, PT oas.PathItemBuildable[T]](op *oas.Operation, opts ...PathOption) *T {
	return forMethod[T, PT](oas.MethodOptions, op, opts)
}

// Head builds a path item whose only operation is op under HEAD.
func Head[T any, PT oas.PathItemBuildable[T]](op *oas.Operation, opts ...PathOption) *T {
	return forMethod[T, PT](oas.MethodHead, op, opts)
}

// Patch builds a path item whose only operation is op under PATCH.
func Patch[T any, PT oas.PathItemBuildable[T]](op *oas.Operation, opts ...PathOption) *T {
	return forMethod[T, PT](oas.MethodPatch, op, opts)
}

// Trace builds a path item whose only operation is op under TRACE.
func Trace[T any, PT oas.PathItemBuildable[T]](op *oas.Operation, opts ...PathOption) *T {
	return forMethod[T, PT](oas.MethodTrace, op, opts)
}

// ForMethod dispatches to the factory for m. It returns nil for unknown methods.
func ForMethod[T any, PT oas.PathItemBuildable[T]](m oas.Method, op *oas.Operation, opts ...PathOption) *T {
	if !m.IsValid() {
		return nil
	}
	return forMethod[T, PT](m, op, opts)
}
