package oas

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Method identifies one of the eight operation slots of a PathItem.
// Its string value is the key used in OpenAPI documents.
type Method string

// The eight HTTP methods a PathItem can describe, in canonical order.
const (
	MethodGet     Method = "get"
	MethodPut     Method = "put"
	MethodPost    Method = "post"
	MethodDelete  Method = "delete"
	MethodOptions Method = "options"
	MethodHead    Method = "head"
	MethodPatch   Method = "patch"
	MethodTrace   Method = "trace"
)

var allMethods = [...]Method{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

// Methods returns all eight methods in canonical order.
func Methods() []Method {
	out := make([]Method, len(allMethods))
	copy(out, allMethods[:])
	return out
}

// String returns the document key ("get", "put", ...).
func (m Method) String() string {
	return string(m)
}

// IsValid reports whether m is one of the eight known methods.
func (m Method) IsValid() bool {
	switch m {
	case MethodGet, MethodPut, MethodPost, MethodDelete,
		MethodOptions, MethodHead, MethodPatch, MethodTrace:
		return true
	}
	return false
}

// HTTPMethod returns the request method token ("GET", "PUT", ...).
func (m Method) HTTPMethod() string {
	return cases.Upper(language.Und).String(string(m))
}

// ParseMethod maps a method name in any letter case ("GET", "get", "Get")
// to its Method. The second result is false for unknown names.
func ParseMethod(s string) (Method, bool) {
	m := Method(cases.Fold().String(s))
	if !m.IsValid() {
		return "", false
	}
	return m, true
}
