package builder

import (
	"fmt"
	"strings"

	"github.com/oaskit/oaspath/oaserrors"
)

// ComponentType identifies the part of a path item where an error occurred.
type ComponentType string

const (
	// ComponentPath indicates an error in a path template or path entry.
	ComponentPath ComponentType = "path"
	// ComponentOperation indicates an error in an operation slot.
	ComponentOperation ComponentType = "operation"
	// ComponentExtension indicates an error in a specification extension.
	ComponentExtension ComponentType = "extension"
)

// BuilderError represents a structured error from the builder package.
type BuilderError struct {
	// Component is the part of the path item where the error occurred.
	Component ComponentType
	// Method is the operation slot, if applicable.
	Method string
	// Path is the path template, if applicable.
	Path string
	// Field is the specific field or key with the error.
	Field string
	// Message describes the error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface with a detailed, formatted message.
func (e *BuilderError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")

	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}

	if e.Method != "" && e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Method)
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	} else if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}

	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BuilderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// All BuilderErrors are classified as ErrConfig errors.
func (e *BuilderError) Is(target error) bool {
	return target == oaserrors.ErrConfig
}

// NewInvalidMethodError creates an error for an unknown operation slot.
func NewInvalidMethodError(method, path string) *BuilderError {
	return &BuilderError{
		Component: ComponentOperation,
		Method:    method,
		Path:      path,
		Message:   fmt.Sprintf("unknown method %q", method),
	}
}

// NewInvalidPathError creates an error for a path template that does not
// start with "/".
func NewInvalidPathError(path string) *BuilderError {
	return &BuilderError{
		Component: ComponentPath,
		Path:      path,
		Message:   "path template must start with \"/\"",
	}
}

// NewRefConflictError creates an error for mixing a $ref entry and an inline
// path item under the same path.
func NewRefConflictError(path string) *BuilderError {
	return &BuilderError{
		Component: ComponentPath,
		Path:      path,
		Message:   "path is already a reference and cannot hold inline operations",
	}
}
