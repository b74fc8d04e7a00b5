// Package oaserrors provides structured error types for the oaspath library.
//
// Import path: github.com/oaskit/oaspath/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish a malformed source document from a document
// whose fields have the wrong shape, or from an invalid option.
//
// # Error Types
//
//   - [DecodeError]: a present field does not match its expected shape
//   - [ParseError]: JSON/YAML syntax failures
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrDecode]: Matches any [DecodeError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	item, err := codec.DecodePathItem(data)
//	if errors.Is(err, oaserrors.ErrDecode) {
//	    // A field had the wrong type
//	}
//
// Extract error details with errors.As():
//
//	var decErr *oaserrors.DecodeError
//	if errors.As(err, &decErr) {
//	    fmt.Printf("bad field at %s: want %s, got %s\n", decErr.Path, decErr.Expected, decErr.Actual)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method.
package oaserrors
