// Package codec reads and writes path items as JSON or YAML documents.
//
// The oas types already implement the json and yaml marshaling interfaces.
// This package adds what a tool needs on top of that: format detection from
// a file name or the content itself, size limits, error classification and
// optional logging.
//
//	item, err := codec.ReadFile("pets.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := codec.Encode(item, codec.WithFormat(codec.FormatJSON), codec.WithIndent(2))
//
// Errors are classified with the oaserrors package:
//
//   - Input that is not valid JSON or YAML fails with *oaserrors.ParseError.
//   - Input with a field of the wrong shape fails with *oaserrors.DecodeError.
//   - Invalid options fail with *oaserrors.ConfigError.
package codec
