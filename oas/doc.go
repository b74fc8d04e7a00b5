// Package oas models the OpenAPI Path Item Object and the handful of
// neighbouring objects it is built from.
//
// A [PathItem] describes the operations available on a single URL path: up
// to eight [Operation] slots (one per HTTP method), plus a summary,
// description, alternative [Server] list and [Parameter] list shared by every
// operation on the path. Every slot is optional; a path item with no
// operations at all is legal.
//
// # Serialization
//
// Every type implements json.Marshaler, json.Unmarshaler and the YAML
// equivalents from go.yaml.in/yaml/v4. Both formats share one codec, so a
// document read as YAML and written as JSON has the same structure:
//
//   - Absent fields are omitted, never written as null.
//   - Empty servers and parameters lists are omitted.
//   - Known fields are written first in OpenAPI order, followed by
//     specification extensions in sorted key order.
//   - Keys starting with "x-" are kept in the Extensions map on decode and
//     written back out on encode. Other unknown keys are ignored.
//   - A present field with the wrong shape fails with *oaserrors.DecodeError,
//     whose Path names the offending value (e.g. "get.parameters[0].in").
//
// # Keyed access
//
// [Method] enumerates the eight operation slots. [PathItem.Operation] and
// [PathItem.SetOperation] read and write a slot by key, [NewPathItem] builds
// a path item from a method-to-operation map and [PathItem.Operations]
// iterates the present slots in canonical order.
//
// # References
//
// [RefOr] holds either an inline value or a [Reference] ($ref) to one defined
// elsewhere in the document. Parameters use RefOr[Parameter]. Path items in a
// [Paths] map use [PathItemRef], which is a RefOr[PathItem] that can also be
// built by the builder package's per-method factories.
//
// # Equality and copying
//
// Equals methods compare structurally: nil and empty collections are equal,
// and numbers inside raw JSON values compare by value, so a document decoded
// from YAML equals the same document decoded from JSON. Clone methods return
// deep copies that share no mutable state.
//
// Values are not safe for concurrent mutation; treat them as immutable once
// built or confine them to a single writer.
package oas
