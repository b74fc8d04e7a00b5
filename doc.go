// Package oaspath is a typed model of the OpenAPI Path Item Object.
//
// A path item describes what can be done on one URL path of an HTTP API: up
// to eight operations keyed by HTTP method, plus servers and parameters
// shared by all of them. The module is split into small packages:
//
//   - oas: the data model (PathItem, Operation, Parameter, Server, RefOr,
//     Paths) with JSON and YAML marshaling, structural equality and deep copy.
//   - builder: generic per-method factories (builder.Get, builder.Post, ...)
//     that produce either a *oas.PathItem or the reference-or-object wrapper
//     *oas.PathItemRef, plus a PathsBuilder for assembling a paths map.
//   - codec: file and byte level decoding and encoding with format detection,
//     size limits, classified errors and pluggable logging.
//   - oaserrors: the structured error types shared by every package.
//
// # Quick Start
//
// Build a path item and write it as YAML:
//
//	item := builder.Get[oas.PathItem](
//		&oas.Operation{OperationID: "listPets"},
//		builder.WithSummary("Pets"),
//	)
//	out, err := codec.Encode(item, codec.WithFormat(codec.FormatYAML))
//
// Read one back and walk its operations:
//
//	item, err := codec.ReadFile("pets.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for method, op := range item.Operations() {
//		fmt.Println(method.HTTPMethod(), op.OperationID)
//	}
//
// # Command line and MCP
//
// The oaspath command (cmd/oaspath) formats, converts, inspects and builds
// path item documents, and "oaspath mcp" serves the same capabilities as
// Model Context Protocol tools over stdio.
//
// The model is not a validator, resolver or code generator: $ref values are
// kept as written and no OpenAPI semantic rules are enforced.
package oaspath
