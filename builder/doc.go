// Package builder constructs OpenAPI path items with a fluent API.
//
// # Per-method factories
//
// Get, Put, Post, Delete, Options, Head, Patch and Trace each build a path
// item holding a single operation. They are generic over the result type, so
// the same call produces either a bare *oas.PathItem or an inline
// *oas.PathItemRef, the reference-or-object wrapper used in oas.Paths:
//
//	item := builder.Get[oas.PathItem](&oas.Operation{OperationID: "listPets"},
//		builder.WithSummary("Pets"),
//	)
//
//	ref := builder.Get[oas.PathItemRef](&oas.Operation{OperationID: "listPets"},
//		builder.WithSummary("Pets"),
//	)
//
// Both results describe the same path item; ref.Value equals item.
// Any type whose pointer satisfies oas.PathItemBuildable works as a result type.
//
// FromOperations is the bulk form and takes a method-to-operation map.
//
// # Assembling a Paths map
//
// PathsBuilder collects path items keyed by path template. Adding to a path
// that already exists merges the new item into the existing one, with later
// operations replacing earlier ones in the same slot:
//
//	paths, err := builder.NewPaths().
//		AddOperation("/pets", oas.MethodGet, listPets).
//		AddOperation("/pets", oas.MethodPost, createPet).
//		AddRef("/pets/{id}", "#/components/pathItems/Pet").
//		Build()
//
// Errors are collected while building and returned together by Build.
// No checks are made for duplicate parameters or operation IDs.
package builder
