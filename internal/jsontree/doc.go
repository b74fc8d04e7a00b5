// Package jsontree provides the generic JSON/YAML value tree shared by every
// model type in the oas package.
//
// Model types encode themselves into an insertion-ordered [Object] whose values
// are other Objects, []any slices or JSON scalars. The same tree serializes to
// JSON (via [Object.MarshalJSON]) and to YAML (via [ValueToNode]), which keeps
// both formats structurally identical and preserves the canonical key order.
//
// Decoding runs the other way: JSON or YAML is first read into a plain
// map[string]any tree, [Normalize]d, and then picked apart with the Get*
// helpers, which report shape mismatches as *oaserrors.DecodeError with the
// path of the offending value.
package jsontree
