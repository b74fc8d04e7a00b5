package jsontree

// Clone recursively deep copies any JSON-compatible value.
// Scalars are returned as-is; unknown types are shared.
func Clone(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return CloneMap(t)
	case []any:
		if t == nil {
			return []any(nil)
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Clone(item)
		}
		return out
	case *Object:
		if t == nil {
			return t
		}
		out := NewObject(len(t.keys))
		for _, k := range t.keys {
			out.Set(k, Clone(t.values[k]))
		}
		return out
	default:
		return v
	}
}

// CloneMap deep copies a map of JSON values, preserving nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}
