package jsontree

import (
	"math"
	"math/big"
	"reflect"
)

// Equal compares arbitrary JSON-compatible values recursively.
// Numbers compare by value regardless of Go type, so an int decoded from
// YAML equals the float64 encoding/json produces for the same literal.
// NaN equals NaN, so a value always equals its clone.
// null, [] and {} are distinct values; callers comparing optional fields
// use EqualMaps, where nil and empty maps are equal.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if nanA, nanB := isNaN(a), isNaN(b); nanA || nanB {
		return nanA && nanB
	}
	if na, ok := toNumber(a); ok {
		nb, ok := toNumber(b)
		return ok && na.Cmp(nb) == 0
	}

	switch ta := a.(type) {
	case string:
		tb, ok := b.(string)
		return ok && ta == tb
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case *Object:
		return Equal(ta.ToMap(), b)
	case []any:
		tb, ok := b.([]any)
		if !ok {
			return false
		}
		if len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !Equal(ta[i], tb[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		if ob, ok := b.(*Object); ok {
			b = ob.ToMap()
		}
		tb, ok := b.(map[string]any)
		if !ok {
			return false
		}
		return EqualMaps(ta, tb)
	default:
		// Unknown type - could be custom types in extensions
		// Fall back to reflect.DeepEqual
		return reflect.DeepEqual(a, b)
	}
}

// EqualMaps compares two maps of JSON values. Nil and empty maps are equal.
func EqualMaps(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, exists := b[k]
		if !exists {
			return false
		}
		if !Equal(va, vb) {
			return false
		}
	}
	return true
}

func isNaN(v any) bool {
	switch n := v.(type) {
	case float64:
		return math.IsNaN(n)
	case float32:
		return math.IsNaN(float64(n))
	default:
		return false
	}
}

// toNumber widens any Go numeric type to a big.Float for comparison.
// NaN must be filtered out first; big.Float has no NaN and panics on it.
func toNumber(v any) (*big.Float, bool) {
	switch n := v.(type) {
	case float64:
		return new(big.Float).SetFloat64(n), true
	case float32:
		return new(big.Float).SetFloat64(float64(n)), true
	case int:
		return new(big.Float).SetInt64(int64(n)), true
	case int64:
		return new(big.Float).SetInt64(n), true
	case int32:
		return new(big.Float).SetInt64(int64(n)), true
	case int16:
		return new(big.Float).SetInt64(int64(n)), true
	case int8:
		return new(big.Float).SetInt64(int64(n)), true
	case uint:
		return new(big.Float).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Float).SetUint64(n), true
	case uint32:
		return new(big.Float).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Float).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Float).SetUint64(uint64(n)), true
	default:
		return nil, false
	}
}
