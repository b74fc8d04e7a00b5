package jsontree

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// ValueToNode converts a tree value to a yaml.Node. Objects keep their key
// order; plain maps are emitted with sorted keys.
func ValueToNode(v any) (*yaml.Node, error) {
	if v == nil {
		return scalarNode("!!null", "null"), nil
	}

	switch val := v.(type) {
	case *Object:
		if val == nil {
			return scalarNode("!!null", "null"), nil
		}
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, len(val.keys)*2),
		}
		for _, k := range val.keys {
			valNode, err := ValueToNode(val.values[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), valNode)
		}
		return node, nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10)), nil
	case uint64:
		return scalarNode("!!int", strconv.FormatUint(val, 10)), nil
	case float64:
		return floatNode(val), nil
	case string:
		return scalarNode("!!str", val), nil
	case []any:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, len(val)),
		}
		for _, item := range val {
			child, err := ValueToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case map[string]any:
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, len(val)*2),
		}
		for _, k := range slices.Sorted(maps.Keys(val)) {
			valNode, err := ValueToNode(val[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), valNode)
		}
		return node, nil
	default:
		// For unknown types, marshal to JSON then parse
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T to yaml.Node: %w", v, err)
		}
		var result any
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}
		return ValueToNode(result)
	}
}

// floatNode emits whole numbers as YAML integers so values that came in as
// JSON numbers read back the same way YAML-sourced integers do.
func floatNode(f float64) *yaml.Node {
	switch {
	case math.IsNaN(f):
		return scalarNode("!!float", ".nan")
	case math.IsInf(f, 1):
		return scalarNode("!!float", ".inf")
	case math.IsInf(f, -1):
		return scalarNode("!!float", "-.inf")
	case f == math.Trunc(f) && math.Abs(f) < 1<<53:
		return scalarNode("!!int", strconv.FormatInt(int64(f), 10))
	default:
		return scalarNode("!!float", strconv.FormatFloat(f, 'g', -1, 64))
	}
}
