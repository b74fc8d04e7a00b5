package oas

import (
	"encoding/json"

	"github.com/oaskit/oaspath/internal/jsontree"
)

// marshalTree encodes a model value through its generic tree.
func marshalTree(e jsontree.Encoder) ([]byte, error) {
	return json.Marshal(e.EncodeTree())
}

// unmarshalTree reads JSON into a generic tree and hands it to the decoder.
func unmarshalTree(data []byte, d jsontree.Decoder) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.DecodeTree(raw, "")
}

// marshalTreeYAML builds the ordered yaml.Node for a model value.
func marshalTreeYAML(e jsontree.Encoder) (any, error) {
	return jsontree.ValueToNode(e.EncodeTree())
}

// unmarshalTreeYAML reads YAML into a generic tree and hands it to the decoder.
func unmarshalTreeYAML(unmarshal func(any) error, d jsontree.Decoder) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return d.DecodeTree(jsontree.Normalize(raw), "")
}

// decodeRawMap reads an optional raw JSON object (schemas, response maps)
// and deep copies it so the model never aliases the decode buffer.
func decodeRawMap(m map[string]any, key, path string) (map[string]any, error) {
	obj, err := jsontree.GetObject(m, key, path)
	if err != nil || obj == nil {
		return nil, err
	}
	return jsontree.CloneMap(obj), nil
}
