package oas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/oaskit/oaspath/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func boolPtr(b bool) *bool { return &b }

// fullPathItem returns a path item with every field populated.
func fullPathItem() *PathItem {
	p := &PathItem{
		Summary:     "Pets",
		Description: "Operations on the pet collection",
		Servers: []*Server{
			{URL: "https://api.example.com/v1"},
			{
				URL:         "https://{region}.example.com",
				Description: "Regional",
				Variables: map[string]*ServerVariable{
					"region": {Default: "eu", Enum: []string{"eu", "us"}},
				},
			},
		},
		Parameters: []*RefOr[Parameter]{
			NewValue(&Parameter{Name: "tenant", In: ParamInHeader, Required: true}),
			NewRef[Parameter]("#/components/parameters/Trace"),
		},
		Extensions: Extensions{"x-owner": "pets-team", "x-rank": float64(3)},
	}
	for i, m := range Methods() {
		p.SetOperation(m, &Operation{
			OperationID: m.String() + "Pets",
			Summary:     m.HTTPMethod() + " pets",
			Tags:        []string{"pets"},
			Parameters: []*RefOr[Parameter]{
				NewValue(&Parameter{
					Name:    "limit",
					In:      ParamInQuery,
					Explode: boolPtr(i%2 == 0),
					Schema:  map[string]any{"type": "integer", "maximum": float64(100)},
				}),
			},
			Responses: map[string]any{
				"200": map[string]any{"description": "ok"},
			},
			Deprecated: m == MethodTrace,
		})
	}
	return p
}

func TestPathItemRoundTripJSON(t *testing.T) {
	tests := []struct {
		name string
		item *PathItem
	}{
		{name: "empty", item: &PathItem{}},
		{name: "summary only", item: &PathItem{Summary: "s"}},
		{name: "single get", item: &PathItem{Get: &Operation{OperationID: "listPets"}}},
		{name: "servers only", item: &PathItem{Servers: []*Server{{URL: "/"}}}},
		{name: "ref parameter", item: &PathItem{Parameters: []*RefOr[Parameter]{NewRef[Parameter]("#/p")}}},
		{name: "extensions only", item: &PathItem{Extensions: Extensions{"x-a": []any{"b"}}}},
		{name: "all fields", item: fullPathItem()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.item)
			require.NoError(t, err)

			var decoded PathItem
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.True(t, tt.item.Equals(&decoded), "round trip mismatch: %s", data)
		})
	}
}

func TestPathItemRoundTripYAML(t *testing.T) {
	tests := []struct {
		name string
		item *PathItem
	}{
		{name: "empty", item: &PathItem{}},
		{name: "single post", item: &PathItem{Post: &Operation{OperationID: "createPet"}}},
		{name: "all fields", item: fullPathItem()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := yaml.Marshal(tt.item)
			require.NoError(t, err)

			var decoded PathItem
			require.NoError(t, yaml.Unmarshal(data, &decoded))
			assert.True(t, tt.item.Equals(&decoded), "round trip mismatch:\n%s", data)
		})
	}
}

func TestPathItemJSONAndYAMLAgree(t *testing.T) {
	item := fullPathItem()

	jsonData, err := json.Marshal(item)
	require.NoError(t, err)
	yamlData, err := yaml.Marshal(item)
	require.NoError(t, err)

	var fromJSON, fromYAML PathItem
	require.NoError(t, json.Unmarshal(jsonData, &fromJSON))
	require.NoError(t, yaml.Unmarshal(yamlData, &fromYAML))
	assert.True(t, fromJSON.Equals(&fromYAML))
}

func TestPathItemEmptyEncodesToEmptyObject(t *testing.T) {
	data, err := json.Marshal(&PathItem{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	// Empty, non-nil collections are omitted too.
	data, err = json.Marshal(&PathItem{Servers: []*Server{}, Parameters: []*RefOr[Parameter]{}})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestPathItemFieldOrder(t *testing.T) {
	item := &PathItem{
		Extensions:  Extensions{"x-z": true, "x-a": true},
		Parameters:  []*RefOr[Parameter]{NewRef[Parameter]("#/p")},
		Servers:     []*Server{{URL: "/"}},
		Trace:       &Operation{},
		Get:         &Operation{},
		Description: "d",
		Summary:     "s",
	}
	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Equal(t,
		`{"summary":"s","description":"d","get":{},"trace":{},"servers":[{"url":"/"}],"parameters":[{"$ref":"#/p"}],"x-a":true,"x-z":true}`,
		string(data))

	var node yaml.Node
	yamlData, err := yaml.Marshal(item)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(yamlData, &node))
	require.Len(t, node.Content, 1)
	var keys []string
	for i := 0; i < len(node.Content[0].Content); i += 2 {
		keys = append(keys, node.Content[0].Content[i].Value)
	}
	assert.Equal(t, []string{"summary", "description", "get", "trace", "servers", "parameters", "x-a", "x-z"}, keys)
}

func TestPathItemExtensionsPreserved(t *testing.T) {
	var fromJSON PathItem
	require.NoError(t, json.Unmarshal([]byte(`{"x-foo":42,"x-bar":{"nested":[1,2]},"unknown":"dropped"}`), &fromJSON))
	assert.Equal(t, []string{"x-bar", "x-foo"}, fromJSON.Extensions.Keys())
	assert.Equal(t, float64(42), fromJSON.Extensions["x-foo"])

	var fromYAML PathItem
	require.NoError(t, yaml.Unmarshal([]byte("x-foo: 42\nx-bar:\n  nested: [1, 2]\nunknown: dropped\n"), &fromYAML))
	assert.True(t, fromJSON.Equals(&fromYAML))

	out, err := json.Marshal(&fromJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x-bar":{"nested":[1,2]},"x-foo":42}`, string(out))
}

func TestPathItemEqualsNaNExtension(t *testing.T) {
	var item PathItem
	require.NoError(t, yaml.Unmarshal([]byte("summary: s\nx-foo: .nan\n"), &item))

	assert.True(t, item.Equals(item.Clone()))
	assert.True(t, item.Equals(&item))

	other := item.Clone()
	other.Extensions["x-foo"] = 1.0
	assert.False(t, item.Equals(other))
}

func TestPathItemEqualsDistinguishesEmptyJSONValues(t *testing.T) {
	docs := []string{`{"x-a":[]}`, `{"x-a":{}}`, `{"x-a":null}`, `{}`}
	items := make([]*PathItem, len(docs))
	for i, doc := range docs {
		items[i] = &PathItem{}
		require.NoError(t, json.Unmarshal([]byte(doc), items[i]), doc)
	}

	for i := range items {
		for j := range items {
			assert.Equal(t, i == j, items[i].Equals(items[j]), "%s vs %s", docs[i], docs[j])
		}
	}
}

func TestPathItemNilElementsRoundTrip(t *testing.T) {
	item := &PathItem{
		Servers:    []*Server{nil, {URL: "/v1"}},
		Parameters: []*RefOr[Parameter]{nil, NewRef[Parameter]("#/p"), nil},
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Equal(t, `{"servers":[{"url":"/v1"}],"parameters":[{"$ref":"#/p"}]}`, string(data))

	var decoded PathItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Servers, 1)
	require.Len(t, decoded.Parameters, 1)
	assert.Equal(t, "#/p", decoded.Parameters[0].Ref.Ref)

	data, err = json.Marshal(&PathItem{Parameters: []*RefOr[Parameter]{nil}})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestPathItemArrayOrderPreserved(t *testing.T) {
	input := `{"servers":[{"url":"/c"},{"url":"/a"},{"url":"/b"}]}`
	var item PathItem
	require.NoError(t, json.Unmarshal([]byte(input), &item))
	require.Len(t, item.Servers, 3)
	assert.Equal(t, "/c", item.Servers[0].URL)
	assert.Equal(t, "/a", item.Servers[1].URL)
	assert.Equal(t, "/b", item.Servers[2].URL)

	out, err := json.Marshal(&item)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestPathItemDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		path     string
		expected string
		actual   string
	}{
		{name: "root not an object", input: `[]`, path: "", expected: "object", actual: "array"},
		{name: "summary not a string", input: `{"summary":1}`, path: "summary", expected: "string", actual: "number"},
		{name: "operation not an object", input: `{"get":"str"}`, path: "get", expected: "object", actual: "string"},
		{name: "servers not an array", input: `{"servers":{}}`, path: "servers", expected: "array", actual: "object"},
		{name: "server url wrong type", input: `{"servers":[{"url":true}]}`, path: "servers[0].url", expected: "string", actual: "boolean"},
		{name: "parameter required wrong type", input: `{"parameters":[{"name":"a","in":"query","required":"yes"}]}`, path: "parameters[0].required", expected: "boolean", actual: "string"},
		{name: "nested operation parameter", input: `{"get":{"parameters":[{},{"in":5}]}}`, path: "get.parameters[1].in", expected: "string", actual: "number"},
		{name: "parameter not an object", input: `{"parameters":[3]}`, path: "parameters[0]", expected: "object", actual: "number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := PathItem{Summary: "unchanged"}
			err := json.Unmarshal([]byte(tt.input), &item)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrDecode))

			var decErr *oaserrors.DecodeError
			require.True(t, errors.As(err, &decErr))
			assert.Equal(t, tt.path, decErr.Path)
			assert.Equal(t, tt.expected, decErr.Expected)
			assert.Equal(t, tt.actual, decErr.Actual)
			assert.Equal(t, "unchanged", item.Summary, "no partial result on failure")
		})
	}
}

func TestPathItemDecodeErrorsYAML(t *testing.T) {
	var item PathItem
	err := yaml.Unmarshal([]byte("get: str\n"), &item)
	require.Error(t, err)

	var decErr *oaserrors.DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "get", decErr.Path)
}

func TestPathItemOperationAccess(t *testing.T) {
	for _, m := range Methods() {
		t.Run(m.String(), func(t *testing.T) {
			p := &PathItem{}
			op := &Operation{OperationID: m.String()}
			require.True(t, p.SetOperation(m, op))
			assert.Same(t, op, p.Operation(m))
			assert.Equal(t, 1, p.OperationCount())

			for _, other := range Methods() {
				if other != m {
					assert.Nil(t, p.Operation(other))
				}
			}

			require.True(t, p.SetOperation(m, nil))
			assert.True(t, p.IsEmpty())
		})
	}

	p := &PathItem{}
	assert.False(t, p.SetOperation(Method("connect"), &Operation{}))
	assert.Nil(t, p.Operation(Method("connect")))
	assert.True(t, p.IsEmpty())
}

func TestNewPathItem(t *testing.T) {
	get := &Operation{OperationID: "get"}
	del := &Operation{OperationID: "delete"}

	p := NewPathItem(map[Method]*Operation{
		MethodGet:         get,
		MethodDelete:      del,
		Method("connect"): {OperationID: "ignored"},
		MethodPatch:       nil,
	})
	assert.Same(t, get, p.Get)
	assert.Same(t, del, p.Delete)
	assert.Nil(t, p.Put)
	assert.Nil(t, p.Post)
	assert.Nil(t, p.Options)
	assert.Nil(t, p.Head)
	assert.Nil(t, p.Patch)
	assert.Nil(t, p.Trace)
	assert.Equal(t, 2, p.OperationCount())

	assert.True(t, NewPathItem(nil).IsEmpty())
}

func TestPathItemOperationsOrder(t *testing.T) {
	p := &PathItem{
		Trace: &Operation{},
		Get:   &Operation{},
		Post:  &Operation{},
	}
	var got []Method
	for m := range p.Operations() {
		got = append(got, m)
	}
	assert.Equal(t, []Method{MethodGet, MethodPost, MethodTrace}, got)

	// Early exit stops the iteration.
	got = got[:0]
	for m := range p.Operations() {
		got = append(got, m)
		break
	}
	assert.Equal(t, []Method{MethodGet}, got)
}

func TestPathItemMerge(t *testing.T) {
	first := &Operation{OperationID: "first"}
	second := &Operation{OperationID: "second"}

	p := &PathItem{
		Summary: "base",
		Get:     first,
		Servers: []*Server{{URL: "/a"}},
	}
	p.Merge(&PathItem{
		Description: "merged",
		Get:         second,
		Post:        &Operation{OperationID: "create"},
		Servers:     []*Server{{URL: "/b"}},
		Parameters:  []*RefOr[Parameter]{NewRef[Parameter]("#/p")},
		Extensions:  Extensions{"x-merged": true},
	})

	assert.Equal(t, "base", p.Summary)
	assert.Equal(t, "merged", p.Description)
	assert.Same(t, second, p.Get, "later operation wins")
	assert.Equal(t, "create", p.Post.OperationID)
	require.Len(t, p.Servers, 2)
	assert.Equal(t, "/b", p.Servers[1].URL)
	assert.Len(t, p.Parameters, 1)
	assert.Equal(t, true, p.Extensions["x-merged"])

	before := p.Clone()
	p.Merge(nil)
	assert.True(t, before.Equals(p))
}

func TestPathItemClone(t *testing.T) {
	orig := fullPathItem()
	cp := orig.Clone()
	require.True(t, orig.Equals(cp))

	cp.Get.OperationID = "changed"
	cp.Servers[1].Variables["region"].Enum[0] = "ap"
	cp.Parameters[0].Value.Name = "other"
	cp.Post.Parameters[0].Value.Schema["type"] = "string"
	cp.Extensions["x-owner"] = "someone"

	assert.Equal(t, "getPets", orig.Get.OperationID)
	assert.Equal(t, "eu", orig.Servers[1].Variables["region"].Enum[0])
	assert.Equal(t, "tenant", orig.Parameters[0].Value.Name)
	assert.Equal(t, "integer", orig.Post.Parameters[0].Value.Schema["type"])
	assert.Equal(t, "pets-team", orig.Extensions["x-owner"])
	assert.False(t, orig.Equals(cp))

	var nilItem *PathItem
	assert.Nil(t, nilItem.Clone())
}

func TestPathItemEquals(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *PathItem
		equal bool
	}{
		{name: "both nil", a: nil, b: nil, equal: true},
		{name: "nil vs empty", a: nil, b: &PathItem{}, equal: false},
		{name: "nil and empty slices", a: &PathItem{}, b: &PathItem{Servers: []*Server{}, Extensions: Extensions{}}, equal: true},
		{name: "different summary", a: &PathItem{Summary: "a"}, b: &PathItem{Summary: "b"}, equal: false},
		{name: "missing operation", a: &PathItem{Get: &Operation{}}, b: &PathItem{}, equal: false},
		{name: "operation in different slot", a: &PathItem{Get: &Operation{}}, b: &PathItem{Put: &Operation{}}, equal: false},
		{
			name:  "numeric extension int vs float",
			a:     &PathItem{Extensions: Extensions{"x-n": 42}},
			b:     &PathItem{Extensions: Extensions{"x-n": float64(42)}},
			equal: true,
		},
		{
			name:  "server order matters",
			a:     &PathItem{Servers: []*Server{{URL: "/a"}, {URL: "/b"}}},
			b:     &PathItem{Servers: []*Server{{URL: "/b"}, {URL: "/a"}}},
			equal: false,
		},
		{
			name:  "ref vs inline parameter",
			a:     &PathItem{Parameters: []*RefOr[Parameter]{NewRef[Parameter]("#/p")}},
			b:     &PathItem{Parameters: []*RefOr[Parameter]{NewValue(&Parameter{Name: "p"})}},
			equal: false,
		},
		{name: "full", a: fullPathItem(), b: fullPathItem(), equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equals(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equals(tt.a))
		})
	}
}

func TestPathItemSetPathItem(t *testing.T) {
	src := &PathItem{Summary: "s", Get: &Operation{OperationID: "x"}}

	var dst PathItem
	dst.SetPathItem(src)
	assert.True(t, src.Equals(&dst))

	dst.SetPathItem(nil)
	assert.True(t, dst.IsEmpty())
}
