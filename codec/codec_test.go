package codec

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oaskit/oaspath/oas"
	"github.com/oaskit/oaspath/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petsYAML = `summary: Pets
get:
  operationId: listPets
  parameters:
    - name: limit
      in: query
      schema:
        type: integer
        maximum: 100
post:
  operationId: createPet
servers:
  - url: https://api.example.com
x-owner: pets-team
`

const petsJSON = `{
  "summary": "Pets",
  "get": {
    "operationId": "listPets",
    "parameters": [
      {"name": "limit", "in": "query", "schema": {"type": "integer", "maximum": 100}}
    ]
  },
  "post": {"operationId": "createPet"},
  "servers": [{"url": "https://api.example.com"}],
  "x-owner": "pets-team"
}`

func TestDecodePathItemFormats(t *testing.T) {
	fromYAML, err := DecodePathItem([]byte(petsYAML))
	require.NoError(t, err)
	fromJSON, err := DecodePathItem([]byte(petsJSON))
	require.NoError(t, err)

	assert.True(t, fromYAML.Equals(fromJSON))
	assert.Equal(t, "listPets", fromYAML.Get.OperationID)
	assert.Equal(t, "pets-team", fromYAML.Extensions["x-owner"])
}

func TestEncodeRoundTrip(t *testing.T) {
	item, err := DecodePathItem([]byte(petsYAML))
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "compact json"},
		{name: "indented json", opts: []Option{WithFormat(FormatJSON), WithIndent(2)}},
		{name: "yaml", opts: []Option{WithFormat(FormatYAML)}},
		{name: "yaml indent 4", opts: []Option{WithFormat(FormatYAML), WithIndent(4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(item, tt.opts...)
			require.NoError(t, err)

			decoded, err := DecodePathItem(out)
			require.NoError(t, err)
			assert.True(t, item.Equals(decoded), "round trip mismatch:\n%s", out)
		})
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	out, err := Encode(&oas.PathItem{Summary: "s"}, WithIndent(2))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"summary\": \"s\"\n}\n", string(out))

	out, err = Encode(&oas.PathItem{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestEncodeModelValue(t *testing.T) {
	item := oas.PathItem{Summary: "s", Get: &oas.Operation{OperationID: "list"}}

	tests := []struct {
		name string
		v    any
		opts []Option
		want string
	}{
		{name: "path item json", v: item, want: `{"summary":"s","get":{"operationId":"list"}}`},
		{name: "operation json", v: *item.Get, want: `{"operationId":"list"}`},
		{name: "path item yaml", v: item, opts: []Option{WithFormat(FormatYAML), WithIndent(2)}, want: "summary: s\nget:\n  operationId: list\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.v, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestEncodePlainValue(t *testing.T) {
	out, err := Encode([]string{"get", "put"})
	require.NoError(t, err)
	assert.Equal(t, `["get","put"]`, string(out))

	out, err = Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestDecodeErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []Option
		sentinel error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "json syntax",
			input:    "{\n  \"summary\": \n}",
			sentinel: oaserrors.ErrParse,
			check: func(t *testing.T, err error) {
				var pe *oaserrors.ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, "json", pe.Format)
				assert.Equal(t, 3, pe.Line)
			},
		},
		{
			name:     "yaml syntax",
			input:    "summary: [unclosed\n",
			sentinel: oaserrors.ErrParse,
			check: func(t *testing.T, err error) {
				var pe *oaserrors.ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, "yaml", pe.Format)
			},
		},
		{
			name:     "empty",
			input:    "  \n",
			sentinel: oaserrors.ErrParse,
		},
		{
			name:     "wrong shape",
			input:    "get: str\n",
			sentinel: oaserrors.ErrDecode,
			check: func(t *testing.T, err error) {
				var de *oaserrors.DecodeError
				require.True(t, errors.As(err, &de))
				assert.Equal(t, "get", de.Path)
			},
		},
		{
			name:     "nested wrong shape",
			input:    `{"parameters":[{"name":"a","in":"query","required":"yes"}]}`,
			sentinel: oaserrors.ErrDecode,
			check: func(t *testing.T, err error) {
				var de *oaserrors.DecodeError
				require.True(t, errors.As(err, &de))
				assert.Equal(t, "parameters[0].required", de.Path)
			},
		},
		{
			name:     "too large",
			input:    petsJSON,
			opts:     []Option{WithMaxSize(16)},
			sentinel: oaserrors.ErrConfig,
		},
		{
			name:     "invalid indent",
			input:    petsJSON,
			opts:     []Option{WithIndent(-1)},
			sentinel: oaserrors.ErrConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := DecodePathItem([]byte(tt.input), tt.opts...)
			require.Error(t, err)
			assert.Nil(t, item)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestWithFormatOverridesDetection(t *testing.T) {
	// Valid JSON is valid YAML, so forcing YAML still decodes.
	item, err := DecodePathItem([]byte(`{"summary":"s"}`), WithFormat(FormatYAML))
	require.NoError(t, err)
	assert.Equal(t, "s", item.Summary)

	_, err = DecodePathItem([]byte("summary: s\n"), WithFormat(FormatJSON))
	assert.True(t, errors.Is(err, oaserrors.ErrParse))

	_, err = DecodePathItem([]byte("summary: s\n"), WithFormat(Format("toml")))
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "pets.yml")
	jsonPath := filepath.Join(dir, "pets.json")
	require.NoError(t, os.WriteFile(yamlPath, []byte(petsYAML), 0o600))
	require.NoError(t, os.WriteFile(jsonPath, []byte(petsJSON), 0o600))

	fromYAML, err := ReadFile(yamlPath)
	require.NoError(t, err)
	fromJSON, err := ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, fromYAML.Equals(fromJSON))

	// The extension decides the format, so YAML content in a .json file fails.
	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(petsYAML), 0o600))
	_, err = ReadFile(badPath)
	var pe *oaserrors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, badPath, pe.Path)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadFile(yamlPath, WithMaxSize(8))
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestDecodePaths(t *testing.T) {
	paths, err := DecodePaths([]byte(`
/pets:
  get:
    operationId: listPets
/pets/{id}:
  $ref: '#/components/pathItems/Pet'
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"/pets", "/pets/{id}"}, paths.SortedKeys())
	assert.True(t, paths["/pets/{id}"].IsRef())

	dir := t.TempDir()
	p := filepath.Join(dir, "paths.json")
	out, err := Encode(paths)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(p, out, 0o600))
	fromFile, err := ReadPathsFile(p)
	require.NoError(t, err)
	assert.True(t, paths.Equals(fromFile))
}

func TestDecodeOperation(t *testing.T) {
	op, err := DecodeOperation([]byte("operationId: x\ndeprecated: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "x", op.OperationID)
	assert.True(t, op.Deprecated)
}

func TestReadAll(t *testing.T) {
	data, err := ReadAll(strings.NewReader("summary: s\n"))
	require.NoError(t, err)
	assert.Equal(t, "summary: s\n", string(data))

	_, err = ReadAll(strings.NewReader(petsJSON), WithMaxSize(10), WithSourceName("stdin"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	assert.Contains(t, err.Error(), "stdin exceeds the 10 B limit")
}

func TestDecodeLogsWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := DecodePathItem([]byte("get: str\n"), WithLogger(logger), WithSourceName("pets.yaml"))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "source=pets.yaml")
	assert.Contains(t, buf.String(), "decode failed")
	assert.Contains(t, buf.String(), "path=get")
}

func TestLineColumn(t *testing.T) {
	data := []byte("ab\ncd\nef")
	tests := []struct {
		offset    int64
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{7, 3, 2},
		{100, 3, 3},
	}
	for _, tt := range tests {
		line, col := lineColumn(data, tt.offset)
		assert.Equal(t, tt.line, line, "offset %d", tt.offset)
		assert.Equal(t, tt.col, col, "offset %d", tt.offset)
	}
}
