package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type formatInput struct {
	Item   itemInput `json:"item"             jsonschema:"The path item document to normalize"`
	Format string    `json:"format,omitempty" jsonschema:"Output format: json or yaml (default from OASPATH_OUTPUT_FORMAT)"`
}

type formatOutput struct {
	SourceFormat   string `json:"source_format"`
	Format         string `json:"format"`
	OperationCount int    `json:"operation_count"`
	ExtensionCount int    `json:"extension_count"`
	Document       string `json:"document"`
}

func handleFormat(_ context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, any, error) {
	format, err := outputFormat(input.Format)
	if err != nil {
		return errResult(err), nil, nil
	}

	item, sourceFormat, err := input.Item.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	doc, err := encode(item, format)
	if err != nil {
		return errResult(err), nil, nil
	}

	return nil, formatOutput{
		SourceFormat:   string(sourceFormat),
		Format:         string(format),
		OperationCount: item.OperationCount(),
		ExtensionCount: len(item.Extensions),
		Document:       doc,
	}, nil
}
