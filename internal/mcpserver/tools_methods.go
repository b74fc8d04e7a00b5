package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type methodsInput struct {
	Item itemInput `json:"item" jsonschema:"The path item document to inspect"`
}

type methodSummary struct {
	Method      string   `json:"method"`
	HTTPMethod  string   `json:"http_method"`
	OperationID string   `json:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
}

type methodsOutput struct {
	Count          int             `json:"count"`
	Methods        []methodSummary `json:"methods,omitempty"`
	ServerCount    int             `json:"server_count"`
	ParameterCount int             `json:"parameter_count"`
}

func handleMethods(_ context.Context, _ *mcp.CallToolRequest, input methodsInput) (*mcp.CallToolResult, any, error) {
	item, _, err := input.Item.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	out := methodsOutput{
		ServerCount:    len(item.Servers),
		ParameterCount: len(item.Parameters),
	}
	for m, op := range item.Operations() {
		out.Methods = append(out.Methods, methodSummary{
			Method:      m.String(),
			HTTPMethod:  m.HTTPMethod(),
			OperationID: op.OperationID,
			Summary:     op.Summary,
			Tags:        op.Tags,
			Deprecated:  op.Deprecated,
		})
	}
	out.Count = len(out.Methods)
	return nil, out, nil
}
