package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oaskit/oaspath/builder"
	"github.com/oaskit/oaspath/oas"
)

type buildParameter struct {
	Name        string `json:"name"                  jsonschema:"Parameter name"`
	In          string `json:"in"                    jsonschema:"Parameter location: query\\, header\\, path or cookie"`
	Description string `json:"description,omitempty" jsonschema:"Parameter description"`
	Required    bool   `json:"required,omitempty"    jsonschema:"Whether the parameter is required (always true for path parameters)"`
}

type buildInput struct {
	Method          string           `json:"method"                     jsonschema:"HTTP method (get\\, put\\, post\\, delete\\, options\\, head\\, patch\\, trace; any case)"`
	OperationID     string           `json:"operation_id,omitempty"     jsonschema:"Operation identifier"`
	Summary         string           `json:"summary,omitempty"          jsonschema:"Operation summary"`
	Description     string           `json:"description,omitempty"      jsonschema:"Operation description"`
	Tags            []string         `json:"tags,omitempty"             jsonschema:"Operation tags"`
	Deprecated      bool             `json:"deprecated,omitempty"       jsonschema:"Mark the operation deprecated"`
	PathSummary     string           `json:"path_summary,omitempty"     jsonschema:"Summary applying to every operation on the path"`
	PathDescription string           `json:"path_description,omitempty" jsonschema:"Description applying to every operation on the path"`
	Servers         []string         `json:"servers,omitempty"          jsonschema:"Server URLs overriding the document servers"`
	Parameters      []buildParameter `json:"parameters,omitempty"       jsonschema:"Path-level parameters"`
	ParameterRefs   []string         `json:"parameter_refs,omitempty"   jsonschema:"Path-level parameter $ref values (e.g. #/components/parameters/Limit)"`
	Format          string           `json:"format,omitempty"           jsonschema:"Output format: json or yaml (default from OASPATH_OUTPUT_FORMAT)"`
}

type buildOutput struct {
	Method   string `json:"method"`
	Format   string `json:"format"`
	Document string `json:"document"`
}

func handleBuild(_ context.Context, _ *mcp.CallToolRequest, input buildInput) (*mcp.CallToolResult, any, error) {
	method, ok := oas.ParseMethod(input.Method)
	if !ok {
		return errResult(fmt.Errorf("invalid method %q; valid values: get, put, post, delete, options, head, patch, trace", input.Method)), nil, nil
	}
	format, err := outputFormat(input.Format)
	if err != nil {
		return errResult(err), nil, nil
	}

	op := &oas.Operation{
		OperationID: input.OperationID,
		Summary:     input.Summary,
		Description: input.Description,
		Tags:        input.Tags,
		Deprecated:  input.Deprecated,
	}

	opts := []builder.PathOption{
		builder.WithSummary(input.PathSummary),
		builder.WithDescription(input.PathDescription),
	}
	for _, url := range input.Servers {
		opts = append(opts, builder.WithServerURL(url))
	}
	for _, p := range input.Parameters {
		param, err := toParameter(p)
		if err != nil {
			return errResult(err), nil, nil
		}
		opts = append(opts, builder.WithParameter(param))
	}
	for _, ref := range input.ParameterRefs {
		opts = append(opts, builder.WithParameterRef(ref))
	}

	item := builder.ForMethod[oas.PathItem](method, op, opts...)
	doc, err := encode(item, format)
	if err != nil {
		return errResult(err), nil, nil
	}
	return nil, buildOutput{
		Method:   method.String(),
		Format:   string(format),
		Document: doc,
	}, nil
}

func toParameter(p buildParameter) (*oas.Parameter, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("parameter name is required")
	}
	switch p.In {
	case oas.ParamInQuery, oas.ParamInHeader, oas.ParamInCookie:
	case oas.ParamInPath:
		p.Required = true
	default:
		return nil, fmt.Errorf("parameter %q: invalid location %q; valid values: query, header, path, cookie", p.Name, p.In)
	}
	return &oas.Parameter{
		Name:        p.Name,
		In:          p.In,
		Description: p.Description,
		Required:    p.Required,
	}, nil
}
