// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaspath capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oaskit/oaspath"
	"github.com/oaskit/oaspath/codec"
)

const serverInstructions = `oaspath MCP server: formats, inspects and builds OpenAPI Path Item Objects.

Configuration: defaults are configurable via OASPATH_* environment variables set in your MCP client config.

Key settings:
- OASPATH_OUTPUT_FORMAT (default: yaml) - output format when a tool call does not set one (json or yaml)
- OASPATH_INDENT (default: 2) - indentation of returned documents
- OASPATH_MAX_INPUT_SIZE (default: 1048576) - maximum input document size in bytes
- OASPATH_CACHE_ENABLED (default: true) - cache decoded inputs for the session
- OASPATH_CACHE_MAX_SIZE (default: 10) - number of cached inputs
- OASPATH_CACHE_FILE_TTL (default: 15m) - cache TTL for file inputs`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaspath", Version: oaspath.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "pathitem_format",
		Description: "Normalize an OpenAPI Path Item document. Decodes JSON or YAML and re-encodes it with known fields in canonical order (summary, description, get ... trace, servers, parameters) followed by x- extensions in sorted order. Unknown non-extension keys are dropped. Set format to convert between JSON and YAML.",
	}, handleFormat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pathitem_build",
		Description: "Build an OpenAPI Path Item holding a single operation. Provide the HTTP method and the operation fields; path-level summary, servers and parameters are optional. Returns the encoded path item.",
	}, handleBuild)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pathitem_methods",
		Description: "List the HTTP methods defined on an OpenAPI Path Item, in canonical order, with each operation's operationId and summary.",
	}, handleMethods)
}

// outputFormat picks the requested format, falling back to the configured default.
func outputFormat(requested string) (codec.Format, error) {
	if requested == "" {
		return cfg.OutputFormat, nil
	}
	f := codec.ParseFormat(requested)
	if f == codec.FormatUnknown {
		return codec.FormatUnknown, fmt.Errorf("invalid format %q; valid values: json, yaml", requested)
	}
	return f, nil
}

// encode renders v in the given format with the configured indentation.
func encode(v any, format codec.Format) (string, error) {
	out, err := codec.Encode(v, codec.WithFormat(format), codec.WithIndent(cfg.Indent))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
