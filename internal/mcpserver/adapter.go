// Package mcpserver bridges the capability registry onto the MCP protocol
// library. The library owns message framing, request correlation and the
// initialize lifecycle; this package only translates between registry
// definitions and the library's tool/prompt/resource surfaces.
package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"ezmcp/internal/capability"
	"ezmcp/internal/config"
	"ezmcp/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Adapter exposes a capability.Registry as an MCP server.
type Adapter struct {
	registry *capability.Registry
	cfg      config.Config
}

// NewAdapter creates an adapter for the given registry and configuration.
func NewAdapter(registry *capability.Registry, cfg config.Config) *Adapter {
	return &Adapter{
		registry: registry,
		cfg:      cfg,
	}
}

// BuildServer constructs the protocol-library server and registers every
// capability definition with it. Requests arriving over the transport are
// routed through Registry.Dispatch one at a time, so response ordering
// matches request ordering.
func (a *Adapter) BuildServer() *server.MCPServer {
	srv := server.NewMCPServer(
		a.cfg.Server.Name,
		a.cfg.Server.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	var tools []server.ServerTool
	for _, def := range a.registry.List(capability.KindTool) {
		tools = append(tools, a.serverTool(def))
	}

	var prompts []server.ServerPrompt
	for _, def := range a.registry.List(capability.KindPrompt) {
		prompts = append(prompts, a.serverPrompt(def))
	}

	var resources []server.ServerResource
	for _, def := range a.registry.List(capability.KindResource) {
		resources = append(resources, a.serverResource(def))
	}

	if len(tools) > 0 {
		srv.AddTools(tools...)
	}
	if len(prompts) > 0 {
		srv.AddPrompts(prompts...)
	}
	if len(resources) > 0 {
		srv.AddResources(resources...)
	}

	logging.Debug("MCPServer", "Registered %d tools, %d prompts, %d resources",
		len(tools), len(prompts), len(resources))

	return srv
}

// serverTool converts a tool definition into the library's tool type.
func (a *Adapter) serverTool(def capability.Definition) server.ServerTool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Params {
		opts = append(opts, toolParamOption(p))
	}

	return server.ServerTool{
		Tool: mcp.NewTool(def.Name, opts...),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := a.registry.Dispatch(ctx, capability.KindTool, def.Name, req.GetArguments(), "")
			if err != nil {
				// Lookup and validation failures are protocol-level errors,
				// not tool output.
				return nil, err
			}
			return toolResult(result), nil
		},
	}
}

// serverPrompt converts a prompt definition into the library's prompt type.
func (a *Adapter) serverPrompt(def capability.Definition) server.ServerPrompt {
	opts := []mcp.PromptOption{mcp.WithPromptDescription(def.Description)}
	for _, p := range def.Params {
		argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(p.Description)}
		if p.Required {
			argOpts = append(argOpts, mcp.RequiredArgument())
		}
		opts = append(opts, mcp.WithArgument(p.Name, argOpts...))
	}

	return server.ServerPrompt{
		Prompt: mcp.NewPrompt(def.Name, opts...),
		Handler: func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			args := make(map[string]interface{}, len(req.Params.Arguments))
			for k, v := range req.Params.Arguments {
				args[k] = v
			}

			result, err := a.registry.Dispatch(ctx, capability.KindPrompt, def.Name, args, "")
			if err != nil {
				return nil, err
			}
			if result.IsError {
				// The wire format of prompt results has no error flag, so a
				// handler failure folded into the result is surfaced as a
				// protocol-level error here.
				return nil, errors.New(contentText(result))
			}

			messages := make([]mcp.PromptMessage, 0, len(result.Messages))
			for _, m := range result.Messages {
				messages = append(messages, mcp.NewPromptMessage(promptRole(m.Role), mcp.NewTextContent(m.Text)))
			}
			return mcp.NewGetPromptResult(result.Description, messages), nil
		},
	}
}

// serverResource converts a resource definition into the library's resource
// type.
func (a *Adapter) serverResource(def capability.Definition) server.ServerResource {
	return server.ServerResource{
		Resource: mcp.NewResource(def.URI, def.Name,
			mcp.WithResourceDescription(def.Description),
			mcp.WithMIMEType(def.MIMEType),
		),
		Handler: func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			result, err := a.registry.Dispatch(ctx, capability.KindResource, def.Name, nil, req.Params.URI)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      result.URI,
					MIMEType: result.MIMEType,
					Text:     result.Text,
				},
			}, nil
		},
	}
}

// toolParamOption maps a declared parameter onto the library's typed tool
// options.
func toolParamOption(p capability.Param) mcp.ToolOption {
	switch p.Type {
	case "number", "integer":
		numOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			numOpts = append(numOpts, mcp.Required())
		}
		return mcp.WithNumber(p.Name, numOpts...)
	case "boolean":
		boolOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			boolOpts = append(boolOpts, mcp.Required())
		}
		return mcp.WithBoolean(p.Name, boolOpts...)
	default:
		strOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			strOpts = append(strOpts, mcp.Required())
		}
		if s, ok := p.Default.(string); ok {
			strOpts = append(strOpts, mcp.DefaultString(s))
		}
		return mcp.WithString(p.Name, strOpts...)
	}
}

// toolResult converts a registry tool result into the library's result type,
// preserving content order and the error flag.
func toolResult(result capability.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(result.Content))
	for _, c := range result.Content {
		content = append(content, mcp.NewTextContent(c.Text))
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: result.IsError,
	}
}

// contentText flattens a result's content items into a single string.
func contentText(result capability.Result) string {
	switch len(result.Content) {
	case 0:
		return ""
	case 1:
		return result.Content[0].Text
	default:
		text := result.Content[0].Text
		for _, c := range result.Content[1:] {
			text = fmt.Sprintf("%s\n%s", text, c.Text)
		}
		return text
	}
}

func promptRole(role string) mcp.Role {
	if role == capability.RoleAssistant {
		return mcp.RoleAssistant
	}
	return mcp.RoleUser
}
