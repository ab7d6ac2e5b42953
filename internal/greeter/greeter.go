// Package greeter defines the three built-in capabilities of the demo
// server: the server-info resource, the hello-someone tool and the
// greeting-prompt prompt.
//
// All three read the greeting prefix through config.CurrentGreeting at
// invocation time, so an environment change takes effect on the next call.
package greeter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ezmcp/internal/capability"
	"ezmcp/internal/config"
)

// Capability names and addresses.
const (
	ResourceServerInfo = "server-info"
	ServerInfoURI      = "server://info"
	ToolHelloSomeone   = "hello-someone"
	PromptGreeting     = "greeting-prompt"
)

// serverInfo is the JSON payload of the server-info resource. Field order
// matters for readability of the rendered document, not for correctness.
type serverInfo struct {
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	Author         string   `json:"author"`
	Status         string   `json:"status"`
	GreetingPrefix string   `json:"greeting_prefix"`
	SampleGreeting string   `json:"sample_greeting"`
}

// Definitions returns the built-in capability definitions. The server
// identity baked into the server-info resource comes from cfg; the greeting
// prefix does not, it is re-read from the environment on every invocation.
func Definitions(cfg config.Config) []capability.Definition {
	return []capability.Definition{
		{
			Kind:        capability.KindResource,
			Name:        ResourceServerInfo,
			Description: "Get information about this MCP server",
			URI:         ServerInfoURI,
			MIMEType:    "application/json",
			Handler:     serverInfoHandler(cfg),
		},
		{
			Kind:        capability.KindTool,
			Name:        ToolHelloSomeone,
			Description: "Say hello to someone",
			Params: capability.ParamSpec{
				{Name: "name", Type: "string", Description: "Name of the person to greet", Required: true},
			},
			Handler: helloSomeoneHandler,
		},
		{
			Kind:        capability.KindPrompt,
			Name:        PromptGreeting,
			Description: "Generate a greeting prompt for someone",
			Params: capability.ParamSpec{
				{Name: "person_name", Type: "string", Description: "Name of the person the greeting is for", Required: true},
			},
			Handler: greetingPromptHandler,
		},
	}
}

// RegisterAll registers the built-in capabilities with the registry.
func RegisterAll(reg *capability.Registry, cfg config.Config) error {
	for _, def := range Definitions(cfg) {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// serverInfoHandler serves the server://info resource: a JSON document
// describing the server, including a sample greeting built from the current
// prefix.
func serverInfoHandler(cfg config.Config) capability.HandlerFunc {
	return func(ctx context.Context, inv capability.Invocation) (capability.Result, error) {
		greeting := config.CurrentGreeting()

		info := serverInfo{
			Name:        cfg.Server.Name,
			Version:     cfg.Server.Version,
			Description: cfg.Server.Description,
			Features: []string{
				"hello tool",
				"greeting prompt",
				"server info resource",
			},
			Author:         cfg.Server.Author,
			Status:         "running",
			GreetingPrefix: greeting.Prefix,
			SampleGreeting: fmt.Sprintf("%s, World!", greeting.Prefix),
		}

		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return capability.Result{}, fmt.Errorf("failed to serialize server info: %w", err)
		}

		return capability.ResourceResult(ServerInfoURI, "application/json", string(data)), nil
	}
}

// helloSomeoneHandler greets the named person. A name that is empty after
// trimming yields an in-band error result, not a protocol error.
func helloSomeoneHandler(ctx context.Context, inv capability.Invocation) (capability.Result, error) {
	name, _ := inv.Args["name"].(string)
	name = strings.TrimSpace(name)

	if name == "" {
		return capability.ErrorResult("Error: Please provide a name"), nil
	}

	greeting := config.CurrentGreeting()
	return capability.TextResult(fmt.Sprintf("%s, %s! Nice to meet you!", greeting.Prefix, name)), nil
}

// greetingPromptHandler renders the greeting template as a single user-role
// message for a model to act on.
func greetingPromptHandler(ctx context.Context, inv capability.Invocation) (capability.Result, error) {
	name, _ := inv.Args["person_name"].(string)
	greeting := config.CurrentGreeting()

	text := fmt.Sprintf(`Please create a greeting for %s that begins with "%s".

The greeting should be:
1. Warm
2. Welcoming
3. Professional yet friendly
4. Appropriate for a first meeting
5. Memorable and personal

Example format: %s, %s! It's wonderful to meet you.

Make it genuine and engaging.`, name, greeting.Prefix, greeting.Prefix, name)

	return capability.PromptResult(
		fmt.Sprintf("A greeting prompt for %s", name),
		capability.Message{Role: capability.RoleUser, Text: text},
	), nil
}
