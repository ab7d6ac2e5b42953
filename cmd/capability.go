package cmd

import (
	"encoding/json"
	"fmt"

	"ezmcp/internal/capability"
	"ezmcp/internal/config"
	"ezmcp/internal/greeter"

	"github.com/spf13/cobra"
)

var capabilityOutputFormat string

// capabilityCmd represents the capability command
var capabilityCmd = &cobra.Command{
	Use:   "capability",
	Short: "Inspect the built-in capabilities",
	Long: `Inspect the capabilities this server registers at startup, without
starting a transport.

Available commands:
  list - List all registered capabilities
  get  - Show the full definition of one capability`,
}

// capabilityListCmd lists all registered capabilities
var capabilityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered capabilities",
	RunE:  runCapabilityList,
}

// capabilityGetCmd shows one capability definition
var capabilityGetCmd = &cobra.Command{
	Use:   "get <kind> <name>",
	Short: "Show the definition of a capability",
	Long: `Show the definition of a single capability by kind and name,
e.g. 'ezmcp capability get tool hello-someone'.`,
	Args: cobra.ExactArgs(2),
	RunE: runCapabilityGet,
}

func init() {
	rootCmd.AddCommand(capabilityCmd)

	capabilityCmd.AddCommand(capabilityListCmd)
	capabilityCmd.AddCommand(capabilityGetCmd)

	capabilityCmd.PersistentFlags().StringVarP(&capabilityOutputFormat, "output", "o", "table", "Output format (table, json)")
}

// builtinRegistry builds the same registry the serve command uses.
func builtinRegistry() (*capability.Registry, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	registry := capability.NewRegistry()
	if err := greeter.RegisterAll(registry, cfg); err != nil {
		return nil, fmt.Errorf("failed to register capabilities: %w", err)
	}
	return registry, nil
}

func runCapabilityList(cmd *cobra.Command, args []string) error {
	registry, err := builtinRegistry()
	if err != nil {
		return err
	}

	kinds := []capability.Kind{capability.KindResource, capability.KindTool, capability.KindPrompt}

	if capabilityOutputFormat == "json" {
		listing := make(map[string][]string, len(kinds))
		for _, kind := range kinds {
			listing[string(kind)] = registry.Names(kind)
		}
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, kind := range kinds {
		for _, def := range registry.List(kind) {
			fmt.Printf("%-10s %-18s %s\n", def.Kind, def.Name, def.Description)
		}
	}
	return nil
}

func runCapabilityGet(cmd *cobra.Command, args []string) error {
	registry, err := builtinRegistry()
	if err != nil {
		return err
	}

	kind := capability.Kind(args[0])
	name := args[1]

	def, ok := registry.Get(kind, name)
	if !ok {
		return fmt.Errorf("capability not found: %s/%s", kind, name)
	}

	if capabilityOutputFormat == "json" {
		out := map[string]interface{}{
			"kind":        def.Kind,
			"name":        def.Name,
			"description": def.Description,
			"parameters":  def.Params.Schema(),
		}
		if def.URI != "" {
			out["uri"] = def.URI
			out["mimeType"] = def.MIMEType
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Kind:        %s\n", def.Kind)
	fmt.Printf("Name:        %s\n", def.Name)
	fmt.Printf("Description: %s\n", def.Description)
	if def.URI != "" {
		fmt.Printf("URI:         %s\n", def.URI)
		fmt.Printf("MIME type:   %s\n", def.MIMEType)
	}
	for _, p := range def.Params {
		required := "optional"
		if p.Required {
			required = "required"
		}
		fmt.Printf("Parameter:   %s (%s, %s) %s\n", p.Name, p.Type, required, p.Description)
	}
	return nil
}
