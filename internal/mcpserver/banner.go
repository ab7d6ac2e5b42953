package mcpserver

import (
	"fmt"
	"io"
	"strings"

	"ezmcp/internal/capability"
	"ezmcp/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Banner colors with consistent light/dark mode support.
var (
	bannerColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	bannerColorSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
)

var (
	bannerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(bannerColorPrimary)

	bannerLabelStyle = lipgloss.NewStyle().
				Foreground(bannerColorSecondary)
)

// Banner renders the human-readable startup banner: server name, the
// registered capability names per kind and the current configuration. It is
// informational only and must be written to stderr; stdout carries the
// protocol stream.
func (a *Adapter) Banner() string {
	greeting := config.CurrentGreeting()

	var b strings.Builder
	fmt.Fprintf(&b, "🚀 %s\n", bannerTitleStyle.Render(a.cfg.Server.Name))
	fmt.Fprintf(&b, "%s\n", bannerLabelStyle.Render("Capabilities:"))
	for _, name := range a.registry.Names(capability.KindResource) {
		def, _ := a.registry.Get(capability.KindResource, name)
		fmt.Fprintf(&b, "   • Resource: %s (%s)\n", name, def.URI)
	}
	for _, name := range a.registry.Names(capability.KindTool) {
		fmt.Fprintf(&b, "   • Tool: %s\n", name)
	}
	for _, name := range a.registry.Names(capability.KindPrompt) {
		fmt.Fprintf(&b, "   • Prompt: %s\n", name)
	}
	fmt.Fprintf(&b, "%s\n", bannerLabelStyle.Render("Configuration:"))
	fmt.Fprintf(&b, "   • Environment: %s\n", greeting.Environment)
	fmt.Fprintf(&b, "   • Greeting prefix: %s\n", greeting.Prefix)
	fmt.Fprintf(&b, "📡 Serving MCP over stdio. Configure this server in your MCP client.\n")
	return b.String()
}

// PrintBanner writes the startup banner to w.
func (a *Adapter) PrintBanner(w io.Writer) {
	fmt.Fprint(w, a.Banner())
}
