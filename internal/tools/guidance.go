package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/cosmic-cycles/internal/cycle"
	"github.com/HendryAvila/cosmic-cycles/internal/guidance"
	"github.com/HendryAvila/cosmic-cycles/internal/moon"
	"github.com/HendryAvila/cosmic-cycles/internal/zodiac"
)

// GuidanceTool handles the cosmic_daily_guidance MCP tool.
type GuidanceTool struct{}

// NewGuidanceTool creates a GuidanceTool.
func NewGuidanceTool() *GuidanceTool {
	return &GuidanceTool{}
}

func moonNames() []string {
	var names []string
	for _, info := range moon.All() {
		names = append(names, info.Name)
	}
	return names
}

func phaseTags() []string {
	var tags []string
	for _, p := range cycle.Phases() {
		tags = append(tags, string(p))
	}
	return tags
}

// Definition returns the MCP tool definition for cosmic_daily_guidance.
func (t *GuidanceTool) Definition() mcp.Tool {
	return mcp.NewTool("cosmic_daily_guidance",
		mcp.WithDescription(
			"Compose daily guidance from a sun sign, a moon phase and a cycle phase: "+
				"a title, a message, recommended activities and things to watch for.",
		),
		mcp.WithString("sign",
			mcp.Required(),
			mcp.Description("Sun sign (e.g. Aries)"),
		),
		mcp.WithString("moon_phase",
			mcp.Required(),
			mcp.Description("Moon phase name"),
			mcp.Enum(moonNames()...),
		),
		mcp.WithString("cycle_phase",
			mcp.Required(),
			mcp.Description("Cycle phase"),
			mcp.Enum(phaseTags()...),
		),
		withFormat(),
	)
}

// Handle processes the cosmic_daily_guidance tool call.
func (t *GuidanceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	signName := req.GetString("sign", "")
	moonPhase := req.GetString("moon_phase", "")
	phaseTag := req.GetString("cycle_phase", "")

	if signName == "" || moonPhase == "" || phaseTag == "" {
		return mcp.NewToolResultError("'sign', 'moon_phase' and 'cycle_phase' are required"), nil
	}
	sign, ok := zodiac.ParseSign(signName)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown sign %q", signName)), nil
	}
	phase, ok := cycle.ParsePhase(strings.ToLower(phaseTag))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown cycle phase %q (want one of %s)",
			phaseTag, strings.Join(phaseTags(), ", "))), nil
	}

	g := guidance.Compose(sign, moonPhase, phase)
	return render(req, g, func() string { return guidanceMarkdown(g) })
}

func guidanceMarkdown(g guidance.Guidance) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", g.Title))
	if g.Message != "" {
		sb.WriteString(g.Message + "\n\n")
	}
	if len(g.Activities) > 0 {
		sb.WriteString("**Recommended**\n")
		for _, a := range g.Activities {
			sb.WriteString(fmt.Sprintf("- %s\n", a))
		}
		sb.WriteString("\n")
	}
	if len(g.Warnings) > 0 {
		sb.WriteString("**Be mindful**\n")
		for _, w := range g.Warnings {
			sb.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}
	return sb.String()
}
