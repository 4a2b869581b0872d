package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/cosmic-cycles/internal/insight"
	"github.com/HendryAvila/cosmic-cycles/internal/moon"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

// MoonTool handles the cosmic_moon_phase MCP tool.
type MoonTool struct{}

// NewMoonTool creates a MoonTool.
func NewMoonTool() *MoonTool {
	return &MoonTool{}
}

// Definition returns the MCP tool definition for cosmic_moon_phase.
func (t *MoonTool) Definition() mcp.Tool {
	return mcp.NewTool("cosmic_moon_phase",
		mcp.WithDescription(
			"Estimate the lunar phase of a date (one of eight phases) with a nominal illumination. "+
				"Uses a mean synodic month approximation, not an ephemeris.",
		),
		mcp.WithString("date",
			mcp.Description("Date (YYYY-MM-DD, default: today)"),
		),
		withFormat(),
	)
}

// Handle processes the cosmic_moon_phase tool call.
func (t *MoonTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	day := insight.CivilDate(target)
	info := moon.PhaseOf(day)
	return render(req, info, func() string {
		return fmt.Sprintf("## %s %s\n\n- **Date**: %s\n- **Illumination**: %.1f%%\n- **Meaning**: %s\n",
			info.Emoji, info.Name, day.Format(profile.DateLayout), info.Illumination, info.Description)
	})
}
