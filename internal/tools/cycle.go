package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/HendryAvila/cosmic-cycles/internal/cycle"
	"github.com/HendryAvila/cosmic-cycles/internal/insight"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

// CyclePhaseTool handles the cosmic_cycle_phase MCP tool.
type CyclePhaseTool struct {
	log *zap.Logger
}

// NewCyclePhaseTool creates a CyclePhaseTool.
func NewCyclePhaseTool(log *zap.Logger) *CyclePhaseTool {
	return &CyclePhaseTool{log: log}
}

// Definition returns the MCP tool definition for cosmic_cycle_phase.
func (t *CyclePhaseTool) Definition() mcp.Tool {
	return mcp.NewTool("cosmic_cycle_phase",
		mcp.WithDescription(
			"Place a date within the menstrual cycle: phase, day in cycle, days until the next period, "+
				"and what the phase typically feels like.",
		),
		mcp.WithString("last_period_start",
			mcp.Required(),
			mcp.Description("First day of the most recent period (YYYY-MM-DD)"),
		),
		mcp.WithString("date",
			mcp.Description("Target date (YYYY-MM-DD, default: today)"),
		),
		mcp.WithNumber("cycle_length",
			mcp.Description("Cycle length in days (default: 28). The follicular phase absorbs any difference."),
		),
		withFormat(),
	)
}

// Handle processes the cosmic_cycle_phase tool call.
func (t *CyclePhaseTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lastStr := req.GetString("last_period_start", "")
	if lastStr == "" {
		return mcp.NewToolResultError("'last_period_start' is required"), nil
	}
	last, err := profile.ParseDate(lastStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'last_period_start' must be YYYY-MM-DD, got %q", lastStr)), nil
	}
	target, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n, err := intArg(req, "cycle_length", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	model := cycle.DefaultModel
	if n != 0 {
		model, err = cycle.ModelForLength(n)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	day := insight.CivilDate(target)
	info := model.Compute(last, day)
	t.log.Debug("cycle phase computed",
		zap.String("date", day.Format(profile.DateLayout)),
		zap.String("phase", string(info.Phase)),
		zap.Int("day_in_cycle", info.DayInCycle),
	)

	return render(req, info, func() string {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("## %s Phase (%s)\n\n", info.Phase.Name(), info.Phase.Color()))
		sb.WriteString(fmt.Sprintf("- **Date**: %s\n", day.Format(profile.DateLayout)))
		sb.WriteString(fmt.Sprintf("- **Day in cycle**: %d of %d\n", info.DayInCycle, model.CycleLength()))
		sb.WriteString(fmt.Sprintf("- **Days until next period**: %d\n", info.DaysUntilNextPeriod))
		sb.WriteString(fmt.Sprintf("- **Description**: %s\n", info.Description))
		sb.WriteString(fmt.Sprintf("- **Energy**: %s\n", info.Energy))
		sb.WriteString(fmt.Sprintf("- **Emotions**: %s\n", info.Emotions))
		return sb.String()
	})
}
