package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/cosmic-cycles/internal/profile"
	"github.com/HendryAvila/cosmic-cycles/internal/zodiac"
)

// ZodiacTool handles the cosmic_zodiac_sign MCP tool.
type ZodiacTool struct{}

// NewZodiacTool creates a ZodiacTool.
func NewZodiacTool() *ZodiacTool {
	return &ZodiacTool{}
}

// Definition returns the MCP tool definition for cosmic_zodiac_sign.
func (t *ZodiacTool) Definition() mcp.Tool {
	return mcp.NewTool("cosmic_zodiac_sign",
		mcp.WithDescription(
			"Resolve a sun sign from a birth date, or look up a sign by name. "+
				"Returns symbol, element, quality, ruler, strengths and challenges.",
		),
		mcp.WithString("birth_date",
			mcp.Description("Birth date (YYYY-MM-DD). Only month and day matter."),
		),
		mcp.WithString("sign",
			mcp.Description("Sign name (e.g. Aries). Used when birth_date is not given."),
		),
		withFormat(),
	)
}

// Handle processes the cosmic_zodiac_sign tool call.
func (t *ZodiacTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sign zodiac.Sign

	switch birth, name := req.GetString("birth_date", ""), req.GetString("sign", ""); {
	case birth != "":
		d, err := profile.ParseDate(birth)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("'birth_date' must be YYYY-MM-DD, got %q", birth)), nil
		}
		sign = zodiac.SignOf(d)
	case name != "":
		s, ok := zodiac.ParseSign(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown sign %q", name)), nil
		}
		sign = s
	default:
		return mcp.NewToolResultError("either 'birth_date' or 'sign' is required"), nil
	}

	info := zodiac.InfoOf(sign)
	return render(req, info, func() string {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("## %s %s (%s)\n\n", info.Symbol, info.Sign, zodiac.DateRange(sign)))
		sb.WriteString(fmt.Sprintf("- **Element**: %s\n", info.Element))
		sb.WriteString(fmt.Sprintf("- **Quality**: %s\n", info.Quality))
		sb.WriteString(fmt.Sprintf("- **Ruler**: %s\n", info.Ruler))
		sb.WriteString(fmt.Sprintf("- **Strengths**: %s\n", strings.Join(info.Strengths, ", ")))
		sb.WriteString(fmt.Sprintf("- **Challenges**: %s\n", strings.Join(info.Challenges, ", ")))
		return sb.String()
	})
}
