// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// DailyInsightPrompt handles the daily-insight MCP prompt.
// It asks the AI to gather the day's reading and present it.
type DailyInsightPrompt struct {
	defaultProfile string
}

// NewDailyInsightPrompt creates a DailyInsightPrompt.
func NewDailyInsightPrompt(defaultProfile string) *DailyInsightPrompt {
	return &DailyInsightPrompt{defaultProfile: defaultProfile}
}

// Definition returns the MCP prompt definition for registration.
func (p *DailyInsightPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("daily-insight",
		mcp.WithPromptDescription(
			"Get today's reading: where you are in your cycle, your sun sign, "+
				"the moon phase, and guidance that ties them together.",
		),
		mcp.WithArgument("profile",
			mcp.ArgumentDescription("Profile name. Default: the configured profile"),
		),
		mcp.WithArgument("date",
			mcp.ArgumentDescription("Date as YYYY-MM-DD. Default: today"),
		),
	)
}

// Handle processes the daily-insight prompt request.
func (p *DailyInsightPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := p.defaultProfile
	date := "today"
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["profile"]; ok && v != "" {
			name = v
		}
		if v, ok := args["date"]; ok && v != "" {
			date = v
		}
	}

	dateArg := ""
	if date != "today" {
		dateArg = fmt.Sprintf(" and date='%s'", date)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Daily insight for %s (%s)", name, date),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I'd like my cosmic insight for %s.\n\n"+
						"Please:\n"+
						"1. Run `cosmic_daily_insight` with profile='%s'%s\n"+
						"2. If the profile is missing or incomplete, ask me for my birth date and the first day of my last period, "+
						"then save them with `profile_save` and try again\n"+
						"3. Present the cycle phase, sun sign and moon phase briefly\n"+
						"4. End with the recommended activities and the things to be mindful of",
					date, name, dateArg,
				)),
			},
		},
	}, nil
}
