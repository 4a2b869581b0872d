package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/HendryAvila/cosmic-cycles/internal/insight"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

// loadProfile fetches the named profile. A non-nil result is a tool error
// to hand back as is.
func loadProfile(ctx context.Context, store ProfileStore, name string) (profile.Profile, *mcp.CallToolResult) {
	rec, err := store.Load(ctx, name)
	if errors.Is(err, profile.ErrNotFound) {
		return profile.Profile{}, mcp.NewToolResultError(fmt.Sprintf(
			"no profile named %q. Call profile_save with birth_date and last_period_start first.", name))
	}
	if err != nil {
		return profile.Profile{}, mcp.NewToolResultError(fmt.Sprintf("failed to load profile %q: %v", name, err))
	}
	return rec.Profile, nil
}

// ─── DailyInsightTool ───────────────────────────────────────────────────────

// DailyInsightTool handles the cosmic_daily_insight MCP tool.
type DailyInsightTool struct {
	store          ProfileStore
	opts           insight.Options
	defaultProfile string
	log            *zap.Logger
}

// NewDailyInsightTool creates a DailyInsightTool reading from store.
func NewDailyInsightTool(store ProfileStore, opts insight.Options, defaultProfile string, log *zap.Logger) *DailyInsightTool {
	return &DailyInsightTool{store: store, opts: opts, defaultProfile: defaultProfile, log: log}
}

// Definition returns the MCP tool definition for cosmic_daily_insight.
func (t *DailyInsightTool) Definition() mcp.Tool {
	return mcp.NewTool("cosmic_daily_insight",
		mcp.WithDescription(
			"Full daily insight for a stored profile: cycle phase, sun sign, moon phase and combined guidance. "+
				"Call this when the user asks how their day looks.",
		),
		mcp.WithString("profile",
			mcp.Description("Profile name (default: the configured profile)"),
		),
		mcp.WithString("date",
			mcp.Description("Date (YYYY-MM-DD, default: today)"),
		),
		withFormat(),
	)
}

// Handle processes the cosmic_daily_insight tool call.
func (t *DailyInsightTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("profile", t.defaultProfile)
	on, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, toolErr := loadProfile(ctx, t.store, name)
	if toolErr != nil {
		return toolErr, nil
	}

	daily, err := insight.ForProfile(p, on, t.opts)
	if err != nil {
		t.log.Warn("daily insight failed", zap.String("profile", name), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return render(req, daily, daily.Markdown)
}

// ─── CalendarTool ───────────────────────────────────────────────────────────

// CalendarTool handles the cosmic_calendar MCP tool.
type CalendarTool struct {
	store          ProfileStore
	opts           insight.Options
	defaultProfile string
	defaultRadius  int
}

// NewCalendarTool creates a CalendarTool reading from store.
func NewCalendarTool(store ProfileStore, opts insight.Options, defaultProfile string, defaultRadius int) *CalendarTool {
	return &CalendarTool{store: store, opts: opts, defaultProfile: defaultProfile, defaultRadius: defaultRadius}
}

// Definition returns the MCP tool definition for cosmic_calendar.
func (t *CalendarTool) Definition() mcp.Tool {
	return mcp.NewTool("cosmic_calendar",
		mcp.WithDescription(
			"Mark every day around a date with its cycle phase and display color, "+
				"for rendering a cycle calendar.",
		),
		mcp.WithString("profile",
			mcp.Description("Profile name (default: the configured profile)"),
		),
		mcp.WithString("date",
			mcp.Description("Center date (YYYY-MM-DD, default: today)"),
		),
		mcp.WithNumber("radius",
			mcp.Description(fmt.Sprintf("Days shown either side of the center date (default: %d, max: %d)",
				insight.DefaultRadius, insight.MaxRadius)),
		),
		withFormat(),
	)
}

// Handle processes the cosmic_calendar tool call.
func (t *CalendarTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("profile", t.defaultProfile)
	center, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	radius, err := intArg(req, "radius", t.defaultRadius)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, toolErr := loadProfile(ctx, t.store, name)
	if toolErr != nil {
		return toolErr, nil
	}

	days, err := insight.Calendar(p, center, radius, t.opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return render(req, days, func() string { return insight.CalendarMarkdown(days) })
}

// ─── SkyTool ────────────────────────────────────────────────────────────────

// SkyTool handles the cosmic_sky MCP tool.
type SkyTool struct{}

// NewSkyTool creates a SkyTool.
func NewSkyTool() *SkyTool {
	return &SkyTool{}
}

// Definition returns the MCP tool definition for cosmic_sky.
func (t *SkyTool) Definition() mcp.Tool {
	return mcp.NewTool("cosmic_sky",
		mcp.WithDescription("Current sun sign season and moon phase for a date, independent of any profile."),
		mcp.WithString("date",
			mcp.Description("Date (YYYY-MM-DD, default: today)"),
		),
		withFormat(),
	)
}

// Handle processes the cosmic_sky tool call.
func (t *SkyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	on, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sky := insight.SkyOn(on)
	return render(req, sky, sky.Markdown)
}
