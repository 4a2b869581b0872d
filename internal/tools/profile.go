package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

// ProfileSaveTool handles the profile_save MCP tool.
type ProfileSaveTool struct {
	store          ProfileStore
	defaultProfile string
	log            *zap.Logger
}

// NewProfileSaveTool creates a ProfileSaveTool.
func NewProfileSaveTool(store ProfileStore, defaultProfile string, log *zap.Logger) *ProfileSaveTool {
	return &ProfileSaveTool{store: store, defaultProfile: defaultProfile, log: log}
}

// Definition returns the MCP tool definition for profile_save.
func (t *ProfileSaveTool) Definition() mcp.Tool {
	return mcp.NewTool("profile_save",
		mcp.WithDescription(
			"Create or update a profile. Only the fields given are changed; "+
				"birth_date and last_period_start are needed before insights can be computed.",
		),
		mcp.WithString("profile",
			mcp.Description("Profile name (default: the configured profile)"),
		),
		mcp.WithString("birth_date",
			mcp.Description("Birth date (YYYY-MM-DD)"),
		),
		mcp.WithString("birth_time",
			mcp.Description("Birth time (HH:MM, 24h)"),
		),
		mcp.WithString("birth_place",
			mcp.Description("Birth place, free text"),
		),
		mcp.WithNumber("latitude",
			mcp.Description("Birth place latitude"),
		),
		mcp.WithNumber("longitude",
			mcp.Description("Birth place longitude"),
		),
		mcp.WithString("last_period_start",
			mcp.Description("First day of the most recent period (YYYY-MM-DD)"),
		),
		mcp.WithNumber("cycle_length",
			mcp.Description("Typical cycle length in days"),
		),
	)
}

// Handle processes the profile_save tool call.
func (t *ProfileSaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("profile", t.defaultProfile)

	current := profile.Default()
	rec, err := t.store.Load(ctx, name)
	switch {
	case err == nil:
		current = rec.Profile
	case !errors.Is(err, profile.ErrNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile %q: %v", name, err)), nil
	}

	update := profile.Update{
		BirthDate:       optionalArg[string](req, "birth_date"),
		BirthTime:       optionalArg[string](req, "birth_time"),
		BirthPlace:      optionalArg[string](req, "birth_place"),
		Latitude:        optionalArg[float64](req, "latitude"),
		Longitude:       optionalArg[float64](req, "longitude"),
		LastPeriodStart: optionalArg[string](req, "last_period_start"),
	}
	if _, ok := req.GetArguments()["cycle_length"]; ok {
		n, err := intArg(req, "cycle_length", 0)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		update.CycleLength = &n
	}
	merged := current.Apply(update)

	if err := t.store.Save(ctx, name, merged); err != nil {
		if errors.Is(err, profile.ErrInvalid) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		t.log.Error("profile save failed", zap.String("profile", name), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to save profile: %v", err)), nil
	}
	t.log.Info("profile saved", zap.String("profile", name))

	response := fmt.Sprintf("Profile %q saved.", name)
	if !merged.Complete() {
		response += "\nStill needed for insights: birth_date and last_period_start."
	}
	return mcp.NewToolResultText(response), nil
}

// ─── ProfileGetTool ─────────────────────────────────────────────────────────

// ProfileGetTool handles the profile_get MCP tool.
type ProfileGetTool struct {
	store          ProfileStore
	defaultProfile string
}

// NewProfileGetTool creates a ProfileGetTool.
func NewProfileGetTool(store ProfileStore, defaultProfile string) *ProfileGetTool {
	return &ProfileGetTool{store: store, defaultProfile: defaultProfile}
}

// Definition returns the MCP tool definition for profile_get.
func (t *ProfileGetTool) Definition() mcp.Tool {
	return mcp.NewTool("profile_get",
		mcp.WithDescription("Show a stored profile."),
		mcp.WithString("profile",
			mcp.Description("Profile name (default: the configured profile)"),
		),
		withFormat(),
	)
}

// Handle processes the profile_get tool call.
func (t *ProfileGetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("profile", t.defaultProfile)

	p, toolErr := loadProfile(ctx, t.store, name)
	if toolErr != nil {
		return toolErr, nil
	}

	return render(req, p, func() string { return profileMarkdown(name, p) })
}

func orNotSet(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not set"
	}
	return s
}

func profileMarkdown(name string, p profile.Profile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Profile: %s\n\n", name))
	sb.WriteString(fmt.Sprintf("- **Birth date**: %s\n", orNotSet(p.BirthDate)))
	sb.WriteString(fmt.Sprintf("- **Birth time**: %s\n", orNotSet(p.BirthTime)))
	sb.WriteString(fmt.Sprintf("- **Birth place**: %s\n", orNotSet(p.BirthPlace)))
	sb.WriteString(fmt.Sprintf("- **Coordinates**: %.4f, %.4f\n", p.Latitude, p.Longitude))
	sb.WriteString(fmt.Sprintf("- **Last period start**: %s\n", orNotSet(p.LastPeriodStart)))
	sb.WriteString(fmt.Sprintf("- **Cycle length**: %d days\n", p.CycleLength))
	return sb.String()
}

// ─── ProfileListTool ────────────────────────────────────────────────────────

// ProfileListTool handles the profile_list MCP tool.
type ProfileListTool struct {
	store ProfileStore
}

// NewProfileListTool creates a ProfileListTool.
func NewProfileListTool(store ProfileStore) *ProfileListTool {
	return &ProfileListTool{store: store}
}

// Definition returns the MCP tool definition for profile_list.
func (t *ProfileListTool) Definition() mcp.Tool {
	return mcp.NewTool("profile_list",
		mcp.WithDescription("List stored profile names with their last update time."),
	)
}

// Handle processes the profile_list tool call.
func (t *ProfileListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recs, err := t.store.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list profiles: %v", err)), nil
	}
	if len(recs) == 0 {
		return mcp.NewToolResultText("No profiles stored yet."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Profiles (%d)\n\n", len(recs)))
	for _, r := range recs {
		sb.WriteString(fmt.Sprintf("- **%s** (updated %s)\n", r.Name, r.UpdatedAt))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// ─── ProfileDeleteTool ──────────────────────────────────────────────────────

// ProfileDeleteTool handles the profile_delete MCP tool.
type ProfileDeleteTool struct {
	store ProfileStore
	log   *zap.Logger
}

// NewProfileDeleteTool creates a ProfileDeleteTool.
func NewProfileDeleteTool(store ProfileStore, log *zap.Logger) *ProfileDeleteTool {
	return &ProfileDeleteTool{store: store, log: log}
}

// Definition returns the MCP tool definition for profile_delete.
func (t *ProfileDeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("profile_delete",
		mcp.WithDescription("Delete a stored profile. This cannot be undone."),
		mcp.WithString("profile",
			mcp.Required(),
			mcp.Description("Profile name"),
		),
	)
}

// Handle processes the profile_delete tool call.
func (t *ProfileDeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("profile", "")
	if name == "" {
		return mcp.NewToolResultError("'profile' is required"), nil
	}

	if err := t.store.Delete(ctx, name); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("no profile named %q", name)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete profile: %v", err)), nil
	}
	t.log.Info("profile deleted", zap.String("profile", name))
	return mcp.NewToolResultText(fmt.Sprintf("Profile %q deleted.", name)), nil
}
