// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts and resources that depend on
// abstractions. No business logic lives here, only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/HendryAvila/cosmic-cycles/internal/config"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
	"github.com/HendryAvila/cosmic-cycles/internal/prompts"
	"github.com/HendryAvila/cosmic-cycles/internal/resources"
	"github.com/HendryAvila/cosmic-cycles/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the profile store's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call even if the store failed to open.
func New(cfg config.Config, log *zap.Logger) (*server.MCPServer, func(), error) {
	s := server.NewMCPServer(
		"cosmic",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register pure tools ---
	//
	// These need nothing but their arguments and always register.

	cycleTool := tools.NewCyclePhaseTool(log)
	s.AddTool(cycleTool.Definition(), cycleTool.Handle)

	zodiacTool := tools.NewZodiacTool()
	s.AddTool(zodiacTool.Definition(), zodiacTool.Handle)

	moonTool := tools.NewMoonTool()
	s.AddTool(moonTool.Definition(), moonTool.Handle)

	guidanceTool := tools.NewGuidanceTool()
	s.AddTool(guidanceTool.Definition(), guidanceTool.Handle)

	skyTool := tools.NewSkyTool()
	s.AddTool(skyTool.Definition(), skyTool.Handle)

	// --- Register profile-backed tools ---
	//
	// If the profile store fails to open, the pure tools keep working.
	// We log a warning and skip everything that needs a stored profile.

	cleanup := noop
	var loader resources.ProfileLoader

	store, err := profile.New(cfg.ProfileStore())
	if err != nil {
		log.Warn("profile store disabled", zap.String("data_dir", cfg.DataDir), zap.Error(err))
	} else {
		cleanup = func() {
			if err := store.Close(); err != nil {
				log.Warn("profile store close", zap.Error(err))
			}
		}
		loader = store
		registerProfileTools(s, store, cfg, log)
	}

	// --- Register prompts ---

	dailyPrompt := prompts.NewDailyInsightPrompt(cfg.Profile)
	s.AddPrompt(dailyPrompt.Definition(), dailyPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(loader, cfg.Profile)
	s.AddResource(resourceHandler.ProfileResource(), resourceHandler.HandleProfile)
	s.AddResource(resourceHandler.SignsResource(), resourceHandler.HandleSigns)

	log.Debug("mcp server configured",
		zap.String("version", Version),
		zap.String("profile", cfg.Profile),
		zap.Bool("profile_store", store != nil),
	)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used when the store is not open.
func noop() {}

// registerProfileTools registers the tools that read or write profiles.
func registerProfileTools(s *server.MCPServer, store *profile.Store, cfg config.Config, log *zap.Logger) {
	opts := cfg.InsightOptions()

	dailyTool := tools.NewDailyInsightTool(store, opts, cfg.Profile, log)
	s.AddTool(dailyTool.Definition(), dailyTool.Handle)

	calendarTool := tools.NewCalendarTool(store, opts, cfg.Profile, cfg.CalendarRadius)
	s.AddTool(calendarTool.Definition(), calendarTool.Handle)

	saveTool := tools.NewProfileSaveTool(store, cfg.Profile, log)
	s.AddTool(saveTool.Definition(), saveTool.Handle)

	getTool := tools.NewProfileGetTool(store, cfg.Profile)
	s.AddTool(getTool.Definition(), getTool.Handle)

	listTool := tools.NewProfileListTool(store)
	s.AddTool(listTool.Definition(), listTool.Handle)

	deleteTool := tools.NewProfileDeleteTool(store, log)
	s.AddTool(deleteTool.Definition(), deleteTool.Handle)
}

// serverInstructions returns the system instructions that tell the AI
// how to use the cosmic tools.
func serverInstructions() string {
	return `You have access to Cosmic Cycles, an MCP server that reads the day through
three lenses: the menstrual cycle, the sun sign, and the moon.

## WHEN TO USE IT

Use these tools when the user:
- Asks how their day, week or energy looks
- Asks which cycle phase they are in or when their next period is due
- Asks about their zodiac sign or the current moon phase
- Wants activity suggestions that fit their cycle

## Profiles

Daily insights need a stored profile with a birth date and the first day of
the most recent period. If cosmic_daily_insight reports a missing profile:
1. Ask the user for their birth date and last period start (YYYY-MM-DD)
2. Call profile_save with those values
3. Call cosmic_daily_insight again

Only the fields given to profile_save are changed, so you can update the
last period start on its own when a new cycle begins.

## Tools

- cosmic_daily_insight: the full reading for a profile (start here)
- cosmic_calendar: phase and color for every day around a date
- cosmic_cycle_phase: cycle phase from a last period start, no profile needed
- cosmic_zodiac_sign: sun sign details from a birth date or a sign name
- cosmic_moon_phase: one of eight moon phases for a date
- cosmic_sky: sun sign season and moon phase of a date
- cosmic_daily_guidance: guidance for an explicit sign, moon phase and cycle phase
- profile_save, profile_get, profile_list, profile_delete: manage profiles

Every tool accepts format=json when you need structured data.

## Tone

The moon phase is a mean-month estimate, not an ephemeris, and cycle phases
assume a typical 28-day cycle. Present the reading as gentle guidance, never
as medical advice.`
}
