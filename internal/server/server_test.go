package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/HendryAvila/cosmic-cycles/internal/config"
	"github.com/HendryAvila/cosmic-cycles/internal/insight"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

func testConfig(dataDir string) config.Config {
	return config.Config{
		DataDir:        dataDir,
		Profile:        profile.DefaultName,
		CalendarRadius: insight.DefaultRadius,
	}
}

// listTools asks the server for its tool list over JSON-RPC.
func listTools(t *testing.T, cfg config.Config) []string {
	t.Helper()
	s, cleanup, err := New(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(cleanup)

	msg := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	resp, ok := msg.(mcp.JSONRPCResponse)
	if !ok {
		t.Fatalf("tools/list returned %T: %+v", msg, msg)
	}
	result, ok := resp.Result.(mcp.ListToolsResult)
	if !ok {
		t.Fatalf("result is %T", resp.Result)
	}

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	return names
}

func TestNew_RegistersAllTools(t *testing.T) {
	got := listTools(t, testConfig(t.TempDir()))
	want := []string{
		"cosmic_calendar",
		"cosmic_cycle_phase",
		"cosmic_daily_guidance",
		"cosmic_daily_insight",
		"cosmic_moon_phase",
		"cosmic_sky",
		"cosmic_zodiac_sign",
		"profile_delete",
		"profile_get",
		"profile_list",
		"profile_save",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tools mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_StoreFailureKeepsPureTools(t *testing.T) {
	// A regular file where the data directory should be makes the store fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	got := listTools(t, testConfig(filepath.Join(blocker, "data")))
	want := []string{
		"cosmic_cycle_phase",
		"cosmic_daily_guidance",
		"cosmic_moon_phase",
		"cosmic_sky",
		"cosmic_zodiac_sign",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tools mismatch (-want +got):\n%s", diff)
	}
}

func TestServerInstructions(t *testing.T) {
	instr := serverInstructions()
	for _, name := range []string{"cosmic_daily_insight", "profile_save", "cosmic_calendar"} {
		if !strings.Contains(instr, name) {
			t.Errorf("instructions should mention %s", name)
		}
	}
}
