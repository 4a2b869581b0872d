package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/HendryAvila/cosmic-cycles/internal/insight"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

// resetFlags restores every flag in the command tree to its default so
// one test's flags do not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type workspace struct {
	dataDir string
	cfgFile string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".cosmic.toml")
	if err := os.WriteFile(cfgFile, []byte("calendar_radius = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return workspace{dataDir: filepath.Join(dir, "data"), cfgFile: cfgFile}
}

// run executes the root command with args inside ws and returns stdout.
func (ws workspace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", ws.cfgFile, "--data-dir", ws.dataDir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func (ws workspace) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := ws.run(t, args...)
	if err != nil {
		t.Fatalf("cosmic %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

func TestProfileSetShowToday(t *testing.T) {
	ws := newWorkspace(t)

	out := ws.mustRun(t, "profile", "set", "--birth-date", "1990-03-21")
	if !strings.Contains(out, "Still needed") {
		t.Errorf("partial profile should report missing fields, got: %s", out)
	}
	ws.mustRun(t, "profile", "set", "--last-period", "2024-01-01")

	out = ws.mustRun(t, "profile", "show")
	for _, want := range []string{"1990-03-21", "2024-01-01", "28 days", "Birth place:  not set"} {
		if !strings.Contains(out, want) {
			t.Errorf("show should contain %q, got:\n%s", want, out)
		}
	}

	out = ws.mustRun(t, "today", "--date", "2024-01-15")
	for _, want := range []string{"# 2024-01-15", "Ovulation Phase (#FF9500)", "♈ Aries", "Aries in"} {
		if !strings.Contains(out, want) {
			t.Errorf("today should contain %q, got:\n%s", want, out)
		}
	}
}

func TestTodayJSON(t *testing.T) {
	ws := newWorkspace(t)
	ws.mustRun(t, "profile", "set", "--birth-date", "1990-03-21", "--last-period", "2024-01-01")
	freezeTime(t, time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC))

	out := ws.mustRun(t, "today", "--json")

	var daily insight.Daily
	if err := json.Unmarshal([]byte(out), &daily); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if daily.Date != "2024-01-29" || daily.Cycle.DayInCycle != 1 || daily.PhaseName != "Menstrual" {
		t.Errorf("unexpected daily insight: %+v", daily)
	}
}

func TestToday_Errors(t *testing.T) {
	ws := newWorkspace(t)

	if _, err := ws.run(t, "today"); err == nil || !strings.Contains(err.Error(), "profile set") {
		t.Errorf("missing profile should point at profile set, got %v", err)
	}

	ws.mustRun(t, "profile", "set", "--last-period", "2024-01-01")
	if _, err := ws.run(t, "today"); err == nil || !strings.Contains(err.Error(), "birth date") {
		t.Errorf("incomplete profile should be reported, got %v", err)
	}

	if _, err := ws.run(t, "today", "--date", "15/01/2024"); err == nil {
		t.Error("expected error for malformed --date")
	}
}

func TestCalendar(t *testing.T) {
	ws := newWorkspace(t)
	ws.mustRun(t, "profile", "set", "--last-period", "2024-01-01")

	// calendar_radius = 3 comes from the config file.
	out := ws.mustRun(t, "calendar", "--date", "2024-01-15", "--json")
	var days []insight.Day
	if err := json.Unmarshal([]byte(out), &days); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(days) != 7 || days[0].Date != "2024-01-12" || !days[3].Today {
		t.Errorf("unexpected calendar: %+v", days)
	}

	out = ws.mustRun(t, "calendar", "--date", "2024-01-15", "--radius", "1")
	if rows := strings.Count(out, "\n"); rows != 5 {
		t.Errorf("got %d lines, want header, separator and 3 rows:\n%s", rows, out)
	}
}

func TestProfileImportListDelete(t *testing.T) {
	ws := newWorkspace(t)

	file := filepath.Join(t.TempDir(), "ana.toml")
	body := "birthDate = '1992-08-01'\nlastPeriodStart = '2024-02-10'\nbirthPlace = 'Lisbon'\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	ws.mustRun(t, "profile", "import", file, "--profile", "ana")
	ws.mustRun(t, "profile", "set", "--profile", "zoe", "--birth-date", "2001-01-01")

	out := ws.mustRun(t, "profile", "list")
	if !strings.Contains(out, "ana") || !strings.Contains(out, "zoe") || strings.Index(out, "ana") > strings.Index(out, "zoe") {
		t.Errorf("list should show ana then zoe, got:\n%s", out)
	}

	out = ws.mustRun(t, "profile", "show", "--profile", "ana", "--toml")
	p, err := profile.DecodeTOML(strings.NewReader(out))
	if err != nil {
		t.Fatalf("decode shown toml: %v\n%s", err, out)
	}
	if p.BirthPlace != "Lisbon" || p.BirthTime != "12:00" || p.CycleLength != 28 {
		t.Errorf("imported profile = %+v", p)
	}

	ws.mustRun(t, "profile", "delete", "ana")
	if _, err := ws.run(t, "profile", "delete", "ana"); err == nil {
		t.Error("deleting twice should fail")
	}
	out = ws.mustRun(t, "profile", "list")
	if strings.Contains(out, "ana") {
		t.Errorf("ana should be gone, got:\n%s", out)
	}
}

func TestProfileImportJSON(t *testing.T) {
	ws := newWorkspace(t)

	file := filepath.Join(t.TempDir(), "ana.JSON")
	body := `{"birthDate":"1992-08-01","lastPeriodStart":"2024-02-10","birthPlace":"Lisbon","cycleLength":30}`
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	ws.mustRun(t, "profile", "import", file, "--profile", "ana")

	out := ws.mustRun(t, "profile", "show", "--profile", "ana", "--json")
	var p profile.Profile
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if p.BirthDate != "1992-08-01" || p.BirthPlace != "Lisbon" || p.CycleLength != 30 || p.BirthTime != "12:00" {
		t.Errorf("imported profile = %+v", p)
	}
}

func TestProfileSet_ZeroCoordinates(t *testing.T) {
	ws := newWorkspace(t)
	ws.mustRun(t, "profile", "set", "--birth-date", "1990-03-21", "--latitude", "38.72", "--longitude", "-9.14")
	ws.mustRun(t, "profile", "set", "--latitude", "0", "--longitude", "0")

	out := ws.mustRun(t, "profile", "show", "--json")
	var p profile.Profile
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if p.Latitude != 0 || p.Longitude != 0 {
		t.Errorf("coordinates = %v, %v, want 0, 0", p.Latitude, p.Longitude)
	}
	if p.BirthDate != "1990-03-21" {
		t.Errorf("BirthDate = %q, want unchanged", p.BirthDate)
	}
}

func TestProfileSet_RejectsInvalid(t *testing.T) {
	ws := newWorkspace(t)
	if _, err := ws.run(t, "profile", "set", "--birth-time", "noon"); err == nil {
		t.Error("expected error for malformed birth time")
	}
}

func TestSignsAndSky(t *testing.T) {
	ws := newWorkspace(t)

	out := ws.mustRun(t, "signs")
	if lines := strings.Count(out, "\n"); lines != 13 {
		t.Errorf("got %d lines, want header plus 12 signs:\n%s", lines, out)
	}
	if !strings.Contains(out, "Mar 21 - Apr 19") {
		t.Errorf("signs should list date ranges, got:\n%s", out)
	}

	out = ws.mustRun(t, "sky", "--date", "2024-07-30")
	if !strings.Contains(out, "Leo") {
		t.Errorf("expected Leo season, got:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	ws := newWorkspace(t)
	out := ws.mustRun(t, "version")
	if !strings.HasPrefix(out, "cosmic v") {
		t.Errorf("version output = %q", out)
	}
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		l, err := newLogger(verbose)
		if err != nil {
			t.Fatalf("newLogger(%v): %v", verbose, err)
		}
		if got := l.Core().Enabled(-1); got != verbose {
			t.Errorf("newLogger(%v) debug enabled = %v", verbose, got)
		}
	}
}
