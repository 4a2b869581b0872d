package insight

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/HendryAvila/cosmic-cycles/internal/cycle"
	"github.com/HendryAvila/cosmic-cycles/internal/guidance"
	"github.com/HendryAvila/cosmic-cycles/internal/moon"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
	"github.com/HendryAvila/cosmic-cycles/internal/zodiac"
	"github.com/google/go-cmp/cmp"
)

func testProfile() profile.Profile {
	p := profile.Default()
	p.BirthDate = "1990-03-21"
	p.LastPeriodStart = "2024-01-01"
	return p
}

// ─── ForProfile ──────────────────────────────────────────────────────────────

func TestForProfile_ComposesAllModels(t *testing.T) {
	on := time.Date(2024, time.January, 15, 18, 30, 0, 0, time.UTC)

	got, err := ForProfile(testProfile(), on, Options{})
	if err != nil {
		t.Fatalf("ForProfile error: %v", err)
	}

	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	wantMoon := moon.PhaseOf(day)
	want := Daily{
		Date:       "2024-01-15",
		Cycle:      cycle.Compute(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), day),
		PhaseName:  "Ovulation",
		PhaseColor: "#FF9500",
		Zodiac:     zodiac.InfoOf(zodiac.Aries),
		Moon:       wantMoon,
		Guidance:   guidance.Compose(zodiac.Aries, wantMoon.Name, cycle.Ovulation),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ForProfile mismatch (-want +got):\n%s", diff)
	}
	if got.Cycle.DayInCycle != 15 {
		t.Errorf("DayInCycle = %d, want 15", got.Cycle.DayInCycle)
	}
}

func TestForProfile_UsesCallerCivilDate(t *testing.T) {
	// 23:30 on Jan 14 in UTC-5 is already Jan 15 in UTC; the caller's day wins.
	est := time.FixedZone("EST", -5*60*60)
	on := time.Date(2024, time.January, 14, 23, 30, 0, 0, est)

	got, err := ForProfile(testProfile(), on, Options{})
	if err != nil {
		t.Fatalf("ForProfile error: %v", err)
	}
	if got.Date != "2024-01-14" || got.Cycle.DayInCycle != 14 {
		t.Errorf("got date %s day %d, want 2024-01-14 day 14", got.Date, got.Cycle.DayInCycle)
	}
}

func TestForProfile_Incomplete(t *testing.T) {
	p := testProfile()
	p.BirthDate = ""

	_, err := ForProfile(p, time.Now(), Options{})
	if !errors.Is(err, ErrIncompleteProfile) {
		t.Errorf("error = %v, want ErrIncompleteProfile", err)
	}
}

func TestForProfile_BadDate(t *testing.T) {
	p := testProfile()
	p.LastPeriodStart = "01/01/2024"

	if _, err := ForProfile(p, time.Now(), Options{}); err == nil {
		t.Error("expected parse error")
	}
}

func TestForProfile_CycleLengthIgnoredByDefault(t *testing.T) {
	p := testProfile()
	p.CycleLength = 35
	on := time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC)

	got, err := ForProfile(p, on, Options{})
	if err != nil {
		t.Fatalf("ForProfile error: %v", err)
	}
	if got.Cycle.DayInCycle != 2 {
		t.Errorf("DayInCycle = %d, want 2 (28-day model)", got.Cycle.DayInCycle)
	}
}

func TestForProfile_HonorCycleLength(t *testing.T) {
	p := testProfile()
	p.CycleLength = 35
	on := time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC)

	got, err := ForProfile(p, on, Options{HonorCycleLength: true})
	if err != nil {
		t.Fatalf("ForProfile error: %v", err)
	}
	if got.Cycle.DayInCycle != 30 || got.Cycle.DaysUntilNextPeriod != 5 {
		t.Errorf("got day %d until %d, want day 30 until 5", got.Cycle.DayInCycle, got.Cycle.DaysUntilNextPeriod)
	}
}

func TestForProfile_HonorCycleLengthRejectsOutOfRange(t *testing.T) {
	p := testProfile()
	p.CycleLength = 7

	_, err := ForProfile(p, time.Now(), Options{HonorCycleLength: true})
	if !errors.Is(err, cycle.ErrInvalidModel) {
		t.Errorf("error = %v, want cycle.ErrInvalidModel", err)
	}
}

func TestDaily_Markdown(t *testing.T) {
	on := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	d, err := ForProfile(testProfile(), on, Options{})
	if err != nil {
		t.Fatalf("ForProfile error: %v", err)
	}

	md := d.Markdown()
	for _, want := range []string{"# 2024-01-20", "Luteal Phase", "♈ Aries", "Watch for Impatient", d.Moon.Name} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

// ─── SkyOn ───────────────────────────────────────────────────────────────────

func TestSkyOn(t *testing.T) {
	on := time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)
	got := SkyOn(on)

	if got.Sign.Sign != zodiac.Leo {
		t.Errorf("Sign = %s, want Leo", got.Sign.Sign)
	}
	if got.DateRange != "Jul 23 - Aug 22" {
		t.Errorf("DateRange = %q", got.DateRange)
	}
	if got.Moon != moon.PhaseOf(on) {
		t.Errorf("Moon = %+v", got.Moon)
	}
	if !strings.Contains(got.Markdown(), "Leo") {
		t.Error("sky markdown should mention Leo")
	}
}
