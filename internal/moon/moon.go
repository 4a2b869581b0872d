// Package moon estimates the lunar phase of a calendar day with a
// simplified synodic-month formula.
//
// The formula is a low-accuracy approximation kept bit-for-bit so that
// results match other implementations. Illumination is a nominal value
// per phase, not an astronomical measurement.
package moon

import (
	"math"
	"strings"
	"time"
)

// SynodicMonth is the mean period between new moons, in days.
const SynodicMonth = 29.5305882

// epochOffset aligns the day count with a known new moon.
const epochOffset = 694039.09

// Phase is an index into the eight named lunar phases.
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// Info describes a lunar phase.
type Info struct {
	Phase        Phase   `json:"index"`
	Name         string  `json:"phase"`
	Emoji        string  `json:"emoji"`
	Illumination float64 `json:"illumination"`
	Description  string  `json:"description"`
}

var phases = [...]Info{
	{NewMoon, "New Moon", "🌑", 0, "New beginnings, setting intentions, fresh starts"},
	{WaxingCrescent, "Waxing Crescent", "🌒", 12.5, "Growth, manifestation, taking action"},
	{FirstQuarter, "First Quarter", "🌓", 50, "Overcoming obstacles, making decisions"},
	{WaxingGibbous, "Waxing Gibbous", "🌔", 75, "Refinement, adjustment, patience"},
	{FullMoon, "Full Moon", "🌕", 100, "Culmination, release, manifestation"},
	{WaningGibbous, "Waning Gibbous", "🌖", 75, "Gratitude, sharing wisdom, reflection"},
	{LastQuarter, "Last Quarter", "🌗", 50, "Letting go, forgiveness, completion"},
	{WaningCrescent, "Waning Crescent", "🌘", 12.5, "Rest, surrender, spiritual work"},
}

// Count is the number of phases.
const Count = len(phases)

// Valid reports whether p is one of the eight phases.
func (p Phase) Valid() bool {
	return p >= 0 && int(p) < Count
}

// String returns the canonical phase name.
func (p Phase) String() string {
	if !p.Valid() {
		return ""
	}
	return phases[p].Name
}

// Describe returns the metadata of p. Out-of-range phases yield a zero Info.
func Describe(p Phase) Info {
	if !p.Valid() {
		return Info{}
	}
	return phases[p]
}

// All returns the eight phases in cycle order.
func All() []Info {
	out := make([]Info, Count)
	copy(out, phases[:])
	return out
}

// ParsePhase matches a canonical phase name case-insensitively.
func ParsePhase(name string) (Phase, bool) {
	name = strings.TrimSpace(name)
	for _, info := range phases {
		if strings.EqualFold(name, info.Name) {
			return info.Phase, true
		}
	}
	return 0, false
}

// Age returns the normalized age of the moon within its cycle, in [0, 1),
// for the civil date of t in t's own location. Time of day is ignored.
func Age(t time.Time) float64 {
	// Explicit float64 conversions force rounding of each product so the
	// compiler cannot fuse them into multiply-adds.
	c := float64(365.25 * float64(t.Year()))
	e := float64(30.6 * float64(t.Month()))
	jd := c + e + float64(t.Day()) - epochOffset
	jd /= SynodicMonth
	return jd - math.Floor(jd)
}

// PhaseOf returns the lunar phase for the civil date of t.
func PhaseOf(t time.Time) Info {
	b := int(math.Round(Age(t) * 8))
	if b >= Count {
		b = 0
	}
	return phases[b]
}

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// Today returns the lunar phase for the current local date.
func Today() Info {
	return PhaseOf(timeNow())
}
