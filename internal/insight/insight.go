// Package insight is the adapter between a stored profile and the pure
// cycle, zodiac, moon and guidance packages. It parses the profile, picks
// the cycle model and assembles the per-day views the outer surfaces render.
package insight

import (
	"errors"
	"fmt"
	"time"

	"github.com/HendryAvila/cosmic-cycles/internal/cycle"
	"github.com/HendryAvila/cosmic-cycles/internal/guidance"
	"github.com/HendryAvila/cosmic-cycles/internal/moon"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
	"github.com/HendryAvila/cosmic-cycles/internal/zodiac"
)

// ErrIncompleteProfile is returned when the birth date or the last period
// start is missing.
var ErrIncompleteProfile = errors.New("insight: profile needs birthDate and lastPeriodStart")

// Options tune how a profile is interpreted.
type Options struct {
	// HonorCycleLength threads the profile's cycleLength into the cycle
	// model. When false the canonical 28-day model is used.
	HonorCycleLength bool
}

// Daily is everything shown for one day of one profile.
type Daily struct {
	Date       string            `json:"date"`
	Cycle      cycle.Info        `json:"cycle"`
	PhaseName  string            `json:"phase_name"`
	PhaseColor string            `json:"phase_color"`
	Zodiac     zodiac.Info       `json:"zodiac"`
	Moon       moon.Info         `json:"moon"`
	Guidance   guidance.Guidance `json:"guidance"`
}

// CivilDate returns midnight UTC of t's calendar day in t's own location,
// so that profile dates and caller dates are compared as whole days.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Model returns the cycle model for p under opts.
func Model(p profile.Profile, opts Options) (cycle.Model, error) {
	if !opts.HonorCycleLength || p.CycleLength == 0 || p.CycleLength == cycle.DefaultModel.CycleLength() {
		return cycle.DefaultModel, nil
	}
	m, err := cycle.ModelForLength(p.CycleLength)
	if err != nil {
		return cycle.Model{}, fmt.Errorf("insight: %w", err)
	}
	return m, nil
}

type parsed struct {
	birth      time.Time
	lastPeriod time.Time
	model      cycle.Model
}

func parse(p profile.Profile, opts Options) (parsed, error) {
	if !p.Complete() {
		return parsed{}, ErrIncompleteProfile
	}
	birth, err := p.BirthDay()
	if err != nil {
		return parsed{}, fmt.Errorf("insight: %w", err)
	}
	last, err := p.LastPeriod()
	if err != nil {
		return parsed{}, fmt.Errorf("insight: %w", err)
	}
	m, err := Model(p, opts)
	if err != nil {
		return parsed{}, err
	}
	return parsed{birth: birth, lastPeriod: last, model: m}, nil
}

// ForProfile computes the daily insight of p for the calendar day of on.
func ForProfile(p profile.Profile, on time.Time, opts Options) (Daily, error) {
	in, err := parse(p, opts)
	if err != nil {
		return Daily{}, err
	}

	day := CivilDate(on)
	c := in.model.Compute(in.lastPeriod, day)
	sign := zodiac.SignOf(in.birth)
	m := moon.PhaseOf(day)

	return Daily{
		Date:       day.Format(profile.DateLayout),
		Cycle:      c,
		PhaseName:  c.Phase.Name(),
		PhaseColor: c.Phase.Color(),
		Zodiac:     zodiac.InfoOf(sign),
		Moon:       m,
		Guidance:   guidance.Compose(sign, m.Name, c.Phase),
	}, nil
}

// Sky is the profile-independent view of a date: the sun sign of the day
// and the moon.
type Sky struct {
	Date      string      `json:"date"`
	Sign      zodiac.Info `json:"sign"`
	DateRange string      `json:"date_range"`
	Moon      moon.Info   `json:"moon"`
}

// SkyOn returns the sun sign and moon phase for the calendar day of on.
func SkyOn(on time.Time) Sky {
	day := CivilDate(on)
	sign := zodiac.SignOf(day)
	return Sky{
		Date:      day.Format(profile.DateLayout),
		Sign:      zodiac.InfoOf(sign),
		DateRange: zodiac.DateRange(sign),
		Moon:      moon.PhaseOf(day),
	}
}
