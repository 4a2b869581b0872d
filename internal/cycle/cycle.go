// Package cycle maps a last period start and a target date onto the four
// phases of a menstrual cycle.
//
// All functions are pure: they read no clock (except Today), hold no state,
// and are safe for concurrent use.
package cycle

import (
	"errors"
	"fmt"
	"time"
)

// Phase is one of the four named stages of a menstrual cycle.
type Phase string

const (
	Menstrual  Phase = "menstrual"
	Follicular Phase = "follicular"
	Ovulation  Phase = "ovulation"
	Luteal     Phase = "luteal"
)

// DefaultColor is returned by Phase.Color for tags outside the four phases.
const DefaultColor = "#007AFF"

// Phases returns the four phases in cycle order.
func Phases() []Phase {
	return []Phase{Menstrual, Follicular, Ovulation, Luteal}
}

// ParsePhase converts a lowercase tag into a Phase.
func ParsePhase(s string) (Phase, bool) {
	switch p := Phase(s); p {
	case Menstrual, Follicular, Ovulation, Luteal:
		return p, true
	}
	return "", false
}

// Name returns the capitalized display name of the phase.
func (p Phase) Name() string {
	switch p {
	case Menstrual:
		return "Menstrual"
	case Follicular:
		return "Follicular"
	case Ovulation:
		return "Ovulation"
	case Luteal:
		return "Luteal"
	}
	return ""
}

// Color returns the hex color code used to render the phase.
func (p Phase) Color() string {
	switch p {
	case Menstrual:
		return "#FF3B30"
	case Follicular:
		return "#34C759"
	case Ovulation:
		return "#FF9500"
	case Luteal:
		return "#5856D6"
	}
	return DefaultColor
}

// Descriptor holds the fixed human-readable text for a phase.
type Descriptor struct {
	Description string `json:"description"`
	Energy      string `json:"energy"`
	Emotions    string `json:"emotions"`
}

var descriptors = map[Phase]Descriptor{
	Menstrual: {
		Description: "Menstruation - Your body is shedding the uterine lining",
		Energy:      "Low energy, need for rest and introspection",
		Emotions:    "Reflective, intuitive, sensitive",
	},
	Follicular: {
		Description: "Follicular Phase - Estrogen is rising, new follicles developing",
		Energy:      "Increasing energy, motivation, and confidence",
		Emotions:    "Optimistic, social, creative",
	},
	Ovulation: {
		Description: "Ovulation - Peak fertility, egg released from ovary",
		Energy:      "Highest energy levels, peak strength and stamina",
		Emotions:    "Confident, outgoing, magnetic",
	},
	Luteal: {
		Description: "Luteal Phase - Progesterone rising, body preparing for potential pregnancy",
		Energy:      "Energy declining, need for self-care and nesting",
		Emotions:    "Introspective, may experience PMS symptoms",
	},
}

// Describe returns the descriptor for p. Unknown phases yield a zero Descriptor.
func Describe(p Phase) Descriptor {
	return descriptors[p]
}

// Info is the result of placing a target date within the cycle.
type Info struct {
	Phase               Phase  `json:"phase"`
	DayInCycle          int    `json:"day_in_cycle"`
	DaysUntilNextPeriod int    `json:"days_until_next_period"`
	Description         string `json:"phase_description"`
	Energy              string `json:"phase_energy"`
	Emotions            string `json:"phase_emotions"`
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model holds the phase lengths, in days, of one cycle.
type Model struct {
	MenstrualDays  int `json:"menstrual_days"`
	FollicularDays int `json:"follicular_days"`
	OvulationDays  int `json:"ovulation_days"`
	LutealDays     int `json:"luteal_days"`
}

// DefaultModel is the canonical 28-day cycle.
var DefaultModel = Model{
	MenstrualDays:  5,
	FollicularDays: 9,
	OvulationDays:  3,
	LutealDays:     11,
}

// Bounds for ModelForLength.
const (
	MinCycleLength = 20
	MaxCycleLength = 60
)

// ErrInvalidModel is returned when a model has a non-positive phase length.
var ErrInvalidModel = errors.New("cycle: invalid model")

// CycleLength returns the total number of days in one cycle.
func (m Model) CycleLength() int {
	return m.MenstrualDays + m.FollicularDays + m.OvulationDays + m.LutealDays
}

// Validate reports whether every phase has at least one day.
func (m Model) Validate() error {
	if m.MenstrualDays < 1 || m.FollicularDays < 1 || m.OvulationDays < 1 || m.LutealDays < 1 {
		return fmt.Errorf("%w: phase lengths %d/%d/%d/%d must all be positive",
			ErrInvalidModel, m.MenstrualDays, m.FollicularDays, m.OvulationDays, m.LutealDays)
	}
	return nil
}

// ModelForLength derives a model for a cycle of n days. The menstrual,
// ovulation and luteal phases keep their default lengths; the follicular
// phase absorbs the difference.
func ModelForLength(n int) (Model, error) {
	if n < MinCycleLength || n > MaxCycleLength {
		return Model{}, fmt.Errorf("%w: cycle length %d outside [%d, %d]",
			ErrInvalidModel, n, MinCycleLength, MaxCycleLength)
	}
	m := DefaultModel
	m.FollicularDays = n - m.MenstrualDays - m.OvulationDays - m.LutealDays
	if err := m.Validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// PhaseAt returns the phase of a 1-based day within the cycle.
func (m Model) PhaseAt(dayInCycle int) Phase {
	switch {
	case dayInCycle <= m.MenstrualDays:
		return Menstrual
	case dayInCycle <= m.MenstrualDays+m.FollicularDays:
		return Follicular
	case dayInCycle <= m.MenstrualDays+m.FollicularDays+m.OvulationDays:
		return Ovulation
	default:
		return Luteal
	}
}

// Compute places target within the cycle that began at lastPeriodStart.
// A target before lastPeriodStart is valid; the day index wraps backwards.
// An invalid model, including the zero Model, computes with DefaultModel.
func (m Model) Compute(lastPeriodStart, target time.Time) Info {
	if m.Validate() != nil {
		m = DefaultModel
	}
	length := m.CycleLength()
	day := floorMod(DaysBetween(lastPeriodStart, target), length) + 1
	phase := m.PhaseAt(day)
	d := descriptors[phase]

	return Info{
		Phase:               phase,
		DayInCycle:          day,
		DaysUntilNextPeriod: length - day,
		Description:         d.Description,
		Energy:              d.Energy,
		Emotions:            d.Emotions,
	}
}

// Compute places target within the cycle using DefaultModel.
func Compute(lastPeriodStart, target time.Time) Info {
	return DefaultModel.Compute(lastPeriodStart, target)
}

// Today places the current instant within the cycle using DefaultModel.
func Today(lastPeriodStart time.Time) Info {
	return Compute(lastPeriodStart, timeNow())
}

// DaysBetween returns floor((to - from) / 24h). Both values are treated as
// instants, so a partial day before from counts as -1. Spans beyond the
// range of time.Duration are exact.
func DaysBetween(from, to time.Time) int {
	const secondsPerDay = 86400
	secs := to.Unix() - from.Unix()
	if to.Nanosecond() < from.Nanosecond() {
		secs--
	}
	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}
	return int(days)
}

func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
