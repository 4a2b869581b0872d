// Package guidance composes a daily advisory from a sun sign, a lunar
// phase and a cycle phase.
package guidance

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/cosmic-cycles/internal/cycle"
	"github.com/HendryAvila/cosmic-cycles/internal/moon"
	"github.com/HendryAvila/cosmic-cycles/internal/zodiac"
)

// Guidance is a structured daily advisory.
type Guidance struct {
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	Activities []string `json:"activities"`
	Warnings   []string `json:"warnings"`
}

// lunarTrend groups the eight phases by the activities they suggest.
type lunarTrend int

const (
	trendNone lunarTrend = iota
	trendNew
	trendFull
	trendWaxing
	trendWaning
)

var trendActivities = map[lunarTrend][]string{
	trendNew:    {"Set new intentions", "Start fresh projects"},
	trendFull:   {"Complete ongoing tasks", "Release what no longer serves you"},
	trendWaxing: {"Build momentum", "Take action on goals"},
	trendWaning: {"Rest and reflect", "Cleanse and declutter"},
}

// trendOf classifies a moon phase name. Canonical names dispatch on the
// phase itself; the quarters belong to no trend. Other names fall back to
// substring matching in New, Full, Waxing, Waning order.
func trendOf(name string) lunarTrend {
	if p, ok := moon.ParsePhase(name); ok {
		switch p {
		case moon.NewMoon:
			return trendNew
		case moon.FullMoon:
			return trendFull
		case moon.WaxingCrescent, moon.WaxingGibbous:
			return trendWaxing
		case moon.WaningGibbous, moon.WaningCrescent:
			return trendWaning
		default:
			return trendNone
		}
	}

	switch {
	case strings.Contains(name, "New"):
		return trendNew
	case strings.Contains(name, "Full"):
		return trendFull
	case strings.Contains(name, "Waxing"):
		return trendWaxing
	case strings.Contains(name, "Waning"):
		return trendWaning
	}
	return trendNone
}

// Compose builds the advisory for sign under moonPhase (a canonical phase
// name such as "Full Moon") during cyclePhase.
//
// Moon activities precede cycle activities. Warnings come from the cycle
// phase only. Unknown cycle phases leave the message empty and add
// nothing; unknown signs interpolate empty element and challenge text.
func Compose(sign zodiac.Sign, moonPhase string, cyclePhase cycle.Phase) Guidance {
	g := Guidance{
		Title:      fmt.Sprintf("%s in %s", sign, moonPhase),
		Activities: []string{},
		Warnings:   []string{},
	}

	g.Activities = append(g.Activities, trendActivities[trendOf(moonPhase)]...)

	element := zodiac.InfoOf(sign).Element

	switch cyclePhase {
	case cycle.Menstrual:
		g.Message = fmt.Sprintf("Your %s sign needs rest during menstruation. Honor your intuition and take time to recharge.", element)
		g.Activities = append(g.Activities, "Gentle movement", "Journaling", "Meditation")
		g.Warnings = append(g.Warnings, "Avoid overcommitting", "Don't push through exhaustion")
	case cycle.Follicular:
		g.Message = fmt.Sprintf("Your %s energy is rising! This is your power time to start new ventures aligned with your %s nature.", element, sign)
		g.Activities = append(g.Activities, "Social activities", "Creative projects", "Planning ahead")
	case cycle.Ovulation:
		g.Message = fmt.Sprintf("Peak %s power! Your %s element is amplified. Use this magnetic energy wisely.", sign, element)
		g.Activities = append(g.Activities, "Important conversations", "Networking", "Performance activities")
		g.Warnings = append(g.Warnings, "Avoid making rushed commitments", "Don't overextend yourself")
	case cycle.Luteal:
		g.Message = fmt.Sprintf("As a %s, you may feel more introverted now. Honor your need for %s grounding activities.", sign, element)
		g.Activities = append(g.Activities, "Self-care rituals", "Completing tasks", "Nesting activities")
		g.Warnings = append(g.Warnings, "Watch for "+zodiac.FirstChallenge(sign), "Be gentle with yourself")
	}

	return g
}
