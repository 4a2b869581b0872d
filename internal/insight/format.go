package insight

import (
	"fmt"
	"strings"
)

// Markdown renders the daily insight the way the home screen lays it out.
func (d Daily) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", d.Date))

	sb.WriteString(fmt.Sprintf("## %s Phase (%s)\n\n", d.PhaseName, d.PhaseColor))
	sb.WriteString(fmt.Sprintf("Day %d of your cycle, %d days until your next period.\n\n",
		d.Cycle.DayInCycle, d.Cycle.DaysUntilNextPeriod))
	sb.WriteString(fmt.Sprintf("%s\n\n", d.Cycle.Description))
	sb.WriteString(fmt.Sprintf("- **Energy**: %s\n", d.Cycle.Energy))
	sb.WriteString(fmt.Sprintf("- **Emotions**: %s\n\n", d.Cycle.Emotions))

	sb.WriteString(fmt.Sprintf("## %s %s\n\n", d.Zodiac.Symbol, d.Zodiac.Sign))
	sb.WriteString(fmt.Sprintf("%s · %s · ruled by %s\n\n", d.Zodiac.Element, d.Zodiac.Quality, d.Zodiac.Ruler))

	sb.WriteString(fmt.Sprintf("## %s %s\n\n", d.Moon.Emoji, d.Moon.Name))
	sb.WriteString(fmt.Sprintf("%s (%.1f%% illuminated)\n\n", d.Moon.Description, d.Moon.Illumination))

	sb.WriteString(fmt.Sprintf("## %s\n\n", d.Guidance.Title))
	if d.Guidance.Message != "" {
		sb.WriteString(d.Guidance.Message + "\n\n")
	}
	writeList(&sb, "Recommended", d.Guidance.Activities)
	writeList(&sb, "Be mindful", d.Guidance.Warnings)

	return sb.String()
}

// Markdown renders the sky view.
func (s Sky) Markdown() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Sky on %s\n\n", s.Date))
	sb.WriteString(fmt.Sprintf("- **Sun sign**: %s %s (%s), %s\n", s.Sign.Symbol, s.Sign.Sign, s.DateRange, s.Sign.Element))
	sb.WriteString(fmt.Sprintf("- **Moon**: %s %s, %s\n", s.Moon.Emoji, s.Moon.Name, s.Moon.Description))
	return sb.String()
}

// CalendarMarkdown renders calendar marks as a table.
func CalendarMarkdown(days []Day) string {
	var sb strings.Builder
	sb.WriteString("| Date | Day | Phase | Color |\n")
	sb.WriteString("|------|-----|-------|-------|\n")
	for _, d := range days {
		date := d.Date
		if d.Today {
			date = "**" + date + "**"
		}
		sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s |\n", date, d.DayInCycle, d.Phase.Name(), d.Color))
	}
	return sb.String()
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("**%s**\n", heading))
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", it))
	}
	sb.WriteString("\n")
}
