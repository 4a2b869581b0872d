package insight

import (
	"fmt"
	"time"

	"github.com/HendryAvila/cosmic-cycles/internal/cycle"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

// DefaultRadius is the number of days shown either side of the center day.
const DefaultRadius = 30

// MaxRadius bounds a calendar request to roughly two years.
const MaxRadius = 366

// Day is one marked calendar cell.
type Day struct {
	Date       string      `json:"date"`
	Phase      cycle.Phase `json:"phase"`
	Color      string      `json:"color"`
	DayInCycle int         `json:"day_in_cycle"`
	Today      bool        `json:"today,omitempty"`
}

// Calendar marks every day in [center-radius, center+radius] with its
// cycle phase. The center day is flagged as Today.
func Calendar(p profile.Profile, center time.Time, radius int, opts Options) ([]Day, error) {
	if radius < 0 || radius > MaxRadius {
		return nil, fmt.Errorf("insight: calendar radius %d outside [0, %d]", radius, MaxRadius)
	}
	if p.LastPeriodStart == "" {
		return nil, ErrIncompleteProfile
	}
	last, err := p.LastPeriod()
	if err != nil {
		return nil, fmt.Errorf("insight: %w", err)
	}
	m, err := Model(p, opts)
	if err != nil {
		return nil, err
	}

	mid := CivilDate(center)
	days := make([]Day, 0, 2*radius+1)
	for i := -radius; i <= radius; i++ {
		d := mid.AddDate(0, 0, i)
		info := m.Compute(last, d)
		days = append(days, Day{
			Date:       d.Format(profile.DateLayout),
			Phase:      info.Phase,
			Color:      info.Phase.Color(),
			DayInCycle: info.DayInCycle,
			Today:      i == 0,
		})
	}
	return days, nil
}
