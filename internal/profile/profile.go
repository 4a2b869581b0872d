// Package profile holds the persisted user profile that supplies the
// insight core with a birth date and a last period start.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Layouts of the textual date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DefaultCycleLength matches the canonical cycle used by the core.
const DefaultCycleLength = 28

// Profile is the user record. Only BirthDate and LastPeriodStart feed the
// core; the remaining fields are kept for display and future chart work.
type Profile struct {
	BirthDate       string  `json:"birthDate" toml:"birthDate"`
	BirthTime       string  `json:"birthTime" toml:"birthTime"`
	BirthPlace      string  `json:"birthPlace" toml:"birthPlace"`
	Latitude        float64 `json:"latitude" toml:"latitude"`
	Longitude       float64 `json:"longitude" toml:"longitude"`
	LastPeriodStart string  `json:"lastPeriodStart" toml:"lastPeriodStart"`
	CycleLength     int     `json:"cycleLength" toml:"cycleLength"`
}

// Default returns an empty profile with the form defaults applied.
func Default() Profile {
	return Profile{
		BirthTime:   "12:00",
		CycleLength: DefaultCycleLength,
	}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("profile: invalid")

// Complete reports whether both dates the core needs are present.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.BirthDate) != "" && strings.TrimSpace(p.LastPeriodStart) != ""
}

// Validate checks every populated field and reports all problems at once.
// Empty optional fields are accepted.
func (p Profile) Validate() error {
	var problems []string

	if p.BirthDate != "" {
		if _, err := ParseDate(p.BirthDate); err != nil {
			problems = append(problems, fmt.Sprintf("birthDate %q is not YYYY-MM-DD", p.BirthDate))
		}
	}
	if p.LastPeriodStart != "" {
		if _, err := ParseDate(p.LastPeriodStart); err != nil {
			problems = append(problems, fmt.Sprintf("lastPeriodStart %q is not YYYY-MM-DD", p.LastPeriodStart))
		}
	}
	if p.BirthTime != "" {
		if _, err := time.Parse(TimeLayout, p.BirthTime); err != nil {
			problems = append(problems, fmt.Sprintf("birthTime %q is not HH:MM", p.BirthTime))
		}
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		problems = append(problems, fmt.Sprintf("latitude %v outside [-90, 90]", p.Latitude))
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		problems = append(problems, fmt.Sprintf("longitude %v outside [-180, 180]", p.Longitude))
	}
	if p.CycleLength < 0 {
		problems = append(problems, fmt.Sprintf("cycleLength %d is negative", p.CycleLength))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("profile: parse date %q: %w", s, err)
	}
	return t, nil
}

// BirthDay returns the parsed birth date.
func (p Profile) BirthDay() (time.Time, error) {
	return ParseDate(p.BirthDate)
}

// LastPeriod returns the parsed last period start.
func (p Profile) LastPeriod() (time.Time, error) {
	return ParseDate(p.LastPeriodStart)
}

// Update is a partial profile edit. Nil fields leave the profile unchanged,
// so zero values such as a latitude of 0 can still be set.
type Update struct {
	BirthDate       *string
	BirthTime       *string
	BirthPlace      *string
	Latitude        *float64
	Longitude       *float64
	LastPeriodStart *string
	CycleLength     *int
}

// Apply returns p with every non-nil field of u applied.
func (p Profile) Apply(u Update) Profile {
	if u.BirthDate != nil {
		p.BirthDate = *u.BirthDate
	}
	if u.BirthTime != nil {
		p.BirthTime = *u.BirthTime
	}
	if u.BirthPlace != nil {
		p.BirthPlace = *u.BirthPlace
	}
	if u.Latitude != nil {
		p.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		p.Longitude = *u.Longitude
	}
	if u.LastPeriodStart != nil {
		p.LastPeriodStart = *u.LastPeriodStart
	}
	if u.CycleLength != nil {
		p.CycleLength = *u.CycleLength
	}
	return p
}

// ─── Codecs ──────────────────────────────────────────────────────────────────

// DecodeJSON reads a profile in the app's storage format. Fields missing
// from the input keep their Default values.
func DecodeJSON(r io.Reader) (Profile, error) {
	p := Default()
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("profile: decode json: %w", err)
	}
	return p, nil
}

// DecodeTOML reads a profile from a TOML document.
func DecodeTOML(r io.Reader) (Profile, error) {
	p := Default()
	if err := toml.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("profile: decode toml: %w", err)
	}
	return p, nil
}

// EncodeTOML renders a profile as a TOML document.
func EncodeTOML(p Profile) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("profile: encode toml: %w", err)
	}
	return buf.Bytes(), nil
}
