// Package zodiac resolves tropical sun signs from calendar dates and holds
// the static metadata for each sign.
package zodiac

import (
	"strings"
	"time"
)

// Sign is one of the twelve tropical sun signs.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// Element is the classical element of a sign.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// Quality is the modality of a sign.
type Quality string

const (
	Cardinal Quality = "Cardinal"
	Fixed    Quality = "Fixed"
	Mutable  Quality = "Mutable"
)

// Info is the descriptive metadata of a sign.
type Info struct {
	Sign       Sign     `json:"sign"`
	Symbol     string   `json:"symbol"`
	Element    Element  `json:"element"`
	Quality    Quality  `json:"quality"`
	Ruler      string   `json:"ruler"`
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
}

// monthDay is a day of the year with the year stripped.
type monthDay struct {
	month time.Month
	day   int
}

func (md monthDay) before(other monthDay) bool {
	if md.month != other.month {
		return md.month < other.month
	}
	return md.day < other.day
}

func (md monthDay) String() string {
	return time.Date(2000, md.month, md.day, 0, 0, 0, 0, time.UTC).Format("Jan 2")
}

// boundary is a sign's inclusive range. The table is sorted by start date;
// Capricorn wraps the new year, so days before Jan 20 fall back to it.
type boundary struct {
	start monthDay
	end   monthDay
	sign  Sign
}

var boundaries = []boundary{
	{monthDay{time.January, 20}, monthDay{time.February, 18}, Aquarius},
	{monthDay{time.February, 19}, monthDay{time.March, 20}, Pisces},
	{monthDay{time.March, 21}, monthDay{time.April, 19}, Aries},
	{monthDay{time.April, 20}, monthDay{time.May, 20}, Taurus},
	{monthDay{time.May, 21}, monthDay{time.June, 20}, Gemini},
	{monthDay{time.June, 21}, monthDay{time.July, 22}, Cancer},
	{monthDay{time.July, 23}, monthDay{time.August, 22}, Leo},
	{monthDay{time.August, 23}, monthDay{time.September, 22}, Virgo},
	{monthDay{time.September, 23}, monthDay{time.October, 22}, Libra},
	{monthDay{time.October, 23}, monthDay{time.November, 21}, Scorpio},
	{monthDay{time.November, 22}, monthDay{time.December, 21}, Sagittarius},
	{monthDay{time.December, 22}, monthDay{time.January, 19}, Capricorn},
}

// SignOf returns the sun sign for the month and day of date in its own
// location. The year is ignored, so Feb 29 resolves like any other day.
func SignOf(date time.Time) Sign {
	md := monthDay{date.Month(), date.Day()}
	sign := Capricorn
	for _, b := range boundaries {
		if md.before(b.start) {
			break
		}
		sign = b.sign
	}
	return sign
}

// Signs returns the twelve signs in zodiac order starting with Aries.
func Signs() []Sign {
	return []Sign{
		Aries, Taurus, Gemini, Cancer, Leo, Virgo,
		Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
	}
}

// ParseSign matches a sign name case-insensitively.
func ParseSign(s string) (Sign, bool) {
	s = strings.TrimSpace(s)
	for _, sign := range Signs() {
		if strings.EqualFold(s, string(sign)) {
			return sign, true
		}
	}
	return "", false
}

// DateRange returns the inclusive civil date range of a sign, for example
// "Mar 21 - Apr 19". Unknown signs yield an empty string.
func DateRange(sign Sign) string {
	for _, b := range boundaries {
		if b.sign == sign {
			return b.start.String() + " - " + b.end.String()
		}
	}
	return ""
}

// InfoOf returns the metadata for sign. An unknown sign yields an Info
// carrying only the sign itself. The returned slices are fresh copies.
func InfoOf(sign Sign) Info {
	info, ok := signs[sign]
	if !ok {
		return Info{Sign: sign}
	}
	info.Sign = sign
	info.Strengths = append([]string(nil), info.Strengths...)
	info.Challenges = append([]string(nil), info.Challenges...)
	return info
}

// FirstChallenge returns the leading challenge of a sign, or "" if unknown.
func FirstChallenge(sign Sign) string {
	info, ok := signs[sign]
	if !ok || len(info.Challenges) == 0 {
		return ""
	}
	return info.Challenges[0]
}
