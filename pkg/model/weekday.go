package model

import (
	"strings"

	"github.com/samber/lo"
)

type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Weekdays is the ordered alphabet day patterns are built from
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var (
	weekdayCodes = [...]byte{'M', 'T', 'W', 'R', 'F', 'S'}
	weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// Code returns the single-letter code used inside day patterns
func (day Weekday) Code() byte {
	return weekdayCodes[day]
}

func (day Weekday) String() string {
	if int(day) >= len(weekdayNames) {
		return "Unknown"
	}
	return weekdayNames[day]
}

func WeekdayFromCode(code byte) (Weekday, bool) {
	for i, c := range weekdayCodes {
		if c == code {
			return Weekday(i), true
		}
	}
	return 0, false
}

// DayPattern is an ordered string of weekday codes (e.g. "MTW")
type DayPattern string

func NewDayPattern(days ...Weekday) DayPattern {
	var builder strings.Builder
	for _, day := range days {
		builder.WriteByte(day.Code())
	}
	return DayPattern(builder.String())
}

// Weekdays decodes the pattern; unknown codes are ignored
func (pattern DayPattern) Weekdays() []Weekday {
	days := make([]Weekday, 0, len(pattern))
	for i := range len(pattern) {
		if day, ok := WeekdayFromCode(pattern[i]); ok {
			days = append(days, day)
		}
	}
	return days
}

// Single reports whether the pattern names exactly one weekday and returns it
func (pattern DayPattern) Single() (Weekday, bool) {
	if len(pattern) != 1 {
		return 0, false
	}
	return WeekdayFromCode(pattern[0])
}

// Shares checks whether both patterns have at least one weekday in common
func (pattern DayPattern) Shares(other DayPattern) bool {
	otherDays := other.Weekdays()
	return lo.SomeBy(pattern.Weekdays(), func(day Weekday) bool {
		return lo.Contains(otherDays, day)
	})
}

// Contiguous checks whether the pattern is a non-empty run of consecutive weekdays of the alphabet
func (pattern DayPattern) Contiguous() bool {
	days := pattern.Weekdays()
	if len(days) == 0 || len(days) != len(pattern) {
		return false
	}
	for i := 1; i < len(days); i++ {
		if days[i] != days[i-1]+1 {
			return false
		}
	}
	return true
}

// DayPatterns returns every contiguous run of the alphabet, ordered by starting day and then by
// run length. For an alphabet of length L it yields L*(L+1)/2 patterns.
func DayPatterns(alphabet []Weekday) []DayPattern {
	patterns := make([]DayPattern, 0, len(alphabet)*(len(alphabet)+1)/2)
	for start := range alphabet {
		for end := start + 1; end <= len(alphabet); end++ {
			patterns = append(patterns, NewDayPattern(alphabet[start:end]...))
		}
	}
	return patterns
}
