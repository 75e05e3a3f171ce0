package model

import (
	"fmt"
	"strings"
	"time"
)

const timeLayout = "03:04PM"

// TimeOfDay counts minutes since midnight
type TimeOfDay uint16

func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	parsed, err := time.Parse(timeLayout, strings.ToUpper(strings.TrimSpace(raw)))
	if err != nil {
		return 0, fmt.Errorf("invalid time of day \"%v\": %w", raw, err)
	}
	return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
}

func (t TimeOfDay) String() string {
	return time.Date(0, time.January, 1, int(t)/60, int(t)%60, 0, 0, time.UTC).Format(timeLayout)
}

type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseTimeRange parses "HH:MMAM-HH:MMPM". It fails unless both components are present and valid.
func ParseTimeRange(raw string) (TimeRange, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return TimeRange{}, fmt.Errorf("time range \"%v\" must have two components", raw)
	}
	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// Contains checks whether t lies within the closed interval [Start, End]
func (r TimeRange) Contains(t TimeOfDay) bool {
	return r.Start <= t && t <= r.End
}

// Overlaps checks whether this range's start or end falls within other.
// Only this range's endpoints are tested, so the relation is not symmetric.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return other.Contains(r.Start) || other.Contains(r.End)
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

// Offering is a candidate meeting time: a time range on a day pattern.
// The zero value is the invalid offering produced for unparsable input.
type Offering struct {
	TimeRange
	Days DayPattern
}

// NewOffering pairs a raw time range with a day pattern, returning the zero Offering when either part is unusable
func NewOffering(rawTimeRange string, days DayPattern) Offering {
	timeRange, err := ParseTimeRange(rawTimeRange)
	if err != nil || days == "" {
		return Offering{}
	}
	return Offering{TimeRange: timeRange, Days: days}
}

func (offering Offering) Valid() bool {
	return offering.Days != ""
}

// Parts returns the textual (start, end, days) components; all three are empty for an invalid offering
func (offering Offering) Parts() (start, end, days string) {
	if !offering.Valid() {
		return "", "", ""
	}
	return offering.Start.String(), offering.End.String(), string(offering.Days)
}

func (offering Offering) String() string {
	return fmt.Sprintf("%v %v", offering.TimeRange, offering.Days)
}
