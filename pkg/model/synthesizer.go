package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

type Synthesizer interface {
	// Expands every raw time range into one offering per contiguous day pattern. The result is
	// deduplicated and sorted by day pattern; lines that cannot be parsed are counted in skipped.
	Synthesize(lines []string) (offerings []Offering, skipped int)
}

func NewSynthesizer(alphabet []Weekday) Synthesizer {
	return &synthesizerImplementation{
		patterns: DayPatterns(alphabet),
	}
}

type synthesizerImplementation struct {
	patterns []DayPattern
}

func (synthesizer *synthesizerImplementation) Synthesize(lines []string) (offerings []Offering, skipped int) {
	offerings = make([]Offering, 0, len(lines)*len(synthesizer.patterns))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		candidates := lo.Map(synthesizer.patterns, func(pattern DayPattern, _ int) Offering {
			return NewOffering(line, pattern)
		})

		// An unparsable time range invalidates every candidate of the line
		valid := lo.Filter(candidates, func(offering Offering, _ int) bool { return offering.Valid() })
		if len(valid) == 0 {
			skipped++
			continue
		}
		offerings = append(offerings, valid...)
	}

	offerings = lo.Uniq(offerings)

	// Sort on the pattern string itself (not on weekday order), keeping input order among equals
	slices.SortStableFunc(offerings, func(a, b Offering) int {
		return strings.Compare(string(a.Days), string(b.Days))
	})

	return offerings, skipped
}
