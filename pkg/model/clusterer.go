package model

import (
	"github.com/samber/lo"
)

// Clustering is the result of grouping offerings into schedule sets
type Clustering struct {
	// Regular sets in creation order
	Sets []*ScheduleSet
	// Designated once-a-week set of every weekday that has at least one qualifying offering
	Evening map[Weekday]*ScheduleSet
}

// All returns the regular sets followed by the evening sets in weekday order
func (clustering Clustering) All() []*ScheduleSet {
	sets := make([]*ScheduleSet, 0, len(clustering.Sets)+len(clustering.Evening))
	sets = append(sets, clustering.Sets...)
	for _, day := range Weekdays {
		if set, ok := clustering.Evening[day]; ok {
			sets = append(sets, set)
		}
	}
	return sets
}

type Clusterer interface {
	// Partitions the sorted offerings into schedule sets with a first-fit pass. The outcome depends
	// on the order of the offerings, and members are only checked against the set's representative.
	Cluster(offerings []Offering) Clustering
}

func NewClusterer(rule EveningRule) Clusterer {
	return &clustererImplementation{rule: rule}
}

type clustererImplementation struct {
	rule EveningRule
}

func (clusterer *clustererImplementation) Cluster(offerings []Offering) Clustering {
	evening := make(map[Weekday]*ScheduleSet)

	//** Found one set per offering, routing once-a-week offerings to their weekday's set
	regular := make([]Offering, 0, len(offerings))
	for _, offering := range offerings {
		if !offering.Valid() {
			continue
		}
		day, onceAWeek := clusterer.rule.OnceAWeek(offering)
		if !onceAWeek {
			regular = append(regular, offering)
			continue
		}
		if set, ok := evening[day]; ok {
			set.AddMember(offering)
		} else {
			set = newScheduleSet(0, offering)
			set.Evening = true
			evening[day] = set
		}
	}

	founded := lo.Map(regular, func(offering Offering, i int) *ScheduleSet {
		return newScheduleSet(uint64(i), offering)
	})

	//** Place every offering into the first set that accepts it
	for i, offering := range regular {
		target, _, ok := lo.FindIndexOf(founded, func(set *ScheduleSet) bool {
			return set.Accepts(offering)
		})
		// No set accepts it (single-day offering without a multi-day neighbour), so it keeps its own
		if !ok || target == founded[i] {
			continue
		}
		founded[i].removeMember(offering)
		target.AddMember(offering)
	}

	//** Discard sets whose founder moved away and renumber the survivors
	sets := lo.Filter(founded, func(set *ScheduleSet, _ int) bool { return len(set.Members) > 0 })
	for i, set := range sets {
		set.Id = uint64(i)
	}
	nextId := uint64(len(sets))
	for _, day := range Weekdays {
		if set, ok := evening[day]; ok {
			set.Id = nextId
			nextId++
		}
	}

	return Clustering{Sets: sets, Evening: evening}
}
