package model

import (
	"fmt"

	"github.com/samber/lo"
)

// DefaultEveningCutoff is 05:30PM
const DefaultEveningCutoff TimeOfDay = 17*60 + 30

// EveningRule classifies once-a-week offerings: a single weekday starting at or after the cutoff,
// or a single Saturday at any time
type EveningRule struct {
	Cutoff TimeOfDay
}

func (rule EveningRule) OnceAWeek(offering Offering) (Weekday, bool) {
	day, ok := offering.Days.Single()
	if !ok {
		return 0, false
	}
	return day, day == Saturday || offering.Start >= rule.Cutoff
}

type alreadyScheduledError struct {
	set  uint64
	slot uint64
}

func (err alreadyScheduledError) Error() string {
	return fmt.Sprintf("schedule set %d is already scheduled into slot %d", err.set, err.slot)
}

// ScheduleSet is a cluster of offerings that may not share an exam slot with anything else
type ScheduleSet struct {
	Id             uint64
	Representative Offering
	Members        []Offering
	// Evening marks the designated once-a-week set of a weekday
	Evening bool

	slot *ExamSlot
}

func newScheduleSet(id uint64, founder Offering) *ScheduleSet {
	return &ScheduleSet{
		Id:             id,
		Representative: founder,
		Members:        []Offering{founder},
	}
}

func (set *ScheduleSet) AddMember(offering Offering) {
	if lo.Contains(set.Members, offering) {
		return
	}
	set.Members = append(set.Members, offering)
}

func (set *ScheduleSet) removeMember(offering Offering) {
	set.Members = lo.Without(set.Members, offering)
}

// Accepts checks whether the offering may join the set: the representative must span more than
// one weekday, share a weekday with the offering, and contain the offering's start or end
func (set *ScheduleSet) Accepts(offering Offering) bool {
	return len(set.Representative.Days) > 1 &&
		set.Representative.Days.Shares(offering.Days) &&
		offering.Overlaps(set.Representative.TimeRange)
}

func (set *ScheduleSet) Schedule(slot *ExamSlot) error {
	if set.slot != nil {
		return alreadyScheduledError{set: set.Id, slot: set.slot.Id}
	}
	set.slot = slot
	return nil
}

func (set *ScheduleSet) Scheduled() bool {
	return set.slot != nil
}

// Slot returns the slot the set was scheduled into, or nil
func (set *ScheduleSet) Slot() *ExamSlot {
	return set.slot
}
