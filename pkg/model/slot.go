package model

import (
	"fmt"

	"github.com/samber/lo"
)

type ExamSlot struct {
	Id      uint64
	Day     Weekday
	Label   string
	Evening bool
	// Filled is true for evening slots from construction on, and for regular slots once assigned
	Filled bool
	Set    *ScheduleSet
	// Widened marks a regular slot that was turned into an evening slot during assignment
	Widened bool
}

// Assign places the set into the slot, overwriting any previous assignment
func (slot *ExamSlot) Assign(set *ScheduleSet) {
	slot.Set = set
	slot.Filled = true
}

// WidenToEvening turns a regular slot into an evening one
func (slot *ExamSlot) WidenToEvening() {
	if slot.Evening {
		return
	}
	slot.Evening = true
	slot.Widened = true
}

func (slot *ExamSlot) String() string {
	kind := "regular"
	if slot.Evening {
		kind = "evening"
	}
	return fmt.Sprintf("%v %v (%v)", slot.Day, slot.Label, kind)
}

// SlotLayout describes which slots the pool enumerates
type SlotLayout struct {
	// Labels of the regular periods offered on every regular day
	Periods     []string
	RegularDays []Weekday
	// Label of the single evening slot offered on every evening day
	Evening     string
	EveningDays []Weekday
}

// PeriodsPerDay is the number of regular exam periods on every regular day
const PeriodsPerDay = 3

// DefaultSlotLayout yields 3 regular periods Monday through Friday and an evening slot Monday through Saturday
func DefaultSlotLayout() SlotLayout {
	return SlotLayout{
		Periods:     []string{"08:00AM-10:00AM", "10:30AM-12:30PM", "01:30PM-03:30PM"},
		RegularDays: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		Evening:     "06:00PM-08:00PM",
		EveningDays: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday},
	}
}

type SlotPool struct {
	slots []*ExamSlot
}

// NewSlotPool enumerates the layout day by day: the regular periods of a day come first, then its evening slot
func NewSlotPool(layout SlotLayout) *SlotPool {
	pool := &SlotPool{
		slots: make([]*ExamSlot, 0, len(layout.Periods)*len(layout.RegularDays)+len(layout.EveningDays)),
	}
	for _, day := range Weekdays {
		if lo.Contains(layout.RegularDays, day) {
			for _, period := range layout.Periods {
				pool.add(day, period, false)
			}
		}
		if lo.Contains(layout.EveningDays, day) {
			pool.add(day, layout.Evening, true)
		}
	}
	return pool
}

func (pool *SlotPool) add(day Weekday, label string, evening bool) {
	pool.slots = append(pool.slots, &ExamSlot{
		Id:      uint64(len(pool.slots)),
		Day:     day,
		Label:   label,
		Evening: evening,
		Filled:  evening,
	})
}

func (pool *SlotPool) All() []*ExamSlot {
	return pool.slots
}

func (pool *SlotPool) Evening() []*ExamSlot {
	return lo.Filter(pool.slots, func(slot *ExamSlot, _ int) bool { return slot.Evening })
}

func (pool *SlotPool) Regular() []*ExamSlot {
	return lo.Filter(pool.slots, func(slot *ExamSlot, _ int) bool { return !slot.Evening })
}

func (pool *SlotPool) Filled() []*ExamSlot {
	return lo.Filter(pool.slots, func(slot *ExamSlot, _ int) bool { return slot.Filled })
}

// Open returns the regular slots that are still unfilled
func (pool *SlotPool) Open() []*ExamSlot {
	return lo.Filter(pool.slots, func(slot *ExamSlot, _ int) bool { return !slot.Evening && !slot.Filled })
}

// Used returns the slots holding a schedule set
func (pool *SlotPool) Used() []*ExamSlot {
	return lo.Filter(pool.slots, func(slot *ExamSlot, _ int) bool { return slot.Set != nil })
}

// EveningFor returns the evening slot the layout defines for the day, or nil when it has none
func (pool *SlotPool) EveningFor(day Weekday) *ExamSlot {
	slot, ok := lo.Find(pool.slots, func(slot *ExamSlot) bool {
		return slot.Evening && !slot.Widened && slot.Day == day
	})
	if !ok {
		return nil
	}
	return slot
}
