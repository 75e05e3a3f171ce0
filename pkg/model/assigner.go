package model

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// Assignment summarizes what the assigner could not place
type Assignment struct {
	// Sets left without a slot once the regular slots ran out
	Unscheduled []*ScheduleSet
	// Regular slots turned into evening slots to host a once-a-week set
	Widened []*ExamSlot
}

type Assigner interface {
	// Places the evening sets into the evening slot of their weekday, then fills the open regular
	// slots with randomly drawn sets until either sets or slots run out
	Assign(clustering Clustering, pool *SlotPool) (Assignment, error)
}

func NewAssigner(rule EveningRule, random *rand.Rand) Assigner {
	return &assignerImplementation{rule: rule, random: random}
}

type assignerImplementation struct {
	rule   EveningRule
	random *rand.Rand
}

func (assigner *assignerImplementation) Assign(clustering Clustering, pool *SlotPool) (Assignment, error) {
	if err := assigner.assignEvening(clustering, pool); err != nil {
		return Assignment{}, err
	}
	return assigner.assignRegular(clustering, pool)
}

func (assigner *assignerImplementation) assignEvening(clustering Clustering, pool *SlotPool) error {
	for _, day := range Weekdays {
		set, ok := clustering.Evening[day]
		if !ok {
			continue
		}
		// A layout without an evening slot on this day leaves the set to the regular pass
		slot := pool.EveningFor(day)
		if slot == nil {
			continue
		}
		if err := set.Schedule(slot); err != nil {
			return err
		}
		slot.Assign(set)
	}
	return nil
}

func (assigner *assignerImplementation) assignRegular(clustering Clustering, pool *SlotPool) (Assignment, error) {
	var assignment Assignment

	sets := newCandidatePool(lo.Reject(clustering.All(), func(set *ScheduleSet, _ int) bool { return set.Scheduled() }))
	slots := newCandidatePool(pool.Open())

	for {
		set, ok := sets.Draw(assigner.random)
		if !ok {
			break
		}
		slot, ok := slots.Draw(assigner.random)
		if !ok {
			assignment.Unscheduled = append(assignment.Unscheduled, set)
			break
		}

		if _, onceAWeek := assigner.rule.OnceAWeek(set.Representative); onceAWeek {
			slot.WidenToEvening()
			assignment.Widened = append(assignment.Widened, slot)
		}

		if err := set.Schedule(slot); err != nil {
			return Assignment{}, err
		}
		slot.Assign(set)
	}

	assignment.Unscheduled = append(assignment.Unscheduled, sets.Remaining()...)
	return assignment, nil
}
