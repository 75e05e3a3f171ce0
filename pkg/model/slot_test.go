package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotPool(t *testing.T) {
	//** Act
	pool := NewSlotPool(DefaultSlotLayout())

	//** Assert
	require.Len(t, pool.All(), 21)
	assert.Len(t, pool.Regular(), 15)
	assert.Len(t, pool.Evening(), 6)
	assert.Len(t, pool.Open(), 15)
	assert.Equal(t, pool.Evening(), pool.Filled())
	assert.Empty(t, pool.Used())

	for i, slot := range pool.All() {
		assert.Equal(t, uint64(i), slot.Id)
		assert.Equal(t, slot.Evening, slot.Filled)
		assert.Nil(t, slot.Set)
	}

	// Monday: three periods then the evening
	assert.Equal(t, []string{"08:00AM-10:00AM", "10:30AM-12:30PM", "01:30PM-03:30PM", "06:00PM-08:00PM"},
		lo.Map(pool.All()[:4], func(slot *ExamSlot, _ int) string { return slot.Label }))
	assert.True(t, pool.All()[3].Evening)

	// Saturday only has an evening slot
	saturday := lo.Filter(pool.All(), func(slot *ExamSlot, _ int) bool { return slot.Day == Saturday })
	require.Len(t, saturday, 1)
	assert.True(t, saturday[0].Evening)
	assert.Equal(t, uint64(20), saturday[0].Id)
}

func TestEveningFor(t *testing.T) {
	pool := NewSlotPool(DefaultSlotLayout())

	for _, day := range Weekdays {
		slot := pool.EveningFor(day)
		require.NotNil(t, slot, day.String())
		assert.Equal(t, day, slot.Day)
		assert.True(t, slot.Evening)
	}

	layout := DefaultSlotLayout()
	layout.EveningDays = []Weekday{Monday}
	assert.Nil(t, NewSlotPool(layout).EveningFor(Saturday))
}

func TestExamSlot(t *testing.T) {
	t.Run("Assign", func(t *testing.T) {
		pool := NewSlotPool(DefaultSlotLayout())
		slot := pool.Open()[0]
		set := newScheduleSet(0, offering(at(8, 0), at(9, 0), "MT"))

		slot.Assign(set)

		assert.True(t, slot.Filled)
		assert.Equal(t, set, slot.Set)
		assert.Len(t, pool.Open(), 14)
		assert.Equal(t, []*ExamSlot{slot}, pool.Used())
	})

	t.Run("Widen to evening", func(t *testing.T) {
		pool := NewSlotPool(DefaultSlotLayout())
		slot := pool.All()[0]

		slot.WidenToEvening()

		assert.True(t, slot.Evening)
		assert.True(t, slot.Widened)
		assert.Len(t, pool.Open(), 14)
		// The layout's own evening slot is still the one reported for the day
		assert.Equal(t, pool.All()[3], pool.EveningFor(Monday))

		evening := pool.All()[3]
		evening.WidenToEvening()
		assert.False(t, evening.Widened)
	})

	t.Run("String", func(t *testing.T) {
		pool := NewSlotPool(DefaultSlotLayout())
		assert.Equal(t, "Monday 08:00AM-10:00AM (regular)", pool.All()[0].String())
		assert.Equal(t, "Saturday 06:00PM-08:00PM (evening)", pool.All()[20].String())
	})
}

func TestScheduleSet(t *testing.T) {
	t.Run("Schedule happens once", func(t *testing.T) {
		pool := NewSlotPool(DefaultSlotLayout())
		set := newScheduleSet(4, offering(at(8, 0), at(9, 0), "MT"))

		assert.False(t, set.Scheduled())
		assert.NoError(t, set.Schedule(pool.All()[0]))
		assert.True(t, set.Scheduled())
		assert.Equal(t, pool.All()[0], set.Slot())

		err := set.Schedule(pool.All()[1])
		assert.EqualError(t, err, "schedule set 4 is already scheduled into slot 0")
		assert.Equal(t, pool.All()[0], set.Slot())
	})

	t.Run("Members form a set", func(t *testing.T) {
		founder := offering(at(8, 0), at(9, 0), "MT")
		set := newScheduleSet(0, founder)

		set.AddMember(founder)
		set.AddMember(offering(at(8, 30), at(9, 30), "T"))

		assert.Len(t, set.Members, 2)
	})

	t.Run("Accepts", func(t *testing.T) {
		set := newScheduleSet(0, offering(at(8, 0), at(9, 0), "MTW"))
		single := newScheduleSet(1, offering(at(8, 0), at(9, 0), "M"))

		assert.True(t, set.Accepts(offering(at(8, 30), at(10, 0), "W")))
		assert.True(t, set.Accepts(offering(at(7, 0), at(8, 0), "WRF")))
		assert.False(t, set.Accepts(offering(at(8, 30), at(10, 0), "RF")))
		assert.False(t, set.Accepts(offering(at(9, 30), at(10, 0), "M")))
		// Containing the set without an endpoint inside it is not enough
		assert.False(t, set.Accepts(offering(at(7, 0), at(10, 0), "M")))
		assert.False(t, single.Accepts(offering(at(8, 0), at(9, 0), "M")))
	})
}
