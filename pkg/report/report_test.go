package report

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/limaJavier/examscheduling/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Run("Scheduled offerings", func(t *testing.T) {
		//** Arrange
		session := model.NewSession(model.DefaultSessionOptions(1))
		require.NoError(t, session.Run([]string{"08:00AM-09:00AM", "08:30AM-09:30AM"}))
		summary := session.Summary()
		var buffer bytes.Buffer

		//** Act
		err := Write(&buffer, session)

		//** Assert
		require.NoError(t, err)
		output := buffer.String()
		assert.True(t, strings.HasPrefix(output, "Exam schedule "+session.Id.String()))
		assert.Contains(t, output, "Slot 0: Monday 08:00AM-10:00AM (regular)")
		assert.Contains(t, output, "Slot 20: Saturday 06:00PM-08:00PM (evening)")
		assert.Contains(t, output, "08:00AM-09:00AM S")
		assert.Contains(t, output, "Total offerings: 42")
		assert.Contains(t, output, "Schedule sets (surviving merge): "+strconv.Itoa(summary.Sets))
		assert.Contains(t, output, "Slots used: "+strconv.Itoa(summary.SlotsUsed))
		assert.Contains(t, output, "Offerings placed: "+strconv.Itoa(summary.OfferingsPlaced))
		assert.Less(t, strings.Index(output, "Slot 3:"), strings.Index(output, "Slot 4:"))
	})

	t.Run("Sets left without a slot", func(t *testing.T) {
		//** Arrange
		lines := []string{"08:00AM-09:00AM", "09:30AM-10:30AM", "11:00AM-12:00PM", "01:00PM-02:00PM", "02:30PM-03:30PM"}
		session := model.NewSession(model.DefaultSessionOptions(3))
		require.NoError(t, session.Run(lines))
		require.Greater(t, len(session.Clustering.Sets), 15)
		var buffer bytes.Buffer

		//** Act
		err := Write(&buffer, session)

		//** Assert
		require.NoError(t, err)
		output := buffer.String()
		require.Len(t, session.Unscheduled, len(session.Clustering.Sets)-15)
		ids := make([]string, 0, len(session.Unscheduled))
		for _, set := range session.Unscheduled {
			ids = append(ids, strconv.FormatUint(set.Id, 10))
		}
		assert.Contains(t, output, "Left without a slot: sets "+strings.Join(ids, ", ")+"\n")
		assert.Contains(t, output, "Unscheduled sets: "+strconv.Itoa(len(session.Unscheduled)))
		assert.Contains(t, output, "Slots used: 16")
	})

	t.Run("Empty session", func(t *testing.T) {
		session := model.NewSession(model.DefaultSessionOptions(2))
		require.NoError(t, session.Run(nil))
		var buffer bytes.Buffer

		require.NoError(t, Write(&buffer, session))

		output := buffer.String()
		assert.Equal(t, 21, strings.Count(output, "(no exams)"))
		assert.NotContains(t, output, "Left without a slot")
		for _, line := range []string{"Total offerings: 0", "Slots used: 0", "Offerings placed: 0", "Schedule sets (surviving merge): 0", "Unscheduled sets: 0"} {
			assert.Contains(t, output, line)
		}
	})
}
