package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/limaJavier/examscheduling/pkg/model"

	"github.com/samber/lo"
)

// Write renders every slot (sorted by id) with its schedule set and members, followed by the summary counts
func Write(writer io.Writer, session *model.Session) error {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Exam schedule %v\n\n", session.Id)

	slots := slices.Clone(session.Slots.All())
	slices.SortFunc(slots, func(a, b *model.ExamSlot) int { return cmp.Compare(a.Id, b.Id) })

	for _, slot := range slots {
		fmt.Fprintf(&builder, "Slot %d: %v\n", slot.Id, slot)
		if slot.Set == nil {
			builder.WriteString("  (no exams)\n")
			continue
		}
		fmt.Fprintf(&builder, "  Set %d [%v]\n", slot.Set.Id, slot.Set.Representative)
		for _, member := range slot.Set.Members {
			fmt.Fprintf(&builder, "    %v\n", member)
		}
	}

	if len(session.Unscheduled) > 0 {
		ids := lo.Map(session.Unscheduled, func(set *model.ScheduleSet, _ int) string { return fmt.Sprint(set.Id) })
		fmt.Fprintf(&builder, "\nLeft without a slot: sets %v\n", strings.Join(ids, ", "))
	}

	summary := session.Summary()
	builder.WriteString("\n")
	fmt.Fprintf(&builder, "Total offerings: %d\n", summary.Offerings)
	fmt.Fprintf(&builder, "Slots used: %d\n", summary.SlotsUsed)
	fmt.Fprintf(&builder, "Offerings placed: %d\n", summary.OfferingsPlaced)
	fmt.Fprintf(&builder, "Schedule sets (surviving merge): %d\n", summary.Sets)
	fmt.Fprintf(&builder, "Unscheduled sets: %d\n", summary.Unscheduled)

	_, err := io.WriteString(writer, builder.String())
	return err
}
