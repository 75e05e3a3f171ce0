package model

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type SessionOptions struct {
	Alphabet []Weekday
	Layout   SlotLayout
	Rule     EveningRule
	Random   *rand.Rand
	Logger   zerolog.Logger
}

// DefaultSessionOptions uses the six-day alphabet, the default slot layout and a 05:30PM evening cutoff.
// The random source is seeded with seed.
func DefaultSessionOptions(seed uint64) SessionOptions {
	return SessionOptions{
		Alphabet: Weekdays,
		Layout:   DefaultSlotLayout(),
		Rule:     EveningRule{Cutoff: DefaultEveningCutoff},
		Random:   rand.New(rand.NewPCG(seed, seed)),
		Logger:   zerolog.Nop(),
	}
}

// Session owns every piece of state of one scheduling run
type Session struct {
	Id          uuid.UUID
	Offerings   []Offering
	Skipped     int
	Clustering  Clustering
	Slots       *SlotPool
	Unscheduled []*ScheduleSet
	Widened     []*ExamSlot

	options SessionOptions
	logger  zerolog.Logger
}

func NewSession(options SessionOptions) *Session {
	id := uuid.New()
	return &Session{
		Id:      id,
		Slots:   NewSlotPool(options.Layout),
		options: options,
		logger:  options.Logger.With().Str("component", "session").Str("session", id.String()).Logger(),
	}
}

// Run synthesizes, clusters and assigns the raw time ranges. Malformed lines are skipped and
// sets that do not fit into the slot pool are left unscheduled.
func (session *Session) Run(lines []string) error {
	//** Synthesize offerings
	session.Offerings, session.Skipped = NewSynthesizer(session.options.Alphabet).Synthesize(lines)
	session.logger.Debug().
		Int("lines", len(lines)).
		Int("skipped", session.Skipped).
		Int("offerings", len(session.Offerings)).
		Msg("offerings synthesized")

	//** Cluster offerings into schedule sets
	session.Clustering = NewClusterer(session.options.Rule).Cluster(session.Offerings)
	session.logger.Debug().
		Int("regular", len(session.Clustering.Sets)).
		Int("evening", len(session.Clustering.Evening)).
		Msg("offerings clustered")

	//** Assign schedule sets to slots
	assignment, err := NewAssigner(session.options.Rule, session.options.Random).Assign(session.Clustering, session.Slots)
	if err != nil {
		return err
	}
	session.Unscheduled = assignment.Unscheduled
	slices.SortFunc(session.Unscheduled, func(a, b *ScheduleSet) int { return cmp.Compare(a.Id, b.Id) })
	session.Widened = assignment.Widened

	summary := session.Summary()
	session.logger.Info().
		Int("offerings", summary.Offerings).
		Int("sets", summary.Sets).
		Int("slotsUsed", summary.SlotsUsed).
		Int("unscheduled", summary.Unscheduled).
		Int("widened", len(session.Widened)).
		Msg("schedule built")
	return nil
}

func (session *Session) Sets() []*ScheduleSet {
	return session.Clustering.All()
}

type Summary struct {
	Offerings       int
	SlotsUsed       int
	OfferingsPlaced int
	// Sets counts the sets that survived first-fit placement, evening sets included
	Sets        int
	Unscheduled int
}

func (session *Session) Summary() Summary {
	used := session.Slots.Used()
	return Summary{
		Offerings: len(session.Offerings),
		SlotsUsed: len(used),
		OfferingsPlaced: lo.SumBy(used, func(slot *ExamSlot) int {
			return len(slot.Set.Members)
		}),
		Sets:        len(session.Sets()),
		Unscheduled: len(session.Unscheduled),
	}
}

// Verify checks the invariants of a finished run
func (session *Session) Verify() bool {
	//** Every offering meets on a contiguous run of weekdays
	if lo.SomeBy(session.Offerings, func(offering Offering) bool { return !offering.Days.Contiguous() }) {
		return false
	}

	//** Every regular member overlaps its set's representative and shares a weekday with it
	for _, set := range session.Clustering.Sets {
		if lo.SomeBy(set.Members, func(member Offering) bool {
			return !member.Overlaps(set.Representative.TimeRange) || !member.Days.Shares(set.Representative.Days)
		}) {
			return false
		}
	}

	//** Every evening set belongs to its own weekday and lands in that weekday's evening slot
	for day, set := range session.Clustering.Evening {
		if lo.SomeBy(set.Members, func(member Offering) bool {
			memberDay, onceAWeek := session.options.Rule.OnceAWeek(member)
			return !onceAWeek || memberDay != day
		}) {
			return false
		}
		if eveningSlot := session.Slots.EveningFor(day); eveningSlot != nil && set.Slot() != eveningSlot {
			return false
		}
	}

	//** Slots are filled exactly when they hold a set, evening slots are always filled
	for _, slot := range session.Slots.All() {
		if slot.Evening && !slot.Filled {
			return false
		}
		if !slot.Evening && slot.Filled != (slot.Set != nil) {
			return false
		}
		if slot.Set != nil && slot.Set.Slot() != slot {
			return false
		}
	}

	//** Every set is in at most one slot, and scheduled sets are never reported as unscheduled
	holders := lo.CountValuesBy(session.Slots.Used(), func(slot *ExamSlot) *ScheduleSet { return slot.Set })
	for _, set := range session.Sets() {
		if holders[set] > 1 || (set.Scheduled() && lo.Contains(session.Unscheduled, set)) {
			return false
		}
		if !set.Scheduled() && !lo.Contains(session.Unscheduled, set) {
			return false
		}
	}

	return true
}
