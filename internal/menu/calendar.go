package menu

import (
	"time"

	"github.com/famplan/famplan-server/internal/domain"
)

// SlotCalendar maps a weekday to the meal slots generated on that day. The
// mapping is the single source of truth for slot shape: generation never
// branches on weekday anywhere else, so the exact slot set per day is
// independently verifiable.
type SlotCalendar map[time.Weekday][]domain.Slot

// weekdaySlots is the baseline slot set for an ordinary school/work day:
// children eat lunch separately, and dinner is cooked per subgroup.
var weekdaySlots = []domain.Slot{
	{MealType: domain.MealTypeLunch, Audience: domain.AudienceChildren},
	{MealType: domain.MealTypeDinner, Audience: domain.AudienceChildren},
	{MealType: domain.MealTypeDinner, Audience: domain.AudienceAdults},
}

// DefaultCalendar returns the household slot calendar with the rest-day
// rules applied:
//   - Saturday is the rest day. The children's separate lunch is suppressed
//     and replaced with a single whole-family lunch.
//   - On Friday the per-subgroup dinners are suppressed in favor of a single
//     whole-family dinner on the eve of the rest day.
func DefaultCalendar() SlotCalendar {
	return SlotCalendar{
		time.Sunday:    weekdaySlots,
		time.Monday:    weekdaySlots,
		time.Tuesday:   weekdaySlots,
		time.Wednesday: weekdaySlots,
		time.Thursday:  weekdaySlots,
		time.Friday: {
			{MealType: domain.MealTypeLunch, Audience: domain.AudienceChildren},
			{MealType: domain.MealTypeDinner, Audience: domain.AudienceBoth},
		},
		time.Saturday: {
			{MealType: domain.MealTypeLunch, Audience: domain.AudienceBoth},
			{MealType: domain.MealTypeDinner, Audience: domain.AudienceChildren},
			{MealType: domain.MealTypeDinner, Audience: domain.AudienceAdults},
		},
	}
}

// SlotsFor returns the slots generated on the given day.
func (c SlotCalendar) SlotsFor(day time.Time) []domain.Slot {
	return c[day.Weekday()]
}
