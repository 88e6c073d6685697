package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/famplan/famplan-server/internal/domain"
)

func TestDefaultCalendar_WeekdaySlots(t *testing.T) {
	cal := DefaultCalendar()

	for _, weekday := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday} {
		slots := cal[weekday]
		assert.Equal(t, []domain.Slot{
			{MealType: domain.MealTypeLunch, Audience: domain.AudienceChildren},
			{MealType: domain.MealTypeDinner, Audience: domain.AudienceChildren},
			{MealType: domain.MealTypeDinner, Audience: domain.AudienceAdults},
		}, slots, "weekday %v", weekday)
	}
}

func TestDefaultCalendar_FridayHasSingleFamilyDinner(t *testing.T) {
	cal := DefaultCalendar()

	slots := cal[time.Friday]
	assert.Equal(t, []domain.Slot{
		{MealType: domain.MealTypeLunch, Audience: domain.AudienceChildren},
		{MealType: domain.MealTypeDinner, Audience: domain.AudienceBoth},
	}, slots)
}

func TestDefaultCalendar_SaturdayHasFamilyLunch(t *testing.T) {
	cal := DefaultCalendar()

	slots := cal[time.Saturday]
	assert.Equal(t, []domain.Slot{
		{MealType: domain.MealTypeLunch, Audience: domain.AudienceBoth},
		{MealType: domain.MealTypeDinner, Audience: domain.AudienceChildren},
		{MealType: domain.MealTypeDinner, Audience: domain.AudienceAdults},
	}, slots)
}

func TestDefaultCalendar_EveryDayCovered(t *testing.T) {
	cal := DefaultCalendar()

	for day := time.Sunday; day <= time.Saturday; day++ {
		assert.NotEmpty(t, cal[day], "weekday %v has no slots", day)
	}
}

func TestSlotsFor_UsesWeekday(t *testing.T) {
	cal := DefaultCalendar()

	// 2025-06-06 is a Friday
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, cal[time.Friday], cal.SlotsFor(friday))

	saturday := friday.AddDate(0, 0, 1)
	assert.Equal(t, cal[time.Saturday], cal.SlotsFor(saturday))
}
