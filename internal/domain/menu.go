package domain

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a (meal type, audience) coordinate within a single day. The slot
// calendar decides which slots exist on which weekday.
type Slot struct {
	MealType MealType `json:"meal_type"`
	Audience Audience `json:"audience"`
}

// Menu is a user's meal plan over a date range. At most one menu per user is
// active at a time.
type Menu struct {
	ID        uuid.UUID `json:"menu_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Active    bool      `json:"active"`
	Meals     []Meal    `json:"meals,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ValidateRange checks the menu date-range invariant. Dates are compared at
// day granularity.
func (m *Menu) ValidateRange() error {
	if DayOf(m.StartDate).After(DayOf(m.EndDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

// Days returns every day in the menu range, inclusive of both endpoints, so a
// menu with start == end spans exactly one day.
func (m *Menu) Days() []time.Time {
	start := DayOf(m.StartDate)
	end := DayOf(m.EndDate)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Meal is one generated slot assignment. RecipeID is nil when no eligible
// recipe existed for the slot at generation time.
type Meal struct {
	ID       uuid.UUID  `json:"meal_id"`
	MenuID   uuid.UUID  `json:"menu_id"`
	Date     time.Time  `json:"date"`
	MealType MealType   `json:"meal_type"`
	Audience Audience   `json:"audience"`
	RecipeID *uuid.UUID `json:"recipe_id,omitempty"`
	Recipe   *Recipe    `json:"recipe,omitempty"`
}

// Slot returns the meal's slot coordinate.
func (m *Meal) Slot() Slot {
	return Slot{MealType: m.MealType, Audience: m.Audience}
}

// DayOf truncates t to day granularity in UTC.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
