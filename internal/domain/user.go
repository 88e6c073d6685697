package domain

import (
	"time"

	"github.com/google/uuid"
)

// User carries the household composition and dietary policy consumed by menu
// generation and shopping aggregation.
type User struct {
	ID                  uuid.UUID    `json:"user_id"`
	Username            string       `json:"username"`
	AdultsCount         int          `json:"adults_count"`
	ChildrenCount       int          `json:"children_count"`
	RequiredTags        []DietaryTag `json:"required_tags"`
	ExcludedIngredients []string     `json:"excluded_ingredients"`
	CreatedAt           time.Time    `json:"created_at,omitempty"`
}

// Headcount returns how many people a meal for the given audience serves in
// this household. An adults or both slot feeds the whole household; a
// children slot feeds only the children.
func (u *User) Headcount(audience Audience) int {
	if audience == AudienceChildren {
		return u.ChildrenCount
	}
	return u.AdultsCount + u.ChildrenCount
}
