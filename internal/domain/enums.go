package domain

import "fmt"

// MealType identifies the meal of the day a slot or recipe belongs to.
type MealType string

const (
	MealTypeLunch  MealType = "lunch"
	MealTypeDinner MealType = "dinner"
)

// Valid reports whether mt is a known meal type.
func (mt MealType) Valid() bool {
	switch mt {
	case MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// ParseMealType converts a string into a MealType or returns ErrInvalidMealType.
func ParseMealType(s string) (MealType, error) {
	mt := MealType(s)
	if !mt.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMealType, s)
	}
	return mt, nil
}

// Audience identifies which household subgroup a meal or recipe serves.
type Audience string

const (
	AudienceChildren Audience = "children"
	AudienceAdults   Audience = "adults"
	AudienceBoth     Audience = "both"
)

// Valid reports whether a is a known audience.
func (a Audience) Valid() bool {
	switch a {
	case AudienceChildren, AudienceAdults, AudienceBoth:
		return true
	}
	return false
}

// ParseAudience converts a string into an Audience or returns ErrInvalidAudience.
func ParseAudience(s string) (Audience, error) {
	a := Audience(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAudience, s)
	}
	return a, nil
}

// Serves reports whether a recipe tagged with audience a may be assigned to a
// slot serving target. A "both" recipe serves every slot; a "both" slot is
// only served by a "both" recipe.
func (a Audience) Serves(target Audience) bool {
	if a == AudienceBoth {
		return true
	}
	return a == target
}

// DietaryTag is a closed set of dietary classifications a recipe can carry.
// Free-text exclusions (e.g. "no cilantro") live on the user as excluded
// ingredient substrings, not here.
type DietaryTag string

const (
	TagKosher     DietaryTag = "kosher"
	TagVegetarian DietaryTag = "vegetarian"
	TagVegan      DietaryTag = "vegan"
	TagGlutenFree DietaryTag = "gluten_free"
	TagDairyFree  DietaryTag = "dairy_free"
)

// Valid reports whether t is a known dietary tag.
func (t DietaryTag) Valid() bool {
	switch t {
	case TagKosher, TagVegetarian, TagVegan, TagGlutenFree, TagDairyFree:
		return true
	}
	return false
}

// ParseDietaryTag converts a string into a DietaryTag or returns ErrInvalidTag.
func ParseDietaryTag(s string) (DietaryTag, error) {
	t := DietaryTag(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTag, s)
	}
	return t, nil
}
