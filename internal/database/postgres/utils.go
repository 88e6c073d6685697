package postgres

import "github.com/famplan/famplan-server/internal/domain"

// tagsToStrings converts dietary tags for storage in a TEXT[] column.
func tagsToStrings(tags []domain.DietaryTag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

// stringsToTags converts a stored TEXT[] column back into dietary tags.
// Unknown values are kept as-is; the domain validates on write, not on read,
// so a tag removed from the enum does not make old rows unreadable.
func stringsToTags(values []string) []domain.DietaryTag {
	out := make([]domain.DietaryTag, len(values))
	for i, v := range values {
		out[i] = domain.DietaryTag(v)
	}
	return out
}
