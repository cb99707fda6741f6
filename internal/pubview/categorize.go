// Copyright Niklas Bubeck, 2026. All rights reserved.

package pubview

import "strings"

// Category classifies a publication by its venue text.
type Category string

const (
	CategoryAll        Category = "all" // filter value, never a record tag
	CategoryConference Category = "conference"
	CategoryJournal    Category = "journal"
	CategoryPreprint   Category = "preprint"
)

// Venue keyword sets for categorization. Matching is case-insensitive
// substring.
var (
	conferenceTerms = []string{
		"conference", "proceedings", "workshop", "symposium",
		"cvpr", "iclr", "neurips", "icml", "iccv", "eccv",
	}
	preprintTerms = []string{"arxiv", "preprint", "biorxiv", "medrxiv"}
)

// Categorize maps a venue string to its category. Everything that is neither
// a conference nor a preprint defaults to journal. This is the single source
// of truth for record categories: the fetch path and the seed path both call
// it, so the two can never disagree.
func Categorize(venue string) Category {
	v := strings.ToLower(venue)

	for _, term := range conferenceTerms {
		if strings.Contains(v, term) {
			return CategoryConference
		}
	}
	for _, term := range preprintTerms {
		if strings.Contains(v, term) {
			return CategoryPreprint
		}
	}
	return CategoryJournal
}

// ParseFilter maps a user-supplied filter value to a category filter.
// Unrecognized values behave as "all".
func ParseFilter(s string) Category {
	switch Category(s) {
	case CategoryConference, CategoryJournal, CategoryPreprint:
		return Category(s)
	default:
		return CategoryAll
	}
}
