// Copyright Niklas Bubeck, 2026. All rights reserved.

// Package pubview derives the visible publication list from a roster and a
// view state: filter by category, free-text search, stable sort, and
// pagination. The roster is the single source of truth, built once from a
// profile snapshot or a seed list and never rebuilt from rendered output.
package pubview

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nbubeck/scholar-page/pkg/types"
)

// Sort orders supported by the view.
const (
	SortNewest        = "newest"
	SortOldest        = "oldest"
	SortCitationsDesc = "citations-desc"
	SortCitationsAsc  = "citations-asc"
	SortTitleAsc      = "title-asc"
	SortTitleDesc     = "title-desc"
)

// DefaultPageSize matches the original page layout of three items per page.
const DefaultPageSize = 3

// AnnotatedPublication is a roster entry: the record plus its derived
// category tag.
type AnnotatedPublication struct {
	types.PublicationRecord
	Category Category `json:"category"`
}

// State holds the four user-driven view axes. The zero value is not valid;
// use DefaultState.
type State struct {
	Filter   Category `json:"filter"`
	Sort     string   `json:"sort"`
	Query    string   `json:"query"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// DefaultState is the state a freshly loaded view starts from.
func DefaultState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{Filter: CategoryAll, Sort: SortNewest, Page: 1, PageSize: pageSize}
}

// Derived is the outcome of one recompute: the current page's records plus
// the counts the controls display. It is a value; no intermediate state is
// observable mid-recompute.
type Derived struct {
	// Records is the current page of the filtered, sorted roster.
	Records []AnnotatedPublication `json:"records"`

	// Count is the number of records matching the filter and search.
	Count int `json:"count"`

	// Total is the roster size.
	Total int `json:"total"`

	// Page is the clamped current page.
	Page int `json:"page"`

	// TotalPages is ceil(Count/PageSize), at least 1 even when Count is 0.
	TotalPages int `json:"total_pages"`

	// Filtered reports whether a filter or search is active, which switches
	// the count display from "N publications" to "N of M publications".
	Filtered bool `json:"filtered"`
}

// DisplayCount renders the results-count line.
func (d Derived) DisplayCount() string {
	if d.Filtered {
		return fmt.Sprintf("%d of %d publications", d.Count, d.Total)
	}
	return fmt.Sprintf("%d publications", d.Count)
}

// HasPrev reports whether a previous page exists.
func (d Derived) HasPrev() bool { return d.Page > 1 }

// HasNext reports whether a next page exists.
func (d Derived) HasNext() bool { return d.Page < d.TotalPages }

// Annotate builds a roster from records, tagging each with its category.
func Annotate(records []types.PublicationRecord) []AnnotatedPublication {
	roster := make([]AnnotatedPublication, 0, len(records))
	for _, rec := range records {
		roster = append(roster, AnnotatedPublication{
			PublicationRecord: rec,
			Category:          Categorize(rec.Venue),
		})
	}
	return roster
}

// newTitleCollator compares titles locale-aware and case-insensitive. A
// Collator keeps internal buffers and is not safe for concurrent use, so
// each sort gets its own.
func newTitleCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// Recompute derives the visible subset. The pipeline order is fixed: filter,
// then search, then stable sort, then pagination. Filter and search commute,
// so applying them in either order yields the same set; sort must come after
// both, and pagination last. Recompute never mutates roster or state, which
// makes it idempotent for unchanged inputs.
func Recompute(roster []AnnotatedPublication, state State) Derived {
	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	matched := make([]AnnotatedPublication, 0, len(roster))
	query := strings.ToLower(state.Query)
	for _, pub := range roster {
		if state.Filter != CategoryAll && state.Filter != "" && pub.Category != state.Filter {
			continue
		}
		if query != "" && !matchesQuery(pub, query) {
			continue
		}
		matched = append(matched, pub)
	}

	sortRecords(matched, state.Sort)

	totalPages := (len(matched) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := clampPage(state.Page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return Derived{
		Records:    matched[start:end],
		Count:      len(matched),
		Total:      len(roster),
		Page:       page,
		TotalPages: totalPages,
		Filtered:   (state.Filter != CategoryAll && state.Filter != "") || state.Query != "",
	}
}

// matchesQuery reports whether the lowercased query is a substring of the
// lowercased title, authors, or venue.
func matchesQuery(pub AnnotatedPublication, query string) bool {
	return strings.Contains(strings.ToLower(pub.Title), query) ||
		strings.Contains(strings.ToLower(pub.Authors), query) ||
		strings.Contains(strings.ToLower(pub.Venue), query)
}

// sortRecords stable-sorts in place. An unrecognized order behaves as newest.
func sortRecords(records []AnnotatedPublication, order string) {
	var less func(a, b AnnotatedPublication) bool
	switch order {
	case SortOldest:
		less = func(a, b AnnotatedPublication) bool { return a.Year < b.Year }
	case SortCitationsDesc:
		less = func(a, b AnnotatedPublication) bool { return a.CitedBy > b.CitedBy }
	case SortCitationsAsc:
		less = func(a, b AnnotatedPublication) bool { return a.CitedBy < b.CitedBy }
	case SortTitleAsc:
		coll := newTitleCollator()
		less = func(a, b AnnotatedPublication) bool { return coll.CompareString(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		coll := newTitleCollator()
		less = func(a, b AnnotatedPublication) bool { return coll.CompareString(a.Title, b.Title) > 0 }
	default: // SortNewest and anything unrecognized
		less = func(a, b AnnotatedPublication) bool { return a.Year > b.Year }
	}
	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// View couples a roster with the single mutable State instance for a page
// session. Setters mutate exactly one axis and re-derive; the derived value
// is replaced atomically.
type View struct {
	roster  []AnnotatedPublication
	state   State
	derived Derived
}

// NewView loads records into a fresh view with default state and derives the
// first page.
func NewView(records []types.PublicationRecord, pageSize int) *View {
	v := &View{
		roster: Annotate(records),
		state:  DefaultState(pageSize),
	}
	v.derived = Recompute(v.roster, v.state)
	return v
}

// State returns a copy of the current view state.
func (v *View) State() State { return v.state }

// Current returns the most recent derived view.
func (v *View) Current() Derived { return v.derived }

// SetFilter selects a category filter and resets to the first page: a
// changed result set invalidates the prior page position.
func (v *View) SetFilter(filter Category) {
	v.state.Filter = filter
	v.state.Page = 1
	v.derived = Recompute(v.roster, v.state)
}

// SetSort selects a sort order and resets to the first page.
func (v *View) SetSort(order string) {
	v.state.Sort = order
	v.state.Page = 1
	v.derived = Recompute(v.roster, v.state)
}

// SetSearch sets the free-text query and resets to the first page.
func (v *View) SetSearch(query string) {
	v.state.Query = query
	v.state.Page = 1
	v.derived = Recompute(v.roster, v.state)
}

// SetPage moves to page n, clamped into [1, totalPages]. Other axes are
// untouched.
func (v *View) SetPage(n int) {
	v.state.Page = clampPage(n, v.derived.TotalPages)
	v.derived = Recompute(v.roster, v.state)
}
