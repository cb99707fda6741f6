// Copyright Niklas Bubeck, 2026. All rights reserved.

// Package types defines the shared data structures for the scholar-page
// pipeline: the normalized author profile snapshot and its publication and
// coauthor records.
package types

import "time"

// NoLink is the sentinel value for an absent URL. The render layer treats it
// as "do not emit a link".
const NoLink = "#"

// PublicationRecord is one normalized paper. Every field has a defined
// fallback; no field is ever empty in a way the render layer cannot handle.
type PublicationRecord struct {
	// Title is the paper title, possibly empty.
	Title string `json:"title" yaml:"title"`

	// Authors is the formatted author list, names joined by ", ".
	// "Unknown" when the source carries no authors.
	Authors string `json:"authors" yaml:"authors"`

	// Venue is the publication venue, "Unknown Venue" when absent.
	Venue string `json:"venue" yaml:"venue"`

	// CitedBy is the citation count, 0 when absent.
	CitedBy int `json:"cited_by" yaml:"cited_by"`

	// Year is the publication year, 0 when unknown.
	Year int `json:"year" yaml:"year"`

	// Link is the preferred open-access PDF URL, falling back to the generic
	// URL, then to NoLink.
	Link string `json:"link" yaml:"link"`

	// PublicationURL is the generic paper URL or NoLink.
	PublicationURL string `json:"publication_url" yaml:"publication_url"`

	// SemanticScholarURL is derived from the paper identifier, or NoLink.
	SemanticScholarURL string `json:"semantic_scholar_url" yaml:"semantic_scholar_url"`
}

// CoauthorRecord is one collaborator aggregated across the fetched papers.
// Name never equals the profile owner's exact name.
type CoauthorRecord struct {
	// Name is the collaborator's name exactly as the source spells it.
	// Distinct spellings of the same person count separately.
	Name string `json:"name" yaml:"name"`

	// Count is the number of fetched papers co-authored with the owner.
	Count int `json:"count" yaml:"count"`

	// AuthorID is the Semantic Scholar author ID, empty when unknown.
	// When a name appears with several IDs the most recently seen one wins.
	AuthorID string `json:"author_id,omitempty" yaml:"author_id,omitempty"`
}

// CitationStats holds the aggregate citation metrics of a profile.
type CitationStats struct {
	// TotalCitations is the citation count across all papers.
	TotalCitations int `json:"total_citations" yaml:"total_citations"`

	// HIndex is the h-index as reported by the source.
	HIndex int `json:"h_index" yaml:"h_index"`

	// I10Index is the count of papers with at least 10 citations. Always
	// computed locally from the paper list, never trusted from upstream.
	I10Index int `json:"i10_index" yaml:"i10_index"`

	// PaperCount is the total number of papers.
	PaperCount int `json:"paper_count" yaml:"paper_count"`
}

// ProfileSnapshot is the immutable result of one successful fetch-and-normalize
// cycle. It is a pure function of the raw API response plus the fetch time; it
// carries no mutable state.
type ProfileSnapshot struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation" yaml:"affiliation"`
	Homepage    string `json:"homepage" yaml:"homepage"`

	// Interests is a derived list of at most 3 research keywords.
	Interests []string `json:"interests" yaml:"interests"`

	CitationStats CitationStats `json:"citation_stats" yaml:"citation_stats"`

	// Publications preserves source API order. That order carries no
	// guarantee; the view layer applies its own sort.
	Publications []PublicationRecord `json:"publications" yaml:"publications"`

	// Coauthors holds at most 6 records, sorted by descending Count.
	Coauthors []CoauthorRecord `json:"coauthors" yaml:"coauthors"`

	// FetchedAt is when the source response was received.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}
