// Copyright Niklas Bubeck, 2026. All rights reserved.

package scholar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nbubeck/scholar-page/pkg/types"
)

// Fallback identity used when the source omits the corresponding field.
const (
	FallbackName        = "Niklas Bubeck"
	FallbackAffiliation = "Technical University of Munich"
	FallbackAuthors     = "Unknown"
	FallbackVenue       = "Unknown Venue"
)

const (
	paperURLPrefix  = "https://www.semanticscholar.org/paper/"
	authorURLPrefix = "https://www.semanticscholar.org/author/"
)

// interestTerms is the fixed vocabulary scanned for in paper titles and
// venues. A substring heuristic, not NLP.
var interestTerms = []string{
	"machine", "learning", "neural", "deep", "artificial", "intelligence",
	"computer", "vision", "algorithm", "optimization", "data",
}

const (
	maxInterests = 3
	maxCoauthors = 6
	i10Threshold = 10
)

// normalize converts a raw author response into an immutable snapshot. It is
// a pure function of raw and fetchedAt: every snapshot field gets a defined
// value even when the source omits it, the i10-index is recomputed locally,
// and interests and coauthors are derived from the paper list.
func normalize(raw rawAuthor, fetchedAt time.Time) types.ProfileSnapshot {
	snap := types.ProfileSnapshot{
		Name:      raw.Name,
		Homepage:  raw.Homepage,
		FetchedAt: fetchedAt,
	}
	if snap.Name == "" {
		snap.Name = FallbackName
	}
	if len(raw.Affiliations) > 0 && raw.Affiliations[0].Name != "" {
		snap.Affiliation = raw.Affiliations[0].Name
	} else {
		snap.Affiliation = FallbackAffiliation
	}

	i10 := 0
	for _, p := range raw.Papers {
		if p.CitationCount >= i10Threshold {
			i10++
		}
	}

	snap.CitationStats = types.CitationStats{
		TotalCitations: max(raw.CitationCount, 0),
		HIndex:         max(raw.HIndex, 0),
		I10Index:       i10,
		PaperCount:     max(raw.PaperCount, 0),
	}

	snap.Interests = extractInterests(raw.Papers)
	snap.Coauthors = extractCoauthors(raw.Papers, snap.Name)
	snap.Publications = make([]types.PublicationRecord, 0, len(raw.Papers))
	for _, p := range raw.Papers {
		snap.Publications = append(snap.Publications, normalizePaper(p))
	}

	return snap
}

func normalizePaper(p rawPaper) types.PublicationRecord {
	rec := types.PublicationRecord{
		Title:              p.Title,
		Venue:              p.Venue,
		CitedBy:            max(p.CitationCount, 0),
		Year:               p.Year,
		Link:               types.NoLink,
		PublicationURL:     types.NoLink,
		SemanticScholarURL: types.NoLink,
	}

	if rec.Venue == "" {
		rec.Venue = FallbackVenue
	}

	if len(p.Authors) == 0 {
		rec.Authors = FallbackAuthors
	} else {
		names := make([]string, 0, len(p.Authors))
		for _, a := range p.Authors {
			names = append(names, a.Name)
		}
		rec.Authors = strings.Join(names, ", ")
	}

	// Preferred PDF link, then generic URL, then the no-link sentinel.
	if p.OpenAccessPdf != nil && p.OpenAccessPdf.URL != "" {
		rec.Link = p.OpenAccessPdf.URL
	} else if p.URL != "" {
		rec.Link = p.URL
	}
	if p.URL != "" {
		rec.PublicationURL = p.URL
	}
	if p.PaperID != "" {
		rec.SemanticScholarURL = paperURLPrefix + p.PaperID
	}

	return rec
}

// extractInterests scans lowercased titles and venues for the fixed
// vocabulary and returns the first maxInterests distinct matches,
// capitalized. The scan order (papers in source order, terms in vocabulary
// order) makes the result deterministic.
func extractInterests(papers []rawPaper) []string {
	seen := make(map[string]bool, len(interestTerms))
	interests := make([]string, 0, maxInterests)

	for _, p := range papers {
		title := strings.ToLower(p.Title)
		venue := strings.ToLower(p.Venue)
		for _, term := range interestTerms {
			if seen[term] {
				continue
			}
			if strings.Contains(title, term) || strings.Contains(venue, term) {
				seen[term] = true
				interests = append(interests, capitalize(term))
			}
		}
	}

	if len(interests) > maxInterests {
		interests = interests[:maxInterests]
	}
	return interests
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// extractCoauthors counts papers per collaborator name, excluding the
// owner's exact name. Names are not fuzzy-merged: two spellings of the same
// person count separately. The most recently seen authorId per name wins.
// Returns the top maxCoauthors by count; ties keep first-encountered order.
func extractCoauthors(papers []rawPaper, ownerName string) []types.CoauthorRecord {
	index := make(map[string]int)
	var coauthors []types.CoauthorRecord

	for _, p := range papers {
		for _, a := range p.Authors {
			if a.Name == "" || a.Name == ownerName {
				continue
			}
			if i, ok := index[a.Name]; ok {
				coauthors[i].Count++
				if a.AuthorID != "" {
					coauthors[i].AuthorID = a.AuthorID
				}
				continue
			}
			index[a.Name] = len(coauthors)
			coauthors = append(coauthors, types.CoauthorRecord{
				Name:     a.Name,
				Count:    1,
				AuthorID: a.AuthorID,
			})
		}
	}

	sort.SliceStable(coauthors, func(i, j int) bool {
		return coauthors[i].Count > coauthors[j].Count
	})

	if len(coauthors) > maxCoauthors {
		coauthors = coauthors[:maxCoauthors]
	}
	return coauthors
}

// CoauthorURL returns the Semantic Scholar profile URL for a coauthor, or ""
// when the author ID is unknown.
func CoauthorURL(c types.CoauthorRecord) string {
	if c.AuthorID == "" {
		return ""
	}
	return authorURLPrefix + c.AuthorID
}

// CoauthorLabel renders a coauthor the way the page shows it: "Name (count)".
func CoauthorLabel(c types.CoauthorRecord) string {
	return fmt.Sprintf("%s (%d)", c.Name, c.Count)
}
