// Copyright Niklas Bubeck, 2026. All rights reserved.

// Package seed loads a fallback publication roster from local data when the
// Semantic Scholar API is unreachable: either a static HTML publications
// fragment or a YAML roster file. Seed records go through the same fallback
// rules as normalized API records, and categories are always recomputed, not
// trusted from markup.
package seed

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/nbubeck/scholar-page/pkg/types"
)

var nonDigits = regexp.MustCompile(`\D`)

// FromHTML parses publication records out of a static publications fragment.
// Each `.publication-item` block contributes one record: the title from the
// first h4 (falling back to h3 or `.publication-title`), authors, venue,
// year, and citation count from their class-named children, and the first
// `a.pub-link` href as the link.
func FromHTML(r io.Reader) ([]types.PublicationRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing seed HTML: %w", err)
	}

	var records []types.PublicationRecord
	doc.Find(".publication-item").Each(func(_ int, item *goquery.Selection) {
		title := firstText(item, "h4", "h3", ".publication-title")

		rec := types.PublicationRecord{
			Title:              title,
			Authors:            textOr(item, ".publication-authors", "Unknown"),
			Venue:              textOr(item, ".publication-venue", "Unknown Venue"),
			Year:               parseInt(item.Find(".publication-year").First().Text()),
			CitedBy:            parseInt(item.Find(".publication-citations").First().Text()),
			Link:               types.NoLink,
			PublicationURL:     types.NoLink,
			SemanticScholarURL: types.NoLink,
		}

		if href, ok := item.Find("a.pub-link").First().Attr("href"); ok && href != "" {
			rec.Link = href
			rec.PublicationURL = href
		}

		records = append(records, rec)
	})

	return records, nil
}

// FromHTMLFile is FromHTML over a file path.
func FromHTMLFile(path string) ([]types.PublicationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed HTML: %w", err)
	}
	defer f.Close()
	return FromHTML(f)
}

// firstText returns the trimmed text of the first selector with a non-empty
// match.
func firstText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(s.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func textOr(s *goquery.Selection, selector, fallback string) string {
	if text := strings.TrimSpace(s.Find(selector).First().Text()); text != "" {
		return text
	}
	return fallback
}

// parseInt extracts the integer from text like "Cited by 12" or "2023",
// returning 0 when no digits are present.
func parseInt(text string) int {
	digits := nonDigits.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
