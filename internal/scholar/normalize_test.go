// Copyright Niklas Bubeck, 2026. All rights reserved.

package scholar

import (
	"reflect"
	"testing"
	"time"

	"github.com/nbubeck/scholar-page/pkg/types"
)

var fetchTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// --- Field fallbacks ---

func TestNormalizeEmptyResponse(t *testing.T) {
	snap := normalize(rawAuthor{}, fetchTime)

	if snap.Name != FallbackName {
		t.Errorf("Name = %q, want %q", snap.Name, FallbackName)
	}
	if snap.Affiliation != FallbackAffiliation {
		t.Errorf("Affiliation = %q, want %q", snap.Affiliation, FallbackAffiliation)
	}
	if snap.Homepage != "" {
		t.Errorf("Homepage = %q, want empty", snap.Homepage)
	}
	if snap.Interests == nil || len(snap.Interests) != 0 {
		t.Errorf("Interests = %v, want empty non-nil slice", snap.Interests)
	}
	if snap.Publications == nil {
		t.Error("Publications is nil, want empty slice")
	}
	if got := snap.CitationStats; got != (types.CitationStats{}) {
		t.Errorf("CitationStats = %+v, want zeroes", got)
	}
}

func TestNormalizePaperFallbacks(t *testing.T) {
	snap := normalize(rawAuthor{Papers: []rawPaper{{}}}, fetchTime)

	pub := snap.Publications[0]
	if pub.Authors != FallbackAuthors {
		t.Errorf("Authors = %q, want %q", pub.Authors, FallbackAuthors)
	}
	if pub.Venue != FallbackVenue {
		t.Errorf("Venue = %q, want %q", pub.Venue, FallbackVenue)
	}
	if pub.CitedBy != 0 {
		t.Errorf("CitedBy = %d, want 0", pub.CitedBy)
	}
	for name, link := range map[string]string{
		"Link":               pub.Link,
		"PublicationURL":     pub.PublicationURL,
		"SemanticScholarURL": pub.SemanticScholarURL,
	} {
		if link != types.NoLink {
			t.Errorf("%s = %q, want sentinel %q", name, link, types.NoLink)
		}
	}
}

func TestNormalizeLinkPreference(t *testing.T) {
	tests := []struct {
		name  string
		paper rawPaper
		want  string
	}{
		{"pdf preferred", rawPaper{URL: "u", OpenAccessPdf: &rawOpenAccess{URL: "pdf"}}, "pdf"},
		{"url fallback", rawPaper{URL: "u"}, "u"},
		{"empty pdf struct falls back", rawPaper{URL: "u", OpenAccessPdf: &rawOpenAccess{}}, "u"},
		{"sentinel when nothing", rawPaper{}, types.NoLink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := normalize(rawAuthor{Papers: []rawPaper{tt.paper}}, fetchTime)
			if got := snap.Publications[0].Link; got != tt.want {
				t.Errorf("Link = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeAuthorsJoined(t *testing.T) {
	snap := normalize(rawAuthor{Papers: []rawPaper{{
		Authors: []rawPaperAuthor{{Name: "A One"}, {Name: "B Two"}, {Name: "C Three"}},
	}}}, fetchTime)

	if got, want := snap.Publications[0].Authors, "A One, B Two, C Three"; got != want {
		t.Errorf("Authors = %q, want %q", got, want)
	}
}

// --- i10-index ---

func TestI10IndexComputedLocally(t *testing.T) {
	raw := rawAuthor{Papers: []rawPaper{
		{CitationCount: 9},
		{CitationCount: 10},
		{CitationCount: 250},
		{CitationCount: 0},
	}}

	snap := normalize(raw, fetchTime)
	if got := snap.CitationStats.I10Index; got != 2 {
		t.Errorf("I10Index = %d, want 2", got)
	}
}

// --- Interests ---

func TestExtractInterests(t *testing.T) {
	tests := []struct {
		name   string
		papers []rawPaper
		want   []string
	}{
		{
			"no matches",
			[]rawPaper{{Title: "Quantum Chromodynamics"}},
			[]string{},
		},
		{
			"substring match is case-insensitive across title and venue",
			[]rawPaper{{Title: "DEEP Representations", Venue: "Journal of Machine Things"}},
			[]string{"Machine", "Deep"},
		},
		{
			"capped at three distinct terms",
			[]rawPaper{
				{Title: "machine learning with neural networks"},
				{Title: "deep data optimization"},
			},
			[]string{"Machine", "Learning", "Neural"},
		},
		{
			"duplicates across papers count once",
			[]rawPaper{
				{Title: "vision one"},
				{Title: "vision two"},
				{Title: "vision three"},
			},
			[]string{"Vision"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractInterests(tt.papers)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractInterests() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Coauthors ---

func coauthorPapers() []rawPaper {
	return []rawPaper{
		{Authors: []rawPaperAuthor{
			{Name: "Niklas Bubeck"}, {Name: "Ada Lovelace", AuthorID: "1"}, {Name: "Alan Turing"},
		}},
		{Authors: []rawPaperAuthor{
			{Name: "Niklas Bubeck"}, {Name: "Ada Lovelace", AuthorID: "2"},
		}},
		{Authors: []rawPaperAuthor{
			{Name: "Grace Hopper"}, {Name: "Alan Turing"},
		}},
	}
}

func TestExtractCoauthorsExcludesOwner(t *testing.T) {
	coauthors := extractCoauthors(coauthorPapers(), "Niklas Bubeck")
	for _, c := range coauthors {
		if c.Name == "Niklas Bubeck" {
			t.Fatal("owner name present in coauthor list")
		}
	}
}

func TestExtractCoauthorsCountsAndOrder(t *testing.T) {
	coauthors := extractCoauthors(coauthorPapers(), "Niklas Bubeck")

	want := []types.CoauthorRecord{
		{Name: "Ada Lovelace", Count: 2, AuthorID: "2"}, // last-seen ID wins
		{Name: "Alan Turing", Count: 2},
		{Name: "Grace Hopper", Count: 1},
	}
	if !reflect.DeepEqual(coauthors, want) {
		t.Errorf("coauthors = %+v, want %+v", coauthors, want)
	}
}

func TestExtractCoauthorsTopSix(t *testing.T) {
	var papers []rawPaper
	// Nine distinct collaborators, collaborator i on i+1 papers.
	for i := 0; i < 9; i++ {
		name := string(rune('A' + i))
		for j := 0; j <= i; j++ {
			papers = append(papers, rawPaper{Authors: []rawPaperAuthor{{Name: name}}})
		}
	}

	coauthors := extractCoauthors(papers, "Niklas Bubeck")
	if len(coauthors) != 6 {
		t.Fatalf("len = %d, want 6", len(coauthors))
	}
	for i := 1; i < len(coauthors); i++ {
		if coauthors[i].Count > coauthors[i-1].Count {
			t.Errorf("counts not non-increasing at %d: %d > %d", i, coauthors[i].Count, coauthors[i-1].Count)
		}
	}
	if coauthors[0].Name != "I" || coauthors[0].Count != 9 {
		t.Errorf("top coauthor = %+v, want I with 9", coauthors[0])
	}
}

func TestCoauthorURL(t *testing.T) {
	if got := CoauthorURL(types.CoauthorRecord{AuthorID: "42"}); got != "https://www.semanticscholar.org/author/42" {
		t.Errorf("CoauthorURL = %q", got)
	}
	if got := CoauthorURL(types.CoauthorRecord{}); got != "" {
		t.Errorf("CoauthorURL without ID = %q, want empty", got)
	}
}
