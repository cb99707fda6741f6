// Copyright Niklas Bubeck, 2026. All rights reserved.

package server

import (
	"fmt"
	"html/template"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/nbubeck/scholar-page/internal/pubview"
	"github.com/nbubeck/scholar-page/internal/scholar"
	"github.com/nbubeck/scholar-page/pkg/types"
)

// ownerNamePattern matches the owner's name variations for highlighting in
// author strings.
var ownerNamePattern = regexp.MustCompile(`(?i)\b(Niklas Bubeck|N\. Bubeck|N Bubeck)\b`)

// highlightOwner escapes authors and wraps the owner's name in <strong>. The
// input is escaped before the pattern runs, so the only markup in the result
// is the highlight.
func highlightOwner(authors string) template.HTML {
	escaped := template.HTMLEscapeString(authors)
	return template.HTML(ownerNamePattern.ReplaceAllString(escaped, "<strong>$1</strong>"))
}

// yearsAgo renders the paper-age annotation, empty for unknown years.
func yearsAgo(year int) string {
	if year <= 0 {
		return ""
	}
	age := time.Now().Year() - year
	if age < 0 {
		age = 0
	}
	return fmt.Sprintf("%d years ago", age)
}

type statItem struct {
	Label string
	Value int
}

type filterLink struct {
	Label  string
	URL    string
	Active bool
}

type sortOption struct {
	Value    string
	Label    string
	Selected bool
}

type renderedPub struct {
	pubview.AnnotatedPublication
	AuthorsHTML template.HTML
	Age         string
	HasPDF      bool
	HasScholar  bool
}

type coauthorItem struct {
	Label string
	URL   string
}

type pageData struct {
	Name        string
	Affiliation string
	Homepage    string
	Interests   []string
	Stats       []statItem

	Records []renderedPub
	Display string

	Filters     []filterLink
	SortOptions []sortOption
	FilterValue string
	SortValue   string
	Query       string
	ClearURL    string

	Page           int
	TotalPages     int
	PrevURL        string
	NextURL        string
	ShowPagination bool

	Coauthors []coauthorItem
}

// viewURL builds a page URL carrying the view state, with page overridden.
func viewURL(state pubview.State, page int) string {
	q := url.Values{}
	if state.Filter != "" && state.Filter != pubview.CategoryAll {
		q.Set("filter", string(state.Filter))
	}
	if state.Sort != "" && state.Sort != pubview.SortNewest {
		q.Set("sort", state.Sort)
	}
	if state.Query != "" {
		q.Set("q", state.Query)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

var filterChoices = []struct {
	value pubview.Category
	label string
}{
	{pubview.CategoryAll, "All"},
	{pubview.CategoryConference, "Conference"},
	{pubview.CategoryJournal, "Journal"},
	{pubview.CategoryPreprint, "Preprint"},
}

var sortChoices = []struct {
	value string
	label string
}{
	{pubview.SortNewest, "Newest first"},
	{pubview.SortOldest, "Oldest first"},
	{pubview.SortCitationsDesc, "Most cited"},
	{pubview.SortCitationsAsc, "Least cited"},
	{pubview.SortTitleAsc, "Title A–Z"},
	{pubview.SortTitleDesc, "Title Z–A"},
}

func newPageData(snap types.ProfileSnapshot, view *pubview.View) pageData {
	state := view.State()
	derived := view.Current()

	data := pageData{
		Name:        snap.Name,
		Affiliation: snap.Affiliation,
		Homepage:    snap.Homepage,
		Interests:   snap.Interests,
		Stats: []statItem{
			{"Total Citations", snap.CitationStats.TotalCitations},
			{"h-index", snap.CitationStats.HIndex},
			{"i10-index", snap.CitationStats.I10Index},
			{"Papers", snap.CitationStats.PaperCount},
		},
		Display:        derived.DisplayCount(),
		Query:          state.Query,
		SortValue:      state.Sort,
		Page:           derived.Page,
		TotalPages:     derived.TotalPages,
		ShowPagination: derived.TotalPages > 1,
	}
	if state.Filter != pubview.CategoryAll {
		data.FilterValue = string(state.Filter)
	}

	for _, rec := range derived.Records {
		data.Records = append(data.Records, renderedPub{
			AnnotatedPublication: rec,
			AuthorsHTML:          highlightOwner(rec.Authors),
			Age:                  yearsAgo(rec.Year),
			HasPDF:               rec.Link != types.NoLink,
			HasScholar:           rec.SemanticScholarURL != types.NoLink,
		})
	}

	for _, fc := range filterChoices {
		fs := state
		fs.Filter = fc.value
		data.Filters = append(data.Filters, filterLink{
			Label:  fc.label,
			URL:    viewURL(fs, 1),
			Active: state.Filter == fc.value,
		})
	}
	for _, sc := range sortChoices {
		data.SortOptions = append(data.SortOptions, sortOption{
			Value:    sc.value,
			Label:    sc.label,
			Selected: state.Sort == sc.value,
		})
	}

	cleared := state
	cleared.Query = ""
	data.ClearURL = viewURL(cleared, 1)

	if derived.HasPrev() {
		data.PrevURL = viewURL(state, derived.Page-1)
	}
	if derived.HasNext() {
		data.NextURL = viewURL(state, derived.Page+1)
	}

	for _, c := range snap.Coauthors {
		data.Coauthors = append(data.Coauthors, coauthorItem{
			Label: scholar.CoauthorLabel(c),
			URL:   scholar.CoauthorURL(c),
		})
	}

	return data
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
</head>
<body>
<nav class="nav">
  <div class="nav-logo"><h2>{{.Name}}</h2></div>
</nav>

<header class="hero">
  <h1 class="name">{{.Name}}</h1>
  <p class="hero-description">Researcher at {{.Affiliation}}, advancing knowledge through innovative research, collaborative projects, and academic excellence.</p>
  {{if .Homepage}}<a class="homepage" href="{{.Homepage}}">Homepage</a>{{end}}
  {{if .Interests}}
  <ul class="interests">
    {{range .Interests}}<li>{{.}}</li>{{end}}
  </ul>
  {{end}}
</header>

<section class="stats">
  {{range .Stats}}
  <div class="stat-item">
    <span class="stat-number">{{.Value}}</span>
    <span class="stat-label">{{.Label}}</span>
  </div>
  {{end}}
</section>

<section id="publications">
  <div class="publication-controls">
    <form class="search-form" method="get" action="/">
      {{if .FilterValue}}<input type="hidden" name="filter" value="{{.FilterValue}}">{{end}}
      <input type="hidden" name="sort" value="{{.SortValue}}">
      <input id="search-publications" type="text" name="q" value="{{.Query}}" placeholder="Search publications...">
      {{if .Query}}<a id="clear-search" href="{{.ClearURL}}">Clear</a>{{end}}
    </form>
    <div class="filter-buttons">
      {{range .Filters}}
      <a class="filter-btn{{if .Active}} active{{end}}" href="{{.URL}}">{{.Label}}</a>
      {{end}}
    </div>
    <form class="sort-form" method="get" action="/">
      {{if .FilterValue}}<input type="hidden" name="filter" value="{{.FilterValue}}">{{end}}
      {{if .Query}}<input type="hidden" name="q" value="{{.Query}}">{{end}}
      <select id="sort-select" name="sort">
        {{range .SortOptions}}
        <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
        {{end}}
      </select>
      <button type="submit">Sort</button>
    </form>
    <span id="results-count">{{.Display}}</span>
  </div>

  <div class="publications-list">
    {{range .Records}}
    <div class="publication-item" data-category="{{.Category}}">
      <h4>{{if .Title}}{{.Title}}{{else}}Untitled{{end}}</h4>
      <p class="publication-authors">{{.AuthorsHTML}}</p>
      <p class="publication-venue">{{.Venue}}{{if .Year}}, {{.Year}}{{end}}</p>
      <p class="publication-citations">Cited by {{.CitedBy}}{{if .Age}} &bull; {{.Age}}{{end}}</p>
      <div class="publication-links">
        {{if .HasPDF}}<a class="pub-link" href="{{.Link}}">PDF</a>{{end}}
        {{if .HasScholar}}<a class="pub-link" href="{{.SemanticScholarURL}}">Semantic Scholar</a>{{end}}
      </div>
    </div>
    {{else}}
    <p class="no-results">No publications match.</p>
    {{end}}
  </div>

  {{if .ShowPagination}}
  <div class="pagination-controls">
    {{if .PrevURL}}<a id="prev-page" href="{{.PrevURL}}">Previous</a>{{else}}<span id="prev-page" class="disabled">Previous</span>{{end}}
    <span>Page <span id="current-page">{{.Page}}</span> of <span id="total-pages">{{.TotalPages}}</span></span>
    {{if .NextURL}}<a id="next-page" href="{{.NextURL}}">Next</a>{{else}}<span id="next-page" class="disabled">Next</span>{{end}}
  </div>
  {{end}}
</section>

<section id="coauthors">
  <div class="coauthors-list">
    {{range .Coauthors}}
    <div class="coauthor-item">{{if .URL}}<a href="{{.URL}}" rel="noopener noreferrer">{{.Label}}</a>{{else}}{{.Label}}{{end}}</div>
    {{else}}
    <div class="coauthor-loading">No coauthors found</div>
    {{end}}
  </div>
</section>
</body>
</html>
`))
