// Package render builds and updates the widget page: an in-memory HTML document
// with a search form, a show list and an episode area.
//
// Render functions never look containers up on their own; callers pass the
// *goquery.Selection handles they want updated, usually taken from a Page.
package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const pageSkeleton = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>ShowFinder</title>
</head>
<body>
  <div class="container">
    <h1>ShowFinder</h1>
    <form id="searchForm" class="form-inline">
      <input id="searchForm-term" class="form-control" name="term" placeholder="Show title" value="">
      <button class="btn btn-primary">Go!</button>
    </form>
    <div id="notice" class="alert alert-danger" role="alert" style="display: none;"></div>
    <div id="showsList" class="row mt-3"></div>
    <section id="episodesArea" style="display: none;">
      <h2>Episodes</h2>
      <ul id="episodesList"></ul>
    </section>
  </div>
</body>
</html>`

// Page is the widget document together with handles to the containers the
// render functions operate on.
type Page struct {
	Document *goquery.Document

	SearchForm   *goquery.Selection
	SearchInput  *goquery.Selection
	Notice       *goquery.Selection
	ShowsList    *goquery.Selection
	EpisodesArea *goquery.Selection
	EpisodesList *goquery.Selection
}

// NewPage parses the widget skeleton and resolves its container handles.
func NewPage() (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageSkeleton))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page skeleton: %w", err)
	}

	page := &Page{
		Document:     doc,
		SearchForm:   doc.Find("#searchForm"),
		SearchInput:  doc.Find("#searchForm-term"),
		Notice:       doc.Find("#notice"),
		ShowsList:    doc.Find("#showsList"),
		EpisodesArea: doc.Find("#episodesArea"),
		EpisodesList: doc.Find("#episodesList"),
	}

	for name, sel := range map[string]*goquery.Selection{
		"searchForm":   page.SearchForm,
		"searchInput":  page.SearchInput,
		"notice":       page.Notice,
		"showsList":    page.ShowsList,
		"episodesArea": page.EpisodesArea,
		"episodesList": page.EpisodesList,
	} {
		if sel.Length() != 1 {
			return nil, fmt.Errorf("page skeleton is missing %s", name)
		}
	}

	return page, nil
}

// SearchTerm returns the current value of the search input.
func (p *Page) SearchTerm() string {
	return p.SearchInput.AttrOr("value", "")
}

// SetSearchTerm types term into the search input.
func (p *Page) SetSearchTerm(term string) {
	p.SearchInput.SetAttr("value", term)
}

// EpisodeButtons returns the episodes control of every displayed show, in display order.
func (p *Page) EpisodeButtons() *goquery.Selection {
	return p.ShowsList.Find(".Show .Show-getEpisodes")
}

// HTML serialises the whole document.
func (p *Page) HTML() (string, error) {
	return p.Document.Html()
}
