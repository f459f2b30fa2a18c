package scrape

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/azoradev/azoradown/internal"
	"github.com/azoradev/azoradown/internal/clients"
)

// SearchResults is one page of search output plus the totals read from it.
type SearchResults struct {
	ResultNo int
	Pages    int
	Results  []MangaSearchResult
}

// Search extracts paginated title-search results.
type Search struct {
	fetch *clients.Fetcher
	site  Site
}

func NewSearch(fetch *clients.Fetcher, site Site) *Search {
	return &Search{fetch: fetch, site: site}
}

// Search fetches the first result page for query. A query with zero matches
// returns ResultNo 0, Pages 0 and an empty list, not an error.
func (s *Search) Search(ctx context.Context, query string) (*SearchResults, error) {
	return s.Page(ctx, query, 1)
}

// Page fetches one explicit result page. Pagination is caller-driven; Pages on
// the returned value says how many there are.
func (s *Search) Page(ctx context.Context, query string, page int) (*SearchResults, error) {
	doc, err := s.fetch.FetchDocument(ctx, s.pageURL(page), map[string]string{
		"s":         query,
		"post_type": "wp-manga",
	})
	if err != nil {
		return nil, err
	}

	sel := s.site.Selectors
	res := &SearchResults{}
	res.ResultNo = leadingInt(firstText(doc.Selection, sel.SearchCount))
	res.Pages = pageCount(res.ResultNo, s.site.ResultsPerPage)

	doc.Find(sel.SearchResult).Each(func(_ int, node *goquery.Selection) {
		res.Results = append(res.Results, s.result(node))
	})

	internal.Debug("search %q page %d: %d of %d results", query, page, len(res.Results), res.ResultNo)
	return res, nil
}

// All walks every result page and returns the merged list.
func (s *Search) All(ctx context.Context, query string) (*SearchResults, error) {
	first, err := s.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	for page := 2; page <= first.Pages; page++ {
		next, err := s.Page(ctx, query, page)
		if err != nil {
			return nil, fmt.Errorf("search page %d: %w", page, err)
		}
		first.Results = append(first.Results, next.Results...)
	}
	return first, nil
}

func (s *Search) pageURL(page int) string {
	if page <= 1 {
		return s.site.BaseURL + "/"
	}
	return fmt.Sprintf("%s/page/%d/", s.site.BaseURL, page)
}

func (s *Search) result(node *goquery.Selection) MangaSearchResult {
	sel := s.site.Selectors
	return MangaSearchResult{
		URL:    firstAttr(node, sel.ResultLink, "href"),
		Title:  firstAttr(node, sel.ResultLink, "title"),
		Poster: firstAttr(node, sel.ResultPoster, "src"),
		Genres: allText(node, sel.ResultGenres),
		Status: firstText(node, sel.ResultStatus),
		Rate:   firstText(node, sel.ResultRate),
		LatestChapter: ChapterLatest{
			URL:   firstAttr(node, sel.ResultLatest, "href"),
			Title: firstText(node, sel.ResultLatest),
		},
	}
}
