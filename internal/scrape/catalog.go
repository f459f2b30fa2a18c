package scrape

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/azoradev/azoradown/internal"
	"github.com/azoradev/azoradown/internal/clients"
)

const defaultCatalogWorkers = 5

// Catalog enumerates the site-wide series index.
type Catalog struct {
	fetch *clients.Fetcher
	site  Site

	// Workers bounds the concurrent page fetches during Start. The bound is
	// a politeness limit on the target site, keep it small.
	Workers int
}

func NewCatalog(fetch *clients.Fetcher, site Site) *Catalog {
	return &Catalog{fetch: fetch, site: site, Workers: defaultCatalogWorkers}
}

func (c *Catalog) pageURL(page int) string {
	return fmt.Sprintf("%s/%s/page/%d/", c.site.BaseURL, c.site.SeriesPath, page)
}

// TotalPages reads the series count from the first index page and returns the
// number of index pages.
func (c *Catalog) TotalPages(ctx context.Context) (int, error) {
	doc, err := c.fetch.FetchDocument(ctx, c.pageURL(1), nil)
	if err != nil {
		return 0, err
	}
	total := leadingInt(firstText(doc.Selection, c.site.Selectors.CatalogCount))
	return pageCount(total, c.site.ResultsPerPage), nil
}

// Links returns the series URLs listed on one index page, in markup order,
// without page-local duplicates.
func (c *Catalog) Links(ctx context.Context, page int) ([]string, error) {
	doc, err := c.fetch.FetchDocument(ctx, c.pageURL(page), nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var links []string
	doc.Find(c.site.Selectors.CatalogLink).Each(func(_ int, node *goquery.Selection) {
		href, ok := node.Attr("href")
		if !ok {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		links = append(links, href)
	})
	return links, nil
}

// Start fetches index pages 1..pagesToFetch with a bounded worker pool and
// returns the deduplicated set of series URLs. A page that fails after the
// client's retries is logged and contributes nothing; the walk itself never
// fails, it returns whatever subset succeeded. During the parallel phase each
// worker writes only its own slot; the set is merged after the join barrier.
func (c *Catalog) Start(ctx context.Context, pagesToFetch int) map[string]struct{} {
	workers := c.Workers
	if workers < 1 {
		workers = defaultCatalogWorkers
	}

	perPage := make([][]string, pagesToFetch)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for page := 1; page <= pagesToFetch; page++ {
		page := page
		g.Go(func() error {
			links, err := c.Links(gctx, page)
			if err != nil {
				internal.Warn("catalog page %d dropped: %s", page, err)
				return nil
			}
			perPage[page-1] = links
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, this is only the join barrier

	set := make(map[string]struct{})
	for _, links := range perPage {
		for _, link := range links {
			set[link] = struct{}{}
		}
	}
	return set
}
