package scrape

import (
	"context"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/azoradev/azoradown/internal"
	"github.com/azoradev/azoradown/internal/clients"
)

// Details extracts the metadata and chapter list of one manga page. The page
// document is fetched on first access and cached for the lifetime of the
// value, so repeated accessors share a single request.
type Details struct {
	fetch *clients.Fetcher
	site  Site
	url   string

	once sync.Once
	doc  *goquery.Document
	err  error
}

func NewDetails(fetch *clients.Fetcher, site Site, url string) *Details {
	return &Details{fetch: fetch, site: site, url: url}
}

func (d *Details) document(ctx context.Context) (*goquery.Document, error) {
	d.once.Do(func() {
		d.doc, d.err = d.fetch.FetchDocument(ctx, d.url, nil)
	})
	return d.doc, d.err
}

func (d *Details) Title(ctx context.Context) (string, error) {
	doc, err := d.document(ctx)
	if err != nil {
		return "", err
	}
	return firstText(doc.Selection, d.site.Selectors.DetailTitle), nil
}

func (d *Details) Poster(ctx context.Context) (string, error) {
	doc, err := d.document(ctx)
	if err != nil {
		return "", err
	}
	return firstAttr(doc.Selection, d.site.Selectors.DetailPoster, "src"), nil
}

func (d *Details) Description(ctx context.Context) (string, error) {
	doc, err := d.document(ctx)
	if err != nil {
		return "", err
	}
	return firstText(doc.Selection, d.site.Selectors.DetailSummary), nil
}

func (d *Details) Genres(ctx context.Context) ([]string, error) {
	doc, err := d.document(ctx)
	if err != nil {
		return nil, err
	}
	return allText(doc.Selection, d.site.Selectors.DetailGenres), nil
}

func (d *Details) Status(ctx context.Context) (string, error) {
	doc, err := d.document(ctx)
	if err != nil {
		return "", err
	}
	return firstText(doc.Selection, d.site.Selectors.DetailStatus), nil
}

func (d *Details) Rate(ctx context.Context) (string, error) {
	doc, err := d.document(ctx)
	if err != nil {
		return "", err
	}
	return firstText(doc.Selection, d.site.Selectors.DetailRate), nil
}

// Chapters returns the chapter list in ascending reading order. The site lists
// chapters newest-first, so rows are reversed and numbered from 1. A row
// without a link is skipped, not fatal.
func (d *Details) Chapters(ctx context.Context) ([]ChapterDetailed, error) {
	doc, err := d.document(ctx)
	if err != nil {
		return nil, err
	}

	var rows []ChapterDetailed
	doc.Find(d.site.Selectors.ChapterRow).Each(func(i int, row *goquery.Selection) {
		link := row.Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			internal.Warn("chapter row %d of %s has no link, skipping", i, d.url)
			return
		}
		rows = append(rows, ChapterDetailed{
			URL:   href,
			Title: firstText(row, "a"),
		})
	})

	chapters := make([]ChapterDetailed, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		ch := rows[i]
		ch.OrderNo = len(chapters) + 1
		chapters = append(chapters, ch)
	}
	return chapters, nil
}

// Manga aggregates every accessor into one MangaDetails record. A failed page
// fetch surfaces the fetch error; no partial record is returned.
func (d *Details) Manga(ctx context.Context) (*MangaDetails, error) {
	if _, err := d.document(ctx); err != nil {
		return nil, err
	}

	title, _ := d.Title(ctx)
	poster, _ := d.Poster(ctx)
	description, _ := d.Description(ctx)
	genres, _ := d.Genres(ctx)
	status, _ := d.Status(ctx)
	rate, _ := d.Rate(ctx)
	chapters, _ := d.Chapters(ctx)

	return &MangaDetails{
		URL:         d.url,
		Title:       title,
		Poster:      poster,
		Description: description,
		Genres:      genres,
		Status:      status,
		Rate:        rate,
		Chapters:    chapters,
	}, nil
}
