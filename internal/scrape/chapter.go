package scrape

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/azoradev/azoradown/internal"
	"github.com/azoradev/azoradown/internal/clients"
	"github.com/azoradev/azoradown/internal/exports"
)

const defaultImageWorkers = 6

// Chapter extracts the ordered image list of one chapter page and assembles
// the downloaded images into a single PDF. The image list is computed once and
// reused.
type Chapter struct {
	fetch *clients.Fetcher
	site  Site
	url   string

	// Workers bounds the concurrent image downloads during assembly.
	Workers int

	once   sync.Once
	images []ChapterImage
	err    error
}

func NewChapter(fetch *clients.Fetcher, site Site, url string) *Chapter {
	return &Chapter{fetch: fetch, site: site, url: url, Workers: defaultImageWorkers}
}

// Images returns the chapter pages in display order, OrderNo 1..n.
func (c *Chapter) Images(ctx context.Context) ([]ChapterImage, error) {
	c.once.Do(func() {
		doc, err := c.fetch.FetchDocument(ctx, c.url, nil)
		if err != nil {
			c.err = err
			return
		}
		c.images = nil
		for _, src := range allAttr(doc.Selection, c.site.Selectors.ChapterImage, "src") {
			c.images = append(c.images, ChapterImage{OrderNo: len(c.images) + 1, URL: src})
		}
		internal.Debug("chapter %s: %d images", c.url, len(c.images))
	})
	return c.images, c.err
}

// DownloadAsPDF downloads every chapter image into a scoped temporary
// directory and assembles them, in order, into one PDF at outputPath. The
// temporary directory is removed on every exit path. Any image failure aborts
// the whole operation with a DownloadError; no partial output is written.
func (c *Chapter) DownloadAsPDF(ctx context.Context, outputPath string) error {
	images, err := c.Images(ctx)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return fmt.Errorf("chapter %s lists no images, refusing to write an empty document", c.url)
	}

	tmpDir, err := os.MkdirTemp("", "azoradown-chapter-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	workers := c.Workers
	if workers < 1 {
		workers = defaultImageWorkers
	}

	paths := make([]string, len(images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			data, err := c.fetch.FetchBytes(gctx, img.URL, nil)
			if err != nil {
				return &clients.DownloadError{URL: img.URL, Err: err}
			}
			p := filepath.Join(tmpDir, fmt.Sprintf("page_%04d%s", img.OrderNo, imageExt(img.URL)))
			if err := os.WriteFile(p, data, 0o644); err != nil {
				return &clients.DownloadError{URL: img.URL, Err: err}
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := exports.Assemble(paths, outputPath); err != nil {
		return fmt.Errorf("assembling chapter %s: %w", c.url, err)
	}
	internal.Info("chapter %s assembled into %s (%d pages)", c.url, outputPath, len(paths))
	return nil
}

func imageExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".img"
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return ".img"
}
