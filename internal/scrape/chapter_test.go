package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/azoradev/azoradown/internal/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chapterServer serves a chapter page listing imageCount pages plus the page
// images themselves. failOn (1-based, 0 = never) makes one image return 500.
func chapterServer(t *testing.T, imageCount, failOn int) *httptest.Server {
	t.Helper()
	jpg := jpegBytes(t)

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/chapter-1/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><div class=\"reading-content\">")
		for i := 1; i <= imageCount; i++ {
			// whitespace around src matches the live markup
			fmt.Fprintf(w, "<img class=\"wp-manga-chapter-img\" src=\" %s/img/%d.jpg \"/>", srv.URL, i)
		}
		fmt.Fprint(w, "</div></body></html>")
	})
	mux.HandleFunc("/img/", func(w http.ResponseWriter, r *http.Request) {
		if failOn > 0 && r.URL.Path == fmt.Sprintf("/img/%d.jpg", failOn) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(jpg)
	})
	return srv
}

func TestChapterImagesAreOrderedAndTrimmed(t *testing.T) {
	srv := chapterServer(t, 3, 0)

	f := testFetcher()
	defer f.Close()
	ch := NewChapter(f, testSite(srv.URL), srv.URL+"/chapter-1/")

	images, err := ch.Images(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 3)
	for i, img := range images {
		assert.Equal(t, i+1, img.OrderNo)
		assert.Equal(t, fmt.Sprintf("%s/img/%d.jpg", srv.URL, i+1), img.URL)
	}
}

func TestChapterImagesAreComputedOnce(t *testing.T) {
	srv := chapterServer(t, 2, 0)

	f := testFetcher()
	defer f.Close()
	ch := NewChapter(f, testSite(srv.URL), srv.URL+"/chapter-1/")

	first, err := ch.Images(context.Background())
	require.NoError(t, err)
	second, err := ch.Images(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDownloadAsPDFWritesDocument(t *testing.T) {
	srv := chapterServer(t, 3, 0)

	f := testFetcher()
	defer f.Close()
	ch := NewChapter(f, testSite(srv.URL), srv.URL+"/chapter-1/")

	out := filepath.Join(t.TempDir(), "chapter-1.pdf")
	require.NoError(t, ch.DownloadAsPDF(context.Background(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestDownloadAsPDFCleansUpOnFailure(t *testing.T) {
	srv := chapterServer(t, 5, 3)

	tmpRoot := t.TempDir()
	t.Setenv("TMPDIR", tmpRoot)

	f := testFetcher()
	defer f.Close()
	ch := NewChapter(f, testSite(srv.URL), srv.URL+"/chapter-1/")

	out := filepath.Join(t.TempDir(), "chapter-1.pdf")
	err := ch.DownloadAsPDF(context.Background(), out)

	var de *clients.DownloadError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, srv.URL+"/img/3.jpg", de.URL)

	// no partial output, no leftover temp files
	assert.NoFileExists(t, out)
	entries, readErr := os.ReadDir(tmpRoot)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestDownloadAsPDFRejectsEmptyChapter(t *testing.T) {
	srv := chapterServer(t, 0, 0)

	f := testFetcher()
	defer f.Close()
	ch := NewChapter(f, testSite(srv.URL), srv.URL+"/chapter-1/")

	out := filepath.Join(t.TempDir(), "chapter-1.pdf")
	err := ch.DownloadAsPDF(context.Background(), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no images")
	assert.NoFileExists(t, out)
}
