package scrape

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"

	"github.com/azoradev/azoradown/internal/clients"
	"github.com/stretchr/testify/require"
)

func testFetcher() *clients.Fetcher {
	opts := clients.DefaultOptions()
	opts.Retries = 2
	opts.BackoffFactor = time.Millisecond
	return clients.New(opts)
}

func testSite(baseURL string) Site {
	site := DefaultSite()
	site.BaseURL = baseURL
	return site
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}
