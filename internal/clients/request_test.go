package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher() *Fetcher {
	opts := DefaultOptions()
	opts.BackoffFactor = time.Millisecond
	return New(opts)
}

func TestFetchBytesRetriesOnServerError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := newTestFetcher()
	defer f.Close()

	data, err := f.FetchBytes(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetchBytesDoesNotRetryClientError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := newTestFetcher()
	defer f.Close()

	_, err := f.FetchBytes(context.Background(), srv.URL, nil)
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, srv.URL, ne.URL)
	assert.Equal(t, 1, ne.Attempts)
	assert.Equal(t, http.StatusNotFound, ne.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchBytesExhaustsRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := newTestFetcher()
	defer f.Close()

	_, err := f.FetchBytes(context.Background(), srv.URL, nil)
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, srv.URL, ne.URL)
	assert.Equal(t, 3, ne.Attempts)
	assert.Equal(t, http.StatusBadGateway, ne.StatusCode)
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetchBytesQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "one piece", r.URL.Query().Get("s"))
		assert.Equal(t, "wp-manga", r.URL.Query().Get("post_type"))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := newTestFetcher()
	defer f.Close()

	_, err := f.FetchBytes(context.Background(), srv.URL, map[string]string{
		"s":         "one piece",
		"post_type": "wp-manga",
	})
	require.NoError(t, err)
}

func TestFetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><h1>Solo Leveling</h1></body></html>`))
	}))
	defer srv.Close()

	f := newTestFetcher()
	defer f.Close()

	doc, err := f.FetchDocument(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Solo Leveling", doc.Find("h1").Text())
}

func TestFetchDocumentConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	f := newTestFetcher()
	defer f.Close()

	_, err := f.FetchDocument(context.Background(), srv.URL, nil)
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.NotNil(t, errors.Unwrap(ne))
}

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, retryBackoff(300*time.Millisecond, 1))
	assert.Equal(t, 600*time.Millisecond, retryBackoff(300*time.Millisecond, 2))
	assert.Equal(t, 1200*time.Millisecond, retryBackoff(300*time.Millisecond, 3))
	// attempt numbers below 1 are clamped
	assert.Equal(t, 300*time.Millisecond, retryBackoff(300*time.Millisecond, 0))
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
