package clients

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"resty.dev/v3"
)

// Options configures the shared fetch client.
type Options struct {
	// Retries is the total number of attempts, including the first one.
	Retries int
	// BackoffFactor scales the delay between attempts:
	// delay(k) = BackoffFactor * 2^(k-1) after attempt k.
	BackoffFactor time.Duration
	// RetryStatuses are the HTTP statuses worth another attempt. Anything
	// else fails immediately.
	RetryStatuses []int
	Timeout       time.Duration
	UserAgent     string
}

func DefaultOptions() Options {
	return Options{
		Retries:       3,
		BackoffFactor: 300 * time.Millisecond,
		RetryStatuses: []int{500, 502, 504},
		Timeout:       10 * time.Second,
		UserAgent:     "azoradown/1.0 (+https://github.com/azoradev/azoradown)",
	}
}

// Fetcher is the one HTTP client of the whole process. It is safe for
// concurrent use; the underlying connection pool is reused across every
// extractor and the catalog walker.
type Fetcher struct {
	client *resty.Client
}

func New(opts Options) *Fetcher {
	def := DefaultOptions()
	if opts.Retries < 1 {
		opts.Retries = def.Retries
	}
	if opts.BackoffFactor <= 0 {
		opts.BackoffFactor = def.BackoffFactor
	}
	if len(opts.RetryStatuses) == 0 {
		opts.RetryStatuses = def.RetryStatuses
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}

	client := resty.New().
		SetRetryCount(opts.Retries-1).
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent).
		AddRetryConditions(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return slices.Contains(opts.RetryStatuses, r.StatusCode())
		}).
		SetRetryStrategy(func(r *resty.Response, err error) (time.Duration, error) {
			attempt := 1
			if r != nil && r.Request != nil && r.Request.Attempt > 0 {
				attempt = r.Request.Attempt
			}
			return retryBackoff(opts.BackoffFactor, attempt), nil
		})

	return &Fetcher{client: client}
}

// retryBackoff returns factor * 2^(attempt-1).
func retryBackoff(factor time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return factor << (attempt - 1)
}

var (
	defaultOnce    sync.Once
	defaultFetcher *Fetcher
)

// Default returns the lazily constructed process-wide Fetcher. Callers that
// need different options build their own with New and inject it.
func Default() *Fetcher {
	defaultOnce.Do(func() {
		defaultFetcher = New(DefaultOptions())
	})
	return defaultFetcher
}

// Close releases the underlying connection pool. Call it once at shutdown.
func (f *Fetcher) Close() {
	f.client.Close()
}

func (f *Fetcher) do(ctx context.Context, rawURL string, params map[string]string) (*resty.Response, error) {
	req := f.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		attempts := 1
		if resp != nil && resp.Request != nil && resp.Request.Attempt > 0 {
			attempts = resp.Request.Attempt
		}
		return nil, &NetworkError{URL: rawURL, Attempts: attempts, Err: err}
	}
	if resp.IsError() {
		resp.Body.Close()
		return nil, &NetworkError{URL: rawURL, Attempts: resp.Request.Attempt, StatusCode: resp.StatusCode()}
	}
	return resp, nil
}

// FetchBytes returns the raw response body for rawURL.
func (f *Fetcher) FetchBytes(ctx context.Context, rawURL string, params map[string]string) ([]byte, error) {
	resp, err := f.do(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Attempts: resp.Request.Attempt, Err: err}
	}
	return data, nil
}

// FetchDocument returns the response body parsed as a goquery document, with
// the charset taken from the Content-Type header.
func (f *Fetcher) FetchDocument(ctx context.Context, rawURL string, params map[string]string) (*goquery.Document, error) {
	resp, err := f.do(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	reader, err := charset.NewReader(resp.Body, resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("parsing document from %s: %w", rawURL, err)
	}
	return doc, nil
}
