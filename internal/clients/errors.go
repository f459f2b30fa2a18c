package clients

import "fmt"

// NetworkError reports a request that could not be completed, either because
// every retry attempt was consumed or because the response status is not
// retryable.
type NetworkError struct {
	URL        string
	Attempts   int
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
	}
	return fmt.Sprintf("fetch %s failed after %d attempt(s): status %d", e.URL, e.Attempts, e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DownloadError reports the image that broke a chapter download. The chapter
// operation aborts as a whole; no partial document is written.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
