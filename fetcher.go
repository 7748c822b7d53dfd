package pagemeta

import "context"

// Fetcher retrieves raw HTML from URLs.
// Retry policy, rendering and session handling are implementation concerns;
// the extraction engine only ever sees the returned HTML.
type Fetcher interface {
	// Fetch performs the request and returns the response body.
	// Non-success HTTP statuses are reported as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
