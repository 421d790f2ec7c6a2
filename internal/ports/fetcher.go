package ports

import "context"

// Fetcher performs a single GET and returns the whole body as text.
// Failures are reported as *domain.FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
