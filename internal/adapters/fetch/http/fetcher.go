package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/bnema/fetchpad/internal/domain"
	"github.com/bnema/fetchpad/internal/ports"
	"github.com/rs/zerolog"
)

type Fetcher struct {
	client *http.Client
	log    zerolog.Logger
}

var _ ports.Fetcher = (*Fetcher)(nil)

// NewFetcher wraps client; a nil client gets a fresh one without a timeout,
// so a stuck request blocks until the transport gives up.
func NewFetcher(client *http.Client, log zerolog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}

	return &Fetcher{
		client: client,
		log:    log.With().Str("component", "fetch").Logger(),
	}
}

// Fetch issues one GET against url exactly as typed and returns the body
// as text. Any HTTP status is a success as long as the body is readable.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: err}
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: fmt.Errorf("read response body: %w", err)}
	}

	f.log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", elapsed).
		Msg("GET completed")

	if !utf8.Valid(body) {
		return "", &domain.FetchError{URL: url, Err: domain.ErrInvalidUTF8}
	}

	return string(body), nil
}
