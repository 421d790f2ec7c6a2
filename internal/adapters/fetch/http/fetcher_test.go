package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/fetchpad/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcherReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/hello", r.URL.Path)
		assert.Equal(t, "x=1", r.URL.RawQuery)
		_, _ = fmt.Fprint(w, `{"greeting":"héllo"}`)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), zerolog.Nop())

	body, err := fetcher.Fetch(context.Background(), server.URL+"/hello?x=1")
	require.NoError(t, err)
	assert.Equal(t, `{"greeting":"héllo"}`, body)
}

func TestFetcherTreatsErrorStatusAsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, "not here")
	}))
	defer server.Close()

	body, err := NewFetcher(nil, zerolog.Nop()).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "not here", body)
}

func TestFetcherRejectsInvalidUTF8(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer server.Close()

	_, err := NewFetcher(server.Client(), zerolog.Nop()).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidUTF8)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestFetcherReportsMalformedAndUnreachableURLs(t *testing.T) {
	closed := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "missing scheme", url: "example.com/path"},
		{name: "bad escape", url: "http://%zz"},
		{name: "connection refused", url: closedURL},
	}

	fetcher := NewFetcher(nil, zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fetcher.Fetch(context.Background(), tt.url)
			require.Error(t, err)

			var fetchErr *domain.FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, tt.url, fetchErr.URL)
		})
	}
}

func TestFetcherHonoursCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, "late")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher(server.Client(), zerolog.Nop()).Fetch(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
