package jsonschema

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

// ErrNetworkFetch is returned when a remote schema request fails at the
// transport level (refused connection, timeout, TLS error, ...).
var ErrNetworkFetch = errors.New("network fetch failed")

// ErrRemoteStatus is returned when a remote schema request completes but the
// server responds with a non-200 status.
var ErrRemoteStatus = errors.New("remote schema fetch returned non-200 status")

// httpFetcher is the Fetcher a Compiler uses when none is explicitly
// configured: a plain GET over http/https with a bounded timeout, so that a
// schema with an absolute http(s) $ref resolves out of the box the way the
// teacher's setupLoaders does for its "http"/"https" loader schemes.
type httpFetcher struct {
	client *http.Client
}

func newHTTPFetcher() *httpFetcher {
	return &httpFetcher{client: &http.Client{Timeout: 10 * time.Second}}
}

func (f *httpFetcher) Fetch(uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ErrNetworkFetch
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrRemoteStatus
	}
	return io.ReadAll(resp.Body)
}
