package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultSourceURL is the public feed the catalog was built around.
const DefaultSourceURL = "https://gist.githubusercontent.com/fpbrault/1a314f454d1d31d53b0742cfbeb2ee5c/raw/"

// maxPayload bounds how much of a response body is read.
const maxPayload = 32 << 20

// ErrHTTPStatus is returned when the feed answers with a non-2xx status.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// Source retrieves the raw game list. One call yields either the full list or an error.
type Source interface {
	Fetch(ctx context.Context) ([]GameRecord, error)
}

// HTTPSource fetches the catalog with a GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource returns a source for url using a client with the given timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if url == "" {
		url = DefaultSourceURL
	}
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]GameRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog: %w: %s", ErrHTTPStatus, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	return Decode(body)
}

// FileSource reads the catalog JSON from disk.
type FileSource struct {
	Path string
}

// Fetch implements Source.
func (s FileSource) Fetch(ctx context.Context) ([]GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Decode(data)
}

// StaticSource serves a fixed list. Useful for embedding and tests.
type StaticSource []GameRecord

// Fetch implements Source.
func (s StaticSource) Fetch(ctx context.Context) ([]GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]GameRecord, len(s))
	copy(out, s)
	return out, nil
}
