// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calligraphy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxStylesheetBytes caps how much of a stylesheet response is read.
const maxStylesheetBytes = 1 << 20

// HTTPDoer describes the HTTP client used by HTTPFetcher.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPFetcher fetches stylesheets over HTTP.
type HTTPFetcher struct {
	client HTTPDoer
}

var _ StylesheetFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher returns a fetcher whose requests time out after timeout.
// A zero timeout means no limit.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// NewHTTPFetcherWithClient returns a fetcher that sends requests through client.
func NewHTTPFetcherWithClient(client HTTPDoer) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client}
}

// FetchStylesheet downloads the CSS document at url.
func (f *HTTPFetcher) FetchStylesheet(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build stylesheet request: %w", err)
	}
	req.Header.Set("Accept", "text/css,*/*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch stylesheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d", ErrStylesheetStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxStylesheetBytes))
	if err != nil {
		return "", fmt.Errorf("read stylesheet: %w", err)
	}
	return string(body), nil
}
