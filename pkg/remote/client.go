// Thin JSON-over-HTTP client used for every third-party call Callboard makes.
// No retries and no backoff: an attempt either succeeds or fails and the caller decides what comes next.

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Upper bound of a response body read from a third party.
const maxBodyBytes = 1 << 20

// StatusError is returned when an endpoint answers outside of 2xx.
type StatusError struct {
	URL    string
	Status int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.URL, e.Status)
}

// Client wraps a single http.Client. Its timeout is the transport default,
// a request hitting it is simply a failed attempt.
type Client struct {
	http *http.Client
}

// NewClient returns a Client whose requests give up after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// GetJSON GETs url and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	req, reqerr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqerr != nil {
		return reqerr
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, headers, out)
}

// PostJSON POSTs body as JSON to url and returns the decoded response document.
// An empty 2xx body yields an empty Document.
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, body interface{}) (Document, error) {
	payload, mrserr := json.Marshal(body)
	if mrserr != nil {
		return nil, mrserr
	}
	req, reqerr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if reqerr != nil {
		return nil, reqerr
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	doc := Document{}
	if doerr := c.do(req, headers, &doc); doerr != nil {
		return nil, doerr
	}
	return doc, nil
}

func (c *Client) do(req *http.Request, headers map[string]string, out interface{}) error {
	for key, val := range headers {
		req.Header.Set(key, val)
	}
	resp, doerr := c.http.Do(req)
	if doerr != nil {
		return doerr
	}
	defer resp.Body.Close()

	raw, readerr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if readerr != nil {
		return readerr
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return StatusError{URL: req.URL.String(), Status: resp.StatusCode}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if unmrserr := json.Unmarshal(raw, out); unmrserr != nil {
		return fmt.Errorf("malformed response from %s: %w", req.URL.String(), unmrserr)
	}
	return nil
}
