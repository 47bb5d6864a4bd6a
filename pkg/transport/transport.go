// Package transport implements the shared Connect-style RPC mechanics used
// by every ChefNext service client: one HTTP POST per procedure, JSON
// bodies with snake_case wire fields, optional bearer auth, and lenient
// response decoding.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8080"

// Doer sends a single HTTP request. *http.Client satisfies it; tests and
// the in-process conformance server inject their own implementations.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// Client invokes remote procedures addressed as POST {baseURL}/{procedure}.
// It holds no mutable state and is safe to share across goroutines.
type Client struct {
	baseURL string
	httpDo  Doer
}

// New returns a transport client. An empty baseURL falls back to
// DefaultBaseURL; a nil httpDo falls back to a plain http.Client with a
// 30 second timeout.
func New(baseURL string, httpDo Doer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpDo == nil {
		httpDo = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  httpDo,
	}
}

// Invoke performs one round trip to the given procedure (for example
// "identity.v1.AuthService/Login") and decodes the reply into out.
//
// The request body is omitted when req is nil. The Authorization header is
// set only when accessToken is non-empty. A non-2xx reply is returned as
// *APIError; a 2xx reply with an empty or unparsable body leaves out at
// its zero value and returns nil, since some procedures legitimately carry
// no payload.
func (c *Client) Invoke(ctx context.Context, procedure string, req, out any, accessToken string) error {
	url := c.baseURL + "/" + strings.TrimPrefix(procedure, "/")

	var body io.Reader
	if req != nil {
		data, err := json.Marshal(req)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}
	if out != nil && json.Valid(raw) {
		_ = json.Unmarshal(raw, out)
	}
	return nil
}
