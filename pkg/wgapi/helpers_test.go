package wgapi

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// capture records every request seen by the fake transport.
type capture struct {
	requests []*http.Request
	bodies   []string
}

func (c *capture) last(t *testing.T) (*http.Request, string) {
	t.Helper()
	require.NotEmpty(t, c.requests, "no request reached the transport")
	i := len(c.requests) - 1
	return c.requests[i], c.bodies[i]
}

// query returns the parameters of the last request, from the URL for GET and
// from the form body for POST.
func (c *capture) query(t *testing.T) url.Values {
	t.Helper()
	req, body := c.last(t)
	raw := req.URL.RawQuery
	if req.Method == http.MethodPost {
		raw = body
	}
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}

func response(r *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

// newTestClient returns a client whose transport answers every request with
// status and body, without touching the network.
func newTestClient(t *testing.T, apiKey, region string, status int, body string, opts ...Option) (*Client, *capture) {
	t.Helper()

	rec := &capture{}
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		var b []byte
		if r.Body != nil {
			var err error
			b, err = io.ReadAll(r.Body)
			if err != nil {
				return nil, err
			}
		}
		rec.requests = append(rec.requests, r)
		rec.bodies = append(rec.bodies, string(b))
		return response(r, status, body), nil
	})}

	c, err := New(apiKey, region, append([]Option{WithHTTPClient(hc)}, opts...)...)
	require.NoError(t, err)
	return c, rec
}
