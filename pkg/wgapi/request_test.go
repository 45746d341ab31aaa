package wgapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestGETURL(t *testing.T) {
	c, rec := newTestClient(t, "K", "EU", http.StatusOK, `{"status":"ok"}`)

	body, err := c.ListClans(context.Background(), "Panzer", ClanListOptions{})
	require.NoError(t, err)
	assert.Equal(t, `{"status":"ok"}`, string(body))

	req, reqBody := rec.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "http://api.worldoftanks.eu/wot/clan/list/?search=Panzer&application_id=K&language=en", req.URL.String())
	assert.Empty(t, reqBody)
	assert.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))
}

func TestRequestPOSTForm(t *testing.T) {
	c, rec := newTestClient(t, "K", "na", http.StatusOK, `{}`)
	require.NoError(t, c.SetMethod(http.MethodPost))

	_, err := c.ListClans(context.Background(), "wot", ClanListOptions{Fields: []string{"name", "tag"}})
	require.NoError(t, err)

	req, body := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "http://api.worldoftanks.com/wot/clan/list/", req.URL.String())
	assert.Empty(t, req.URL.RawQuery)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	assert.Equal(t, "search=wot&fields=name%2Ctag&application_id=K&language=en", body)
}

func TestRequestHTTPSAndUserAgent(t *testing.T) {
	c, rec := newTestClient(t, "K", "sea", http.StatusOK, `{}`, WithHTTPS(), WithUserAgent("my-app/2"))

	_, err := c.GetRatingTypes(context.Background(), RatingPeriodAll, nil)
	require.NoError(t, err)

	req, _ := rec.last(t)
	assert.Equal(t, "https", req.URL.Scheme)
	assert.Equal(t, "api.worldoftanks.sea", req.URL.Host)
	assert.Equal(t, "/wot/ratings/types/", req.URL.Path)
	assert.Equal(t, "my-app/2", req.Header.Get("User-Agent"))
}

func TestRequestLocale(t *testing.T) {
	c, rec := newTestClient(t, "K", "eu", http.StatusOK, `{}`)
	require.NoError(t, c.SetLocale("de"))

	_, err := c.GetClanInfo(context.Background(), []int64{1}, ClanInfoOptions{})
	require.NoError(t, err)
	assert.Equal(t, "de", rec.query(t).Get("language"))
}

func TestRequestInjectedParamsCannotBeSpoofed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			c, rec := newTestClient(t, "K", "eu", http.StatusOK, `{}`, WithMethod(method), WithLocale("pl"))

			p := NewParams()
			p.Set("application_id", "spoofed")
			p.Set("language", "xx")
			p.Set("search", "abc")

			_, err := c.do(context.Background(), "clan", "list", p)
			require.NoError(t, err)

			q := rec.query(t)
			assert.Equal(t, []string{"K"}, q["application_id"])
			assert.Equal(t, []string{"pl"}, q["language"])
			assert.Equal(t, []string{"abc"}, q["search"])
		})
	}
}

func TestRequestReturnsBodyVerbatim(t *testing.T) {
	t.Run("error status is not inspected", func(t *testing.T) {
		payload := `{"status":"error","error":{"code":407,"message":"INVALID_APPLICATION_ID"}}`
		c, _ := newTestClient(t, "K", "eu", http.StatusInternalServerError, payload)

		body, err := c.ListClans(context.Background(), "x", ClanListOptions{})
		require.NoError(t, err)
		assert.Equal(t, payload, string(body))
	})

	t.Run("empty body", func(t *testing.T) {
		c, _ := newTestClient(t, "K", "eu", http.StatusOK, "")

		body, err := c.ListClans(context.Background(), "x", ClanListOptions{})
		require.NoError(t, err)
		assert.NotNil(t, body)
		assert.Empty(t, body)
	})
}

func TestRequestTransportError(t *testing.T) {
	boom := errors.New("connection reset by peer")
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, boom
	})}
	c, err := New("secret-key", "eu", WithHTTPClient(hc))
	require.NoError(t, err)

	body, err := c.ListClans(context.Background(), "Panzer", ClanListOptions{})
	assert.Nil(t, body)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, http.MethodGet, te.Method)
	assert.Contains(t, te.URL, "application_id=REDACTED")
	assert.NotContains(t, err.Error(), "secret-key")
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.False(t, te.Timeout())
}

func TestRequestUnreachableHost(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	hc := &http.Client{Transport: &http.Transport{
		DialContext: func(ctx context.Context, network, _ string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(ctx, network, addr)
		},
	}}
	c, err := New("K", "eu", WithHTTPClient(hc))
	require.NoError(t, err)

	body, err := c.GetClanInfo(context.Background(), []int64{12345}, ClanInfoOptions{})
	assert.Nil(t, body)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	var opErr *net.OpError
	assert.ErrorAs(t, err, &opErr)
}

func TestRequestContextDeadline(t *testing.T) {
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()
		return nil, r.Context().Err()
	})}
	c, err := New("K", "eu", WithHTTPClient(hc))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = c.ListClans(ctx, "Panzer", ClanListOptions{})

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, te.Timeout())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequestFollowsRedirects(t *testing.T) {
	calls := 0
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		if r.URL.Path == "/wot/clan/list/" {
			resp := response(r, http.StatusFound, "")
			resp.Header.Set("Location", "http://api.worldoftanks.eu/wot/clan/list/v2/?"+r.URL.RawQuery)
			return resp, nil
		}
		return response(r, http.StatusOK, `{"moved":true}`), nil
	})}
	c, err := New("K", "eu", WithHTTPClient(hc))
	require.NoError(t, err)

	body, err := c.ListClans(context.Background(), "Panzer", ClanListOptions{})
	require.NoError(t, err)
	assert.Equal(t, `{"moved":true}`, string(body))
	assert.Equal(t, 2, calls)
}

func TestRequestTLSVerification(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "api.worldoftanks.eu", r.Host)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	// Route api.worldoftanks.eu to the test server.
	dialTestServer := func() *http.Client {
		return &http.Client{Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, _ string) (net.Conn, error) {
				return (&net.Dialer{}).DialContext(ctx, network, srv.Listener.Addr().String())
			},
		}}
	}

	t.Run("verified by default", func(t *testing.T) {
		c, err := New("K", "eu", WithHTTPClient(dialTestServer()), WithHTTPS())
		require.NoError(t, err)

		_, err = c.ListClans(context.Background(), "Panzer", ClanListOptions{})
		var te *TransportError
		require.ErrorAs(t, err, &te)
	})

	t.Run("insecure opt-in", func(t *testing.T) {
		c, err := New("K", "eu", WithHTTPClient(dialTestServer()), WithHTTPS(), WithInsecureSkipVerify())
		require.NoError(t, err)

		body, err := c.ListClans(context.Background(), "Panzer", ClanListOptions{})
		require.NoError(t, err)
		assert.Equal(t, `{"status":"ok"}`, string(body))
	})
}

func TestRedact(t *testing.T) {
	c, err := New("a b&c", "eu")
	require.NoError(t, err)

	got := c.redact("http://api.worldoftanks.eu/wot/clan/list/?search=x&application_id=a+b%26c&language=en")
	assert.Equal(t, "http://api.worldoftanks.eu/wot/clan/list/?search=x&application_id=REDACTED&language=en", got)
}
