package wgapi

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultLocale is the response language used until SetLocale is called.
	DefaultLocale = "en"
	// DefaultUserAgent identifies the library to the API.
	DefaultUserAgent = "wot-go/1.0"

	// apiURLFormat is filled with domain, category and action.
	apiURLFormat    = "api.worldoftanks.%s/wot/%s/%s/"
	formContentType = "application/x-www-form-urlencoded"
	maxRedirects    = 10

	paramApplicationID = "application_id"
	paramLanguage      = "language"
)

// Client is a World of Tanks public API client. It returns response bodies
// verbatim and never inspects their content.
//
// A Client is not safe for concurrent use when it is reconfigured: calling
// SetLocale or SetMethod while a request is in flight on the same Client is a
// data race. Share a Client across goroutines only if it is not mutated after
// construction; otherwise use one Client per goroutine.
type Client struct {
	apiKey string
	region Region
	locale string
	method string
	secure bool

	rc     *resty.Client
	logger zerolog.Logger
}

// New creates a client for apiKey against region (na, ru, eu, sea/asia,
// case-insensitive). Any failure is reported as ErrInvalidConfiguration and no
// client is returned.
func New(apiKey, region string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidConfiguration)
	}

	r, err := ParseRegion(region)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
	}

	rc, err := newRestyClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiKey: apiKey,
		region: r,
		locale: cfg.locale,
		method: cfg.method,
		secure: cfg.secure,
		rc:     rc,
		logger: cfg.logger,
	}, nil
}

func newRestyClient(cfg config) (*resty.Client, error) {
	// Copy the caller's client so the redirect policy and TLS settings below
	// do not leak back into it.
	var hc http.Client
	if cfg.httpClient != nil {
		hc = *cfg.httpClient
	}

	rc := resty.NewWithClient(&hc).
		SetLogger(restyLogger{cfg.logger}).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects)).
		SetHeader("User-Agent", cfg.userAgent)

	if cfg.timeout > 0 {
		rc.SetTimeout(cfg.timeout)
	}

	if cfg.insecureSkipVerify {
		tr, err := rc.Transport()
		if err != nil {
			return nil, fmt.Errorf("%w: insecure TLS requires an *http.Transport: %v", ErrInvalidConfiguration, err)
		}
		tr = tr.Clone()
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = &tls.Config{}
		}
		tr.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // explicit opt-in
		rc.SetTransport(tr)
	}

	return rc, nil
}

// SetLocale sets the response language sent with every request.
func (c *Client) SetLocale(locale string) error {
	if err := validateLocale(locale); err != nil {
		return err
	}
	c.locale = locale
	return nil
}

// SetMethod sets the HTTP method used for requests. Only "GET" and "POST" are
// accepted, case-sensitively.
func (c *Client) SetMethod(method string) error {
	if err := validateMethod(method); err != nil {
		return err
	}
	c.method = method
	return nil
}

// Region returns the region selected at construction.
func (c *Client) Region() Region { return c.region }

// Domain returns the top-level domain of the API host.
func (c *Client) Domain() string { return c.region.Domain() }

// Locale returns the configured response language.
func (c *Client) Locale() string { return c.locale }

// Method returns the configured HTTP method.
func (c *Client) Method() string { return c.method }

// Secure reports whether requests use https://.
func (c *Client) Secure() bool { return c.secure }

func validateLocale(locale string) error {
	if locale == "" {
		return fmt.Errorf("%w: locale may not be empty", ErrInvalidArgument)
	}
	return nil
}

func validateMethod(method string) error {
	if method != http.MethodGet && method != http.MethodPost {
		return fmt.Errorf("%w: invalid method %q; must be GET or POST", ErrInvalidArgument, method)
	}
	return nil
}

// endpoint builds the URL of category/action, without query string.
func (c *Client) endpoint(category, action string) string {
	scheme := "http://"
	if c.secure {
		scheme = "https://"
	}
	return scheme + fmt.Sprintf(apiURLFormat, c.region.Domain(), category, action)
}

// do executes category/action with the parameters in p and returns the raw
// response body. The application ID and language are always set here,
// overriding any value already in p. A single attempt is made.
func (c *Client) do(ctx context.Context, category, action string, p *Params) ([]byte, error) {
	if p == nil {
		p = NewParams()
	}
	p.Set(paramApplicationID, c.apiKey)
	p.Set(paramLanguage, c.locale)

	method := c.method
	query := p.Encode()
	target := c.endpoint(category, action)

	req := c.rc.R().SetContext(ctx)
	if method == http.MethodPost {
		req.SetHeader("Content-Type", formContentType).SetBody(query)
	} else {
		target += "?" + query
	}

	logURL := c.redact(target)
	c.logger.Debug().
		Str("method", method).
		Str("action", category+"/"+action).
		Str("url", logURL).
		Msg("wgapi request")

	resp, err := req.Execute(method, target)
	if err != nil {
		return nil, &TransportError{Method: method, URL: logURL, Err: err}
	}

	body := resp.Body()
	if body == nil {
		body = []byte{}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode()).
		Int("bytes", len(body)).
		Msg("wgapi response")

	return body, nil
}

// redact masks the application ID in s.
func (c *Client) redact(s string) string {
	return strings.ReplaceAll(s, paramApplicationID+"="+url.QueryEscape(c.apiKey), paramApplicationID+"=REDACTED")
}
