package wgapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*config) error

// config holds construction-time settings. It is discarded once New returns.
type config struct {
	httpClient         *http.Client
	secure             bool
	insecureSkipVerify bool
	timeout            time.Duration
	userAgent          string
	locale             string
	method             string
	logger             zerolog.Logger
}

func defaultConfig() config {
	return config{
		userAgent: DefaultUserAgent,
		locale:    DefaultLocale,
		method:    http.MethodGet,
		logger:    zerolog.Nop(),
	}
}

// WithHTTPClient sets the underlying HTTP client. Tests use it to plug in an
// in-memory transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) error {
		if httpClient == nil {
			return errors.New("httpClient should be non-nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithHTTPS switches requests to the https:// scheme.
func WithHTTPS() Option {
	return func(c *config) error {
		c.secure = true
		return nil
	}
}

// WithInsecureSkipVerify disables peer certificate verification for HTTPS.
// Use with caution and only for development/testing.
func WithInsecureSkipVerify() Option {
	return func(c *config) error {
		c.insecureSkipVerify = true
		return nil
	}
}

// WithTimeout bounds every request, in addition to any context deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout <= 0 {
			return errors.New("timeout must be positive")
		}
		c.timeout = timeout
		return nil
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *config) error {
		if userAgent == "" {
			return errors.New("user agent may not be empty")
		}
		c.userAgent = userAgent
		return nil
	}
}

// WithLocale sets the initial response language.
func WithLocale(locale string) Option {
	return func(c *config) error {
		if err := validateLocale(locale); err != nil {
			return err
		}
		c.locale = locale
		return nil
	}
}

// WithMethod sets the initial HTTP method, GET or POST.
func WithMethod(method string) Option {
	return func(c *config) error {
		if err := validateMethod(method); err != nil {
			return err
		}
		c.method = method
		return nil
	}
}

// WithLogger enables debug tracing of requests on logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
