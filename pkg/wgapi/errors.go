package wgapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Common errors
var (
	// ErrInvalidConfiguration indicates the client could not be constructed:
	// missing API key, unknown region or a rejected option.
	ErrInvalidConfiguration = errors.New("invalid wgapi configuration")
	// ErrInvalidArgument indicates a setter or an operation received a missing
	// or out-of-range value. The client state is left unchanged.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TransportError reports that an HTTP exchange could not be completed.
// The URL never contains the application ID.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	cause := e.Err
	// *url.Error repeats the unredacted URL.
	var ue *url.Error
	if errors.As(cause, &ue) {
		cause = ue.Err
	}
	return fmt.Sprintf("wgapi transport error: %s %s: %v", e.Method, e.URL, cause)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the exchange failed because a deadline was exceeded.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}
