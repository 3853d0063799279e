package voucher

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "voucher")

var (
	// ErrValidation marks input rejected before any request is sent.
	ErrValidation = errors.New("validation error")
)

// HTTPError is returned for any non-2xx response, after the body was interpreted.
type HTTPError struct {
	Status     int
	StatusText string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	kind := "Client"
	if e.Status >= 500 {
		kind = "Server"
	}
	reason := e.StatusText
	if reason == "" {
		reason = "Unknown"
	}
	return fmt.Sprintf("%d %s Error: %s for url: %s", e.Status, kind, reason, e.URL)
}

// NetworkError wraps transport failures. Body holds whatever was read before the failure.
type NetworkError struct {
	Err         error
	HasResponse bool
	Body        string
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func responseText(err error) (string, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Body, true
	}
	var ne *NetworkError
	if errors.As(err, &ne) && ne.HasResponse {
		return ne.Body, true
	}
	return "", false
}
