package apiclient

import (
	"errors"
	"strings"

	apperrors "github.com/yanqian/sunsafe/pkg/errors"
)

// Error codes carried by the errors this package returns.
const (
	CodeConfig          = "config_error"
	CodeInvalidArgument = "invalid_argument"
	CodeTransport       = "transport_error"
)

// ErrMissingBaseURL is wrapped by every call made without a configured base URL.
var ErrMissingBaseURL = errors.New("api base url is not configured; set SUNSAFE_API_BASE_URL")

// NormalizeURL joins base and endpoint with exactly one slash between them.
func NormalizeURL(base, endpoint string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "", apperrors.Wrap(CodeConfig, "cannot build request url", ErrMissingBaseURL)
	}
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", apperrors.Wrap(CodeInvalidArgument, "api endpoint is required", nil)
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(endpoint, "/"), nil
}

// IsConfigError reports whether err stems from missing client configuration.
func IsConfigError(err error) bool {
	return apperrors.IsCode(err, CodeConfig)
}

// IsInvalidArgument reports whether err was raised before any network activity
// because of a bad endpoint or missing request key.
func IsInvalidArgument(err error) bool {
	return apperrors.IsCode(err, CodeInvalidArgument)
}

// IsTransportError reports whether err is a network failure or non-2xx response.
func IsTransportError(err error) bool {
	return apperrors.IsCode(err, CodeTransport)
}
