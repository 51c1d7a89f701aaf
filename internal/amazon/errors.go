package amazon

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned by Do before any signing or
// network work when the access key or secret key is blank.
var ErrMissingCredentials = errors.New("access key and secret key must be configured")

// StatusError reports an HTTP status of 400 or above from the vendor.
// The raw body is carried for diagnostics but is deliberately not
// decoded; callers that want the vendor's error payload can parse
// Body themselves.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("product API returned status %d", e.Code)
}
