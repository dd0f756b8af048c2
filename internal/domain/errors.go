package domain

import (
	"errors"
	"fmt"
)

// Business-rule rejections. These never corrupt cart state and map to
// user-facing notices.
var (
	ErrUnknownBook        = errors.New("book is not in the catalog")
	ErrBookUnavailable    = errors.New("book is no longer available")
	ErrAlreadyInCart      = errors.New("book is already in the cart")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrIndexOutOfRange    = errors.New("cart index out of range")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSubmitInFlight     = errors.New("order submission already in progress")
	ErrPromoCodeEmpty     = errors.New("promo code is empty")
	ErrInvalidPromo       = errors.New("invalid or expired promo code")
	ErrAreaNotDeliverable = errors.New("delivery area is not served")
)

// BackendError — the backend answered but reported a failure
// (success=false or an error field). Distinguished from transport and
// parse errors so callers can surface the backend's text verbatim.
type BackendError struct {
	Op      string // gateway operation, e.g. "getBooks"
	Message string // backend-provided error text
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %s", e.Op, e.Message)
}

// AsBackendError — convenience unwrap used by the transport layer.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
