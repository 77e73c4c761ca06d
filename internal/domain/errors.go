package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserExists          = errors.New("user already exists")
	ErrRefreshFailed       = errors.New("session refresh failed")
	ErrRefreshInvalid      = errors.New("refresh token invalid or already used")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrCheckoutInFlight    = errors.New("checkout already in progress")
	ErrVoucherCodeRequired = errors.New("voucher code is required")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrPaymentInProgress   = errors.New("payment already in progress")
	ErrAmountMismatch      = errors.New("amount does not match order total")
	ErrOrderNotPayable     = errors.New("order is not awaiting payment")
	ErrPaymentNotFound     = errors.New("payment request not found")
)

// RemoteError is a non-2xx answer from the backend. Message is the server's
// own wording and is shown to the user as is.
type RemoteError struct {
	Status  int
	Message string
	Reason  string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error: status %d", e.Status)
	}
	return e.Message
}

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

type VoucherRejection string

const (
	VoucherNotFound        VoucherRejection = "not_found"
	VoucherInactive        VoucherRejection = "inactive"
	VoucherExpired         VoucherRejection = "expired"
	VoucherBelowMinSpend   VoucherRejection = "min_spend"
	VoucherUsageExhausted  VoucherRejection = "usage_exhausted"
	VoucherRejectedUnknown VoucherRejection = "rejected"
)

type VoucherRejectedError struct {
	Reason  VoucherRejection
	Message string
}

func (e *VoucherRejectedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "voucher rejected: " + string(e.Reason)
}

// UserMessage picks the text to surface for err: the server's message when
// there is one, fallback otherwise.
func UserMessage(err error, fallback string) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	var rejected *VoucherRejectedError
	if errors.As(err, &rejected) {
		return rejected.Error()
	}
	return fallback
}

// InvalidInputError is a request the caller can correct. Its text is safe to
// return to the client.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}
