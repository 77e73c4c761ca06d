package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/application"
	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

const maxRequestBodySize = 1 << 20 // 1MB

// ErrorResponse is the body of every non-2xx answer. Reason is a stable
// machine-readable code; Message is shown to the user as is.
type ErrorResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Warn("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, reason, message string) {
	respondJSON(w, status, ErrorResponse{Message: message, Reason: reason})
}

// decodeJSON reads at most maxRequestBodySize bytes into v. An empty body is
// accepted when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
	return false
}

// classify maps service errors to a status and reason. ok is false for
// errors that must not reach the client verbatim.
func classify(err error) (status int, reason string, ok bool) {
	var rejected *domain.VoucherRejectedError
	var invalid *domain.InvalidInputError
	switch {
	case errors.As(err, &rejected):
		return http.StatusUnprocessableEntity, string(rejected.Reason), true
	case errors.As(err, &invalid):
		return http.StatusBadRequest, "invalid_input", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", true
	case errors.Is(err, domain.ErrRefreshInvalid):
		return http.StatusUnauthorized, "refresh_invalid", true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user_exists", true
	case errors.Is(err, domain.ErrPaymentNotFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found", true
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, "empty_cart", true
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "invalid_quantity", true
	case errors.Is(err, domain.ErrVoucherCodeRequired):
		return http.StatusBadRequest, "voucher_code_required", true
	case errors.Is(err, domain.ErrInvalidPhone):
		return http.StatusBadRequest, "invalid_phone", true
	case errors.Is(err, domain.ErrAmountMismatch):
		return http.StatusBadRequest, "amount_mismatch", true
	case errors.Is(err, domain.ErrOrderNotPayable):
		return http.StatusConflict, "order_not_payable", true
	case errors.Is(err, application.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, "provider_unavailable", true
	}
	return http.StatusInternalServerError, "internal_error", false
}

func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, reason, ok := classify(err)
	if !ok {
		s.requestLog(r).WithError(err).Error("request failed")
		respondError(w, status, reason, "internal server error")
		return
	}
	message := err.Error()
	var rejected *domain.VoucherRejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		message = rejected.Message
	}
	respondError(w, status, reason, message)
}
