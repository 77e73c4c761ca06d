package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

type checkoutRequestDTO struct {
	VoucherCode string `json:"voucherCode"`
}

type stkPushResponseDTO struct {
	Message           string `json:"message"`
	CheckoutRequestID string `json:"checkoutRequestId"`
}

// darajaCallback is the body an M-Pesa STK push result is delivered in.
type darajaCallback struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type darajaAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequestDTO
	if !decodeJSON(w, r, &req, true) {
		return
	}
	receipt, err := s.svc.Orders.Checkout(r.Context(), userIDFromContext(r.Context()), req.VoucherCode)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, receipt)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.svc.Orders.GetOrder(r.Context(), chi.URLParam(r, "id"), userIDFromContext(r.Context()))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]*domain.Order{"order": order})
}

func (s *Server) stkPush(w http.ResponseWriter, r *http.Request) {
	var req domain.PushRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	if req.OrderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "orderId is required")
		return
	}
	checkoutRequestID, err := s.svc.Payments.InitiatePush(r.Context(), userIDFromContext(r.Context()), req)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stkPushResponseDTO{
		Message:           "Payment prompt sent. Enter your M-Pesa PIN to complete payment.",
		CheckoutRequestID: checkoutRequestID,
	})
}

// mpesaCallback acknowledges unknown request ids so the provider stops
// retrying them; only storage failures are answered with an error.
func (s *Server) mpesaCallback(w http.ResponseWriter, r *http.Request) {
	var cb darajaCallback
	if !decodeJSON(w, r, &cb, false) {
		return
	}
	result := cb.Body.StkCallback
	if result.CheckoutRequestID == "" {
		respondError(w, http.StatusBadRequest, "invalid_callback", "missing CheckoutRequestID")
		return
	}
	err := s.svc.Payments.HandleResult(r.Context(), result.CheckoutRequestID, result.ResultCode, result.ResultDesc)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrPaymentNotFound):
		s.requestLog(r).WithFields(logrus.Fields{"checkout_request_id": result.CheckoutRequestID}).Warn("callback for unknown payment")
	default:
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, darajaAck{ResultCode: 0, ResultDesc: "Accepted"})
}
