package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

type addItemRequestDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type cartResponseDTO struct {
	Items []domain.CartLine `json:"items"`
}

type validateVoucherRequestDTO struct {
	Code      string          `json:"code"`
	CartTotal decimal.Decimal `json:"cartTotal"`
}

func respondCart(w http.ResponseWriter, lines []domain.CartLine) {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	respondJSON(w, http.StatusOK, cartResponseDTO{Items: lines})
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	lines, err := s.svc.Carts.GetCart(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondCart(w, lines)
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequestDTO
	if !decodeJSON(w, r, &req, false) {
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId must be positive")
		return
	}
	lines, err := s.svc.Carts.AddItem(r.Context(), userIDFromContext(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondCart(w, lines)
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}
	lines, err := s.svc.Carts.RemoveItem(r.Context(), userIDFromContext(r.Context()), productID)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondCart(w, lines)
}

func (s *Server) validateVoucher(w http.ResponseWriter, r *http.Request) {
	var req validateVoucherRequestDTO
	if !decodeJSON(w, r, &req, false) {
		return
	}
	if req.CartTotal.IsNegative() {
		respondError(w, http.StatusBadRequest, "invalid_cart_total", "cartTotal must not be negative")
		return
	}
	applied, err := s.svc.Vouchers.Validate(r.Context(), req.Code, req.CartTotal)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, applied)
}
