package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
	"github.com/mahabubulhasibshawon/storefront/internal/pricing"
)

var hundred = decimal.NewFromInt(100)

type VoucherService struct {
	repo ports.VoucherRepositoryPort
	now  func() time.Time
}

func NewVoucherService(repo ports.VoucherRepositoryPort) *VoucherService {
	return &VoucherService{repo: repo, now: time.Now}
}

func NormalizeVoucherCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks code against cartTotal and computes the discount.
func (s *VoucherService) Validate(ctx context.Context, code string, cartTotal decimal.Decimal) (*domain.AppliedVoucher, error) {
	v, err := s.lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	discount, err := Evaluate(v, cartTotal, s.now())
	if err != nil {
		return nil, err
	}
	return &domain.AppliedVoucher{
		Voucher:  *v,
		Discount: discount,
		Message:  fmt.Sprintf("Voucher %s applied: %s off", v.Code, pricing.Money(discount)),
	}, nil
}

func (s *VoucherService) lookup(ctx context.Context, code string) (*domain.Voucher, error) {
	code = NormalizeVoucherCode(code)
	if code == "" {
		return nil, domain.ErrVoucherCodeRequired
	}
	v, err := s.repo.FindVoucher(ctx, code)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && v == nil) {
		return nil, &domain.VoucherRejectedError{Reason: domain.VoucherNotFound, Message: "Invalid voucher code"}
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Evaluate applies the voucher rules in order: inactive, expired, below
// minimum spend, usage exhausted. The discount never exceeds cartTotal.
func Evaluate(v *domain.Voucher, cartTotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !v.Active {
		return decimal.Zero, &domain.VoucherRejectedError{Reason: domain.VoucherInactive, Message: "Voucher is not active"}
	}
	if !v.ExpiresAt.IsZero() && !now.Before(v.ExpiresAt) {
		return decimal.Zero, &domain.VoucherRejectedError{Reason: domain.VoucherExpired, Message: "Voucher has expired"}
	}
	if v.MinSpend.Valid && cartTotal.LessThan(v.MinSpend.Decimal) {
		return decimal.Zero, &domain.VoucherRejectedError{
			Reason:  domain.VoucherBelowMinSpend,
			Message: fmt.Sprintf("Minimum spend of %s required", pricing.Money(v.MinSpend.Decimal)),
		}
	}
	if v.UsageLimit != nil && v.UsedCount >= *v.UsageLimit {
		return decimal.Zero, &domain.VoucherRejectedError{Reason: domain.VoucherUsageExhausted, Message: "Voucher usage limit reached"}
	}

	if cartTotal.IsNegative() {
		cartTotal = decimal.Zero
	}
	var discount decimal.Decimal
	switch v.Kind {
	case domain.DiscountPercentage:
		discount = cartTotal.Mul(v.Value).Div(hundred)
	default:
		discount = v.Value
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(cartTotal) {
		discount = cartTotal
	}
	return discount, nil
}
