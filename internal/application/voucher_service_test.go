package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

func intPtr(v int) *int { return &v }

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	base := domain.Voucher{Code: "X", Kind: domain.DiscountFixed, Value: decimal.NewFromInt(200), Active: true}

	tests := []struct {
		name       string
		mutate     func(v *domain.Voucher)
		cartTotal  int64
		want       int64
		wantReason domain.VoucherRejection
	}{
		{name: "Fixed", mutate: func(v *domain.Voucher) {}, cartTotal: 1200, want: 200},
		{name: "Fixed capped at total", mutate: func(v *domain.Voucher) {}, cartTotal: 150, want: 150},
		{
			name:      "Percentage",
			mutate:    func(v *domain.Voucher) { v.Kind = domain.DiscountPercentage; v.Value = decimal.NewFromInt(10) },
			cartTotal: 1200,
			want:      120,
		},
		{
			name:       "Inactive wins over expired",
			mutate:     func(v *domain.Voucher) { v.Active = false; v.ExpiresAt = now.Add(-time.Hour) },
			cartTotal:  1200,
			wantReason: domain.VoucherInactive,
		},
		{
			name:       "Expired exactly now",
			mutate:     func(v *domain.Voucher) { v.ExpiresAt = now },
			cartTotal:  1200,
			wantReason: domain.VoucherExpired,
		},
		{
			name:      "Not yet expired",
			mutate:    func(v *domain.Voucher) { v.ExpiresAt = now.Add(time.Minute) },
			cartTotal: 1200,
			want:      200,
		},
		{
			name:       "Below min spend",
			mutate:     func(v *domain.Voucher) { v.MinSpend = decimal.NewNullDecimal(decimal.NewFromInt(1500)) },
			cartTotal:  1200,
			wantReason: domain.VoucherBelowMinSpend,
		},
		{
			name:      "Min spend met exactly",
			mutate:    func(v *domain.Voucher) { v.MinSpend = decimal.NewNullDecimal(decimal.NewFromInt(1200)) },
			cartTotal: 1200,
			want:      200,
		},
		{
			name:       "Usage exhausted",
			mutate:     func(v *domain.Voucher) { v.UsageLimit = intPtr(3); v.UsedCount = 3 },
			cartTotal:  1200,
			wantReason: domain.VoucherUsageExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := base
			tt.mutate(&v)
			got, err := Evaluate(&v, decimal.NewFromInt(tt.cartTotal), now)
			if tt.wantReason != "" {
				var rejected *domain.VoucherRejectedError
				if !errors.As(err, &rejected) || rejected.Reason != tt.wantReason {
					t.Errorf("Evaluate() error = %v, want reason %v", err, tt.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate() unexpected error: %v", err)
			}
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("Evaluate() = %s, want %d", got, tt.want)
			}
		})
	}
}

func TestVoucherService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockVoucherRepositoryPort(ctrl)
	svc := NewVoucherService(mockRepo)

	mockRepo.EXPECT().FindVoucher(gomock.Any(), "SAVE200").
		Return(&domain.Voucher{Code: "SAVE200", Kind: domain.DiscountFixed, Value: decimal.NewFromInt(200), Active: true}, nil)
	applied, err := svc.Validate(context.Background(), " save200", decimal.NewFromInt(1200))
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if !applied.Discount.Equal(decimal.NewFromInt(200)) || applied.Message != "Voucher SAVE200 applied: 200.00 off" {
		t.Errorf("Validate() = %+v", applied)
	}

	if _, err := svc.Validate(context.Background(), "  ", decimal.NewFromInt(1200)); !errors.Is(err, domain.ErrVoucherCodeRequired) {
		t.Errorf("Validate() error = %v, want %v", err, domain.ErrVoucherCodeRequired)
	}

	mockRepo.EXPECT().FindVoucher(gomock.Any(), "GONE").Return(nil, domain.ErrNotFound)
	_, err = svc.Validate(context.Background(), "gone", decimal.NewFromInt(1200))
	var rejected *domain.VoucherRejectedError
	if !errors.As(err, &rejected) || rejected.Reason != domain.VoucherNotFound {
		t.Errorf("Validate() error = %v, want not_found rejection", err)
	}
}
