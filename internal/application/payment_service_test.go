package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/logger"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

func TestPaymentService_InitiatePush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrders := ports.NewMockOrderRepositoryPort(ctrl)
	mockProvider := ports.NewMockPushProviderPort(ctrl)
	svc := NewPaymentService(mockOrders, mockProvider, logger.Discard())

	order := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{ID: "ord-1", UserID: 1, Status: status, Total: decimal.RequireFromString("1391.50")}
	}
	valid := domain.PushRequest{Phone: "0712345678", Amount: 1392, OrderID: "ord-1"}

	tests := []struct {
		name      string
		req       domain.PushRequest
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Pending order",
			req:  valid,
			mockSetup: func() {
				mockOrders.EXPECT().GetOrder(gomock.Any(), "ord-1", int64(1)).Return(order(domain.OrderPending), nil)
				mockProvider.EXPECT().Push(gomock.Any(), domain.PushRequest{Phone: "254712345678", Amount: 1392, OrderID: "ord-1"}).Return("ws_1", nil)
				mockOrders.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), false).
					DoAndReturn(func(ctx context.Context, p *domain.Payment, reopen bool) error {
						if p.CheckoutRequestID != "ws_1" || p.Status != domain.PaymentPending || p.Phone != "254712345678" {
							t.Errorf("CreatePayment() payment = %+v", p)
						}
						return nil
					})
			},
		},
		{
			name: "Failed order is reopened",
			req:  valid,
			mockSetup: func() {
				mockOrders.EXPECT().GetOrder(gomock.Any(), "ord-1", int64(1)).Return(order(domain.OrderFailed), nil)
				mockProvider.EXPECT().Push(gomock.Any(), gomock.Any()).Return("ws_2", nil)
				mockOrders.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), true).Return(nil)
			},
		},
		{
			name:      "Invalid phone",
			req:       domain.PushRequest{Phone: "07123", Amount: 1392, OrderID: "ord-1"},
			mockSetup: func() {},
			wantErr:   domain.ErrInvalidPhone,
		},
		{
			name: "Amount mismatch",
			req:  domain.PushRequest{Phone: "0712345678", Amount: 1391, OrderID: "ord-1"},
			mockSetup: func() {
				mockOrders.EXPECT().GetOrder(gomock.Any(), "ord-1", int64(1)).Return(order(domain.OrderPending), nil)
			},
			wantErr: domain.ErrAmountMismatch,
		},
		{
			name: "Already paid",
			req:  valid,
			mockSetup: func() {
				mockOrders.EXPECT().GetOrder(gomock.Any(), "ord-1", int64(1)).Return(order(domain.OrderPaid), nil)
			},
			wantErr: domain.ErrOrderNotPayable,
		},
		{
			name: "Someone else's order",
			req:  valid,
			mockSetup: func() {
				mockOrders.EXPECT().GetOrder(gomock.Any(), "ord-1", int64(1)).Return(nil, domain.ErrNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			id, err := svc.InitiatePush(context.Background(), 1, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("InitiatePush() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || id == "" {
				t.Errorf("InitiatePush() = %q, %v", id, err)
			}
		})
	}
}

func TestPaymentService_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrders := ports.NewMockOrderRepositoryPort(ctrl)
	mockProvider := ports.NewMockPushProviderPort(ctrl)
	svc := NewPaymentService(mockOrders, mockProvider, logger.Discard())

	mockOrders.EXPECT().GetOrder(gomock.Any(), "ord-1", int64(1)).
		Return(&domain.Order{ID: "ord-1", Status: domain.OrderPending, Total: decimal.NewFromInt(100)}, nil).AnyTimes()
	mockProvider.EXPECT().Push(gomock.Any(), gomock.Any()).Return("", errors.New("provider timeout")).Times(5)

	req := domain.PushRequest{Phone: "254712345678", Amount: 100, OrderID: "ord-1"}
	for i := 0; i < 5; i++ {
		if _, err := svc.InitiatePush(context.Background(), 1, req); err == nil {
			t.Fatalf("InitiatePush() attempt %d unexpectedly succeeded", i)
		}
	}
	if _, err := svc.InitiatePush(context.Background(), 1, req); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("InitiatePush() error = %v, want %v", err, ErrProviderUnavailable)
	}
}

func TestPaymentService_HandleResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrders := ports.NewMockOrderRepositoryPort(ctrl)
	svc := NewPaymentService(mockOrders, ports.NewMockPushProviderPort(ctrl), logger.Discard())

	pending := &domain.Payment{CheckoutRequestID: "ws_1", OrderID: "ord-1", Status: domain.PaymentPending}
	settled := &domain.Payment{CheckoutRequestID: "ws_1", OrderID: "ord-1", Status: domain.PaymentSuccess}

	tests := []struct {
		name      string
		code      int
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Success",
			code: 0,
			mockSetup: func() {
				mockOrders.EXPECT().FindPayment(gomock.Any(), "ws_1").Return(pending, nil)
				mockOrders.EXPECT().CompletePayment(gomock.Any(), "ws_1", domain.PaymentSuccess, "ok").Return(nil)
			},
		},
		{
			name: "Cancelled by user",
			code: 1032,
			mockSetup: func() {
				mockOrders.EXPECT().FindPayment(gomock.Any(), "ws_1").Return(pending, nil)
				mockOrders.EXPECT().CompletePayment(gomock.Any(), "ws_1", domain.PaymentFailed, "ok").Return(nil)
			},
		},
		{
			name: "Duplicate callback ignored",
			code: 0,
			mockSetup: func() {
				mockOrders.EXPECT().FindPayment(gomock.Any(), "ws_1").Return(settled, nil)
			},
		},
		{
			name: "Unknown request",
			code: 0,
			mockSetup: func() {
				mockOrders.EXPECT().FindPayment(gomock.Any(), "ws_1").Return(nil, domain.ErrNotFound)
			},
			wantErr: domain.ErrPaymentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := svc.HandleResult(context.Background(), "ws_1", tt.code, "ok")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("HandleResult() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
