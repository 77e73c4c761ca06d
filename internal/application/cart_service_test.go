package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/logger"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

func TestCartService_GetCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockCartRepositoryPort(ctrl)
	cache := &mockCache{}
	svc := NewCartService(mockRepo, cache, logger.Discard())
	lines := cartOf(600, 2)
	cacheBytes, _ := json.Marshal(lines)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   bool
	}{
		{
			name: "Cache hit",
			mockSetup: func() {
				cache.get = func(ctx context.Context, key string) ([]byte, error) { return cacheBytes, nil }
			},
		},
		{
			name: "Cache miss, successful DB query",
			mockSetup: func() {
				cache.get = nil
				mockRepo.EXPECT().GetCart(gomock.Any(), int64(1)).Return(lines, nil)
				cache.set = func(ctx context.Context, key string, value interface{}) error { return nil }
			},
		},
		{
			name: "Cache set error",
			mockSetup: func() {
				cache.get = nil
				mockRepo.EXPECT().GetCart(gomock.Any(), int64(1)).Return(lines, nil)
				cache.set = func(ctx context.Context, key string, value interface{}) error { return errors.New("cache set error") }
			},
		},
		{
			name: "Repository error",
			mockSetup: func() {
				cache.get = nil
				mockRepo.EXPECT().GetCart(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := svc.GetCart(context.Background(), 1)
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetCart() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetCart() unexpected error: %v", err)
			}
			if len(got) != 1 || got[0].Quantity != 2 {
				t.Errorf("GetCart() = %+v", got)
			}
		})
	}
}

func TestCartService_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockCartRepositoryPort(ctrl)
	svc := NewCartService(mockRepo, &mockCache{}, logger.Discard())
	active := &domain.Product{ID: 1, Name: "Kikoy", Price: decimal.NewFromInt(600), Active: true}

	tests := []struct {
		name      string
		quantity  int
		mockSetup func()
		wantErr   error
	}{
		{
			name:     "Adds and re-reads cart",
			quantity: 2,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(gomock.Any(), int64(1)).Return(active, nil)
				mockRepo.EXPECT().UpsertCartItem(gomock.Any(), int64(5), int64(1), 2).Return(nil)
				mockRepo.EXPECT().GetCart(gomock.Any(), int64(5)).Return(cartOf(600, 2), nil)
			},
		},
		{
			name:      "Zero quantity",
			quantity:  0,
			mockSetup: func() {},
			wantErr:   domain.ErrInvalidQuantity,
		},
		{
			name:     "Inactive product",
			quantity: 1,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(gomock.Any(), int64(1)).Return(&domain.Product{ID: 1, Active: false}, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			_, err := svc.AddItem(context.Background(), 5, 1, tt.quantity)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockCartRepositoryPort(ctrl)
	invalidated := ""
	svc := NewCartService(mockRepo, &mockCache{delete: func(ctx context.Context, prefix string) error {
		invalidated = prefix
		return nil
	}}, logger.Discard())

	mockRepo.EXPECT().RemoveCartItem(gomock.Any(), int64(5), int64(1)).Return(nil)
	mockRepo.EXPECT().GetCart(gomock.Any(), int64(5)).Return(nil, nil)

	got, err := svc.RemoveItem(context.Background(), 5, 1)
	if err != nil || len(got) != 0 {
		t.Errorf("RemoveItem() = %v, %v", got, err)
	}
	if invalidated != "user:5:cart" {
		t.Errorf("RemoveItem() invalidated %q", invalidated)
	}
}
