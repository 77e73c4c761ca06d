package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
	"github.com/mahabubulhasibshawon/storefront/internal/pricing"
)

func orderCacheKey(userID int64, orderID string) string {
	return fmt.Sprintf("%sorder:%s", userCachePrefix(userID), orderID)
}

type OrderService struct {
	repo     ports.OrderRepositoryPort
	vouchers *VoucherService
	engine   *pricing.Engine
	cache    ports.CachePort
	log      *logrus.Entry
	now      func() time.Time
}

func NewOrderService(repo ports.OrderRepositoryPort, vouchers *VoucherService, engine *pricing.Engine, cache ports.CachePort, log *logrus.Entry) *OrderService {
	return &OrderService{
		repo:     repo,
		vouchers: vouchers,
		engine:   engine,
		cache:    cache,
		log:      log,
		now:      time.Now,
	}
}

// Checkout snapshots the user's cart into a pending order and empties the
// cart. The voucher is re-checked against the locked cart, so a voucher that
// expired or ran out since validation rejects the checkout.
func (s *OrderService) Checkout(ctx context.Context, userID int64, voucherCode string) (*domain.CheckoutReceipt, error) {
	var voucher *domain.Voucher
	if code := NormalizeVoucherCode(voucherCode); code != "" {
		v, err := s.vouchers.lookup(ctx, code)
		if err != nil {
			return nil, err
		}
		voucher = v
	}

	now := s.now()
	build := func(lines []domain.CartLine) (*domain.Order, error) {
		if len(lines) == 0 {
			return nil, domain.ErrEmptyCart
		}
		discount := decimal.Zero
		if voucher != nil {
			d, err := Evaluate(voucher, s.engine.Price(lines, decimal.Zero).Subtotal, now)
			if err != nil {
				return nil, err
			}
			discount = d
		}
		quote := s.engine.Price(lines, discount)

		items := make([]domain.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, domain.OrderItem{
				ProductID: l.ProductID,
				Name:      l.Name,
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
			})
		}
		order := &domain.Order{
			ID:        uuid.NewString(),
			UserID:    userID,
			Items:     items,
			Subtotal:  quote.Subtotal,
			Shipping:  quote.Shipping,
			Tax:       quote.Tax,
			Discount:  quote.Discount,
			Total:     quote.Total,
			Status:    domain.OrderPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if voucher != nil {
			order.VoucherCode = voucher.Code
		}
		return order, nil
	}

	order, err := s.repo.CreateOrderFromCart(ctx, userID, build)
	if err != nil {
		return nil, err
	}

	if err := s.cache.DeleteByPrefix(ctx, cartCacheKey(userID)); err != nil {
		s.log.WithError(err).Warn("failed to invalidate cart cache")
	}
	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    pricing.Money(order.Total),
		"voucher":  order.VoucherCode,
	}).Info("order created")

	return &domain.CheckoutReceipt{OrderID: order.ID, Total: order.Total}, nil
}

// GetOrder returns one of userID's orders. Only settled orders are cached;
// pending and failed orders are polled for payment and always read fresh.
func (s *OrderService) GetOrder(ctx context.Context, orderID string, userID int64) (*domain.Order, error) {
	key := orderCacheKey(userID, orderID)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var order domain.Order
		if err := json.Unmarshal(data, &order); err == nil {
			return &order, nil
		}
	}

	order, err := s.repo.GetOrder(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if settled(order.Status) {
		if err := s.cache.Set(ctx, key, order); err != nil {
			s.log.WithError(err).Warn("failed to cache order")
		}
	}
	return order, nil
}

func settled(status domain.OrderStatus) bool {
	switch status {
	case domain.OrderPending, domain.OrderFailed:
		return false
	}
	return true
}

// IsBusinessError reports whether err is a rejection worth showing to the
// user rather than an internal failure.
func IsBusinessError(err error) bool {
	var rejected *domain.VoucherRejectedError
	return errors.As(err, &rejected) ||
		errors.Is(err, domain.ErrEmptyCart) ||
		errors.Is(err, domain.ErrVoucherCodeRequired) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidPhone) ||
		errors.Is(err, domain.ErrAmountMismatch) ||
		errors.Is(err, domain.ErrOrderNotPayable)
}
