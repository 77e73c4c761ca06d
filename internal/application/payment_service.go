package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

var ErrProviderUnavailable = errors.New("payment provider unavailable, try again shortly")

type PaymentService struct {
	orders   ports.OrderRepositoryPort
	provider ports.PushProviderPort
	breaker  *gobreaker.CircuitBreaker[string]
	log      *logrus.Entry
	now      func() time.Time
}

func NewPaymentService(orders ports.OrderRepositoryPort, provider ports.PushProviderPort, log *logrus.Entry) *PaymentService {
	s := &PaymentService{orders: orders, provider: provider, log: log, now: time.Now}
	s.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "stk-push",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{"breaker": name, "from": from.String(), "to": to.String()}).Warn("circuit breaker state changed")
		},
	})
	return s
}

// InitiatePush sends the payment prompt for one of userID's orders and
// returns the provider's checkout request id. The amount must equal the
// order total rounded to whole units.
func (s *PaymentService) InitiatePush(ctx context.Context, userID int64, req domain.PushRequest) (string, error) {
	phone, err := domain.NormalizePhone(req.Phone)
	if err != nil {
		return "", err
	}
	order, err := s.orders.GetOrder(ctx, req.OrderID, userID)
	if err != nil {
		return "", err
	}
	if order.Status != domain.OrderPending && order.Status != domain.OrderFailed {
		return "", domain.ErrOrderNotPayable
	}
	if want := order.Total.Round(0).IntPart(); req.Amount != want {
		return "", fmt.Errorf("%w: expected %d", domain.ErrAmountMismatch, want)
	}
	req.Phone = phone

	checkoutRequestID, err := s.breaker.Execute(func() (string, error) {
		return s.provider.Push(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", ErrProviderUnavailable
	}
	if err != nil {
		return "", err
	}

	payment := &domain.Payment{
		CheckoutRequestID: checkoutRequestID,
		OrderID:           order.ID,
		Phone:             phone,
		Amount:            req.Amount,
		Status:            domain.PaymentPending,
		CreatedAt:         s.now(),
	}
	if err := s.orders.CreatePayment(ctx, payment, order.Status == domain.OrderFailed); err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"order_id":            order.ID,
		"checkout_request_id": checkoutRequestID,
		"phone":               domain.MaskPhone(phone),
		"amount":              req.Amount,
	}).Info("stk push sent")
	return checkoutRequestID, nil
}

// HandleResult records the provider's verdict. Result code 0 is success.
// Results for payments that are no longer pending are ignored, so duplicate
// callbacks are harmless.
func (s *PaymentService) HandleResult(ctx context.Context, checkoutRequestID string, resultCode int, resultDesc string) error {
	payment, err := s.orders.FindPayment(ctx, checkoutRequestID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrPaymentNotFound
	}
	if err != nil {
		return err
	}

	entry := s.log.WithFields(logrus.Fields{
		"order_id":            payment.OrderID,
		"checkout_request_id": checkoutRequestID,
		"result_code":         resultCode,
	})
	if payment.Status != domain.PaymentPending {
		entry.Info("ignoring result for settled payment")
		return nil
	}

	status := domain.PaymentFailed
	if resultCode == 0 {
		status = domain.PaymentSuccess
	}
	if err := s.orders.CompletePayment(ctx, checkoutRequestID, status, resultDesc); err != nil {
		return err
	}
	entry.WithField("status", status).Info("payment result recorded")
	return nil
}
