// Package mpesa holds push-payment providers.
package mpesa

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

const (
	ResultSuccess   = 0
	ResultCancelled = 1032

	descSuccess   = "The service request is processed successfully."
	descCancelled = "Request cancelled by user"
)

var ErrSandboxClosed = errors.New("mpesa sandbox is shut down")

// ResultHandler receives the outcome of a push, the way a callback would.
type ResultHandler func(ctx context.Context, checkoutRequestID string, resultCode int, resultDesc string) error

// Sandbox simulates STK push: every push is accepted immediately and settled
// after Delay, succeeding with probability SuccessRate.
type Sandbox struct {
	Delay       time.Duration
	SuccessRate float64

	log     *logrus.Entry
	roll    func() float64
	mu      sync.Mutex
	handler ResultHandler
	wg      sync.WaitGroup
	stop    chan struct{}
	closed  bool
}

var _ ports.PushProviderPort = (*Sandbox)(nil)

func NewSandbox(delay time.Duration, successRate float64, log *logrus.Entry) *Sandbox {
	return &Sandbox{
		Delay:       delay,
		SuccessRate: successRate,
		log:         log,
		roll:        rand.Float64,
		stop:        make(chan struct{}),
	}
}

// SetResultHandler must be called before the first Push.
func (s *Sandbox) SetResultHandler(h ResultHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

func (s *Sandbox) Push(ctx context.Context, req domain.PushRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSandboxClosed
	}

	checkoutRequestID := "ws_CO_" + uuid.NewString()
	s.log.WithFields(logrus.Fields{
		"checkout_request_id": checkoutRequestID,
		"order_id":            req.OrderID,
		"phone":               domain.MaskPhone(req.Phone),
		"amount":              req.Amount,
	}).Info("sandbox push accepted")

	s.wg.Add(1)
	go s.settle(checkoutRequestID, s.handler)
	return checkoutRequestID, nil
}

func (s *Sandbox) settle(checkoutRequestID string, handler ResultHandler) {
	defer s.wg.Done()

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-s.stop:
		return
	case <-timer.C:
	}

	code, desc := ResultCancelled, descCancelled
	if s.roll() < s.SuccessRate {
		code, desc = ResultSuccess, descSuccess
	}
	entry := s.log.WithFields(logrus.Fields{"checkout_request_id": checkoutRequestID, "result_code": code})
	if handler == nil {
		entry.Warn("sandbox result dropped: no handler")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := handler(ctx, checkoutRequestID, code, desc); err != nil {
		entry.WithError(err).Error("failed to deliver sandbox result")
		return
	}
	entry.Info("sandbox result delivered")
}

// Close drops pending results and waits for in-flight deliveries.
func (s *Sandbox) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.stop)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
