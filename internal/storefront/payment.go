package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/metrics"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

type PaymentState string

const (
	PaymentIdle       PaymentState = "idle"
	PaymentProcessing PaymentState = "processing"
	PaymentWaiting    PaymentState = "waiting"
	PaymentSucceeded  PaymentState = "success"
	PaymentFailed     PaymentState = "failed"
)

const (
	MsgPaymentFailed   = "Payment failed. Please try again."
	MsgPaymentTimedOut = "Payment timed out. If you paid, please check your orders later."
	MsgConnectivity    = "Could not reach the payment service. Check your connection and try again."
)

type PaymentConfig struct {
	PollInterval time.Duration
	Deadline     time.Duration
	// SuccessDelay is how long the success state is shown before the
	// success callback runs.
	SuccessDelay time.Duration
}

func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		PollInterval: 3 * time.Second,
		Deadline:     60 * time.Second,
		SuccessDelay: 2 * time.Second,
	}
}

// PaymentSnapshot is a consistent view of the driver.
type PaymentSnapshot struct {
	State     PaymentState
	Message   string
	Attempt   *domain.PaymentAttempt
	Remaining time.Duration
}

// PaymentDriver runs one push payment at a time:
//
//	idle -> processing -> waiting -> success | failed
//
// Initiation failures move processing to failed. failed and idle accept a
// new Submit. Polling stops on a terminal order status or when the budget
// runs out.
type PaymentDriver struct {
	push      ports.PaymentPushPort
	orders    ports.OrderPort
	cfg       PaymentConfig
	onSuccess func(ctx context.Context, orderID string)
	log       *logrus.Entry

	mu        sync.Mutex
	state     PaymentState
	message   string
	attempt   *domain.PaymentAttempt
	remaining time.Duration
	gen       uint64
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewPaymentDriver builds an idle driver. onSuccess may be nil.
func NewPaymentDriver(push ports.PaymentPushPort, orders ports.OrderPort, cfg PaymentConfig, onSuccess func(ctx context.Context, orderID string), log *logrus.Entry) *PaymentDriver {
	done := make(chan struct{})
	close(done)
	return &PaymentDriver{
		push:      push,
		orders:    orders,
		cfg:       cfg,
		onSuccess: onSuccess,
		log:       log,
		state:     PaymentIdle,
		done:      done,
	}
}

// Submit validates phone and starts the payment for orderID in the
// background. Validation errors leave the driver untouched. The amount sent
// is total rounded to whole units.
func (d *PaymentDriver) Submit(ctx context.Context, orderID string, total decimal.Decimal, phone string) error {
	normalized, err := domain.NormalizePhone(phone)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case PaymentProcessing, PaymentWaiting:
		return domain.ErrPaymentInProgress
	case PaymentSucceeded:
		return domain.ErrOrderNotPayable
	}

	now := time.Now()
	attempt := &domain.PaymentAttempt{
		OrderID:   orderID,
		Phone:     normalized,
		StartedAt: now,
		Deadline:  now.Add(d.cfg.Deadline),
	}
	req := domain.PushRequest{
		Phone:   normalized,
		Amount:  total.Round(0).IntPart(),
		OrderID: orderID,
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.gen++
	d.cancel = cancel
	d.done = make(chan struct{})
	d.attempt = attempt
	d.remaining = d.cfg.Deadline
	d.setLocked(PaymentProcessing, "")

	go d.run(runCtx, d.gen, req, d.done)
	return nil
}

// Cancel stops the client side of the current attempt. In waiting the
// prompt already sent to the phone stays live; only polling stops. Cancel
// is a no-op after success. Ending the context given to Submit has the same
// effect as Cancel.
func (d *PaymentDriver) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == PaymentSucceeded {
		return
	}
	if d.state == PaymentProcessing || d.state == PaymentWaiting {
		metrics.PaymentOutcomes.WithLabelValues("cancelled").Inc()
	}
	d.resetLocked()
}

func (d *PaymentDriver) resetLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.gen++
	d.attempt = nil
	d.remaining = 0
	d.setLocked(PaymentIdle, "")
}

func (d *PaymentDriver) Snapshot() PaymentSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := PaymentSnapshot{State: d.state, Message: d.message, Remaining: d.remaining}
	if d.attempt != nil {
		a := *d.attempt
		s.Attempt = &a
	}
	return s
}

// Done is closed when the current attempt's goroutine has exited, after the
// success callback when there is one.
func (d *PaymentDriver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

func (d *PaymentDriver) run(ctx context.Context, gen uint64, req domain.PushRequest, done chan struct{}) {
	defer close(done)

	entry := d.log.WithFields(logrus.Fields{
		"order_id": req.OrderID,
		"phone":    domain.MaskPhone(req.Phone),
		"amount":   req.Amount,
	})

	if err := d.push.InitiatePush(ctx, req); err != nil {
		if ctx.Err() != nil {
			d.abandon(gen, entry)
			return
		}
		entry.WithError(err).Warn("payment initiation failed")
		if d.transition(gen, PaymentFailed, domain.UserMessage(err, MsgConnectivity)) {
			metrics.PaymentOutcomes.WithLabelValues("initiation_failed").Inc()
		}
		return
	}
	deadline, ok := d.startWaiting(gen)
	if !ok {
		return
	}

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			d.abandon(gen, entry)
			return
		case <-ticker.C:
		}

		order, err := d.orders.GetOrder(ctx, req.OrderID)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				d.abandon(gen, entry)
				return
			}
			entry.WithError(err).Warn("order status poll failed, retrying")
		case order.Status == domain.OrderPaid:
			d.succeed(ctx, gen, req.OrderID, entry)
			return
		case order.Status == domain.OrderFailed:
			if d.transition(gen, PaymentFailed, MsgPaymentFailed) {
				metrics.PaymentOutcomes.WithLabelValues("failed").Inc()
			}
			return
		}

		if d.spend(gen, deadline) <= 0 {
			if d.transition(gen, PaymentFailed, MsgPaymentTimedOut) {
				metrics.PaymentOutcomes.WithLabelValues("timeout").Inc()
			}
			return
		}
	}
}

// startWaiting moves attempt gen to waiting and starts its polling budget.
func (d *PaymentDriver) startWaiting(gen uint64) (time.Time, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return time.Time{}, false
	}
	deadline := time.Now().Add(d.cfg.Deadline)
	d.attempt.Deadline = deadline
	d.remaining = d.cfg.Deadline
	d.setLocked(PaymentWaiting, "")
	return deadline, true
}

// abandon returns the driver to idle when the context the attempt was
// submitted with ends. An attempt already cancelled or superseded is left
// alone.
func (d *PaymentDriver) abandon(gen uint64, entry *logrus.Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return
	}
	entry.Info("payment abandoned, caller context ended")
	metrics.PaymentOutcomes.WithLabelValues("cancelled").Inc()
	d.resetLocked()
}

func (d *PaymentDriver) succeed(ctx context.Context, gen uint64, orderID string, entry *logrus.Entry) {
	if !d.transition(gen, PaymentSucceeded, "") {
		return
	}
	metrics.PaymentOutcomes.WithLabelValues("success").Inc()
	entry.Info("payment confirmed")

	if d.onSuccess == nil {
		return
	}
	t := time.NewTimer(d.cfg.SuccessDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
		return
	}
	d.onSuccess(ctx, orderID)
}

// spend takes one poll interval off the budget and returns what is left.
// The budget also ends once the wall-clock deadline passes, so delayed or
// dropped ticks never stretch the wait.
func (d *PaymentDriver) spend(gen uint64, deadline time.Time) time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return 0
	}
	d.remaining -= d.cfg.PollInterval
	if left := time.Until(deadline); left < d.remaining {
		d.remaining = left
	}
	if d.remaining < 0 {
		d.remaining = 0
	}
	return d.remaining
}

// transition applies a state change made by attempt gen. It reports false
// when the attempt has been cancelled or superseded.
func (d *PaymentDriver) transition(gen uint64, state PaymentState, msg string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return false
	}
	d.setLocked(state, msg)
	return true
}

func (d *PaymentDriver) setLocked(state PaymentState, msg string) {
	d.log.WithFields(logrus.Fields{"from": d.state, "to": state}).Debug("payment state")
	d.state = state
	d.message = msg
}
