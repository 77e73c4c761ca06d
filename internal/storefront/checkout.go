package storefront

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/metrics"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
	"github.com/mahabubulhasibshawon/storefront/internal/pricing"
)

// Checkout turns the current cart and applied voucher into an order.
type Checkout struct {
	cart     *CartView
	vouchers *VoucherValidator
	port     ports.CheckoutPort
	engine   *pricing.Engine
	log      *logrus.Entry

	inFlight atomic.Bool
}

func NewCheckout(cart *CartView, vouchers *VoucherValidator, port ports.CheckoutPort, engine *pricing.Engine, log *logrus.Entry) *Checkout {
	return &Checkout{cart: cart, vouchers: vouchers, port: port, engine: engine, log: log}
}

// Quote prices the current cart with the applied voucher's discount.
func (c *Checkout) Quote(ctx context.Context) (domain.Quote, error) {
	lines, err := c.cart.Lines(ctx)
	if err != nil {
		return domain.Quote{}, err
	}
	return c.engine.Price(lines, c.vouchers.Discount()), nil
}

// InFlight reports whether a checkout request is outstanding.
func (c *Checkout) InFlight() bool {
	return c.inFlight.Load()
}

// Run places the order. Only one Run may be outstanding; a second call
// returns ErrCheckoutInFlight without contacting the server. The local cart
// and voucher are cleared only after the server confirms the order.
func (c *Checkout) Run(ctx context.Context) (*domain.CheckoutReceipt, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		metrics.Checkouts.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrCheckoutInFlight
	}
	defer c.inFlight.Store(false)

	lines, err := c.cart.Lines(ctx)
	if err != nil {
		metrics.Checkouts.WithLabelValues("failed").Inc()
		return nil, err
	}
	if len(lines) == 0 {
		metrics.Checkouts.WithLabelValues("empty").Inc()
		return nil, domain.ErrEmptyCart
	}

	code := c.vouchers.Code()
	receipt, err := c.port.Checkout(ctx, code)
	if err != nil {
		metrics.Checkouts.WithLabelValues("failed").Inc()
		c.log.WithError(err).Warn("checkout failed")
		return nil, err
	}

	c.cart.Clear(ctx)
	c.vouchers.Remove()
	metrics.Checkouts.WithLabelValues("ok").Inc()
	c.log.WithFields(logrus.Fields{
		"order_id": receipt.OrderID,
		"total":    pricing.Money(receipt.Total),
		"voucher":  code,
	}).Info("order placed")
	return receipt, nil
}
