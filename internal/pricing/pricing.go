// Package pricing turns cart lines and a discount into a Quote.
//
// The engine is pure: no I/O, no hidden state, and no rounding. Amounts are
// rounded to two places only when formatted for display (see Money).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

type Config struct {
	// Shipping is free when the subtotal is strictly above this amount.
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	// VATRate applies to the subtotal only, never to shipping.
	VATRate decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: decimal.NewFromInt(1000),
		ShippingFee:           decimal.NewFromInt(150),
		VATRate:               decimal.RequireFromString("0.16"),
	}
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Price(lines []domain.CartLine, discount decimal.Decimal) domain.Quote {
	subtotal := decimal.Zero
	count := 0
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
		count += l.Quantity
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	shipping := e.Shipping(subtotal)
	tax := subtotal.Mul(e.cfg.VATRate)
	total := subtotal.Add(shipping).Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return domain.Quote{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Discount:  discount,
		Total:     total,
		ItemCount: count,
	}
}

func (e *Engine) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(e.cfg.FreeShippingThreshold) {
		return decimal.Zero
	}
	return e.cfg.ShippingFee
}

// Money formats an amount for display.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
