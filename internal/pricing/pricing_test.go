package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(price string, qty int) domain.CartLine {
	return domain.CartLine{UnitPrice: d(price), Quantity: qty}
}

func TestEngine_Price(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name      string
		lines     []domain.CartLine
		discount  decimal.Decimal
		subtotal  string
		shipping  string
		tax       string
		total     string
		itemCount int
	}{
		{
			name:      "Exactly at threshold still pays shipping",
			lines:     []domain.CartLine{line("500", 2)},
			discount:  decimal.Zero,
			subtotal:  "1000",
			shipping:  "150",
			tax:       "160",
			total:     "1310",
			itemCount: 2,
		},
		{
			name:      "Above threshold ships free",
			lines:     []domain.CartLine{line("600", 2)},
			discount:  decimal.Zero,
			subtotal:  "1200",
			shipping:  "0",
			tax:       "192",
			total:     "1392",
			itemCount: 2,
		},
		{
			name:      "Voucher discount",
			lines:     []domain.CartLine{line("600", 2)},
			discount:  d("200"),
			subtotal:  "1200",
			shipping:  "0",
			tax:       "192",
			total:     "1192",
			itemCount: 2,
		},
		{
			name:      "Discount larger than everything clamps to zero",
			lines:     []domain.CartLine{line("10", 1)},
			discount:  d("5000"),
			subtotal:  "10",
			shipping:  "150",
			tax:       "1.6",
			total:     "0",
			itemCount: 1,
		},
		{
			name:      "Empty cart",
			lines:     nil,
			discount:  decimal.Zero,
			subtotal:  "0",
			shipping:  "150",
			tax:       "0",
			total:     "150",
			itemCount: 0,
		},
		{
			name:      "Fractional prices stay unrounded",
			lines:     []domain.CartLine{line("0.333", 3), line("19.99", 1)},
			discount:  decimal.Zero,
			subtotal:  "20.989",
			shipping:  "150",
			tax:       "3.35824",
			total:     "174.34724",
			itemCount: 4,
		},
		{
			name:      "Negative discount ignored",
			lines:     []domain.CartLine{line("600", 2)},
			discount:  d("-50"),
			subtotal:  "1200",
			shipping:  "0",
			tax:       "192",
			total:     "1392",
			itemCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := engine.Price(tt.lines, tt.discount)
			assert.True(t, q.Subtotal.Equal(d(tt.subtotal)), "subtotal = %s, want %s", q.Subtotal, tt.subtotal)
			assert.True(t, q.Shipping.Equal(d(tt.shipping)), "shipping = %s, want %s", q.Shipping, tt.shipping)
			assert.True(t, q.Tax.Equal(d(tt.tax)), "tax = %s, want %s", q.Tax, tt.tax)
			assert.True(t, q.Total.Equal(d(tt.total)), "total = %s, want %s", q.Total, tt.total)
			assert.Equal(t, tt.itemCount, q.ItemCount)
		})
	}
}

func TestEngine_SubtotalIsExactSum(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	lines := []domain.CartLine{line("0.1", 7), line("0.2", 3), line("1234.567", 11), line("0", 4)}

	want := decimal.Zero
	for _, l := range lines {
		want = want.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	q := engine.Price(lines, decimal.Zero)
	assert.True(t, q.Subtotal.Equal(want))
	assert.True(t, q.Subtotal.Equal(d("13581.537")))
}

func TestEngine_ShippingBoundary(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	for _, s := range []string{"0", "999.99", "1000", "1000.00"} {
		assert.True(t, engine.Shipping(d(s)).Equal(d("150")), "subtotal %s", s)
	}
	for _, s := range []string{"1000.01", "1001", "50000"} {
		assert.True(t, engine.Shipping(d(s)).IsZero(), "subtotal %s", s)
	}
}

func TestEngine_TotalNeverNegative(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	for _, price := range []string{"0", "1", "999", "1001", "25000"} {
		for _, disc := range []string{"0", "1", "1000", "99999999"} {
			q := engine.Price([]domain.CartLine{line(price, 1)}, d(disc))
			assert.False(t, q.Total.IsNegative(), "price %s discount %s gave %s", price, disc, q.Total)
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	lines := []domain.CartLine{line("333.33", 3), line("12.5", 2)}
	a := engine.Price(lines, d("10"))
	b := engine.Price(lines, d("10"))
	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.Tax.Equal(b.Tax))
	assert.True(t, a.Total.Equal(b.Total))
	assert.Equal(t, a.ItemCount, b.ItemCount)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "1160.00", Money(d("1160")))
	assert.Equal(t, "174.35", Money(d("174.34724")))
}
