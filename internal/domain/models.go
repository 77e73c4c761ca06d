package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type Product struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Active bool            `json:"active"`
}

// CartLine is one row of the server-owned cart.
type CartLine struct {
	ID        string          `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns unitPrice × quantity without rounding.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

type Voucher struct {
	Code       string              `json:"code"`
	Kind       DiscountKind        `json:"discount_kind"`
	Value      decimal.Decimal     `json:"value"`
	MinSpend   decimal.NullDecimal `json:"min_spend"`
	ExpiresAt  time.Time           `json:"expires_at"`
	UsageLimit *int                `json:"usage_limit,omitempty"`
	UsedCount  int                 `json:"used_count"`
	Active     bool                `json:"active"`
}

// AppliedVoucher is a voucher the server accepted for a specific cart total.
type AppliedVoucher struct {
	Voucher  Voucher         `json:"voucher"`
	Discount decimal.Decimal `json:"discount"`
	Message  string          `json:"message"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderFailed    OrderStatus = "failed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Order is created once per checkout. Total is fixed at creation.
type Order struct {
	ID          string          `json:"id"`
	UserID      int64           `json:"user_id"`
	Items       []OrderItem     `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Shipping    decimal.Decimal `json:"shipping"`
	Tax         decimal.Decimal `json:"tax"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	VoucherCode string          `json:"voucher_code,omitempty"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CheckoutReceipt is what the checkout endpoint returns.
type CheckoutReceipt struct {
	OrderID string          `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}

// Quote is the Pricing Engine output. All fields are unrounded.
type Quote struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

type PushRequest struct {
	Phone   string `json:"phone"`
	Amount  int64  `json:"amount"`
	OrderID string `json:"orderId"`
}

// PaymentAttempt lives for one polling session only.
type PaymentAttempt struct {
	OrderID   string
	Phone     string
	StartedAt time.Time
	Deadline  time.Time
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// Payment is the backend record of one push-payment request.
type Payment struct {
	CheckoutRequestID string        `json:"checkout_request_id"`
	OrderID           string        `json:"order_id"`
	Phone             string        `json:"phone"`
	Amount            int64         `json:"amount"`
	Status            PaymentStatus `json:"status"`
	ResultDesc        string        `json:"result_desc,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}
