//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

// TokenStore is the single persisted slot for the access credential.
// Get returns "" and a nil error when the slot is empty.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type CartPort interface {
	GetCart(ctx context.Context) ([]domain.CartLine, error)
}

type VoucherPort interface {
	ValidateVoucher(ctx context.Context, code string, cartTotal decimal.Decimal) (*domain.AppliedVoucher, error)
}

type CheckoutPort interface {
	Checkout(ctx context.Context, voucherCode string) (*domain.CheckoutReceipt, error)
}

type OrderPort interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type PaymentPushPort interface {
	InitiatePush(ctx context.Context, req domain.PushRequest) error
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

type UserRepositoryPort interface {
	CreateUser(ctx context.Context, email, passwordHash, role string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type CartRepositoryPort interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetCart(ctx context.Context, userID int64) ([]domain.CartLine, error)
	UpsertCartItem(ctx context.Context, userID, productID int64, quantity int) error
	RemoveCartItem(ctx context.Context, userID, productID int64) error
}

type VoucherRepositoryPort interface {
	FindVoucher(ctx context.Context, code string) (*domain.Voucher, error)
}

// OrderBuilder turns the locked cart contents into the order to insert.
type OrderBuilder func(lines []domain.CartLine) (*domain.Order, error)

type OrderRepositoryPort interface {
	// CreateOrderFromCart locks the user's cart, builds the order from it,
	// inserts it, consumes one use of its voucher and empties the cart, all
	// in one transaction.
	CreateOrderFromCart(ctx context.Context, userID int64, build OrderBuilder) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string, userID int64) (*domain.Order, error)
	CreatePayment(ctx context.Context, p *domain.Payment, reopen bool) error
	FindPayment(ctx context.Context, checkoutRequestID string) (*domain.Payment, error)
	CompletePayment(ctx context.Context, checkoutRequestID string, status domain.PaymentStatus, resultDesc string) error
}

// RefreshStorePort keeps opaque, single-use refresh tokens.
type RefreshStorePort interface {
	Issue(ctx context.Context, userID int64) (string, error)
	Rotate(ctx context.Context, token string) (int64, string, error)
	Revoke(ctx context.Context, token string) error
}

type PushProviderPort interface {
	Push(ctx context.Context, req domain.PushRequest) (string, error)
}
