package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

const (
	pqUniqueViolation = "23505"
	pqInvalidText     = "22P02"
)

// PostgresRepository implements the user, cart, voucher and order ports.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	_ ports.UserRepositoryPort    = (*PostgresRepository)(nil)
	_ ports.CartRepositoryPort    = (*PostgresRepository)(nil)
	_ ports.VoucherRepositoryPort = (*PostgresRepository)(nil)
	_ ports.OrderRepositoryPort   = (*PostgresRepository)(nil)
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func (r *PostgresRepository) CreateUser(ctx context.Context, email, passwordHash, role string) (*domain.User, error) {
	user := &domain.User{Email: email, PasswordHash: passwordHash, Role: role}
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at",
		email, passwordHash, role,
	).Scan(&user.ID, &user.CreatedAt)
	if pqCode(err) == pqUniqueViolation {
		return nil, domain.ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1", email)
}

func (r *PostgresRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findUser(ctx, "SELECT id, email, password_hash, role, created_at FROM users WHERE id = $1", id)
}

func (r *PostgresRepository) findUser(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p := &domain.Product{}
	err := r.db.QueryRowContext(ctx, "SELECT id, name, price, active FROM products WHERE id = $1", id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

const cartQuery = `
	SELECT c.product_id, p.name, p.price, c.quantity
	FROM cart_items c
	JOIN products p ON p.id = c.product_id
	WHERE c.user_id = $1
	ORDER BY c.added_at, c.product_id`

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func scanCart(ctx context.Context, q queryer, query string, userID int64) ([]domain.CartLine, error) {
	rows, err := q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, err
		}
		l.ID = strconv.FormatInt(l.ProductID, 10)
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) GetCart(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	return scanCart(ctx, r.db, cartQuery, userID)
}

func (r *PostgresRepository) UpsertCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		userID, productID, quantity)
	return err
}

func (r *PostgresRepository) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) FindVoucher(ctx context.Context, code string) (*domain.Voucher, error) {
	var (
		v          domain.Voucher
		expiresAt  sql.NullTime
		usageLimit sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT code, discount_kind, value, min_spend, expires_at, usage_limit, used_count, active
		FROM vouchers WHERE code = $1`, code,
	).Scan(&v.Code, &v.Kind, &v.Value, &v.MinSpend, &expiresAt, &usageLimit, &v.UsedCount, &v.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		v.ExpiresAt = expiresAt.Time
	}
	if usageLimit.Valid {
		limit := int(usageLimit.Int64)
		v.UsageLimit = &limit
	}
	return &v, nil
}

func (r *PostgresRepository) CreateOrderFromCart(ctx context.Context, userID int64, build ports.OrderBuilder) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	lines, err := scanCart(ctx, tx, cartQuery+" FOR UPDATE OF c", userID)
	if err != nil {
		return nil, fmt.Errorf("lock cart: %w", err)
	}
	order, err := build(lines)
	if err != nil {
		return nil, err
	}

	if order.VoucherCode != "" {
		res, err := tx.ExecContext(ctx, `
			UPDATE vouchers SET used_count = used_count + 1
			WHERE code = $1 AND active AND (usage_limit IS NULL OR used_count < usage_limit)`,
			order.VoucherCode)
		if err != nil {
			return nil, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, &domain.VoucherRejectedError{Reason: domain.VoucherUsageExhausted, Message: "Voucher usage limit reached"}
		}
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, items, subtotal, shipping, tax, discount, total, voucher_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		order.ID, order.UserID, items, order.Subtotal, order.Shipping, order.Tax, order.Discount, order.Total,
		sql.NullString{String: order.VoucherCode, Valid: order.VoucherCode != ""}, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID string, userID int64) (*domain.Order, error) {
	var (
		o           domain.Order
		items       []byte
		voucherCode sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, items, subtotal, shipping, tax, discount, total, voucher_code, status, created_at, updated_at
		FROM orders WHERE id = $1 AND user_id = $2`, orderID, userID,
	).Scan(&o.ID, &o.UserID, &items, &o.Subtotal, &o.Shipping, &o.Tax, &o.Discount, &o.Total, &voucherCode, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) || pqCode(err) == pqInvalidText {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	o.VoucherCode = voucherCode.String
	return &o, nil
}

// CreatePayment records a new push request. reopen moves a failed order back
// to pending in the same transaction.
func (r *PostgresRepository) CreatePayment(ctx context.Context, p *domain.Payment, reopen bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (checkout_request_id, order_id, phone, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.CheckoutRequestID, p.OrderID, p.Phone, p.Amount, p.Status, p.CreatedAt)
	if err != nil {
		return err
	}
	if reopen {
		_, err = tx.ExecContext(ctx,
			"UPDATE orders SET status = $2, updated_at = now() WHERE id = $1 AND status = $3",
			p.OrderID, domain.OrderPending, domain.OrderFailed)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) FindPayment(ctx context.Context, checkoutRequestID string) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := r.db.QueryRowContext(ctx, `
		SELECT checkout_request_id, order_id, phone, amount, status, result_desc, created_at
		FROM payments WHERE checkout_request_id = $1`, checkoutRequestID,
	).Scan(&p.CheckoutRequestID, &p.OrderID, &p.Phone, &p.Amount, &p.Status, &p.ResultDesc, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CompletePayment settles a pending payment and its order together. A
// payment that is already settled is left alone.
func (r *PostgresRepository) CompletePayment(ctx context.Context, checkoutRequestID string, status domain.PaymentStatus, resultDesc string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var orderID string
	err = tx.QueryRowContext(ctx, `
		UPDATE payments SET status = $2, result_desc = $3, updated_at = now()
		WHERE checkout_request_id = $1 AND status = $4
		RETURNING order_id`,
		checkoutRequestID, status, resultDesc, domain.PaymentPending,
	).Scan(&orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	orderStatus := domain.OrderFailed
	if status == domain.PaymentSuccess {
		orderStatus = domain.OrderPaid
	}
	_, err = tx.ExecContext(ctx,
		"UPDATE orders SET status = $2, updated_at = now() WHERE id = $1 AND status IN ($3, $4)",
		orderID, orderStatus, domain.OrderPending, domain.OrderFailed)
	if err != nil {
		return err
	}
	return tx.Commit()
}
