package client

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/gateway"
	"github.com/mahabubulhasibshawon/storefront/internal/logger"
)

type memStore struct {
	mu    sync.Mutex
	token string
}

func (s *memStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *memStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memStore) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}

// fakeBackend issues "access-N" tokens and a refresh cookie, and rejects
// anything but the latest access token.
type fakeBackend struct {
	mu      sync.Mutex
	current string
	issued  int
}

func (b *fakeBackend) issue(w http.ResponseWriter) string {
	b.issued++
	b.current = "access-" + string(rune('0'+b.issued))
	http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r", Path: "/api/auth", HttpOnly: true})
	return b.current
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch r.URL.Path {
	case "/api/auth/login":
		var in credentials
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, errorBody{Message: "Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"accessToken": b.issue(w),
			"user":        domain.User{ID: 1, Email: in.Email, Role: domain.RoleCustomer},
		})
		return
	case "/api/auth/refresh":
		if _, err := r.Cookie("refresh_token"); err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Message: "no refresh cookie"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": b.issue(w)})
		return
	}

	if r.Header.Get("Authorization") != "Bearer "+b.current {
		writeJSON(w, http.StatusUnauthorized, errorBody{Message: "token expired"})
		return
	}

	switch {
	case r.URL.Path == "/api/auth/logout":
		writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
	case r.URL.Path == "/api/cart":
		writeJSON(w, http.StatusOK, cartResponse{Items: []domain.CartLine{
			{ID: "1", ProductID: 1, Name: "Kikoy", UnitPrice: decimal.NewFromInt(600), Quantity: 2},
		}})
	case r.URL.Path == "/api/vouchers/validate":
		var in struct {
			Code      string          `json:"code"`
			CartTotal decimal.Decimal `json:"cartTotal"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Code != "SAVE200" {
			writeJSON(w, http.StatusBadRequest, errorBody{Message: "Voucher has expired", Reason: "expired"})
			return
		}
		writeJSON(w, http.StatusOK, domain.AppliedVoucher{
			Voucher:  domain.Voucher{Code: "SAVE200", Kind: domain.DiscountFixed, Value: decimal.NewFromInt(200)},
			Discount: decimal.NewFromInt(200),
			Message:  "Voucher applied",
		})
	case r.URL.Path == "/api/checkout":
		var in struct {
			VoucherCode string `json:"voucherCode"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.VoucherCode == "BROKEN" {
			writeJSON(w, http.StatusConflict, errorBody{Message: "Voucher usage limit reached"})
			return
		}
		writeJSON(w, http.StatusCreated, domain.CheckoutReceipt{OrderID: "ord-1", Total: decimal.NewFromInt(1192)})
	case strings.HasPrefix(r.URL.Path, "/api/order/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/order/")
		if id != "ord-1" {
			writeJSON(w, http.StatusNotFound, errorBody{Message: "Order not found"})
			return
		}
		writeJSON(w, http.StatusOK, orderResponse{Order: &domain.Order{ID: id, Status: domain.OrderPaid, Total: decimal.NewFromInt(1192)}})
	case r.URL.Path == "/api/mpesa/stkpush":
		var in domain.PushRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Amount != 1192 {
			writeJSON(w, http.StatusBadRequest, errorBody{Message: "Amount does not match order total"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "STK push sent", "checkoutRequestId": "ws_1"})
	default:
		http.NotFound(w, r)
	}
}

func (b *fakeBackend) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = "rotated-away"
}

func newTestClient(t *testing.T) (*Client, *memStore, *fakeBackend) {
	backend := &fakeBackend{}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	httpClient := &http.Client{Jar: jar}
	store := &memStore{}
	gw := gateway.New(httpClient, store, &gateway.HTTPRefresher{BaseURL: srv.URL, Client: httpClient}, logger.Discard())
	return New(srv.URL, gw, httpClient, store), store, backend
}

func TestClient_LoginStoresCredential(t *testing.T) {
	c, store, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "a@example.com", "wrong")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Invalid email or password", remote.Message)
	assert.Empty(t, store.token)

	user, err := c.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "access-1", store.token)
}

func TestClient_ExpiredCredentialIsRefreshedTransparently(t *testing.T) {
	c, store, backend := newTestClient(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	backend.expire()

	lines, err := c.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "access-2", store.token)
}

func TestClient_ValidateVoucher(t *testing.T) {
	c, _, _ := newTestClient(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	applied, err := c.ValidateVoucher(ctx, "SAVE200", decimal.NewFromInt(1200))
	require.NoError(t, err)
	assert.True(t, applied.Discount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "Voucher applied", applied.Message)

	_, err = c.ValidateVoucher(ctx, "OLD", decimal.NewFromInt(1200))
	var rejected *domain.VoucherRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, domain.VoucherExpired, rejected.Reason)
	assert.Equal(t, "Voucher has expired", domain.UserMessage(err, "fallback"))
}

func TestClient_CheckoutOrderAndPush(t *testing.T) {
	c, _, _ := newTestClient(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	receipt, err := c.Checkout(ctx, "SAVE200")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", receipt.OrderID)
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(1192)))

	_, err = c.Checkout(ctx, "BROKEN")
	assert.Equal(t, "Voucher usage limit reached", domain.UserMessage(err, "Checkout failed"))

	order, err := c.GetOrder(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, order.Status)

	_, err = c.GetOrder(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, c.InitiatePush(ctx, domain.PushRequest{Phone: "254712345678", Amount: 1192, OrderID: "ord-1"}))
	err = c.InitiatePush(ctx, domain.PushRequest{Phone: "254712345678", Amount: 1, OrderID: "ord-1"})
	assert.Equal(t, "Amount does not match order total", domain.UserMessage(err, ""))
}

func TestClient_LogoutClearsCredential(t *testing.T) {
	c, store, _ := newTestClient(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx))
	assert.Empty(t, store.token)
}

func startOrderStatusServer(t *testing.T, handler func(ctx context.Context, id string) (*structpb.Struct, error)) *grpc.ClientConn {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	srv.RegisterService(&grpc.ServiceDesc{
		ServiceName: "storefront.OrderStatus",
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{{
			MethodName: "GetOrder",
			Handler: func(_ interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
				in := new(wrapperspb.StringValue)
				if err := dec(in); err != nil {
					return nil, err
				}
				return handler(ctx, in.GetValue())
			},
		}},
	}, struct{}{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestOrderStatusClient_GetOrder(t *testing.T) {
	conn := startOrderStatusServer(t, func(ctx context.Context, id string) (*structpb.Struct, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		if len(md.Get("authorization")) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}
		if id != "ord-1" {
			return nil, status.Error(codes.NotFound, "order not found")
		}
		return structpb.NewStruct(map[string]interface{}{"id": id, "status": "paid", "total": "1392"})
	})
	c := NewOrderStatusClient(conn)

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer t")
	order, err := c.GetOrder(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(1392)))

	_, err = c.GetOrder(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.GetOrder(context.Background(), "ord-1")
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
