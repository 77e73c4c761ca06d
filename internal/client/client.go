// Package client is the typed storefront API. Authenticated calls go through
// the gateway; login and registration use the plain HTTP client, which shares
// the cookie jar that carries the refresh cookie.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/gateway"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

type Client struct {
	baseURL string
	gw      *gateway.Gateway
	anon    *http.Client
	store   ports.TokenStore
}

func New(baseURL string, gw *gateway.Gateway, anon *http.Client, store ports.TokenStore) *Client {
	if anon == nil {
		anon = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		gw:      gw,
		anon:    anon,
		store:   store,
	}
}

type errorBody struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *domain.User `json:"user"`
}

type cartResponse struct {
	Items []domain.CartLine `json:"items"`
}

type orderResponse struct {
	Order *domain.Order `json:"order"`
}

func (c *Client) Register(ctx context.Context, email, password string) (*domain.User, error) {
	var out struct {
		User *domain.User `json:"user"`
	}
	if err := c.anonJSON(ctx, http.MethodPost, "/api/auth/register", credentials{email, password}, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Login authenticates and stores the access credential. The refresh
// credential arrives as a cookie and never passes through this code.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var out loginResponse
	if err := c.anonJSON(ctx, http.MethodPost, "/api/auth/login", credentials{email, password}, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, errors.New("login response carried no access token")
	}
	if err := c.store.Set(ctx, out.AccessToken); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}
	return out.User, nil
}

// Logout revokes the refresh cookie server-side and clears the local slot
// even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	callErr := c.authJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	if callErr != nil && !gateway.IsRefreshFailure(callErr) {
		return callErr
	}
	return nil
}

func (c *Client) GetCart(ctx context.Context) ([]domain.CartLine, error) {
	var out cartResponse
	if err := c.authJSON(ctx, http.MethodGet, "/api/cart", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) AddCartItem(ctx context.Context, productID int64, quantity int) ([]domain.CartLine, error) {
	in := struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}{productID, quantity}
	var out cartResponse
	if err := c.authJSON(ctx, http.MethodPost, "/api/cart/items", in, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, productID int64) ([]domain.CartLine, error) {
	var out cartResponse
	if err := c.authJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/items/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// ValidateVoucher returns a *domain.VoucherRejectedError when the server
// rejects the code for a business reason.
func (c *Client) ValidateVoucher(ctx context.Context, code string, cartTotal decimal.Decimal) (*domain.AppliedVoucher, error) {
	in := struct {
		Code      string          `json:"code"`
		CartTotal decimal.Decimal `json:"cartTotal"`
	}{code, cartTotal}
	var out domain.AppliedVoucher
	err := c.authJSON(ctx, http.MethodPost, "/api/vouchers/validate", in, &out)
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.Reason != "" && remote.Status < http.StatusInternalServerError &&
		remote.Status != http.StatusUnauthorized && remote.Status != http.StatusForbidden {
		return nil, &domain.VoucherRejectedError{Reason: domain.VoucherRejection(remote.Reason), Message: remote.Message}
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Checkout(ctx context.Context, voucherCode string) (*domain.CheckoutReceipt, error) {
	in := struct {
		VoucherCode string `json:"voucherCode,omitempty"`
	}{voucherCode}
	var out domain.CheckoutReceipt
	if err := c.authJSON(ctx, http.MethodPost, "/api/checkout", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var out orderResponse
	if err := c.authJSON(ctx, http.MethodGet, "/api/order/"+url.PathEscape(orderID), nil, &out); err != nil {
		return nil, err
	}
	if out.Order == nil {
		return nil, fmt.Errorf("order %s: empty response", orderID)
	}
	return out.Order, nil
}

// InitiatePush asks the backend to send the payment prompt. Completion is
// observed through the order status only.
func (c *Client) InitiatePush(ctx context.Context, req domain.PushRequest) error {
	return c.authJSON(ctx, http.MethodPost, "/api/mpesa/stkpush", req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path string, in interface{}) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) authJSON(ctx context.Context, method, path string, in, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}
	resp, err := c.gw.Do(req)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) anonJSON(ctx context.Context, method, path string, in, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}
	resp, err := c.anon.Do(req)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorBody
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body)
		return &domain.RemoteError{Status: resp.StatusCode, Message: body.Message, Reason: body.Reason}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL.Path, err)
	}
	return nil
}
