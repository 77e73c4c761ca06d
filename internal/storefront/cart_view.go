package storefront

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

// CartView is the client's read-through copy of the server cart. Lookups go
// memory, then the optional shared cache, then the cart service. The server
// stays authoritative; the view is re-read after every mutation.
type CartView struct {
	remote   ports.CartPort
	cache    ports.CachePort
	cacheKey string
	scope    string
	log      *logrus.Entry

	mu     sync.Mutex
	lines  []domain.CartLine
	loaded bool
}

// NewCartView builds a view for one session. cache may be nil.
func NewCartView(remote ports.CartPort, cache ports.CachePort, session string, log *logrus.Entry) *CartView {
	return &CartView{
		remote:   remote,
		cache:    cache,
		cacheKey: "cart:" + session + ":lines",
		scope:    "cart:" + session + ":",
		log:      log,
	}
}

func (v *CartView) Lines(ctx context.Context) ([]domain.CartLine, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loaded {
		return copyLines(v.lines), nil
	}
	if v.cache != nil {
		if b, err := v.cache.Get(ctx, v.cacheKey); err == nil {
			var lines []domain.CartLine
			if err := json.Unmarshal(b, &lines); err == nil {
				v.lines, v.loaded = lines, true
				return copyLines(lines), nil
			}
		}
	}
	return v.fetchLocked(ctx)
}

// Refresh discards local copies and reads the server cart.
func (v *CartView) Refresh(ctx context.Context) ([]domain.CartLine, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetchLocked(ctx)
}

// Replace installs lines the server just returned from a mutation.
func (v *CartView) Replace(ctx context.Context, lines []domain.CartLine) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.storeLocked(ctx, lines)
}

// Clear empties the view without a server round trip. Checkout calls it once
// the server has confirmed the order.
func (v *CartView) Clear(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.lines, v.loaded = nil, true
	if v.cache != nil {
		if err := v.cache.DeleteByPrefix(ctx, v.scope); err != nil {
			v.log.WithError(err).Warn("failed to drop cached cart")
		}
	}
}

func (v *CartView) fetchLocked(ctx context.Context) ([]domain.CartLine, error) {
	lines, err := v.remote.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	v.storeLocked(ctx, lines)
	return copyLines(lines), nil
}

func (v *CartView) storeLocked(ctx context.Context, lines []domain.CartLine) {
	v.lines, v.loaded = copyLines(lines), true
	if v.cache == nil {
		return
	}
	if err := v.cache.Set(ctx, v.cacheKey, lines); err != nil {
		v.log.WithError(err).Warn("failed to cache cart")
	}
}

func copyLines(lines []domain.CartLine) []domain.CartLine {
	if lines == nil {
		return nil
	}
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
