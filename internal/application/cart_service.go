package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
)

func userCachePrefix(userID int64) string {
	return fmt.Sprintf("user:%d:", userID)
}

func cartCacheKey(userID int64) string {
	return userCachePrefix(userID) + "cart"
}

type CartService struct {
	repo  ports.CartRepositoryPort
	cache ports.CachePort
	log   *logrus.Entry
}

func NewCartService(repo ports.CartRepositoryPort, cache ports.CachePort, log *logrus.Entry) *CartService {
	return &CartService{repo: repo, cache: cache, log: log}
}

func (s *CartService) GetCart(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	key := cartCacheKey(userID)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var lines []domain.CartLine
		if err := json.Unmarshal(data, &lines); err == nil {
			return lines, nil
		}
	}

	lines, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, lines); err != nil {
		s.log.WithError(err).Warn("failed to cache cart")
	}
	return lines, nil
}

// AddItem sets the quantity of productID in the cart, adding the line when
// missing.
func (s *CartService) AddItem(ctx context.Context, userID, productID int64, quantity int) ([]domain.CartLine, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, domain.ErrNotFound
	}
	if err := s.repo.UpsertCartItem(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return s.GetCart(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int64) ([]domain.CartLine, error) {
	if err := s.repo.RemoveCartItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return s.GetCart(ctx, userID)
}

func (s *CartService) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.DeleteByPrefix(ctx, cartCacheKey(userID)); err != nil {
		s.log.WithError(err).Warn("failed to invalidate cart cache")
	}
}
