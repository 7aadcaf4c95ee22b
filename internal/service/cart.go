package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ekarimov/restoran/internal/cart"
	"github.com/ekarimov/restoran/internal/logging"
	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/repo"
)

// CartService owns the durable session carts. Every mutation loads the
// session's lines, refreshes their stock bounds from the live catalog,
// applies one cart state-machine transition and persists the result.
// Transitions never fail; unknown ids and depleted stock degrade to
// no-ops, matching the state machine.
type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return s.load(ctx, sessionID)
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prod, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logging.FromContext(ctx).Warn("cart_add_unknown_product", "productID", productID)
			return c, nil
		}
		return nil, err
	}

	c.AddItem(*prod)
	return c, s.save(ctx, sessionID, c)
}

func (s *CartService) IncreaseQuantity(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	return s.transition(ctx, sessionID, func(c *cart.Cart) { c.IncreaseQuantity(productID) })
}

func (s *CartService) DecreaseQuantity(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	return s.transition(ctx, sessionID, func(c *cart.Cart) { c.DecreaseQuantity(productID) })
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	return s.transition(ctx, sessionID, func(c *cart.Cart) { c.RemoveItem(productID) })
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.Repo.ClearCart(ctx, sessionID)
}

func (s *CartService) transition(ctx context.Context, sessionID string, fn func(*cart.Cart)) (*cart.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(c)
	return c, s.save(ctx, sessionID, c)
}

// load rebuilds the cart from its persisted lines and refreshes each
// line's stock bound against the live catalog, so increments are always
// checked against current availability. Lines whose product vanished keep
// a zero bound.
func (s *CartService) load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	stored, err := s.Repo.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(stored))
	for _, l := range stored {
		line := cart.Line{
			ProductID: l.ProductID,
			Title:     l.Title,
			UnitPrice: l.UnitPrice,
			Discount:  l.Discount,
			Stock:     l.Stock,
			Quantity:  l.Quantity,
		}
		prod, err := s.Repo.GetProduct(ctx, l.ProductID)
		switch {
		case err == nil:
			line.Stock = prod.Stock
		case errors.Is(err, gorm.ErrRecordNotFound):
			line.Stock = 0
		default:
			return nil, err
		}
		lines = append(lines, line)
	}
	return cart.New(lines), nil
}

func (s *CartService) save(ctx context.Context, sessionID string, c *cart.Cart) error {
	lines := c.Lines()
	stored := make([]models.CartLine, len(lines))
	for i, l := range lines {
		stored[i] = models.CartLine{
			SessionID: sessionID,
			ProductID: l.ProductID,
			Title:     l.Title,
			UnitPrice: l.UnitPrice,
			Discount:  l.Discount,
			Stock:     l.Stock,
			Quantity:  l.Quantity,
		}
	}
	return s.Repo.ReplaceCart(ctx, sessionID, stored)
}
