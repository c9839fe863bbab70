package services

import (
	"context"
	"errors"

	"vitrine/cart"
	"vitrine/logger"
	"vitrine/repository"

	"go.uber.org/zap"
)

// CartView is what cart widgets render: the lines plus recomputed totals.
type CartView struct {
	Lines  []cart.Line `json:"lines"`
	Count  int         `json:"count"`
	Totals cart.Totals `json:"totals"`
}

// CartService owns guest cart mutations. Every mutation recomputes totals,
// persists the whole cart and broadcasts a change event on the bus.
type CartService struct {
	store repository.CartStore
	bus   *cart.Bus
}

func NewCartService(store repository.CartStore, bus *cart.Bus) *CartService {
	return &CartService{store: store, bus: bus}
}

func (s *CartService) Bus() *cart.Bus {
	return s.bus
}

// Get loads the cart for a token, empty if none exists.
func (s *CartService) Get(ctx context.Context, token string) (*CartView, *ServiceError) {
	c, err := s.store.GetCart(ctx, token)
	if err != nil {
		logger.Log.Error("failed to load cart", zap.Error(err))
		return nil, internal("Failed to load cart")
	}
	return viewOf(c), nil
}

// Add puts one unit of a (parfum, size) variant in the cart, merging with
// an existing line. Invalid price or size is a warning to the user, not an
// added item.
func (s *CartService) Add(ctx context.Context, token, parfumID, size string, unitPrice float64, name, imageURL string) (*CartView, *ServiceError) {
	return s.mutate(ctx, token, func(c *cart.Cart) *ServiceError {
		if err := c.Add(parfumID, size, unitPrice, name, imageURL); err != nil {
			if errors.Is(err, cart.ErrInvalidPrice) || errors.Is(err, cart.ErrInvalidSize) {
				return badRequest(err.Error())
			}
			return internal("Failed to update cart")
		}
		return nil
	})
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *CartService) SetQuantity(ctx context.Context, token, parfumID, size string, quantity int) (*CartView, *ServiceError) {
	return s.mutate(ctx, token, func(c *cart.Cart) *ServiceError {
		c.SetQuantity(parfumID, size, quantity)
		return nil
	})
}

// Remove deletes a line.
func (s *CartService) Remove(ctx context.Context, token, parfumID, size string) (*CartView, *ServiceError) {
	return s.mutate(ctx, token, func(c *cart.Cart) *ServiceError {
		c.Remove(parfumID, size)
		return nil
	})
}

// Clear empties the cart, typically after a successful checkout.
func (s *CartService) Clear(ctx context.Context, token string) *ServiceError {
	if err := s.store.DeleteCart(ctx, token); err != nil {
		logger.Log.Error("failed to clear cart", zap.Error(err))
		return internal("Failed to clear cart")
	}
	s.bus.Publish(cart.Event{Token: token})
	return nil
}

func (s *CartService) mutate(ctx context.Context, token string, fn func(c *cart.Cart) *ServiceError) (*CartView, *ServiceError) {
	c, err := s.store.GetCart(ctx, token)
	if err != nil {
		logger.Log.Error("failed to load cart", zap.Error(err))
		return nil, internal("Failed to load cart")
	}

	if svcErr := fn(c); svcErr != nil {
		return viewOf(c), svcErr
	}

	if err := s.store.SaveCart(ctx, token, c); err != nil {
		logger.Log.Error("failed to save cart", zap.Error(err))
		return nil, internal("Failed to save cart")
	}

	s.bus.Publish(cart.Event{
		Token:  token,
		Count:  c.Count(),
		Totals: c.Totals(),
	})
	return viewOf(c), nil
}

func viewOf(c *cart.Cart) *CartView {
	return &CartView{
		Lines:  c.Lines,
		Count:  c.Count(),
		Totals: c.Totals(),
	}
}
