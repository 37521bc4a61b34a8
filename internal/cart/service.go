// Package cart implements the per-user cart: line management and the money
// arithmetic keeping the cached total consistent with the item subtotals.
package cart

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/catalog"
	"storefront_back_end/internal/models"
	"storefront_back_end/internal/money"
	"storefront_back_end/internal/repository"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrItemNotFound    = errors.New("item not found in cart")

	// Computation errors guard against corrupt upstream data producing
	// non-numeric money values. They surface as 500s.
	ErrItemSubtotal = errors.New("error calculating item subtotal")
	ErrCartTotal    = errors.New("error calculating cart total")
)

type Service struct {
	carts   repository.CartRepository
	catalog *catalog.Service
	log     zerolog.Logger
}

func NewService(carts repository.CartRepository, cat *catalog.Service, log zerolog.Logger) *Service {
	return &Service{carts: carts, catalog: cat, log: log}
}

// Get returns the user's cart with products resolved, creating and persisting
// an empty one on first access.
func (s *Service) Get(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, err
		}
		c = emptyCart(userID)
		if err := s.carts.Save(ctx, c); err != nil {
			return nil, err
		}
	}
	s.resolve(ctx, c)
	return c, nil
}

// Add puts quantity units of (product, variant) into the cart, merging into an
// existing line when one matches. The unit price is snapshotted at add time;
// a merge refreshes the snapshot to the currently resolved price.
func (s *Service) Add(ctx context.Context, userID string, productID primitive.ObjectID, quantity int, variant string) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.catalog.Lookup(ctx, productID)
	if err != nil {
		return nil, err
	}

	price := s.catalog.ResolvePrice(ctx, p)
	subtotal := money.LineSubtotal(price, quantity)
	if !money.Valid(subtotal) {
		s.log.Error().Float64("price", price).Int("quantity", quantity).Msg("invalid subtotal computation")
		return nil, ErrItemSubtotal
	}

	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, err
		}
		c = emptyCart(userID)
	}

	if i := c.FindLine(productID, variant); i >= 0 {
		item := &c.Items[i]
		item.Quantity += quantity
		item.Price = price
		item.Subtotal = money.LineSubtotal(price, item.Quantity)
	} else {
		c.Items = append(c.Items, models.CartItem{
			ID:        primitive.NewObjectID().Hex(),
			ProductID: productID,
			Quantity:  quantity,
			Variant:   variant,
			Price:     price,
			Subtotal:  subtotal,
		})
	}

	if err := s.recomputeTotal(c); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	s.resolve(ctx, c)
	return c, nil
}

// UpdateQuantity sets a line to quantity, repricing the line from the current
// catalog price. Quantity 0 deletes the line. The request fails when it
// exceeds the product's current inventory, leaving the cart untouched.
func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := c.FindItem(itemID)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	p, err := s.catalog.Lookup(ctx, c.Items[i].ProductID)
	if err != nil {
		return nil, err
	}

	if p.Inventory < quantity {
		return nil, &models.InsufficientInventoryError{
			ProductID: p.ID.Hex(),
			Requested: quantity,
			Available: p.Inventory,
		}
	}

	if quantity == 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	} else {
		price := p.Price
		if !money.Valid(price) {
			price = 0
		}
		c.Items[i].Quantity = quantity
		c.Items[i].Subtotal = money.LineSubtotal(money.Round2(price), quantity)
	}

	if err := s.recomputeTotal(c); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	s.resolve(ctx, c)
	return c, nil
}

// Remove deletes a line and recomputes the total.
func (s *Service) Remove(ctx context.Context, userID, itemID string) (*models.Cart, error) {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := c.FindItem(itemID)
	if i < 0 {
		return nil, ErrItemNotFound
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)

	if err := s.recomputeTotal(c); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the cart in place. The cart document itself survives.
func (s *Service) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Items = []models.CartItem{}
	c.Total = 0

	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func emptyCart(userID string) *models.Cart {
	return &models.Cart{UserID: userID, Items: []models.CartItem{}, Total: 0}
}

// recomputeTotal rebuilds the cached total as the rounded sum of the line
// subtotals. A corrupt stored subtotal counts as zero so one bad legacy
// document cannot poison the whole total.
func (s *Service) recomputeTotal(c *models.Cart) error {
	subtotals := make([]float64, 0, len(c.Items))
	for _, item := range c.Items {
		sub := item.Subtotal
		if !money.Valid(sub) {
			sub = 0
		}
		subtotals = append(subtotals, sub)
	}
	total := money.Sum(subtotals...)
	if !money.Valid(total) {
		return ErrCartTotal
	}
	c.Total = total
	return nil
}

// resolve attaches current catalog data to each line. A product that vanished
// from the catalog leaves the line's Product nil rather than failing the read.
func (s *Service) resolve(ctx context.Context, c *models.Cart) {
	for i := range c.Items {
		p, err := s.catalog.Lookup(ctx, c.Items[i].ProductID)
		if err != nil {
			continue
		}
		c.Items[i].Product = p
	}
}
