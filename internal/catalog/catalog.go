// Package catalog wraps product lookup together with the demo self-healing
// behaviors: synthesizing missing products, replenishing low stock and
// repairing invalid prices. All of that sits behind Policy flags so a
// production configuration can run with every fallback disabled.
package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/models"
	"storefront_back_end/internal/money"
	"storefront_back_end/internal/repository"
)

// DefaultPrice is substituted whenever a stored product carries no usable
// price.
const DefaultPrice = 85.00

const (
	replenishThreshold = 100
	replenishTarget    = 1000

	fallbackTitle       = "Converse Chuck Taylor All Star"
	fallbackDescription = "The classic Chuck Taylor with premium materials and enhanced comfort"
	fallbackImage       = "https://i.imgur.com/8yJQQJ9.jpeg"
	fallbackInventory   = 1000

	seedTitle       = "Converse Chuck Taylor All Star II Hi"
	seedDescription = "The Converse Chuck Taylor All Star II Hi gives the classic Chuck Taylor a modern upgrade with premium materials and enhanced comfort features."
	seedInventory   = 100
)

func demoVariants() []models.Variant {
	return []models.Variant{
		{Name: "Color", Options: []string{"Black", "White", "Red", "Blue"}},
		{Name: "Size", Options: []string{"7", "8", "9", "10", "11", "12"}},
	}
}

// Policy gates the demo conveniences. Everything on is the demo deployment;
// everything off is a plain catalog.
type Policy struct {
	AutoCreateMissing  bool
	ReplenishDemoStock bool
	RepairInvalidPrice bool
}

type Service struct {
	products repository.ProductRepository
	policy   Policy
	log      zerolog.Logger
}

func NewService(products repository.ProductRepository, policy Policy, log zerolog.Logger) *Service {
	return &Service{products: products, policy: policy, log: log}
}

// Lookup is a plain by-id fetch with no self-healing. The cart path uses it:
// a missing product fails the call.
func (s *Service) Lookup(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Resolve is the order-path fetch. A missing product is synthesized under the
// requested id when the policy allows it, and low demo stock is topped back up.
// The returned product may be unpersisted when every write around it failed;
// callers must tolerate that.
func (s *Service) Resolve(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) && s.policy.AutoCreateMissing {
			return s.ensureProduct(ctx, id), nil
		}
		return nil, err
	}

	if p.Inventory < replenishThreshold && s.policy.ReplenishDemoStock {
		if err := s.products.SetInventory(ctx, id, replenishTarget); err != nil {
			s.log.Warn().Err(err).Str("product_id", id.Hex()).Msg("failed to replenish inventory")
		} else {
			s.log.Info().Str("product", p.Title).Int("inventory", replenishTarget).Msg("replenished demo inventory")
			p.Inventory = replenishTarget
		}
	}

	return p, nil
}

// ensureProduct synthesizes the default demo product under id. When the insert
// fails the unpersisted value is still returned so checkout can proceed.
func (s *Service) ensureProduct(ctx context.Context, id primitive.ObjectID) *models.Product {
	p := &models.Product{
		ID:          id,
		Title:       fallbackTitle,
		Description: fallbackDescription,
		Price:       DefaultPrice,
		Image:       fallbackImage,
		Variants:    demoVariants(),
		Inventory:   fallbackInventory,
	}

	if err := s.products.Insert(ctx, p); err != nil {
		s.log.Error().Err(err).Str("product_id", id.Hex()).Msg("failed to create default product, using fallback value")
		return p
	}

	s.log.Info().Str("product_id", id.Hex()).Msg("created default product")
	return p
}

// ResolvePrice returns the unit price to charge for p, rounded to 2 decimals.
// A missing or corrupt price is replaced by DefaultPrice, and the stored
// record is repaired when the policy allows it; a failed repair is not fatal.
func (s *Service) ResolvePrice(ctx context.Context, p *models.Product) float64 {
	price := p.Price
	if !money.Valid(price) || price <= 0 {
		s.log.Warn().Str("product_id", p.ID.Hex()).Float64("price", price).Msg("product has invalid price, using default")
		price = DefaultPrice
		if s.policy.RepairInvalidPrice {
			if err := s.products.SetPrice(ctx, p.ID, price); err != nil {
				s.log.Error().Err(err).Str("product_id", p.ID.Hex()).Msg("failed to repair product price")
			}
		}
		p.Price = price
	}
	return money.Round2(price)
}

// DecrementInventory reserves stock for an approved order. The decrement is a
// single atomic update at the storage layer.
func (s *Service) DecrementInventory(ctx context.Context, id primitive.ObjectID, quantity int) error {
	return s.products.DecrementInventory(ctx, id, quantity)
}

// List returns every catalog product.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

// Seed creates the initial demo product once. When the catalog already has
// products it returns the first one and reports created=false, making the
// endpoint idempotent.
func (s *Service) Seed(ctx context.Context) (*models.Product, bool, error) {
	existing, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, false, err
	}
	if len(existing) > 0 {
		return &existing[0], false, nil
	}

	p := &models.Product{
		Title:       seedTitle,
		Description: seedDescription,
		Price:       DefaultPrice,
		Image:       fallbackImage,
		Variants:    demoVariants(),
		Inventory:   seedInventory,
	}
	if err := s.products.Insert(ctx, p); err != nil {
		return nil, false, err
	}
	s.log.Info().Str("product_id", p.ID.Hex()).Msg("initial product created")
	return p, true, nil
}
