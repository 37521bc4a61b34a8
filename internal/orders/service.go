// Package orders turns carts and direct requests into persisted orders:
// inventory validation, simulated payment outcome, order numbering and the
// best-effort side effects that follow a committed order.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/catalog"
	"storefront_back_end/internal/models"
	"storefront_back_end/internal/repository"
)

var ErrEmptyCart = errors.New("cart is empty")

// Notifier delivers the order email. Failures are recorded, never fatal.
type Notifier interface {
	SendOrderEmail(ctx context.Context, o *models.Order) error
}

type Service struct {
	orders   repository.OrderRepository
	carts    repository.CartRepository
	catalog  *catalog.Service
	notifier Notifier
	log      zerolog.Logger
}

func NewService(orders repository.OrderRepository, carts repository.CartRepository, cat *catalog.Service, notifier Notifier, log zerolog.Logger) *Service {
	return &Service{orders: orders, carts: carts, catalog: cat, notifier: notifier, log: log}
}

// DirectRequest is the legacy single-product checkout payload. Subtotal and
// Total are caller-supplied and trusted as-is; only the cart path derives
// totals server-side.
type DirectRequest struct {
	ProductID   primitive.ObjectID
	Variant     string
	Quantity    int
	Subtotal    float64
	Total       float64
	Customer    models.Customer
	PaymentInfo *models.PaymentInfo
}

// NewOrderNumber returns ORD- followed by 8 uppercase hex characters from a
// random uuid.
func NewOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// statusFromCVV derives the simulated payment outcome from the test code:
// 1 approved, 2 declined, 3 error, anything else approved.
func statusFromCVV(pi *models.PaymentInfo) string {
	if pi == nil {
		return models.StatusApproved
	}
	switch pi.CVV {
	case "2":
		return models.StatusDeclined
	case "3":
		return models.StatusError
	default:
		return models.StatusApproved
	}
}

// CreateDirect places a single-product order. The product is resolved with
// the order-path fallbacks, inventory is validated before any write, and the
// side effects after the insert are best-effort.
func (s *Service) CreateDirect(ctx context.Context, req DirectRequest) (*models.Order, []TaskResult, error) {
	p, err := s.catalog.Resolve(ctx, req.ProductID)
	if err != nil {
		return nil, nil, err
	}

	if p.Inventory < req.Quantity {
		return nil, nil, &models.InsufficientInventoryError{
			ProductID: req.ProductID.Hex(),
			Requested: req.Quantity,
			Available: p.Inventory,
		}
	}

	status := statusFromCVV(req.PaymentInfo)
	productID := req.ProductID

	order := &models.Order{
		OrderNumber: NewOrderNumber(),
		ProductID:   &productID,
		Variant:     req.Variant,
		Quantity:    req.Quantity,
		Subtotal:    req.Subtotal,
		Total:       req.Total,
		Customer:    req.Customer,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, nil, err
	}
	s.log.Info().Str("order", order.OrderNumber).Str("status", status).Msg("order created")

	order.Product = p

	var tasks []task
	if status == models.StatusApproved {
		tasks = append(tasks, s.decrementTask(req.ProductID, req.Quantity))
	}
	tasks = append(tasks, s.notifyTask(order))

	return order, s.runPostCommit(ctx, order.OrderNumber, tasks), nil
}

// CreateFromCart places an order for everything in the user's cart. Inventory
// is validated for every item before anything is written: one shortfall fails
// the whole request and no order is persisted.
func (s *Service) CreateFromCart(ctx context.Context, userID string, customer models.Customer, pi *models.PaymentInfo) (*models.Order, []TaskResult, error) {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil, ErrEmptyCart
		}
		return nil, nil, err
	}
	if len(c.Items) == 0 {
		return nil, nil, ErrEmptyCart
	}

	resolved := make(map[primitive.ObjectID]*models.Product, len(c.Items))
	for _, item := range c.Items {
		p, err := s.catalog.Lookup(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, nil, fmt.Errorf("product %s: %w", item.ProductID.Hex(), err)
			}
			return nil, nil, err
		}
		if p.Inventory < item.Quantity {
			return nil, nil, &models.InsufficientInventoryError{
				ProductID:    p.ID.Hex(),
				ProductTitle: p.Title,
				Requested:    item.Quantity,
				Available:    p.Inventory,
			}
		}
		resolved[item.ProductID] = p
	}

	status := statusFromCVV(pi)

	items := make([]models.OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Variant:   item.Variant,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		})
	}

	order := &models.Order{
		OrderNumber: NewOrderNumber(),
		Items:       items,
		Subtotal:    c.Total,
		Total:       c.Total, // no tax/shipping layer; extension point
		Customer:    customer,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, nil, err
	}
	s.log.Info().Str("order", order.OrderNumber).Str("status", status).Int("items", len(items)).Msg("order created from cart")

	for i := range order.Items {
		order.Items[i].Product = resolved[order.Items[i].ProductID]
	}

	var tasks []task
	if status == models.StatusApproved {
		for _, item := range order.Items {
			tasks = append(tasks, s.decrementTask(item.ProductID, item.Quantity))
		}
		tasks = append(tasks, s.clearCartTask(c))
	}
	tasks = append(tasks, s.notifyTask(order))

	return order, s.runPostCommit(ctx, order.OrderNumber, tasks), nil
}

// GetByNumber fetches an order by its human-readable number with product
// details resolved.
func (s *Service) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.orders.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	s.resolve(ctx, order)
	return order, nil
}

// resolve attaches catalog data to the order's items (or the legacy single
// product). A missing product leaves the reference nil.
func (s *Service) resolve(ctx context.Context, o *models.Order) {
	if o.ProductID != nil {
		if p, err := s.catalog.Lookup(ctx, *o.ProductID); err == nil {
			o.Product = p
		}
	}
	for i := range o.Items {
		if p, err := s.catalog.Lookup(ctx, o.Items[i].ProductID); err == nil {
			o.Items[i].Product = p
		}
	}
}
