package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/models"
)

// In-memory implementations used as test doubles for the services. They copy
// documents on the way in and out so tests cannot alias stored state.

type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product

	// Err, when set, is returned by every write. Lets tests force
	// dependency failures.
	Err error
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[primitive.ObjectID]models.Product)}
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := p
	return &cp, nil
}

func (r *MemoryProductRepository) FindAll(context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *MemoryProductRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (r *MemoryProductRepository) Insert(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) SetPrice(_ context.Context, id primitive.ObjectID, price float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	p, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Price = price
	r.products[id] = p
	return nil
}

func (r *MemoryProductRepository) SetInventory(_ context.Context, id primitive.ObjectID, inventory int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	p, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Inventory = inventory
	r.products[id] = p
	return nil
}

func (r *MemoryProductRepository) DecrementInventory(_ context.Context, id primitive.ObjectID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	p, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Inventory -= quantity
	r.products[id] = p
	return nil
}

type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart

	Err error
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string]models.Cart)}
}

func (r *MemoryCartRepository) FindByUser(_ context.Context, userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[userID]
	if !ok {
		return nil, ErrCartNotFound
	}
	cp := c
	cp.Items = append([]models.CartItem(nil), c.Items...)
	return &cp, nil
}

func (r *MemoryCartRepository) Save(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	cp := *cart
	cp.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = cp
	return nil
}

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order

	Err error
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepository) Insert(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	r.orders[o.OrderNumber] = cp
	return nil
}

func (r *MemoryOrderRepository) FindByNumber(_ context.Context, orderNumber string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[orderNumber]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	return &cp, nil
}

// Len reports how many orders were persisted. Used by tests asserting that
// failed validations never write.
func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
