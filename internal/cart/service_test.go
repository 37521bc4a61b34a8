package cart

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/catalog"
	"storefront_back_end/internal/models"
	"storefront_back_end/internal/money"
	"storefront_back_end/internal/repository"
)

type testEnv struct {
	products *repository.MemoryProductRepository
	carts    *repository.MemoryCartRepository
	svc      *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	products := repository.NewMemoryProductRepository()
	carts := repository.NewMemoryCartRepository()
	cat := catalog.NewService(products, catalog.Policy{
		AutoCreateMissing:  true,
		ReplenishDemoStock: true,
		RepairInvalidPrice: true,
	}, zerolog.Nop())
	return &testEnv{
		products: products,
		carts:    carts,
		svc:      NewService(carts, cat, zerolog.Nop()),
	}
}

func (e *testEnv) addProduct(t *testing.T, title string, price float64, inventory int) primitive.ObjectID {
	t.Helper()
	p := &models.Product{Title: title, Price: price, Inventory: inventory}
	require.NoError(t, e.products.Insert(context.Background(), p))
	return p.ID
}

// assertTotalInvariant checks total == round2(sum of item subtotals).
func assertTotalInvariant(t *testing.T, c *models.Cart) {
	t.Helper()
	subtotals := make([]float64, len(c.Items))
	for i, item := range c.Items {
		subtotals[i] = item.Subtotal
	}
	assert.Equal(t, money.Sum(subtotals...), c.Total)
}

func TestGetCreatesEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	c, err := env.svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.Total)

	// The empty cart was persisted, not just returned.
	stored, err := env.carts.FindByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, stored.ID)
}

func TestAddNewItem(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	c, err := env.svc.Add(context.Background(), "user-1", id, 3, "Black / 9")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 20.00, c.Items[0].Price)
	assert.Equal(t, 60.00, c.Items[0].Subtotal)
	assert.Equal(t, 60.00, c.Total)
	assert.NotEmpty(t, c.Items[0].ID)
	require.NotNil(t, c.Items[0].Product)
	assert.Equal(t, "Sneaker", c.Items[0].Product.Title)
}

func TestAddMergesSameProductAndVariant(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	_, err := env.svc.Add(context.Background(), "user-1", id, 3, "Black / 9")
	require.NoError(t, err)
	c, err := env.svc.Add(context.Background(), "user-1", id, 2, "Black / 9")
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 100.00, c.Items[0].Subtotal)
	assert.Equal(t, 100.00, c.Total)
}

func TestAddDifferentVariantsStaySeparate(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	_, err := env.svc.Add(context.Background(), "user-1", id, 1, "Black / 9")
	require.NoError(t, err)
	c, err := env.svc.Add(context.Background(), "user-1", id, 1, "White / 8")
	require.NoError(t, err)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 40.00, c.Total)
}

func TestAddUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Add(context.Background(), "user-1", primitive.NewObjectID(), 1, "")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	_, err := env.svc.Add(context.Background(), "user-1", id, 0, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = env.svc.Add(context.Background(), "user-1", id, -2, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddSubstitutesDefaultPriceAndRepairsProduct(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Unpriced", 0, 1000)

	c, err := env.svc.Add(context.Background(), "user-1", id, 2, "")
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultPrice, c.Items[0].Price)
	assert.Equal(t, 170.00, c.Items[0].Subtotal)

	stored, err := env.products.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultPrice, stored.Price)
}

func TestAddRefreshesPriceOnMerge(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	_, err := env.svc.Add(context.Background(), "user-1", id, 1, "")
	require.NoError(t, err)

	require.NoError(t, env.products.SetPrice(context.Background(), id, 25.00))

	c, err := env.svc.Add(context.Background(), "user-1", id, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 25.00, c.Items[0].Price)
	assert.Equal(t, 50.00, c.Items[0].Subtotal)
	assert.Equal(t, 50.00, c.Total)
}

func TestUpdateQuantity(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	c, err := env.svc.Add(context.Background(), "user-1", id, 3, "")
	require.NoError(t, err)
	itemID := c.Items[0].ID

	c, err = env.svc.UpdateQuantity(context.Background(), "user-1", itemID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Items[0].Quantity)
	assert.Equal(t, 140.00, c.Items[0].Subtotal)
	assert.Equal(t, 140.00, c.Total)
}

func TestUpdateQuantityRepricesFromCatalog(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	c, err := env.svc.Add(context.Background(), "user-1", id, 2, "")
	require.NoError(t, err)
	itemID := c.Items[0].ID

	require.NoError(t, env.products.SetPrice(context.Background(), id, 30.00))

	c, err = env.svc.UpdateQuantity(context.Background(), "user-1", itemID, 2)
	require.NoError(t, err)
	// Subtotal follows the current catalog price; the stored price snapshot
	// keeps its add-time value.
	assert.Equal(t, 60.00, c.Items[0].Subtotal)
	assert.Equal(t, 20.00, c.Items[0].Price)
	assert.Equal(t, 60.00, c.Total)
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	c, err := env.svc.Add(context.Background(), "user-1", id, 3, "")
	require.NoError(t, err)
	itemID := c.Items[0].ID

	c, err = env.svc.UpdateQuantity(context.Background(), "user-1", itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.Total)
}

func TestUpdateQuantityNegative(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.UpdateQuantity(context.Background(), "user-1", "whatever", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateQuantityExceedsInventory(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 5000)

	c, err := env.svc.Add(context.Background(), "user-1", id, 3, "")
	require.NoError(t, err)
	itemID := c.Items[0].ID

	_, err = env.svc.UpdateQuantity(context.Background(), "user-1", itemID, 6000)
	var shortfall *models.InsufficientInventoryError
	require.ErrorAs(t, err, &shortfall)
	assert.Equal(t, 6000, shortfall.Requested)
	assert.Equal(t, 5000, shortfall.Available)

	// The cart is untouched by the failed update.
	stored, err := env.carts.FindByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Items[0].Quantity)
	assert.Equal(t, 60.00, stored.Total)
}

func TestUpdateQuantityMissingCartAndItem(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	_, err := env.svc.UpdateQuantity(context.Background(), "nobody", "x", 1)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	_, err = env.svc.Add(context.Background(), "user-1", id, 1, "")
	require.NoError(t, err)
	_, err = env.svc.UpdateQuantity(context.Background(), "user-1", "missing-item", 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	env := newTestEnv(t)
	first := env.addProduct(t, "Sneaker", 20.00, 1000)
	second := env.addProduct(t, "Boot", 59.99, 1000)

	_, err := env.svc.Add(context.Background(), "user-1", first, 1, "")
	require.NoError(t, err)
	c, err := env.svc.Add(context.Background(), "user-1", second, 2, "")
	require.NoError(t, err)
	require.Len(t, c.Items, 2)

	c, err = env.svc.Remove(context.Background(), "user-1", c.Items[0].ID)
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
	assertTotalInvariant(t, c)

	// Removing the last item drives the total to exactly 0.
	c, err = env.svc.Remove(context.Background(), "user-1", c.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.Total)
}

func TestRemoveMissing(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	_, err := env.svc.Remove(context.Background(), "nobody", "x")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	_, err = env.svc.Add(context.Background(), "user-1", id, 1, "")
	require.NoError(t, err)
	_, err = env.svc.Remove(context.Background(), "user-1", "missing-item")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestClear(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Sneaker", 20.00, 1000)

	_, err := env.svc.Add(context.Background(), "user-1", id, 4, "")
	require.NoError(t, err)

	c, err := env.svc.Clear(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.Total)

	_, err = env.svc.Clear(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

// The cached total matches the rounded sum of subtotals after every mutation
// in a mixed sequence of operations.
func TestTotalInvariantAcrossOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	first := env.addProduct(t, "Sneaker", 19.99, 1000)
	second := env.addProduct(t, "Boot", 85.00, 1000)

	c, err := env.svc.Add(ctx, "user-1", first, 3, "Black")
	require.NoError(t, err)
	assertTotalInvariant(t, c)

	c, err = env.svc.Add(ctx, "user-1", second, 1, "")
	require.NoError(t, err)
	assertTotalInvariant(t, c)

	c, err = env.svc.Add(ctx, "user-1", first, 2, "Black")
	require.NoError(t, err)
	assertTotalInvariant(t, c)

	itemID := c.Items[0].ID
	c, err = env.svc.UpdateQuantity(ctx, "user-1", itemID, 1)
	require.NoError(t, err)
	assertTotalInvariant(t, c)

	c, err = env.svc.Remove(ctx, "user-1", itemID)
	require.NoError(t, err)
	assertTotalInvariant(t, c)
	assert.Equal(t, 85.00, c.Total)
}
