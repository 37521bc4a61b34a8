package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/models"
	"storefront_back_end/internal/repository"
)

func demoPolicy() Policy {
	return Policy{AutoCreateMissing: true, ReplenishDemoStock: true, RepairInvalidPrice: true}
}

func seedProduct(t *testing.T, repo *repository.MemoryProductRepository, price float64, inventory int) primitive.ObjectID {
	t.Helper()
	p := &models.Product{Title: "Test Sneaker", Price: price, Inventory: inventory}
	require.NoError(t, repo.Insert(context.Background(), p))
	return p.ID
}

func TestLookupMissingProduct(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, demoPolicy(), zerolog.Nop())

	_, err := svc.Lookup(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestResolveReplenishesLowInventory(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, demoPolicy(), zerolog.Nop())
	id := seedProduct(t, repo, 20.00, 5)

	p, err := svc.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1000, p.Inventory)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1000, stored.Inventory)
}

func TestResolveLeavesHealthyInventoryAlone(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, demoPolicy(), zerolog.Nop())
	id := seedProduct(t, repo, 20.00, 500)

	p, err := svc.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 500, p.Inventory)
}

func TestResolveReplenishDisabled(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, Policy{}, zerolog.Nop())
	id := seedProduct(t, repo, 20.00, 5)

	p, err := svc.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Inventory)
}

func TestResolveAutoCreatesMissingProduct(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, demoPolicy(), zerolog.Nop())
	id := primitive.NewObjectID()

	p, err := svc.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, DefaultPrice, p.Price)
	assert.Equal(t, 1000, p.Inventory)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, p.Title, stored.Title)
}

func TestResolveAutoCreateDisabled(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, Policy{}, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestResolveFallsBackWhenPersistFails(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	repo.Err = errors.New("write refused")
	svc := NewService(repo, demoPolicy(), zerolog.Nop())
	id := primitive.NewObjectID()

	// The fallback value comes back even though nothing was persisted.
	p, err := svc.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, DefaultPrice, p.Price)

	repo.Err = nil
	_, err = repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestResolvePriceSubstitutesAndRepairs(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, demoPolicy(), zerolog.Nop())
	id := seedProduct(t, repo, 0, 100)

	p, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	price := svc.ResolvePrice(context.Background(), p)
	assert.Equal(t, DefaultPrice, price)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, DefaultPrice, stored.Price)
}

func TestResolvePriceRepairFailureIsNotFatal(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, demoPolicy(), zerolog.Nop())
	id := seedProduct(t, repo, 0, 100)

	p, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	repo.Err = errors.New("write refused")
	price := svc.ResolvePrice(context.Background(), p)
	assert.Equal(t, DefaultPrice, price)
}

func TestResolvePriceRoundsValidPrice(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, demoPolicy(), zerolog.Nop())
	id := seedProduct(t, repo, 19.999, 100)

	p, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 20.00, svc.ResolvePrice(context.Background(), p))
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewService(repo, demoPolicy(), zerolog.Nop())

	first, created, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultPrice, first.Price)
	assert.Equal(t, 100, first.Inventory)

	second, created, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}
