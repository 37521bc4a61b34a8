package orders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/models"
)

// Post-commit side effects (inventory decrements, cart clearing, the order
// email) run after the order is persisted. Each task is attempted
// independently and its outcome recorded; a failure never unwinds the order.

type task struct {
	name string
	run  func(ctx context.Context) error
}

type TaskResult struct {
	Name string
	Err  error
}

func (s *Service) runPostCommit(ctx context.Context, orderNumber string, tasks []task) []TaskResult {
	results := make([]TaskResult, 0, len(tasks))
	for _, t := range tasks {
		err := t.run(ctx)
		if err != nil {
			s.log.Error().Err(err).Str("order", orderNumber).Str("task", t.name).
				Msg("post-commit task failed but order was created")
		}
		results = append(results, TaskResult{Name: t.name, Err: err})
	}
	return results
}

func (s *Service) decrementTask(productID primitive.ObjectID, quantity int) task {
	return task{
		name: "inventory-decrement:" + productID.Hex(),
		run: func(ctx context.Context) error {
			return s.catalog.DecrementInventory(ctx, productID, quantity)
		},
	}
}

func (s *Service) clearCartTask(c *models.Cart) task {
	return task{
		name: "cart-clear",
		run: func(ctx context.Context) error {
			c.Items = []models.CartItem{}
			c.Total = 0
			return s.carts.Save(ctx, c)
		},
	}
}

func (s *Service) notifyTask(o *models.Order) task {
	return task{
		name: "notification",
		run: func(ctx context.Context) error {
			return s.notifier.SendOrderEmail(ctx, o)
		},
	}
}
