package models

import "fmt"

// InsufficientInventoryError reports a quantity request exceeding the current
// catalog stock. Handlers surface its fields in the response details block.
type InsufficientInventoryError struct {
	ProductID    string
	ProductTitle string
	Requested    int
	Available    int
}

func (e *InsufficientInventoryError) Error() string {
	if e.ProductTitle != "" {
		return fmt.Sprintf("Not enough inventory for %s", e.ProductTitle)
	}
	return "Not enough inventory"
}
