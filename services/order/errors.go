package orderService

import (
	"fmt"

	"github.com/40000years/rebuiltSB/models"
)

// StockExceededError rejects a cart write that would reserve more units
// of a product than are in stock. Available carries the current stock so
// callers can render it.
type StockExceededError struct {
	Available int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("จำนวนสินค้าเกิน stock ที่มีอยู่ (%d)", e.Available)
}

// InvalidTransitionError rejects a status change that is not the next
// step in the order lifecycle.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition: %s -> %s", e.From, e.To)
}
