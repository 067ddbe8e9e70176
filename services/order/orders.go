package orderService

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/40000years/rebuiltSB/models"
)

// -------- Request Structs --------

type CreateOrderInput struct {
	CustomerID        string
	Status            models.OrderStatus   // "" defaults to pending; cart must be asked for explicitly
	PaymentMethod     models.PaymentMethod // "" defaults to cash_on_delivery
	ShippingID        *uint
	ShippingAddressID *int
	PaymentMethodID   *int
}

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// CreateOrder inserts a new order for a customer. The customer reference
// is required; there is no implicit default owner.
func CreateOrder(db *gorm.DB, input CreateOrderInput) (*models.Order, error) {
	if input.CustomerID == "" {
		return nil, errors.New("customer is required")
	}

	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if status != models.OrderStatusCart && status != models.OrderStatusPending {
		return nil, fmt.Errorf("order cannot be created in status %q", status)
	}

	method := input.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCashOnDelivery
	}
	if !method.Valid() {
		return nil, fmt.Errorf("invalid payment method %q", method)
	}

	order := models.Order{
		OrderRef:          generateOrderRef(),
		CustomerID:        input.CustomerID,
		ShippingID:        input.ShippingID,
		ShippingAddressID: input.ShippingAddressID,
		PaymentMethodID:   input.PaymentMethodID,
		PaymentMethod:     method,
		Status:            status,
		TotalPrice:        decimal.Zero,
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves an order one step along the lifecycle
// (cart -> pending -> paid -> processing -> in_transit -> shipped).
// Any other jump fails with InvalidTransitionError.
func UpdateOrderStatus(db *gorm.DB, orderID uint, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("invalid order status %q", next)
	}

	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		return nil, err
	}

	if models.StatusTransitions[order.Status] != next {
		return nil, &InvalidTransitionError{From: order.Status, To: next}
	}

	order.Status = next
	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// CalculatedTotal sums quantity * unit price over the order's current
// line items without touching stored state. An order with no items
// yields zero.
func CalculatedTotal(db *gorm.DB, orderID uint) (decimal.Decimal, error) {
	var order models.Order
	if err := db.Preload("Items.Product").First(&order, orderID).Error; err != nil {
		return decimal.Zero, err
	}
	return order.CalculatedTotal(), nil
}

// RecomputeOrderTotal refreshes the order's stored total from its current
// line items. Line-item operations call this synchronously after every
// mutation; application code rarely needs it directly.
func RecomputeOrderTotal(db *gorm.DB, orderID uint) error {
	return recomputeOrderTotal(db, orderID)
}

func recomputeOrderTotal(tx *gorm.DB, orderID uint) error {
	var order models.Order
	if err := tx.Preload("Items.Product").First(&order, orderID).Error; err != nil {
		// The order can already be gone when its items vanish through a
		// cascade delete. Nothing left to recompute then.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	order.TotalPrice = order.CalculatedTotal()
	return tx.Save(&order).Error
}

// DeleteOrder removes the order; its line items and payment go with it
// through the cascade constraints.
func DeleteOrder(db *gorm.DB, orderID uint) error {
	result := db.Delete(&models.Order{}, orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
