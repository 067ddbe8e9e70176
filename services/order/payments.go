package orderService

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/40000years/rebuiltSB/models"
)

func settlementAmount(order *models.Order) decimal.Decimal {
	amount := order.TotalPrice
	if order.Shipping != nil {
		amount = amount.Add(order.Shipping.Fee)
	}
	return amount
}

// CreatePayment records the settlement for an order: amount is the
// order's total plus the shipping fee when a shipping option is set.
// An order can hold one payment only; a second insert fails on the
// unique constraint.
func CreatePayment(db *gorm.DB, orderID uint) (*models.Payment, error) {
	var payment models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Shipping").First(&order, orderID).Error; err != nil {
			return err
		}

		payment = models.Payment{
			OrderID: orderID,
			PaidAt:  time.Now(),
			Amount:  settlementAmount(&order),
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// SavePayment persists the payment again, refreshing Amount from the
// order's current total and shipping fee. The payment mirrors the order
// rather than snapshotting it; callers that want the settled amount to
// stay fixed must not re-save. PaidAt keeps its creation value.
func SavePayment(db *gorm.DB, payment *models.Payment) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Shipping").First(&order, payment.OrderID).Error; err != nil {
			return err
		}

		payment.Amount = settlementAmount(&order)
		return tx.Save(payment).Error
	})
}
