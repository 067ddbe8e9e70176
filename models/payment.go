package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the settlement record for an order. The unique index on
// OrderID enforces one payment per order at the storage layer.
type Payment struct {
	ID      uint            `gorm:"primaryKey" json:"id"`
	OrderID uint            `gorm:"uniqueIndex;not null" json:"order_id"`
	Order   Order           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	PaidAt  time.Time       `json:"paid_at"`
	Amount  decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
}

func (p *Payment) String() string {
	return fmt.Sprintf("Payment of customer%s: order%d", p.Order.CustomerID, p.OrderID)
}
