package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is one product with a quantity inside an order. While the order
// is still a cart there is at most one row per (order, product) pair.
type LineItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	Order     Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// TotalPrice is unit price times quantity. Product must be loaded.
func (li *LineItem) TotalPrice() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li *LineItem) String() string {
	return fmt.Sprintf("Order %d: %s", li.OrderID, li.Product.Name)
}
