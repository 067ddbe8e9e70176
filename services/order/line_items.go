package orderService

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/40000years/rebuiltSB/models"
)

// lockForUpdate takes a row lock on dialects that support SELECT ... FOR
// UPDATE. sqlite serializes writers at the database level instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// AddLineItem puts quantity units of a product into an order, merging
// into the existing row for the same product if there is one. While the
// order is still a cart the product row is locked and the cumulative
// quantity is checked against stock; past checkout line items are frozen
// by the caller and no check runs. The order total is recomputed before
// the call returns.
func AddLineItem(db *gorm.DB, orderID, productID uint, quantity int) (*models.LineItem, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	var item models.LineItem
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}

		var product models.Product
		if err := lockForUpdate(tx).First(&product, productID).Error; err != nil {
			return err
		}

		var existing models.LineItem
		err := tx.Where("order_id = ? AND product_id = ?", orderID, productID).
			First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		found := err == nil

		if order.Status == models.OrderStatusCart {
			total := quantity
			if found {
				total += existing.Quantity
			}
			if total > product.Stock {
				return &StockExceededError{Available: product.Stock}
			}
		}

		if found {
			existing.Quantity += quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			item = existing
		} else {
			item = models.LineItem{
				OrderID:   orderID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		item.Product = product

		return recomputeOrderTotal(tx, orderID)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateLineItemQuantity sets an absolute quantity on an existing line
// item. The cart-phase stock check counts any other rows for the same
// (order, product) pair but not the row being saved.
func UpdateLineItemQuantity(db *gorm.DB, lineItemID uint, quantity int) (*models.LineItem, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	var item models.LineItem
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, lineItemID).Error; err != nil {
			return err
		}

		var order models.Order
		if err := tx.First(&order, item.OrderID).Error; err != nil {
			return err
		}

		if order.Status == models.OrderStatusCart {
			var product models.Product
			if err := lockForUpdate(tx).First(&product, item.ProductID).Error; err != nil {
				return err
			}

			var others []models.LineItem
			if err := tx.Where("order_id = ? AND product_id = ? AND id <> ?",
				item.OrderID, item.ProductID, item.ID).Find(&others).Error; err != nil {
				return err
			}
			total := quantity
			for _, other := range others {
				total += other.Quantity
			}
			if total > product.Stock {
				return &StockExceededError{Available: product.Stock}
			}
		}

		item.Quantity = quantity
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		return recomputeOrderTotal(tx, item.OrderID)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveLineItem deletes a line item and recomputes the owning order's
// total, driving it to zero when the last item goes.
func RemoveLineItem(db *gorm.DB, lineItemID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var item models.LineItem
		if err := tx.First(&item, lineItemID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&item).Error; err != nil {
			return err
		}

		return recomputeOrderTotal(tx, item.OrderID)
	})
}
