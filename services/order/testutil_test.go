package orderService

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/40000years/rebuiltSB/models"
)

// setupTestDB opens a fresh in-memory database per test with the full
// schema migrated and foreign keys enforced.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// _fk=1 turns foreign key enforcement on for every pooled connection,
	// so cascade deletes behave like the production schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Shipping{},
		&models.Order{},
		&models.LineItem{},
		&models.Payment{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{ID: "u-1", Email: "customer@example.com", Name: "Customer"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestProduct(t *testing.T, db *gorm.DB, price string, stock int) *models.Product {
	t.Helper()
	product := models.Product{
		Name:  "Notebook",
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func createTestShipping(t *testing.T, db *gorm.DB, fee string) *models.Shipping {
	t.Helper()
	shipping := models.Shipping{
		Method: "EMS",
		Fee:    decimal.RequireFromString(fee),
		Tel:    "021234567",
	}
	require.NoError(t, db.Create(&shipping).Error)
	return &shipping
}

func createTestOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) *models.Order {
	t.Helper()
	user := createTestUser(t, db)
	order, err := CreateOrder(db, CreateOrderInput{
		CustomerID: user.ID,
		Status:     status,
	})
	require.NoError(t, err)
	return order
}

func reloadOrder(t *testing.T, db *gorm.DB, orderID uint) *models.Order {
	t.Helper()
	var order models.Order
	require.NoError(t, db.Preload("Items.Product").First(&order, orderID).Error)
	return &order
}

func requireDecimalEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}
