package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses (cart accumulation through fulfillment)
	OrderStatusCart       OrderStatus = "cart"       // Customer is still adding items
	OrderStatusPending    OrderStatus = "pending"    // Awaiting payment
	OrderStatusPaid       OrderStatus = "paid"       // Payment received
	OrderStatusProcessing OrderStatus = "processing" // Being packed
	OrderStatusInTransit  OrderStatus = "in_transit" // Out for delivery
	OrderStatusShipped    OrderStatus = "shipped"    // Handed over / delivered

	// Payment methods
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodQRCode         PaymentMethod = "qr_code"
)

// statusLabels holds the customer-facing Thai label for each status.
var statusLabels = map[OrderStatus]string{
	OrderStatusCart:       "ตะกร้า",
	OrderStatusPending:    "รอชำระเงิน",
	OrderStatusPaid:       "ชำระเงินแล้ว",
	OrderStatusProcessing: "กำลังเตรียมของ",
	OrderStatusInTransit:  "กำลังจัดส่ง",
	OrderStatusShipped:    "จัดส่งแล้ว",
}

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCreditCard:     "บัตรเครดิต/เดบิต",
	PaymentMethodCashOnDelivery: "เก็บเงินปลายทาง",
	PaymentMethodQRCode:         "สแกน QR Code",
}

// StatusTransitions is the allowed lifecycle chain. Any jump not listed
// here is rejected by the order service.
var StatusTransitions = map[OrderStatus]OrderStatus{
	OrderStatusCart:       OrderStatusPending,
	OrderStatusPending:    OrderStatusPaid,
	OrderStatusPaid:       OrderStatusProcessing,
	OrderStatusProcessing: OrderStatusInTransit,
	OrderStatusInTransit:  OrderStatusShipped,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label for the status, or the raw value if unknown.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

// ParseOrderStatus maps a raw string onto an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(s))
	if !status.Valid() {
		return "", fmt.Errorf("invalid order status %q", s)
	}
	return status, nil
}

// ParsePaymentMethod maps a raw string onto a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(strings.ToLower(s))
	if !method.Valid() {
		return "", fmt.Errorf("invalid payment method %q", s)
	}
	return method, nil
}

type Order struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	OrderRef          string          `gorm:"type:VARCHAR(64);uniqueIndex" json:"order_ref"`
	CustomerID        string          `gorm:"not null;index" json:"customer_id"`
	Customer          User            `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer"`
	ShippingID        *uint           `json:"shipping_id"`
	Shipping          *Shipping       `gorm:"foreignKey:ShippingID;constraint:OnDelete:SET NULL" json:"shipping"`
	ShippingAddressID *int            `json:"shipping_address_id"`
	PaymentMethodID   *int            `json:"payment_method_id"`
	PaymentMethod     PaymentMethod   `gorm:"type:VARCHAR(20);default:'cash_on_delivery'" json:"payment_method"`
	TotalPrice        decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_price"`
	Status            OrderStatus     `gorm:"type:VARCHAR(100);default:'pending'" json:"status"`
	Items             []LineItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payment           *Payment        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BeforeSave strips any markup from the status value so an untrusted
// status string can never persist embedded tags.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.Status = OrderStatus(StripTags(string(o.Status)))
	return nil
}

// CalculatedTotal sums quantity * unit price over the loaded items.
// Callers must preload Items.Product; an order with no items yields zero.
func (o *Order) CalculatedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

func (o *Order) String() string {
	return fmt.Sprintf("Order: %d - %s", o.ID, o.CustomerID)
}
