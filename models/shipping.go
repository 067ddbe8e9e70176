package models

import "github.com/shopspring/decimal"

// Shipping is a shipping option catalog entry. Reference data only;
// orders point at it but never mutate it.
type Shipping struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	Method string          `gorm:"type:VARCHAR(255);not null" json:"method"`
	Fee    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"fee"`
	Tel    string          `gorm:"type:VARCHAR(20)" json:"tel"`
}

func (s *Shipping) String() string {
	return s.Method
}
