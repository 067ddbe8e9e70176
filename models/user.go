package models

import "time"

// User is the customer identity owned by the auth layer. Orders cascade
// away with their owner.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Orders    []Order   `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}
