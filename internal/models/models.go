package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

func KnownStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	Title       string          `gorm:"not null"                    json:"title"`
	Description string          `gorm:"not null"                    json:"description"`
	Category    string          `gorm:"index;not null"              json:"category"`
	Image       string          `json:"img"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount    float64         `json:"discount"`
	Stock       uint            `json:"stock"`
}

type Admin struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string `gorm:"not null"                 json:"full_name"`
	IDCard       string `gorm:"unique;not null"          json:"id_card"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

// Order is a frozen snapshot of a checked-out cart. Items are denormalized
// copies of the product fields at checkout time, so later product edits do
// not rewrite history.
type Order struct {
	ID            string          `gorm:"primaryKey"                  json:"id"`
	Status        string          `gorm:"index;not null"              json:"status"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CustomerName  string          `gorm:"not null"                    json:"customer_name"`
	CustomerPhone string          `gorm:"not null"                    json:"customer_phone"`
	PlaceNumber   string          `gorm:"not null"                    json:"place_number"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `gorm:"not null"                    json:"created_at"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID"          json:"items"`
}

type OrderItem struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"    json:"-"`
	OrderID       string          `gorm:"index;not null"              json:"-"`
	ProductID     uint            `gorm:"not null"                    json:"product_id"`
	Title         string          `gorm:"not null"                    json:"title"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"original_price"`
	Discount      float64         `json:"discount"`
	Quantity      uint            `gorm:"check:quantity>0"            json:"quantity"`
}

// CartLine belongs to one cart session. Price, discount and stock are
// copied from the product when the line is created.
type CartLine struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"   json:"-"`
	SessionID string          `gorm:"index;not null"             json:"-"`
	ProductID uint            `gorm:"not null"                   json:"product_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)"         json:"price"`
	Discount  float64         `json:"discount"`
	Stock     uint            `json:"stock"`
	Quantity  uint            `gorm:"default:1;check:quantity>0" json:"quantity"`
}
