package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Status is an open string field: any non-empty value is a
// legal status and any transition is allowed, so only the values the system
// itself assigns are named here.
const (
	OrderStatusPending  = "Pending"
	OrderStatusCanceled = "Canceled"
)

// OrderItem is a single item within an order, copied from the cart at
// checkout. It is a snapshot: later product or cart changes never reach it.
type OrderItem struct {
	ProductID    string          `json:"product_id" validate:"required"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
}

// Order represents a customer order. Orders are never physically deleted;
// cancellation is a status change.
type Order struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string          `json:"user_id" gorm:"type:varchar(36);index"`
	Items       []OrderItem     `json:"items" gorm:"serializer:json"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2)"`
	Status      string          `json:"status" gorm:"type:varchar(50)"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
