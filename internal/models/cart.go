package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a cart: a product reference with the name, price
// and image snapshotted at add-time, plus the requested quantity.
type CartItem struct {
	ProductID    string          `json:"product_id" validate:"required"`
	ProductName  string          `json:"product_name" validate:"required"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
}

// Cart holds one user's line items in insertion order. There is exactly one
// cart per user; an emptied cart persists as an empty item list.
type Cart struct {
	UserID    string     `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	Items     []CartItem `json:"items" gorm:"serializer:json"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart for the user. Items is non-nil so an empty
// cart serializes as [] rather than null.
func NewCart(userID string) *Cart {
	now := time.Now()
	return &Cart{
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem merges the item into the cart. A line with the same product id
// has its quantity incremented in place; otherwise the item is appended.
// Insertion order of lines is preserved either way, so no two lines ever
// share a product id.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem drops every line matching productID. Removing a product that
// is not in the cart leaves the cart unchanged.
func (c *Cart) RemoveItem(productID string) {
	kept := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// SetQuantity replaces (not increments) the quantity of the line matching
// productID. It reports whether such a line exists.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}
