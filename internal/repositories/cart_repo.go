package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart data access. A cart is one
// document per user; Save writes the whole document with no optimistic lock,
// so concurrent saves for the same user can lose an update.
type CartRepository interface {
	GetByUserID(userID string) (*models.Cart, error)
	Save(cart *models.Cart) error
}
