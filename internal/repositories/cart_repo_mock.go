package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// GetByUserID returns the cart for a user.
func (r *MockCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	// Copy the item list so callers can't mutate the stored cart in place.
	copied := cart
	copied.Items = append([]models.CartItem{}, cart.Items...)
	return &copied, nil
}

// Save stores the full cart document, creating it if absent.
func (r *MockCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cart
	stored.Items = append([]models.CartItem{}, cart.Items...)
	r.carts[cart.UserID] = stored
	return nil
}
