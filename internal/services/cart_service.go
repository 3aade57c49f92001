package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic for per-user shopping carts.
//
// Every mutation is a read-then-write of the whole cart document with no
// optimistic-concurrency token, so two concurrent mutations for the same
// user race and the later write wins. Inherited limitation of the
// single-document pattern; a conditional write on a revision field would be
// the fix if it ever matters.
type CartService struct {
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// GetCart returns the user's cart. A missing cart is created and persisted
// as an empty cart (create-on-read), so repeated GETs are idempotent.
func (s *CartService) GetCart(userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if errors.Is(err, repositories.ErrNotFound) {
		cart = models.NewCart(userID)
		if saveErr := s.cartRepo.Save(cart); saveErr != nil {
			return nil, fmt.Errorf("failed to create cart for user %s: %w", userID, saveErr)
		}
		return cart, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem merges the item into the user's cart, creating the cart if it
// does not exist yet. An item with a product id already in the cart has its
// quantity incremented by the requested amount; anything else is appended.
func (s *CartService) AddItem(userID string, item models.CartItem) (*models.Cart, error) {
	if item.ProductID == "" || item.ProductName == "" || item.ProductImage == "" {
		return nil, fmt.Errorf("%w: product id, name, price and image are required", ErrInvalidInput)
	}
	if !item.ProductPrice.IsPositive() {
		return nil, fmt.Errorf("%w: product price must be positive", ErrInvalidInput)
	}
	if item.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if errors.Is(err, repositories.ErrNotFound) {
		cart = models.NewCart(userID)
	} else if err != nil {
		return nil, err
	}

	cart.AddItem(item)
	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", userID, err)
	}
	return cart, nil
}

// RemoveItem deletes every line matching productID from the user's cart.
// A product id not present in the cart is a no-op returning the unchanged
// cart; a missing cart is NotFound.
func (s *CartService) RemoveItem(userID, productID string) (*models.Cart, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)
	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", userID, err)
	}
	return cart, nil
}

// UpdateQuantity sets (not increments) the quantity of the matching line.
// It is NotFound if the cart does not exist or the item is not in it; the
// cart is left unmodified on failure.
func (s *CartService) UpdateQuantity(userID, productID string, quantity int) (*models.Cart, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(productID, quantity) {
		return nil, fmt.Errorf("product %s in cart for user %s: %w", productID, userID, repositories.ErrNotFound)
	}
	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", userID, err)
	}
	return cart, nil
}
