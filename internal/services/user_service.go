package services

import (
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProfileUpdate carries the fields a client may change on its own profile.
// Only these three are mutable through the API: role, email and password
// are deliberately unreachable here.
type ProfileUpdate struct {
	Username  *string           `json:"username" validate:"omitempty,min=3,max=100"`
	Addresses *[]models.Address `json:"addresses"`
	Wishlist  *[]string         `json:"wishlist"`
}

// UserService handles business logic for user profiles.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetProfile retrieves a user profile by id.
func (s *UserService) GetProfile(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile merges the allowlisted fields into the stored profile.
// Fields left nil are unchanged.
func (s *UserService) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		if *update.Username == "" {
			return nil, fmt.Errorf("%w: username must not be empty", ErrInvalidInput)
		}
		user.Username = *update.Username
	}
	if update.Addresses != nil {
		user.Addresses = *update.Addresses
	}
	if update.Wishlist != nil {
		user.Wishlist = *update.Wishlist
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile for user %s: %w", id, err)
	}
	return user, nil
}

// AddToWishlist adds a product id to the user's wishlist. Adding an id that
// is already listed is a no-op; the wishlist never holds duplicates.
func (s *UserService) AddToWishlist(id, productID string) (*models.User, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	for _, existing := range user.Wishlist {
		if existing == productID {
			return user, nil
		}
	}
	user.Wishlist = append(user.Wishlist, productID)
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update wishlist for user %s: %w", id, err)
	}
	return user, nil
}

// RemoveFromWishlist removes a product id from the user's wishlist. An id
// that is not listed is a no-op.
func (s *UserService) RemoveFromWishlist(id, productID string) (*models.User, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(user.Wishlist))
	for _, existing := range user.Wishlist {
		if existing != productID {
			kept = append(kept, existing)
		}
	}
	user.Wishlist = kept
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update wishlist for user %s: %w", id, err)
	}
	return user, nil
}
