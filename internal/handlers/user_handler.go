package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/:id", h.HandleGetProfile)
	userRoutes.Put("/:id", h.HandleUpdateProfile)
	userRoutes.Put("/:id/wishlist/add", h.HandleAddToWishlist)
	userRoutes.Put("/:id/wishlist/remove", h.HandleRemoveFromWishlist)
}

// HandleGetProfile retrieves a user profile.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID := c.Params("id")
	user, err := h.userService.GetProfile(userID)
	if err != nil {
		log.Printf("Error fetching profile for user %s: %v", userID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error fetching user profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "User profile retrieved successfully",
		"user":    user,
	})
}

// HandleUpdateProfile applies an allowlisted partial update to a profile.
// Unknown or disallowed fields in the body are ignored, not merged.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID := c.Params("id")

	var update services.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.userService.UpdateProfile(userID, update)
	if err != nil {
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error updating profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "User profile updated successfully",
		"user":    user,
	})
}

// WishlistRequest represents the request body for wishlist changes.
type WishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleAddToWishlist adds a product to the user's wishlist.
func (h *UserHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.userService.AddToWishlist(userID, req.ProductID)
	if err != nil {
		log.Printf("Error adding to wishlist for user %s: %v", userID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error updating wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product added to wishlist successfully",
		"user":    user,
	})
}

// HandleRemoveFromWishlist removes a product from the user's wishlist.
func (h *UserHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.userService.RemoveFromWishlist(userID, req.ProductID)
	if err != nil {
		log.Printf("Error removing from wishlist for user %s: %v", userID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error updating wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from wishlist successfully",
		"user":    user,
	})
}
