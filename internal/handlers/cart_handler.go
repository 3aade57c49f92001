package handlers

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Get("/:userId", h.HandleGetCart)
	cartRoutes.Post("/:userId/items", h.HandleAddItem)
	cartRoutes.Put("/:userId/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/:userId/items/:productId", h.HandleRemoveItem)
}

// HandleGetCart retrieves the user's cart, creating an empty one on first
// read.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := c.Params("userId")
	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error retrieving cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart retrieved successfully",
		"cart":    cart,
	})
}

// HandleAddItem adds a product to the cart, merging by product id.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing add-to-cart body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(item); err != nil {
		return validationErrorResponse(c, err)
	}

	cart, err := h.cartService.AddItem(userID, item)
	if err != nil {
		log.Printf("Error adding to cart for user %s: %v", userID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error adding to cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product added to cart successfully",
		"cart":    cart,
	})
}

// UpdateQuantityRequest represents the request body for a quantity change.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// HandleUpdateQuantity sets the quantity of a cart line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	userID := c.Params("userId")
	productID := c.Params("productId")

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quantity update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	cart, err := h.cartService.UpdateQuantity(userID, productID, req.Quantity)
	if err != nil {
		log.Printf("Error updating cart item for user %s: %v", userID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error updating cart item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart item quantity updated successfully",
		"cart":    cart,
	})
}

// HandleRemoveItem removes a product from the cart. Removing a product that
// is not in the cart succeeds and returns the unchanged cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	productID := c.Params("productId")

	cart, err := h.cartService.RemoveItem(userID, productID)
	if err != nil {
		log.Printf("Error removing from cart for user %s: %v", userID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error removing from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from cart successfully",
		"cart":    cart,
	})
}
