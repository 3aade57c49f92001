package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler handles HTTP requests for the product catalog. Create and
// update take multipart forms so image files can ride along with the
// descriptive fields; externally hosted images can be supplied as
// image_urls values instead of (or alongside) files.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error retrieving products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message":  "Products retrieved successfully",
		"products": products,
	})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error retrieving product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product retrieved successfully",
		"product": product,
	})
}

// HandleCreateProduct creates a new catalog entry from a multipart form.
// All descriptive fields are required, plus at least one image file or URL.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("Error parsing product form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart form",
			"error":   err.Error(),
		})
	}

	product := models.Product{
		Name:              formValue(form, "name"),
		Brand:             formValue(form, "brand"),
		Description:       formValue(form, "description"),
		SKU:               formValue(form, "sku"),
		Category:          formValue(form, "category"),
		SubCategory:       formValue(form, "sub_category"),
		SizeOptions:       form.Value["size_options"],
		ProductUUID:       formValue(form, "product_uuid"),
		ProductCode:       formValue(form, "product_code"),
		SoldBy:            formValue(form, "sold_by"),
		Neckline:          formValue(form, "neckline"),
		Fit:               formValue(form, "fit"),
		SleeveLength:      formValue(form, "sleeve_length"),
		StyleDetails:      formValue(form, "style_details"),
		Fabric:            formValue(form, "fabric"),
		ModelSize:         formValue(form, "model_size"),
		ModelMeasurements: formValue(form, "model_measurements"),
	}

	if raw := formValue(form, "price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid price",
				"error":   err.Error(),
			})
		}
		product.Price = price
	}
	if raw := formValue(form, "is_returnable"); raw != "" {
		returnable, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid is_returnable value",
				"error":   err.Error(),
			})
		}
		product.IsReturnable = &returnable
	}

	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}

	uploads, closers, err := openUploads(form.File["images"])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Error reading uploaded images",
			"error":   err.Error(),
		})
	}
	defer closeAll(closers)

	if err := h.service.CreateProduct(&product, uploads, form.Value["image_urls"]); err != nil {
		log.Printf("Error adding product: %v", err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error adding product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Product added successfully",
		"product_id": product.ID,
		"product":    product,
	})
}

// HandleUpdateProduct applies a partial update from a multipart form. Only
// keys present in the form are changed; newly supplied images are appended
// to the existing list.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("Error parsing product form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart form",
			"error":   err.Error(),
		})
	}

	update := services.ProductUpdate{
		Name:              formPtr(form, "name"),
		Brand:             formPtr(form, "brand"),
		Description:       formPtr(form, "description"),
		SKU:               formPtr(form, "sku"),
		Category:          formPtr(form, "category"),
		SubCategory:       formPtr(form, "sub_category"),
		ProductUUID:       formPtr(form, "product_uuid"),
		ProductCode:       formPtr(form, "product_code"),
		SoldBy:            formPtr(form, "sold_by"),
		Neckline:          formPtr(form, "neckline"),
		Fit:               formPtr(form, "fit"),
		SleeveLength:      formPtr(form, "sleeve_length"),
		StyleDetails:      formPtr(form, "style_details"),
		Fabric:            formPtr(form, "fabric"),
		ModelSize:         formPtr(form, "model_size"),
		ModelMeasurements: formPtr(form, "model_measurements"),
		ImageURLs:         form.Value["image_urls"],
	}
	if values, ok := form.Value["size_options"]; ok {
		update.SizeOptions = &values
	}
	if raw := formPtr(form, "price"); raw != nil {
		price, err := decimal.NewFromString(*raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid price",
				"error":   err.Error(),
			})
		}
		update.Price = &price
	}
	if raw := formPtr(form, "is_returnable"); raw != nil {
		returnable, err := strconv.ParseBool(*raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid is_returnable value",
				"error":   err.Error(),
			})
		}
		update.IsReturnable = &returnable
	}

	uploads, closers, err := openUploads(form.File["images"])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Error reading uploaded images",
			"error":   err.Error(),
		})
	}
	defer closeAll(closers)

	product, err := h.service.UpdateProduct(productID, update, uploads)
	if err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error updating product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"message": "Error deleting product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// formValue returns the first value for a key, or "" when absent.
func formValue(form *multipart.Form, key string) string {
	if values, ok := form.Value[key]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}

// formPtr returns a pointer to the first value for a key, or nil when the
// key is absent, so absent and empty can be told apart for partial updates.
func formPtr(form *multipart.Form, key string) *string {
	if values, ok := form.Value[key]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}

// openUploads opens every file header and pairs each with its filename.
// The returned closers must be closed by the caller.
func openUploads(headers []*multipart.FileHeader) ([]services.ImageUpload, []multipart.File, error) {
	uploads := make([]services.ImageUpload, 0, len(headers))
	closers := make([]multipart.File, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			closeAll(closers)
			return nil, nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
		}
		closers = append(closers, f)
		uploads = append(uploads, services.ImageUpload{
			Filename: header.Filename,
			Content:  f,
		})
	}
	return uploads, closers, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}
