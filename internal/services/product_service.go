package services

import (
	"fmt"
	"io"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/storage"

	"github.com/shopspring/decimal"
)

// ImageUpload is one uploaded image file, handed from the HTTP layer to the
// service for storage.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ProductUpdate carries a partial catalog update. Nil fields are unchanged;
// ImageURLs are appended to the existing image list, never replacing it.
type ProductUpdate struct {
	Name              *string
	Brand             *string
	Price             *decimal.Decimal
	Description       *string
	SKU               *string
	Category          *string
	SubCategory       *string
	SizeOptions       *[]string
	IsReturnable      *bool
	ProductUUID       *string
	ProductCode       *string
	SoldBy            *string
	Neckline          *string
	Fit               *string
	SleeveLength      *string
	StyleDetails      *string
	Fabric            *string
	ModelSize         *string
	ModelMeasurements *string
	ImageURLs         []string
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	images storage.ImageStore
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, images storage.ImageStore) *ProductService {
	return &ProductService{
		repo:   repo,
		images: images,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct stores the uploads, merges their URLs with any externally
// supplied image URLs and persists the product. At least one image, from
// either source, is required; if any upload fails the whole operation
// fails and nothing is persisted.
func (s *ProductService) CreateProduct(product *models.Product, uploads []ImageUpload, imageURLs []string) error {
	if !product.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if len(uploads) == 0 && len(imageURLs) == 0 {
		return fmt.Errorf("%w: at least one image is required", ErrInvalidInput)
	}

	urls, err := s.storeUploads(uploads)
	if err != nil {
		return err
	}
	product.Images = append(append([]string{}, imageURLs...), urls...)

	if err := s.repo.Create(product); err != nil {
		return err
	}
	return nil
}

// UpdateProduct applies a partial update to an existing product. Newly
// supplied images, whether uploaded or given by URL, are appended to the
// existing list; images are never removed or de-duplicated here.
func (s *ProductService) UpdateProduct(id string, update ProductUpdate, uploads []ImageUpload) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Price != nil {
		if !update.Price.IsPositive() {
			return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
		}
		product.Price = *update.Price
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Brand != nil {
		product.Brand = *update.Brand
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.SKU != nil {
		product.SKU = *update.SKU
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.SubCategory != nil {
		product.SubCategory = *update.SubCategory
	}
	if update.SizeOptions != nil {
		product.SizeOptions = *update.SizeOptions
	}
	if update.IsReturnable != nil {
		product.IsReturnable = update.IsReturnable
	}
	if update.ProductUUID != nil {
		product.ProductUUID = *update.ProductUUID
	}
	if update.ProductCode != nil {
		product.ProductCode = *update.ProductCode
	}
	if update.SoldBy != nil {
		product.SoldBy = *update.SoldBy
	}
	if update.Neckline != nil {
		product.Neckline = *update.Neckline
	}
	if update.Fit != nil {
		product.Fit = *update.Fit
	}
	if update.SleeveLength != nil {
		product.SleeveLength = *update.SleeveLength
	}
	if update.StyleDetails != nil {
		product.StyleDetails = *update.StyleDetails
	}
	if update.Fabric != nil {
		product.Fabric = *update.Fabric
	}
	if update.ModelSize != nil {
		product.ModelSize = *update.ModelSize
	}
	if update.ModelMeasurements != nil {
		product.ModelMeasurements = *update.ModelMeasurements
	}

	urls, err := s.storeUploads(uploads)
	if err != nil {
		return nil, err
	}
	product.Images = append(product.Images, update.ImageURLs...)
	product.Images = append(product.Images, urls...)

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

func (s *ProductService) storeUploads(uploads []ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		url, err := s.images.Save(upload.Filename, upload.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to store image %s: %w", upload.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
