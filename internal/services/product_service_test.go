package services_test

import (
	"strings"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func sampleProduct() *models.Product {
	returnable := true
	return &models.Product{
		ID:           "p1",
		Name:         "Crewneck Tee",
		Brand:        "Plainwear",
		Price:        decimal.NewFromFloat(24.90),
		Description:  "A plain cotton tee.",
		SKU:          "TEE-001",
		Category:     "apparel",
		SubCategory:  "tops",
		SizeOptions:  []string{"S", "M", "L"},
		IsReturnable: &returnable,
		ProductUUID:  "550e8400-e29b-41d4-a716-446655440000",
		ProductCode:  "PW-TEE-001",
		Images:       []string{"https://img.example.com/tee.png"},
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	store := storage.NewMemStore()
	service := services.NewProductService(mockRepo, store)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)

	product := sampleProduct()
	product.Images = nil
	uploads := []services.ImageUpload{
		{Filename: "front.png", Content: strings.NewReader("front-bytes")},
		{Filename: "back.png", Content: strings.NewReader("back-bytes")},
	}
	err := service.CreateProduct(product, uploads, []string{"https://img.example.com/tee.png"})

	assert.NoError(t, err)
	// External URLs come first, stored upload URLs after.
	assert.Len(t, product.Images, 3)
	assert.Equal(t, "https://img.example.com/tee.png", product.Images[0])
	assert.True(t, strings.HasPrefix(product.Images[1], "mem://"))
	assert.Equal(t, 2, store.Len())
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductRequiresImage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, storage.NewMemStore())

	product := sampleProduct()
	product.Images = nil
	err := service.CreateProduct(product, nil, nil)

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_CreateProductRequiresPositivePrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, storage.NewMemStore())

	product := sampleProduct()
	product.Price = decimal.Zero
	err := service.CreateProduct(product, nil, []string{"https://img.example.com/tee.png"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	product.Price = decimal.NewFromInt(-5)
	err = service.CreateProduct(product, nil, []string{"https://img.example.com/tee.png"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_UpdateProductPartial(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, storage.NewMemStore())

	mockRepo.On("GetByID", "p1").Return(sampleProduct(), nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil)

	name := "Crewneck Tee v2"
	price := decimal.NewFromFloat(27.50)
	updated, err := service.UpdateProduct("p1", services.ProductUpdate{
		Name:  &name,
		Price: &price,
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Crewneck Tee v2", updated.Name)
	assert.True(t, updated.Price.Equal(price))
	// Untouched fields keep their stored values.
	assert.Equal(t, "Plainwear", updated.Brand)
	assert.Equal(t, []string{"https://img.example.com/tee.png"}, updated.Images)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProductAppendsImages(t *testing.T) {
	mockRepo := new(MockProductRepository)
	store := storage.NewMemStore()
	service := services.NewProductService(mockRepo, store)

	mockRepo.On("GetByID", "p1").Return(sampleProduct(), nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil)

	uploads := []services.ImageUpload{{Filename: "detail.png", Content: strings.NewReader("detail-bytes")}}
	updated, err := service.UpdateProduct("p1", services.ProductUpdate{
		ImageURLs: []string{"https://img.example.com/side.png"},
	}, uploads)

	assert.NoError(t, err)
	// The existing image survives; new URLs and uploads are appended after it.
	assert.Len(t, updated.Images, 3)
	assert.Equal(t, "https://img.example.com/tee.png", updated.Images[0])
	assert.Equal(t, "https://img.example.com/side.png", updated.Images[1])
	assert.True(t, strings.HasPrefix(updated.Images[2], "mem://"))
}

func TestProductService_UpdateProductRejectsNonPositivePrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, storage.NewMemStore())

	mockRepo.On("GetByID", "p1").Return(sampleProduct(), nil)

	zero := decimal.Zero
	_, err := service.UpdateProduct("p1", services.ProductUpdate{Price: &zero}, nil)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_UpdateProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, storage.NewMemStore())

	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound)

	_, err := service.UpdateProduct("missing", services.ProductUpdate{}, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductService_GetAndDelete(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, storage.NewMemStore())

	mockRepo.On("GetAll").Return([]models.Product{*sampleProduct()}, nil)
	mockRepo.On("GetByID", "p1").Return(sampleProduct(), nil)
	mockRepo.On("Delete", "p1").Return(nil)
	mockRepo.On("Delete", "missing").Return(repositories.ErrNotFound)

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	product, err := service.GetProductByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, "Crewneck Tee", product.Name)

	assert.NoError(t, service.DeleteProduct("p1"))
	assert.ErrorIs(t, service.DeleteProduct("missing"), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
