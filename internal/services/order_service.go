package services

import (
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client // nil disables event publishing
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder creates a new Pending order from an item snapshot. The item
// list must be non-empty and every item needs a product id and a positive
// quantity; nothing is persisted when validation fails.
func (s *OrderService) CreateOrder(userID string, items []models.OrderItem) (*models.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}

	total := decimal.Zero
	for _, item := range items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: every item needs a product id", ErrInvalidInput)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %s quantity must be at least 1", ErrInvalidInput, item.ProductID)
		}
		if item.ProductPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %s price must not be negative", ErrInvalidInput, item.ProductID)
		}
		total = total.Add(item.ProductPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	now := time.Now()
	newOrder := &models.Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", newOrder)
	return newOrder, nil
}

// UpdateOrderStatus overwrites the status of an existing order. Any
// non-empty status string is accepted and any transition is allowed; the
// permissive policy lives here so a stricter one can be layered in later
// without touching callers.
func (s *OrderService) UpdateOrderStatus(id string, status string) (*models.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.publishEvent("order.status_updated", order)
	return order, nil
}

// CancelOrder sets the order status to Canceled. Canceling an already
// canceled order succeeds and just advances the update timestamp.
func (s *OrderService) CancelOrder(id string) (*models.Order, error) {
	return s.UpdateOrderStatus(id, models.OrderStatusCanceled)
}

// publishEvent emits an order event to the order queue. Publishing is best
// effort: a broker failure is logged, never surfaced to the caller.
func (s *OrderService) publishEvent(eventType string, order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	payload := map[string]interface{}{
		"event":    eventType,
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	}
	if err := s.mqClient.PublishJSON(rabbitmq.OrderEventsQueue, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %s: %v", eventType, order.ID, err)
	} else {
		log.Printf("Successfully published %s event for order %s", eventType, order.ID)
	}
}
