package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"printshop/internal/cache"
	"printshop/internal/errors"
	"printshop/internal/model"
	"printshop/internal/notify"
	"printshop/internal/repository"
)

// EventPublisher is the side of the notification hub the order service needs.
type EventPublisher interface {
	Publish(event notify.Event)
}

// SubmitInput carries a customer's order submission. The contact fields are
// snapshotted onto the order as submitted, independent of whatever the
// customer record says afterwards.
type SubmitInput struct {
	ServiceType        model.ServiceType
	File               model.FileInfo
	Name               string
	Email              string
	Phone              string
	Address            string
	Company            string
	ProjectDescription string
	Quantity           int
	Specifications     string
	Deadline           *time.Time
}

// SubmitResult is returned to the submitting customer.
type SubmitResult struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
}

// UpdateStatusInput is a partial update: nil fields are left unchanged.
type UpdateStatusInput struct {
	Status        *model.OrderStatus
	AdminNotes    *string
	EstimatedCost *decimal.Decimal
	ActualCost    *decimal.Decimal
}

// OrderView is an order with its owning customer's display fields resolved.
type OrderView struct {
	model.Order
	Customer model.CustomerSummary `json:"customer"`
}

// OrderService drives the order lifecycle: submission, listing, status
// updates and file retrieval.
type OrderService interface {
	Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error)
	ListOrders(ctx context.Context) ([]OrderView, error)
	GetOrder(ctx context.Context, orderID string) (*OrderView, error)
	UpdateStatus(ctx context.Context, orderID string, in UpdateStatusInput) (*model.Order, error)
	GetFile(ctx context.Context, orderID string) (path, originalName string, err error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	publisher    EventPublisher
	cache        *cache.Client
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	publisher EventPublisher,
	cache *cache.Client,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		cache:        cache,
	}
}

// Submit validates the submission, reconciles the customer by email,
// persists the order in the pending state and announces it on the
// notification channel.
func (s *orderService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if !in.ServiceType.Valid() {
		return nil, errors.ErrInvalidServiceType
	}
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Address == "" {
		return nil, errors.ErrMissingFields
	}
	if in.File.StoredName == "" {
		return nil, errors.ErrFileRequired
	}

	customer, err := s.customerRepo.FindOrCreateByEmail(ctx, &model.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Company: in.Company,
		Active:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile customer: %w", err)
	}

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	order := &model.Order{
		CustomerID:  customer.ID,
		ServiceType: in.ServiceType,
		File:        in.File,
		Details: model.CustomerDetails{
			Name:               in.Name,
			Email:              in.Email,
			Phone:              in.Phone,
			Address:            in.Address,
			Company:            in.Company,
			ProjectDescription: in.ProjectDescription,
			Quantity:           quantity,
			Specifications:     in.Specifications,
			Deadline:           in.Deadline,
		},
		Status: model.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.customerRepo.IncrementTotalOrders(ctx, customer.ID); err != nil {
		// The order itself is persisted; a stale counter is tolerable.
		log.Printf("increment total orders for %s: %v", customer.PublicID, err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey)

	s.publisher.Publish(notify.Event{
		Kind:         notify.EventOrderCreated,
		OrderID:      order.PublicID,
		CustomerName: in.Name,
		ServiceType:  in.ServiceType,
		Timestamp:    order.CreatedAt,
	})

	return &SubmitResult{
		OrderID:    order.PublicID,
		CustomerID: customer.PublicID,
	}, nil
}

// ListOrders returns all orders newest first with customer display fields.
func (s *orderService) ListOrders(ctx context.Context) ([]OrderView, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{
			Order:    order,
			Customer: order.Customer.Summary(false),
		})
	}
	return views, nil
}

// GetOrder returns a single order with full customer display fields.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*OrderView, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderView{
		Order:    *order,
		Customer: order.Customer.Summary(true),
	}, nil
}

// UpdateStatus applies a partial admin update. Status changes must follow
// the lifecycle table; re-applying the current status is a no-op transition
// so repeated updates stay idempotent.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, in UpdateStatusInput) (*model.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		next := *in.Status
		if !next.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", errors.ErrInvalidTransition, next)
		}
		if !order.Status.CanTransition(next) {
			return nil, fmt.Errorf("%w: %s -> %s", errors.ErrInvalidTransition, order.Status, next)
		}
		order.Status = next
	}
	if in.AdminNotes != nil {
		order.AdminNotes = *in.AdminNotes
	}
	if in.EstimatedCost != nil {
		order.EstimatedCost = in.EstimatedCost
	}
	if in.ActualCost != nil {
		order.ActualCost = in.ActualCost
	}
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey)

	return order, nil
}

// GetFile returns where the order's design file is stored and the filename
// to offer the downloader. Disk existence is the file server's problem.
func (s *orderService) GetFile(ctx context.Context, orderID string) (string, string, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return "", "", err
	}
	return order.File.Path, order.File.OriginalName, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByPublicID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}
