package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"printshop/internal/cache"
	apperrors "printshop/internal/errors"
	"printshop/internal/model"
	"printshop/internal/repository"
)

const (
	statsCacheKey = "customers:stats:overview"
	statsCacheTTL = time.Minute
	topCustomersN = 10
)

// UpdateCustomerInput is a partial update: nil fields are left unchanged.
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Company *string
	Active  *bool
}

// CustomerDetail is a customer together with their orders, newest first.
type CustomerDetail struct {
	Customer *model.Customer `json:"customer"`
	Orders   []model.Order   `json:"orders"`
}

// StatsOverview aggregates the customer base for the dashboard.
type StatsOverview struct {
	TotalCustomers        int64                    `json:"totalCustomers"`
	ActiveCustomers       int64                    `json:"activeCustomers"`
	NewCustomersThisMonth int64                    `json:"newCustomersThisMonth"`
	TopCustomers          []repository.TopCustomer `json:"topCustomers"`
}

// CustomerService handles admin-facing customer operations.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*CustomerDetail, error)
	UpdateCustomer(ctx context.Context, customerID string, in UpdateCustomerInput) (*model.Customer, error)
	Stats(ctx context.Context) (*StatsOverview, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	cache        *cache.Client
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository, cache *cache.Client) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		cache:        cache,
	}
}

// ListCustomers returns all customers, most recently registered first.
func (s *customerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns a customer with their order history.
func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*CustomerDetail, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}

	return &CustomerDetail{Customer: customer, Orders: orders}, nil
}

// UpdateCustomer applies a partial admin edit. Orders keep their own
// submission-time snapshot regardless of edits here.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, in UpdateCustomerInput) (*model.Customer, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Company != nil {
		customer.Company = *in.Company
	}
	if in.Active != nil {
		customer.Active = *in.Active
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey)

	return customer, nil
}

// Stats returns the dashboard overview, cached briefly in Redis.
func (s *customerService) Stats(ctx context.Context) (*StatsOverview, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached StatsOverview
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	total, err := s.customerRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	active, err := s.customerRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active customers: %w", err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newThisMonth, err := s.customerRepo.CountRegisteredSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("count new customers: %w", err)
	}

	top, err := s.orderRepo.TopCustomers(ctx, topCustomersN)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}

	stats := &StatsOverview{
		TotalCustomers:        total,
		ActiveCustomers:       active,
		NewCustomersThisMonth: newThisMonth,
		TopCustomers:          top,
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}

	return stats, nil
}

func (s *customerService) findCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByPublicID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return customer, nil
}
