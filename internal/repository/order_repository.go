package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"printshop/internal/model"
)

// TopCustomer is an aggregation row for the stats overview: a customer
// ranked by how many orders they have placed.
type TopCustomer struct {
	CustomerID string          `json:"customerId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	OrderCount int64           `json:"orderCount"`
	TotalCost  decimal.Decimal `json:"totalCost"`
}

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	FindByPublicID(ctx context.Context, publicID string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)
	TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create creates a new order.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Update saves an existing order. GORM refreshes UpdatedAt on save.
func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// FindByPublicID finds an order by its public identifier with the owning
// customer preloaded.
func (r *orderRepository) FindByPublicID(ctx context.Context, publicID string) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Customer").
		Where("public_id = ?", publicID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns all orders newest first with customers preloaded.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Customer").
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByCustomerID returns a customer's orders newest first.
func (r *orderRepository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// TopCustomers ranks customers by order count, summing actual cost where set.
func (r *orderRepository) TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	var rows []TopCustomer
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("customers.public_id AS customer_id, customers.name, customers.email, COUNT(orders.id) AS order_count, COALESCE(SUM(orders.actual_cost), 0) AS total_cost").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Group("customers.id, customers.public_id, customers.name, customers.email").
		Order("order_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
