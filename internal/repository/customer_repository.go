package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"printshop/internal/model"
)

// CustomerRepository defines customer persistence operations.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	FindByPublicID(ctx context.Context, publicID string) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	FindOrCreateByEmail(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	IncrementTotalOrders(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Customer, error)
	CountAll(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountRegisteredSince(ctx context.Context, since time.Time) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create creates a new customer.
func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// Update updates an existing customer.
func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// FindByID finds a customer by primary key.
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByPublicID finds a customer by public identifier.
func (r *customerRepository) FindByPublicID(ctx context.Context, publicID string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByEmail finds a customer by email.
func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindOrCreateByEmail returns the existing customer with the given email or
// creates the supplied one. Concurrent submissions with the same email are
// resolved by the unique index on email: the loser of the insert race gets
// a duplicate-key error and re-reads the winner.
func (r *customerRepository) FindOrCreateByEmail(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	existing, err := r.FindByEmail(ctx, customer.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByEmail(ctx, customer.Email)
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

// IncrementTotalOrders bumps the running order count atomically.
func (r *customerRepository) IncrementTotalOrders(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", id).
		UpdateColumn("total_orders", gorm.Expr("total_orders + ?", 1)).Error
}

// List returns all customers, most recently registered first.
func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.WithContext(ctx).Order("registered_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// CountAll counts all customers.
func (r *customerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&count).Error
	return count, err
}

// CountActive counts active customers.
func (r *customerRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Where("active = ?", true).Count(&count).Error
	return count, err
}

// CountRegisteredSince counts customers registered at or after the given time.
func (r *customerRepository) CountRegisteredSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Where("registered_at >= ?", since).Count(&count).Error
	return count, err
}
