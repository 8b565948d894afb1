package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"printshop/internal/errors"
	"printshop/internal/model"
	"printshop/internal/repository"
)

func TestCustomerService_GetCustomer(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	svc := NewCustomerService(customerRepo, orderRepo, nil)

	id := uuid.New()
	customerRepo.On("FindByPublicID", mock.Anything, "CUST-1-aaaaaaaa").Return(&model.Customer{
		ID:       id,
		PublicID: "CUST-1-aaaaaaaa",
		Name:     "Jordan Lee",
	}, nil)
	orderRepo.On("ListByCustomerID", mock.Anything, id).Return([]model.Order{
		{PublicID: "ORD-2"},
		{PublicID: "ORD-1"},
	}, nil)

	detail, err := svc.GetCustomer(context.Background(), "CUST-1-aaaaaaaa")

	assert.NoError(t, err)
	assert.Equal(t, "Jordan Lee", detail.Customer.Name)
	assert.Len(t, detail.Orders, 2)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	svc := NewCustomerService(customerRepo, new(MockOrderRepository), nil)

	customerRepo.On("FindByPublicID", mock.Anything, "CUST-missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetCustomer(context.Background(), "CUST-missing")
	assert.ErrorIs(t, err, errors.ErrCustomerNotFound)
}

func TestCustomerService_UpdateCustomer_Partial(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	svc := NewCustomerService(customerRepo, new(MockOrderRepository), nil)

	customerRepo.On("FindByPublicID", mock.Anything, "CUST-1").Return(&model.Customer{
		PublicID: "CUST-1",
		Name:     "Jordan Lee",
		Email:    "jordan@example.com",
		Phone:    "555-0100",
		Active:   true,
	}, nil)
	customerRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Customer")).Return(nil)

	newPhone := "555-0199"
	inactive := false
	customer, err := svc.UpdateCustomer(context.Background(), "CUST-1", UpdateCustomerInput{
		Phone:  &newPhone,
		Active: &inactive,
	})

	assert.NoError(t, err)
	assert.Equal(t, "555-0199", customer.Phone)
	assert.False(t, customer.Active)
	// Omitted fields untouched.
	assert.Equal(t, "Jordan Lee", customer.Name)
	assert.Equal(t, "jordan@example.com", customer.Email)
}

func TestCustomerService_UpdateCustomer_EmailConflict(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	svc := NewCustomerService(customerRepo, new(MockOrderRepository), nil)

	customerRepo.On("FindByPublicID", mock.Anything, "CUST-1").Return(&model.Customer{
		PublicID: "CUST-1",
		Email:    "jordan@example.com",
	}, nil)
	customerRepo.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	taken := "taken@example.com"
	_, err := svc.UpdateCustomer(context.Background(), "CUST-1", UpdateCustomerInput{Email: &taken})

	assert.ErrorIs(t, err, errors.ErrEmailTaken)
}

func TestCustomerService_Stats(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	svc := NewCustomerService(customerRepo, orderRepo, nil)

	customerRepo.On("CountAll", mock.Anything).Return(int64(42), nil)
	customerRepo.On("CountActive", mock.Anything).Return(int64(40), nil)
	customerRepo.On("CountRegisteredSince", mock.Anything, mock.Anything).Return(int64(5), nil)
	orderRepo.On("TopCustomers", mock.Anything, topCustomersN).Return([]repository.TopCustomer{
		{CustomerID: "CUST-1", Name: "Jordan Lee", OrderCount: 7, TotalCost: decimal.NewFromInt(900)},
	}, nil)

	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalCustomers)
	assert.Equal(t, int64(40), stats.ActiveCustomers)
	assert.Equal(t, int64(5), stats.NewCustomersThisMonth)
	assert.Len(t, stats.TopCustomers, 1)
	assert.Equal(t, int64(7), stats.TopCustomers[0].OrderCount)
}
