package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"printshop/internal/errors"
	"printshop/internal/model"
	"printshop/internal/notify"
)

func validSubmitInput() SubmitInput {
	return SubmitInput{
		ServiceType: model.ServiceTypePCBPrinting,
		File: model.FileInfo{
			StoredName:   "abc123.pdf",
			OriginalName: "board.pdf",
			Path:         "uploads/abc123.pdf",
			Size:         2048,
			UploadedAt:   time.Now(),
		},
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Phone:   "555-0100",
		Address: "1 Factory Rd",
	}
}

func TestOrderService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitInput)
		wantErr error
	}{
		{
			name:    "unknown service type",
			mutate:  func(in *SubmitInput) { in.ServiceType = "Laser Engraving" },
			wantErr: errors.ErrInvalidServiceType,
		},
		{
			name:    "missing name",
			mutate:  func(in *SubmitInput) { in.Name = "" },
			wantErr: errors.ErrMissingFields,
		},
		{
			name:    "missing email",
			mutate:  func(in *SubmitInput) { in.Email = "" },
			wantErr: errors.ErrMissingFields,
		},
		{
			name:    "missing phone",
			mutate:  func(in *SubmitInput) { in.Phone = "" },
			wantErr: errors.ErrMissingFields,
		},
		{
			name:    "missing address",
			mutate:  func(in *SubmitInput) { in.Address = "" },
			wantErr: errors.ErrMissingFields,
		},
		{
			name:    "no file attached",
			mutate:  func(in *SubmitInput) { in.File = model.FileInfo{} },
			wantErr: errors.ErrFileRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(MockOrderRepository)
			customerRepo := new(MockCustomerRepository)
			publisher := &capturePublisher{}
			svc := NewOrderService(orderRepo, customerRepo, publisher, nil)

			in := validSubmitInput()
			tt.mutate(&in)

			result, err := svc.Submit(context.Background(), in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			// No order may be persisted and no event published on rejection.
			orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Empty(t, publisher.events)
		})
	}
}

func TestOrderService_Submit_NewCustomer(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	publisher := &capturePublisher{}
	svc := NewOrderService(orderRepo, customerRepo, publisher, nil)

	customerID := uuid.New()
	customerRepo.On("FindOrCreateByEmail", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		return c.Email == "jordan@example.com" && c.Active
	})).Run(func(args mock.Arguments) {
		c := args.Get(1).(*model.Customer)
		c.ID = customerID
		c.PublicID = "CUST-1-aaaaaaaa"
	}).Return(&model.Customer{
		ID:       customerID,
		PublicID: "CUST-1-aaaaaaaa",
		Email:    "jordan@example.com",
	}, nil)

	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Run(func(args mock.Arguments) {
		order := args.Get(1).(*model.Order)
		order.PublicID = "ORD-1-bbbbbbbb"
		order.CreatedAt = time.Now()
	}).Return(nil)
	customerRepo.On("IncrementTotalOrders", mock.Anything, customerID).Return(nil)

	result, err := svc.Submit(context.Background(), validSubmitInput())

	assert.NoError(t, err)
	assert.Equal(t, "ORD-1-bbbbbbbb", result.OrderID)
	assert.Equal(t, "CUST-1-aaaaaaaa", result.CustomerID)

	// Exactly one event per successful submission.
	assert.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, notify.EventOrderCreated, event.Kind)
	assert.Equal(t, "ORD-1-bbbbbbbb", event.OrderID)
	assert.Equal(t, "Jordan Lee", event.CustomerName)
	assert.Equal(t, model.ServiceTypePCBPrinting, event.ServiceType)

	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
}

func TestOrderService_Submit_ReusesCustomerByEmail(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	publisher := &capturePublisher{}
	svc := NewOrderService(orderRepo, customerRepo, publisher, nil)

	existingID := uuid.New()
	existing := &model.Customer{
		ID:       existingID,
		PublicID: "CUST-1-existing",
		Name:     "Original Name",
		Email:    "jordan@example.com",
	}
	customerRepo.On("FindOrCreateByEmail", mock.Anything, mock.Anything).Return(existing, nil)

	var createdOrder *model.Order
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Run(func(args mock.Arguments) {
		createdOrder = args.Get(1).(*model.Order)
		createdOrder.PublicID = "ORD-2-cccccccc"
	}).Return(nil)
	customerRepo.On("IncrementTotalOrders", mock.Anything, existingID).Return(nil)

	in := validSubmitInput()
	in.Name = "Different Name"
	result, err := svc.Submit(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, "CUST-1-existing", result.CustomerID)
	// The order snapshots the submitted name; the customer record wins the
	// identity but keeps its own stored name.
	assert.Equal(t, "Different Name", createdOrder.Details.Name)
	assert.Equal(t, existingID, createdOrder.CustomerID)
	assert.Equal(t, model.OrderStatusPending, createdOrder.Status)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	inProgress := model.OrderStatusInProgress
	completed := model.OrderStatusCompleted
	pending := model.OrderStatusPending
	bogus := model.OrderStatus("shipped")

	tests := []struct {
		name       string
		current    model.OrderStatus
		in         UpdateStatusInput
		wantErr    error
		wantStatus model.OrderStatus
	}{
		{
			name:       "pending to in_progress",
			current:    model.OrderStatusPending,
			in:         UpdateStatusInput{Status: &inProgress},
			wantStatus: model.OrderStatusInProgress,
		},
		{
			name:       "in_progress to completed",
			current:    model.OrderStatusInProgress,
			in:         UpdateStatusInput{Status: &completed},
			wantStatus: model.OrderStatusCompleted,
		},
		{
			name:       "same status is a no-op transition",
			current:    model.OrderStatusInProgress,
			in:         UpdateStatusInput{Status: &inProgress},
			wantStatus: model.OrderStatusInProgress,
		},
		{
			name:    "pending straight to completed rejected",
			current: model.OrderStatusPending,
			in:      UpdateStatusInput{Status: &completed},
			wantErr: errors.ErrInvalidTransition,
		},
		{
			name:    "cancelled cannot restart",
			current: model.OrderStatusCancelled,
			in:      UpdateStatusInput{Status: &pending},
			wantErr: errors.ErrInvalidTransition,
		},
		{
			name:    "unknown status rejected",
			current: model.OrderStatusPending,
			in:      UpdateStatusInput{Status: &bogus},
			wantErr: errors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(MockOrderRepository)
			customerRepo := new(MockCustomerRepository)
			svc := NewOrderService(orderRepo, customerRepo, &capturePublisher{}, nil)

			created := time.Now().Add(-time.Hour)
			orderRepo.On("FindByPublicID", mock.Anything, "ORD-x").Return(&model.Order{
				PublicID:  "ORD-x",
				Status:    tt.current,
				CreatedAt: created,
				UpdatedAt: created,
			}, nil)
			if tt.wantErr == nil {
				orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
			}

			order, err := svc.UpdateStatus(context.Background(), "ORD-x", tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, order.Status)
			assert.True(t, order.UpdatedAt.After(created))
		})
	}
}

func TestOrderService_UpdateStatus_PartialFields(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo, new(MockCustomerRepository), &capturePublisher{}, nil)

	estimated := decimal.NewFromInt(120)
	existing := &model.Order{
		PublicID:   "ORD-x",
		Status:     model.OrderStatusPending,
		AdminNotes: "original note",
	}
	orderRepo.On("FindByPublicID", mock.Anything, "ORD-x").Return(existing, nil)
	orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	order, err := svc.UpdateStatus(context.Background(), "ORD-x", UpdateStatusInput{
		EstimatedCost: &estimated,
	})

	assert.NoError(t, err)
	// Omitted fields stay untouched.
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "original note", order.AdminNotes)
	assert.True(t, order.EstimatedCost.Equal(estimated))
}

func TestOrderService_NotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo, new(MockCustomerRepository), &capturePublisher{}, nil)

	orderRepo.On("FindByPublicID", mock.Anything, "ORD-missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetOrder(context.Background(), "ORD-missing")
	assert.ErrorIs(t, err, errors.ErrOrderNotFound)

	_, err = svc.UpdateStatus(context.Background(), "ORD-missing", UpdateStatusInput{})
	assert.ErrorIs(t, err, errors.ErrOrderNotFound)

	_, _, err = svc.GetFile(context.Background(), "ORD-missing")
	assert.ErrorIs(t, err, errors.ErrOrderNotFound)
}

func TestOrderService_GetFile(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo, new(MockCustomerRepository), &capturePublisher{}, nil)

	orderRepo.On("FindByPublicID", mock.Anything, "ORD-x").Return(&model.Order{
		PublicID: "ORD-x",
		File: model.FileInfo{
			Path:         "uploads/deadbeef.gbr",
			OriginalName: "rev2.gbr",
		},
	}, nil)

	path, name, err := svc.GetFile(context.Background(), "ORD-x")
	assert.NoError(t, err)
	assert.Equal(t, "uploads/deadbeef.gbr", path)
	assert.Equal(t, "rev2.gbr", name)
}
