package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusInProgress, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusInProgress, OrderStatusCancelled, true},
		{OrderStatusInProgress, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusInProgress, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		// same status is always a legal no-op
		{OrderStatusPending, OrderStatusPending, true},
		{OrderStatusCompleted, OrderStatusCompleted, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestServiceType_Valid(t *testing.T) {
	assert.True(t, ServiceType3DPrinting.Valid())
	assert.True(t, ServiceTypePCBPrinting.Valid())
	assert.False(t, ServiceType("Laser Engraving").Valid())
	assert.False(t, ServiceType("").Valid())
}

func TestAdmin_PasswordRoundTrip(t *testing.T) {
	admin := &Admin{}
	assert.NoError(t, admin.SetPassword("hunter22"))
	assert.NotEqual(t, "hunter22", admin.PasswordHash)
	assert.True(t, admin.CheckPassword("hunter22"))
	assert.False(t, admin.CheckPassword("hunter23"))
}

func TestNewPublicID(t *testing.T) {
	a := NewPublicID(OrderIDPrefix)
	b := NewPublicID(OrderIDPrefix)
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "ORD-")
}
