package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceType is the fabrication service an order is for.
type ServiceType string

const (
	ServiceType3DPrinting  ServiceType = "3D Printing"
	ServiceTypePCBPrinting ServiceType = "PCB Printing"
)

// Valid reports whether the service type is one of the known categories.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceType3DPrinting, ServiceTypePCBPrinting:
		return true
	}
	return false
}

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusTransitions is the allowed lifecycle. Completed and cancelled are
// terminal. Re-applying the current status is handled separately as a no-op.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransition reports whether the status may move to next. Staying on the
// same status is always allowed so repeated updates stay idempotent.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Valid reports whether the status is a known lifecycle state.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// FileInfo describes the uploaded design file.
type FileInfo struct {
	StoredName   string    `json:"filename" gorm:"column:file_stored_name;size:255"`
	OriginalName string    `json:"originalName" gorm:"column:file_original_name;size:255"`
	Path         string    `json:"-" gorm:"column:file_path;size:512"`
	Size         int64     `json:"size" gorm:"column:file_size"`
	UploadedAt   time.Time `json:"uploadedAt" gorm:"column:file_uploaded_at"`
}

// CustomerDetails is the customer-supplied snapshot taken at submission
// time. It is never updated when the Customer record changes later.
type CustomerDetails struct {
	Name               string     `json:"name" gorm:"column:detail_name;size:255;not null"`
	Email              string     `json:"email" gorm:"column:detail_email;size:255;not null"`
	Phone              string     `json:"phone" gorm:"column:detail_phone;size:64;not null"`
	Address            string     `json:"address" gorm:"column:detail_address;size:512;not null"`
	Company            string     `json:"company" gorm:"column:detail_company;size:255"`
	ProjectDescription string     `json:"projectDescription" gorm:"column:detail_project_description;type:text"`
	Quantity           int        `json:"quantity" gorm:"column:detail_quantity;default:1"`
	Specifications     string     `json:"specifications" gorm:"column:detail_specifications;type:text"`
	Deadline           *time.Time `json:"deadline,omitempty" gorm:"column:detail_deadline"`
}

// Order is a single customer request for PCB or 3D-printing fabrication.
type Order struct {
	ID            uuid.UUID        `json:"-" gorm:"type:char(36);primaryKey"`
	PublicID      string           `json:"orderId" gorm:"uniqueIndex;size:64;not null"`
	CustomerID    uuid.UUID        `json:"-" gorm:"type:char(36);not null;index"`
	ServiceType   ServiceType      `json:"serviceType" gorm:"type:varchar(32);not null"`
	File          FileInfo         `json:"file" gorm:"embedded"`
	Details       CustomerDetails  `json:"customerDetails" gorm:"embedded"`
	Status        OrderStatus      `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	AdminNotes    string           `json:"adminNotes" gorm:"type:text"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost,omitempty" gorm:"type:decimal(20,2)"`
	ActualCost    *decimal.Decimal `json:"actualCost,omitempty" gorm:"type:decimal(20,2)"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations
	Customer Customer `json:"-" gorm:"foreignKey:CustomerID"`
}

// BeforeCreate sets identifiers before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.PublicID == "" {
		o.PublicID = NewPublicID(OrderIDPrefix)
	}
	return nil
}
