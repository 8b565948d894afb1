package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the reconciled identity of whoever submits orders.
// Reconciliation is keyed by email: the first submission with a given email
// creates the row, later submissions reuse it unconditionally.
type Customer struct {
	ID           uuid.UUID      `json:"-" gorm:"type:char(36);primaryKey"`
	PublicID     string         `json:"customerId" gorm:"uniqueIndex;size:64;not null"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone        string         `json:"phone" gorm:"size:64;not null"`
	Address      string         `json:"address" gorm:"size:512;not null"`
	Company      string         `json:"company" gorm:"size:255"`
	RegisteredAt time.Time      `json:"registrationDate"`
	TotalOrders  int            `json:"totalOrders" gorm:"default:0"`
	Active       bool           `json:"isActive" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets the UUID and registration timestamp before creating the record.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.PublicID == "" {
		c.PublicID = NewPublicID(CustomerIDPrefix)
	}
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = time.Now()
	}
	return nil
}

// CustomerSummary is the slice of customer fields resolved onto order
// listings for display.
type CustomerSummary struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address,omitempty"`
	Company    string `json:"company,omitempty"`
}

// Summary returns the display fields of the customer. Address and company
// are included only when full is set, matching the list vs detail views.
func (c *Customer) Summary(full bool) CustomerSummary {
	s := CustomerSummary{
		CustomerID: c.PublicID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
	}
	if full {
		s.Address = c.Address
		s.Company = c.Company
	}
	return s
}
