package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// AdminRole represents the privilege level of a staff account.
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

// Valid reports whether the role is a known one.
func (r AdminRole) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Admin is a staff identity authorized to view and manage orders and customers.
type Admin struct {
	ID           uuid.UUID  `json:"-" gorm:"type:char(36);primaryKey"`
	PublicID     string     `json:"adminId" gorm:"uniqueIndex;size:64;not null"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         AdminRole  `json:"role" gorm:"type:varchar(20);not null;default:'admin'"`
	Active       bool       `json:"isActive" gorm:"default:true;index"`
	LastLoginAt  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BeforeCreate sets identifiers before creating the record.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.PublicID == "" {
		a.PublicID = NewPublicID(AdminIDPrefix)
	}
	return nil
}

// SetPassword hashes the plaintext and stores the hash. The plaintext is
// never persisted or logged.
func (a *Admin) SetPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashed)
	return nil
}

// CheckPassword compares the plaintext against the stored hash.
func (a *Admin) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)) == nil
}
