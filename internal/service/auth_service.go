package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"printshop/internal/auth"
	apperrors "printshop/internal/errors"
	"printshop/internal/model"
	"printshop/internal/repository"
)

// AdminProfile is the public view of an admin: everything except the
// password hash.
type AdminProfile struct {
	AdminID   string          `json:"adminId"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      model.AdminRole `json:"role"`
	LastLogin *time.Time      `json:"lastLogin,omitempty"`
}

// CreateAdminInput carries a super admin's request to add a staff account.
type CreateAdminInput struct {
	Username string
	Email    string
	Password string
	Role     model.AdminRole
}

// AuthService handles admin login, token issuance and admin management.
type AuthService interface {
	Login(ctx context.Context, usernameOrEmail, password string) (token string, profile *AdminProfile, err error)
	CreateAdmin(ctx context.Context, in CreateAdminInput) (*AdminProfile, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
	Profile(ctx context.Context, adminID uuid.UUID) (*AdminProfile, error)
	Bootstrap(ctx context.Context, username, email, password string) error
}

type authService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login authenticates by username or email against active admins. Unknown
// account and wrong password are indistinguishable to the caller. On
// success the last-login timestamp is stamped and a signed 24h token issued.
func (s *authService) Login(ctx context.Context, usernameOrEmail, password string) (string, *AdminProfile, error) {
	admin, err := s.adminRepo.FindActiveByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !admin.CheckPassword(password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return "", nil, fmt.Errorf("update last login: %w", err)
	}

	token, err := s.jwtService.GenerateToken(admin)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, profileOf(admin), nil
}

// CreateAdmin adds a staff account. Role authorization happens at the route
// level; this guards the unique username/email constraint.
func (s *authService) CreateAdmin(ctx context.Context, in CreateAdminInput) (*AdminProfile, error) {
	role := in.Role
	if role == "" {
		role = model.RoleAdmin
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrMissingFields, in.Role)
	}

	taken, err := s.adminRepo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check admin existence: %w", err)
	}
	if taken {
		return nil, apperrors.ErrAdminExists
	}

	admin := &model.Admin{
		Username: in.Username,
		Email:    in.Email,
		Role:     role,
		Active:   true,
	}
	if err := admin.SetPassword(in.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		// Two concurrent creates can both pass the existence check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAdminExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return profileOf(admin), nil
}

// ListAdmins returns all admin accounts. Password hashes never serialize.
func (s *authService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// Profile returns the public profile for an authenticated admin.
func (s *authService) Profile(ctx context.Context, adminID uuid.UUID) (*AdminProfile, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return profileOf(admin), nil
}

// Bootstrap creates the default super admin unless the username is already
// taken. Safe to run on every start.
func (s *authService) Bootstrap(ctx context.Context, username, email, password string) error {
	_, err := s.adminRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check bootstrap admin: %w", err)
	}

	admin := &model.Admin{
		Username: username,
		Email:    email,
		Role:     model.RoleSuperAdmin,
		Active:   true,
	}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	log.Printf("bootstrap super admin %q created", username)
	return nil
}

func profileOf(admin *model.Admin) *AdminProfile {
	return &AdminProfile{
		AdminID:   admin.PublicID,
		Username:  admin.Username,
		Email:     admin.Email,
		Role:      admin.Role,
		LastLogin: admin.LastLoginAt,
	}
}
