package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"printshop/internal/model"
)

// TokenExpiry is how long an issued credential stays valid. There is no
// revocation list: a token outlives logout until natural expiry.
const TokenExpiry = 24 * time.Hour

// Claims represents the JWT claims embedded in an admin bearer token.
type Claims struct {
	AdminID  string          `json:"admin_id"`
	Username string          `json:"username"`
	Role     model.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// GenerateToken issues a signed, time-limited bearer credential for the admin.
func (s *JWTService) GenerateToken(admin *model.Admin) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID:  admin.ID.String(),
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a token string and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
