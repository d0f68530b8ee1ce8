package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"ecomauth/internal/middleware"
	"ecomauth/internal/models"
)

type AuthService interface {
	HashPassword(plain string) (string, error)
	CheckPassword(plain, hash string) error
	// GenerateAccessToken mints a signed bearer token for the user and
	// returns it together with its validity window in seconds.
	GenerateAccessToken(user *models.User) (token string, expiresIn int64, err error)
}

type authService struct {
	secret    []byte
	accessTTL time.Duration
}

func NewAuthService(secret string, accessTTL time.Duration) AuthService {
	return &authService{secret: []byte(secret), accessTTL: accessTTL}
}

func (s *authService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) CheckPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

func (s *authService) GenerateAccessToken(user *models.User) (string, int64, error) {
	now := time.Now()
	claims := &middleware.Claims{
		UserID: user.ID,
		Roles:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign access token: %w", err)
	}
	return signed, int64(s.accessTTL.Seconds()), nil
}
