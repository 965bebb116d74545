// services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-backend/apperrors"
	"hostel-backend/models"
)

const defaultTokenTTL = 72 * time.Hour

// AuthService is the identity boundary: it creates identity records, checks
// credentials and validates bearer tokens. Nothing else touches the users
// table or the signing secret.
type AuthService struct {
	DB     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{DB: db, secret: []byte(secret), ttl: defaultTokenTTL}
}

// NewAuthServiceFromEnv reads JWT_SECRET; missing secret is fatal because
// every issued token would otherwise be signed with an empty key.
func NewAuthServiceFromEnv(db *gorm.DB) *AuthService {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue auth tokens.")
	}
	return NewAuthService(db, secret)
}

func (s *AuthService) CreateUser(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.Validation("Email and password are required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("Server error", fmt.Errorf("failed to hash password: %w", err))
	}

	user := models.User{Email: email, Password: string(hash)}
	if err := s.DB.Create(&user).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return nil, apperrors.Validation("User already registered", err)
		}
		return nil, apperrors.Validation("Failed to register user", err)
	}
	return &user, nil
}

// VerifyCredentials reports the same error for an unknown email and a wrong
// password so login responses never confirm which accounts exist.
func (s *AuthService) VerifyCredentials(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("Invalid login credentials", nil)
		}
		return nil, apperrors.Internal("Server error", fmt.Errorf("failed to look up user: %w", err))
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.Validation("Invalid login credentials", nil)
	}
	return &user, nil
}

// IssueToken signs an HS256 JWT whose subject is the user's ID.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Internal("Server error", fmt.Errorf("failed to sign token: %w", err))
	}
	return signed, nil
}

// ValidateToken parses the bearer token and loads the identity it names.
// Every failure mode collapses to the same auth error.
func (s *AuthService) ValidateToken(tokenString string) (*models.User, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Auth("Invalid token")
	}

	uid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, apperrors.Auth("Invalid token")
	}

	var user models.User
	if err := s.DB.First(&user, uint(uid)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Auth("User not found")
		}
		return nil, apperrors.Internal("Authentication error", fmt.Errorf("failed to load user: %w", err))
	}
	return &user, nil
}
