package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"vitrine/logger"
	"vitrine/models"
	"vitrine/repository"
	"vitrine/sender"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 12 * time.Hour

// AuthService handles admin login and admin invitations.
type AuthService struct {
	admins    repository.AdminRepository
	mailer    sender.Sender
	jwtSecret []byte
}

func NewAuthService(admins repository.AdminRepository, mailer sender.Sender, jwtSecret string) *AuthService {
	return &AuthService{
		admins:    admins,
		mailer:    mailer,
		jwtSecret: []byte(jwtSecret),
	}
}

// Login verifies credentials and issues a signed admin token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *ServiceError) {
	admin, err := s.admins.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
		}
		logger.Log.Error("failed to fetch admin", zap.Error(err))
		return "", internal("Login failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordDigest), []byte(password)); err != nil {
		return "", &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
	}

	claims := jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"role":  "admin",
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		logger.Log.Error("failed to sign token", zap.Error(err))
		return "", internal("Login failed")
	}
	return signed, nil
}

// Invite creates a new admin account with a generated password and emails
// the credentials. Existing admin emails are rejected.
func (s *AuthService) Invite(ctx context.Context, email string) *ServiceError {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return &ServiceError{StatusCode: 422, Message: "A valid email is required", Fields: map[string]string{"email": "is invalid"}}
	}

	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Log.Error("failed to check admin email", zap.Error(err))
		return internal("Failed to send invitation")
	}
	if exists {
		return &ServiceError{StatusCode: 422, Message: "This email already belongs to an admin", Fields: map[string]string{"email": "is already taken"}}
	}

	password, err := generatePassword()
	if err != nil {
		logger.Log.Error("failed to generate password", zap.Error(err))
		return internal("Failed to send invitation")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", zap.Error(err))
		return internal("Failed to send invitation")
	}

	admin := &models.Admin{Email: email, PasswordDigest: string(digest)}
	if err := s.admins.Create(ctx, admin); err != nil {
		logger.Log.Error("failed to create admin", zap.Error(err))
		return internal("Failed to send invitation")
	}

	// Best-effort delivery; the invitation stands even if the mail bounces.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		body := fmt.Sprintf(
			"<p>You have been invited to join the admin team.</p>"+
				"<p>Email: %s<br>Password: %s</p>"+
				"<p>Sign in to the admin panel with these credentials.</p>",
			email, password,
		)
		if _, err := s.mailer.SendEmail(ctx, email, "Admin invitation", body); err != nil {
			logger.Log.Error("failed to send invitation email", zap.String("email", email), zap.Error(err))
		}
	}()

	logger.Log.Info("admin invited", zap.String("email", email))
	return nil
}

// generatePassword returns 20 hex characters of randomness.
func generatePassword() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
