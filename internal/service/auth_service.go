package service

import (
	"errors"
	"fmt"
	"time"

	"app-catalog-be/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type IAuthService interface {
	Login(password string) (string, error)
	SessionDuration() time.Duration
}

// authService validates the single operator password and issues the session
// token carried in the admin cookie. The password is only ever held as a
// bcrypt hash: a plain ADMIN_PASSWORD is hashed once at startup.
type authService struct {
	passwordHash []byte
	jwtSecret    []byte
	sessionTime  time.Duration
	logger       logger.ILogger
}

func NewAuthService(password, passwordHash, jwtSecret string, sessionHours int, logger logger.ILogger) IAuthService {
	hash := []byte(passwordHash)
	if len(hash) == 0 && password != "" {
		generated, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("auth", "failed to hash admin password", map[string]interface{}{"error": err.Error()})
		} else {
			hash = generated
		}
	}
	if len(hash) == 0 {
		logger.Warn("auth", "no admin password configured, login disabled", nil)
	}

	return &authService{
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		sessionTime:  time.Duration(sessionHours) * time.Hour,
		logger:       logger,
	}
}

func (s *authService) Login(password string) (string, error) {
	if len(s.passwordHash) == 0 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(s.sessionTime).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *authService) SessionDuration() time.Duration {
	return s.sessionTime
}
