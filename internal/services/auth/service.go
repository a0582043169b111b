package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fraudeye/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer = "fraudeye-api"

	adminName       = "System Administrator"
	defaultUserName = "John Doe"
	newUserName     = "New User"
	loginUserID     = "1"
)

// Session is what login and registration hand back to the dashboard.
type Session struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type Service interface {
	Login(email string) (*Session, error)
	Register(name, email string) (*Session, error)
	Parse(token string) (*models.User, error)
}

type service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService returns the stub session service. No password is ever checked.
func NewService(secret string, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Login signs in any email. Emails containing "admin" get the ADMIN role.
func (s *service) Login(email string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	user := &models.User{
		ID:    loginUserID,
		Name:  defaultUserName,
		Email: email,
		Role:  models.RoleUser,
	}
	if strings.Contains(strings.ToLower(email), "admin") {
		user.Name = adminName
		user.Role = models.RoleAdmin
	}

	log.Printf("Login: %s as %s", email, user.Role)
	return s.issue(user)
}

// Register creates a USER with a fresh id. Nothing is stored.
func (s *service) Register(name, email string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = newUserName
	}

	return s.issue(&models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  models.RoleUser,
	})
}

func (s *service) issue(user *models.User) (*Session, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSecret
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Session{User: user, Token: token, ExpiresAt: expires}, nil
}

// Parse restores the user carried by a session token.
func (s *service) Parse(tokenStr string) (*models.User, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims.User(), nil
}
