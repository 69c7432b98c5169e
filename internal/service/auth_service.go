package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"commerce-admin/internal/domain"
	"commerce-admin/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// Claims represents the JWT claims attached to a dashboard session.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService manages the single dashboard session. Login is deliberately
// credential-blind: any non-empty email and password pair produces an admin
// session fabricated from the email address. There is no account store.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	Register(ctx context.Context, name, email, password string) (token string, user *domain.User, err error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	sessions     repository.SessionRepository
	jwtSecret    string
	accessExpiry time.Duration
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(sessions repository.SessionRepository, jwtSecret string, accessExpiryMinutes int) AuthService {
	return &authService{
		sessions:     sessions,
		jwtSecret:    jwtSecret,
		accessExpiry: time.Duration(accessExpiryMinutes) * time.Minute,
	}
}

// Login fabricates an admin session for the given email and persists it,
// replacing any previous session.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	user := &domain.User{
		ID:    email,
		Email: email,
		Name:  displayName(email),
		Role:  domain.RoleAdmin,
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		return "", nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// Register behaves like Login but keeps the caller's display name instead of
// deriving one from the email. Nothing is checked against an account store.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}
	if name == "" {
		name = displayName(email)
	}

	user := &domain.User{
		ID:    email,
		Email: email,
		Name:  name,
		Role:  domain.RoleAdmin,
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		return "", nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// Logout clears the stored session. Logging out with no session is a no-op.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the stored session user.
func (s *authService) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := s.sessions.Get(ctx)
	if err != nil {
		if err == repository.ErrSessionNotFound {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return user, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// displayName derives a human-looking name from the email local part:
// "jane.doe@example.com" becomes "Jane Doe".
func displayName(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	if len(parts) == 0 {
		return local
	}
	return strings.Join(parts, " ")
}
