package application

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/ports"
	"github.com/mahabubulhasibshawon/storefront/pkg/auth"
)

const minPasswordLength = 8

// Session is what login and refresh hand back. RefreshToken only ever leaves
// the server inside an HttpOnly cookie.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

type AuthService struct {
	users   ports.UserRepositoryPort
	refresh ports.RefreshStorePort
	issuer  *auth.Issuer
}

func NewAuthService(users ports.UserRepositoryPort, refresh ports.RefreshStorePort, issuer *auth.Issuer) *AuthService {
	return &AuthService{users: users, refresh: refresh, issuer: issuer}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, &domain.InvalidInputError{Message: "email and password are required"}
	}
	if len(password) < minPasswordLength {
		return nil, &domain.InvalidInputError{Message: "password must be at least 8 characters"}
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}
	return s.users.CreateUser(ctx, email, string(hashedPassword), domain.RoleCustomer)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(ctx, user)
}

// Refresh exchanges a refresh token for a new access token. The presented
// token is consumed and a new one is returned in its place.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	userID, next, err := s.refresh.Rotate(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		_ = s.refresh.Revoke(ctx, next)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRefreshInvalid
		}
		return nil, err
	}
	token, err := s.issuer.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: token, RefreshToken: next, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.refresh.Revoke(ctx, refreshToken)
}

func (s *AuthService) issue(ctx context.Context, user *domain.User) (*Session, error) {
	token, err := s.issuer.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.refresh.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: token, RefreshToken: refreshToken, User: user}, nil
}
