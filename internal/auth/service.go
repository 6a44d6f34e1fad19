package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobpilot/internal/validate"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Service is the credential gateway: it owns accounts, password hashes and
// token issuance.
type Service struct {
	Users     UserStore
	JWT       *JWT
	Validator *validate.Validator
}

func NewService(users UserStore, jwtSvc *JWT) *Service {
	return &Service{Users: users, JWT: jwtSvc, Validator: validate.New()}
}

type SignupInput struct {
	FullName string `json:"fullName" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (string, *User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Username = normalizeLogin(in.Username)
	in.Email = normalizeLogin(in.Email)
	if err := s.Validator.Struct(in); err != nil {
		return "", nil, err
	}

	taken, err := s.Users.Exists(ctx, in.Email, in.Username)
	if err != nil {
		return "", nil, fmt.Errorf("signup lookup: %w", err)
	}
	if taken {
		return "", nil, ErrDuplicate
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := &User{
		ID:           uuid.NewString(),
		FullName:     in.FullName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return "", nil, ErrDuplicate
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.JWT.Sign(u.ID)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

// Login accepts either the email or the username as identifier.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, *User, error) {
	identifier = normalizeLogin(identifier)
	if identifier == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	u, err := s.Users.FindByLogin(ctx, identifier)
	if errors.Is(err, ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("login lookup: %w", err)
	}
	if !ComparePassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.JWT.Sign(u.ID)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

func (s *Service) User(ctx context.Context, id string) (*User, error) {
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// Authenticate verifies token and confirms its subject still has an account.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	uid, err := s.JWT.Verify(token)
	if err != nil {
		return "", ErrUnauthenticated
	}
	if _, err := uuid.Parse(uid); err != nil {
		return "", ErrUnauthenticated
	}
	if _, err := s.Users.FindByID(ctx, uid); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrUnauthenticated
		}
		return "", fmt.Errorf("authenticate: %w", err)
	}
	return uid, nil
}

func normalizeLogin(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
