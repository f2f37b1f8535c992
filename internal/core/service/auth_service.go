package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/laundrymart/laundry-backend/internal/core/domain"
	"github.com/laundrymart/laundry-backend/internal/core/ports"
)

// AuthService implements registration, login, and profile management on
// top of constructor-injected collaborators. It holds no mutable state;
// every call is independent.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a new account after checking username and email
// uniqueness, then issues a token for it. The uniqueness check and the
// insert are not atomic: a concurrent registration with the same
// username or email can slip past the checks and surface the storage
// layer's duplicate-key error instead.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return "", nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Address:      input.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.Username, created.Role)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login authenticates a user and issues a token. An unknown username and
// a wrong password both fail with the same ErrInvalidCredentials so the
// response never reveals whether the account exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetProfile returns the record behind an already-authenticated username.
func (s *AuthService) GetProfile(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// UpdateProfile applies a partial update to the authenticated user's
// record. Blank or whitespace-only fields are skipped, never treated as
// clears. A changed email must not collide with another account, and a
// new password is re-hashed before it is persisted.
func (s *AuthService) UpdateProfile(ctx context.Context, username string, update ports.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(update.Email); email != "" && email != user.Email {
		other, err := s.repo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.ErrEmailInUse
		}
		user.Email = email
	}

	if v := strings.TrimSpace(update.FullName); v != "" {
		user.FullName = v
	}
	if v := strings.TrimSpace(update.Phone); v != "" {
		user.Phone = v
	}
	if v := strings.TrimSpace(update.Address); v != "" {
		user.Address = v
	}
	if strings.TrimSpace(update.Password) != "" {
		hash, err := s.hasher.Hash(update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
	}
	return updated, nil
}

// ListUsers returns every registered user. Callers gate this behind the
// admin role at the transport layer.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
