package ports

import (
	"context"

	"github.com/laundrymart/laundry-backend/internal/core/domain"
)

// RegisterInput carries everything a new account needs. Role is optional
// and defaults to customer when empty.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	FullName string
	Phone    string
	Address  string
}

// ProfileUpdate is a partial update: blank or whitespace-only fields are
// treated as "not provided" and leave the stored value untouched.
type ProfileUpdate struct {
	Email    string
	FullName string
	Phone    string
	Address  string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	GetProfile(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
