package ports

import (
	"context"

	"github.com/laundrymart/laundry-backend/internal/core/domain"
)

// UserRepository is the credential store: persistence of user records
// addressed by username or email. Find methods return
// domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
