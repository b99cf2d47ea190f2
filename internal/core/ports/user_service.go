package ports

import (
	"context"

	"github.com/teamtrack/task-tracker/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

// UpdateUserInput carries a partial user update. Nil fields keep the
// existing value.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	FullName *string
	Role     *domain.Role
	IsActive *bool
}

// UserService defines the user management use cases. Every operation takes
// the caller's identity; all but GetSelf require the admin role.
type UserService interface {
	List(ctx context.Context, ident domain.Identity, page, perPage int64) ([]domain.User, error)
	Get(ctx context.Context, ident domain.Identity, id string) (*domain.User, error)
	GetSelf(ctx context.Context, ident domain.Identity) (*domain.User, error)
	Create(ctx context.Context, ident domain.Identity, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, ident domain.Identity, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, ident domain.Identity, id string) error
}
