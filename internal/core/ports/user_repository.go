package ports

import (
	"context"

	"github.com/teamtrack/task-tracker/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// Every mutation is a single atomic storage operation.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page, perPage int64) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete returns the number of removed documents (0 when absent).
	Delete(ctx context.Context, id string) (int64, error)
}
