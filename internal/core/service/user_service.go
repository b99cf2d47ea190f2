package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/task-tracker/internal/core/domain"
	"github.com/teamtrack/task-tracker/internal/core/ports"
)

// UserService implements admin-gated user management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, ident domain.Identity, page, perPage int64) ([]domain.User, error) {
	if !CanManageUsers(ident.Role) {
		return nil, domain.ErrForbidden
	}
	page, perPage = clampPagination(page, perPage)
	return s.repo.List(ctx, page, perPage)
}

func (s *UserService) Get(ctx context.Context, ident domain.Identity, id string) (*domain.User, error) {
	if !CanManageUsers(ident.Role) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// GetSelf returns the caller's own profile. Any authenticated user may read
// their own record.
func (s *UserService) GetSelf(ctx context.Context, ident domain.Identity) (*domain.User, error) {
	return s.repo.FindByID(ctx, ident.UserID)
}

func (s *UserService) Create(ctx context.Context, ident domain.Identity, in ports.CreateUserInput) (*domain.User, error) {
	if !CanManageUsers(ident.Role) {
		return nil, domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

// Update applies a partial update: present fields replace, absent fields
// keep their current value. A new password is rehashed; otherwise the
// stored hash is untouched.
func (s *UserService) Update(ctx context.Context, ident domain.Identity, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if !CanManageUsers(ident.Role) {
		return nil, domain.ErrForbidden
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		existing.Username = *in.Username
	}
	if in.Email != nil {
		existing.Email = *in.Email
	}
	if in.FullName != nil {
		existing.FullName = *in.FullName
	}
	if in.Role != nil {
		existing.Role = *in.Role
	}
	if in.IsActive != nil {
		existing.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hash)
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

// Delete removes an account. The self-delete guard applies before the
// admin permission so even an admin cannot remove their own account.
func (s *UserService) Delete(ctx context.Context, ident domain.Identity, id string) error {
	if !CanManageUsers(ident.Role) {
		return domain.ErrForbidden
	}
	if id == ident.UserID {
		return domain.ErrSelfDelete
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}

	s.logger.Info().Str("user_id", id).Str("deleted_by", ident.UserID).Msg("user deleted")
	return nil
}
