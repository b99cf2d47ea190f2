package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/task-tracker/internal/core/domain"
	"github.com/teamtrack/task-tracker/internal/core/ports"
)

func adminIdent(id string) domain.Identity {
	return domain.Identity{UserID: id, Username: "admin", Role: domain.RoleAdmin}
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), adminIdent("admin-id"), ports.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
		FullName: "Alice Adams",
		Role:     domain.RoleDeveloper,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.IsActive {
		t.Fatalf("new users should start active")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestUserService_Create_NonAdminForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	for _, role := range []domain.Role{domain.RoleManager, domain.RoleTester, domain.RoleDeveloper} {
		ident := domain.Identity{UserID: "u1", Role: role}
		if _, err := svc.Create(context.Background(), ident, ports.CreateUserInput{
			Username: "bob", Email: "bob@example.com", Password: "pass", FullName: "Bob", Role: domain.RoleTester,
		}); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "bob", "pass", domain.RoleTester, true)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), adminIdent("admin-id"), ports.CreateUserInput{
		Username: "bob", Email: "other@example.com", Password: "pass", FullName: "Bob", Role: domain.RoleTester,
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Update_PartialMerge(t *testing.T) {
	repo := newStubUserRepo()
	id := repo.seed(t, "carol", "original", domain.RoleTester, true)
	svc := NewUserService(repo, zerolog.Nop())

	before, _ := repo.FindByID(context.Background(), id)

	newName := "Carol Chen"
	updated, err := svc.Update(context.Background(), adminIdent("admin-id"), id, ports.UpdateUserInput{
		FullName: &newName,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FullName != newName {
		t.Fatalf("full name not updated: %q", updated.FullName)
	}
	if updated.Username != "carol" || updated.Role != domain.RoleTester {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	// Password untouched when omitted.
	if updated.PasswordHash != before.PasswordHash {
		t.Fatalf("password hash changed without a new password")
	}
}

func TestUserService_Update_RehashesNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	id := repo.seed(t, "dave", "original", domain.RoleDeveloper, true)
	svc := NewUserService(repo, zerolog.Nop())

	newPass := "brand-new"
	updated, err := svc.Update(context.Background(), adminIdent("admin-id"), id, ports.UpdateUserInput{
		Password: &newPass,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(newPass)); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	name := "x"
	if _, err := svc.Update(context.Background(), adminIdent("admin-id"), "missing", ports.UpdateUserInput{
		FullName: &name,
	}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_SelfForbidden(t *testing.T) {
	repo := newStubUserRepo()
	id := repo.seed(t, "root", "pass", domain.RoleAdmin, true)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), adminIdent(id), id); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	// Account must still exist.
	if _, err := repo.FindByID(context.Background(), id); err != nil {
		t.Fatalf("account removed despite self-delete guard: %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	id := repo.seed(t, "erin", "pass", domain.RoleTester, true)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), adminIdent("admin-id"), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), adminIdent("admin-id"), id); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_GetSelf_AnyRole(t *testing.T) {
	repo := newStubUserRepo()
	id := repo.seed(t, "frank", "pass", domain.RoleDeveloper, true)
	svc := NewUserService(repo, zerolog.Nop())

	ident := domain.Identity{UserID: id, Username: "frank", Role: domain.RoleDeveloper}
	user, err := svc.GetSelf(context.Background(), ident)
	if err != nil {
		t.Fatalf("get self failed: %v", err)
	}
	if user.Username != "frank" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Reading someone else requires admin.
	if _, err := svc.Get(context.Background(), ident, id); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin Get, got %v", err)
	}
}

func TestUserService_List_NonAdminForbidden(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	ident := domain.Identity{UserID: "u1", Role: domain.RoleManager}
	if _, err := svc.List(context.Background(), ident, 1, 20); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
