package ports

import (
	"context"

	"github.com/teamtrack/task-tracker/internal/core/domain"
)

// AuthService verifies credentials and issues/validates bearer tokens.
type AuthService interface {
	// Login authenticates username/password and returns a signed token plus
	// the public projection of the account. All failure modes return
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify checks a token's signature, structure, expiry, and role without
	// touching storage. Claims are trusted until expiry: deactivating an
	// account does not retroactively invalidate tokens already issued.
	Verify(token string) (*domain.Identity, error)
}
