package ports

import (
	"context"

	"github.com/lumopress/user-directory/internal/core/domain"
)

// IdentityStore is the thin adapter over the account registry.
// SetClaims and SetLoginEnabled do not verify that the target account
// exists; a write against an unknown id is a silent no-op, matching the
// registry's own semantics.
type IdentityStore interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// SetClaims replaces the claim set attached to the account.
	SetClaims(ctx context.Context, id string, claims map[string]string) error
	SetLoginEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}
