package ports

import (
	"context"

	"github.com/lumopress/user-directory/internal/core/domain"
)

// ProfileUpdate is a partial update applied to a profile document.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Role     *string
	Disabled *bool
}

// ProfileStore is the thin adapter over the profile document store.
type ProfileStore interface {
	// Create writes the profile document for profile.AccountID. On replay
	// the descriptive and role fields are overwritten but created_at is
	// preserved from the first write.
	Create(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, accountID string) (*domain.Profile, error)
	// Update applies a partial update. Updating a nonexistent id is not
	// an error; the write simply matches nothing.
	Update(ctx context.Context, accountID string, update ProfileUpdate) error
	// Delete removes the profile document. Deleting a nonexistent id is
	// a no-op, not an error.
	Delete(ctx context.Context, accountID string) error
	// List returns all profiles ordered by created_at descending.
	List(ctx context.Context) ([]*domain.Profile, error)
}
