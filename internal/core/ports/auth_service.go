package ports

import (
	"context"

	"github.com/lumopress/user-directory/internal/core/domain"
)

// RegisterInput carries signup details. DisplayName and AvatarURL are
// optional descriptive fields.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	AvatarURL   string
}

// AuthService implements signup and login against the identity store.
type AuthService interface {
	// Register creates the account and emits the account.created
	// lifecycle event. The profile and the default role claim are
	// written by the synchronizer reacting to that event, not here.
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	// Login verifies credentials and returns a signed token carrying
	// the account's role claim. Disabled accounts are rejected.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
