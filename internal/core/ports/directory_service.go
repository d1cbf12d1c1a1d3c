package ports

import (
	"context"

	"github.com/lumopress/user-directory/internal/core/domain"
)

// CommandResult confirms a completed admin command.
type CommandResult struct {
	Message string
}

// UserRecord is the listing view of one profile. CreatedAt is RFC3339,
// nil when the document carries no timestamp.
type UserRecord struct {
	UID         string
	DisplayName string
	Email       string
	AvatarURL   string
	Role        string
	Disabled    bool
	CreatedAt   *string
}

// SetUserRoleInput carries the payload of the role-change command.
type SetUserRoleInput struct {
	UID     string
	NewRole string
}

// ToggleUserStatusInput carries the payload of the status-change command.
type ToggleUserStatusInput struct {
	UID      string
	Disabled bool
}

// DirectoryService is the admin command gateway. Every operation
// authorizes the actor before validating input shape, and never exposes
// adapter-level error detail to the caller.
type DirectoryService interface {
	SetUserRole(ctx context.Context, actor domain.AuthContext, in SetUserRoleInput) (*CommandResult, error)
	ToggleUserStatus(ctx context.Context, actor domain.AuthContext, in ToggleUserStatusInput) (*CommandResult, error)
	DeleteUser(ctx context.Context, actor domain.AuthContext, uid string) (*CommandResult, error)
	GetAllUsers(ctx context.Context, actor domain.AuthContext) ([]UserRecord, error)
}
