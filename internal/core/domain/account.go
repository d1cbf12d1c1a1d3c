package domain

import "errors"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// ClaimRole is the claims key carrying the authorization role.
const ClaimRole = "role"

var ErrPermissionDenied = errors.New("permission denied")
var ErrInvalidArgument = errors.New("invalid argument")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrAccountDisabled = errors.New("account disabled")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}

// Account is the authentication-side record held by the identity store.
// Claims carry the authorization role; LoginEnabled=false means the
// identity store must reject authentication attempts for this account.
type Account struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	DisplayName  string            `json:"display_name,omitempty" bson:"display_name,omitempty"`
	Email        string            `json:"email,omitempty" bson:"email,omitempty"`
	AvatarURL    string            `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	PasswordHash string            `json:"-" bson:"password_hash,omitempty"`
	Claims       map[string]string `json:"claims,omitempty" bson:"claims,omitempty"`
	LoginEnabled bool              `json:"login_enabled" bson:"login_enabled"`
}

// Role returns the role claim attached to the account, or empty.
func (a *Account) Role() string {
	return a.Claims[ClaimRole]
}

// AuthContext identifies the caller of a gated operation. It is built
// from previously-issued token claims, never from ambient request state.
type AuthContext struct {
	SubjectID string
	Role      string
}

// IsAdmin reports whether the caller carries the admin role claim.
func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}
