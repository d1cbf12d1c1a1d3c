package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile is the application-side document mirroring role and status
// for one account. It is created as a side effect of account creation,
// mutated only by admin commands, and deleted only as a cascade of
// account deletion.
type Profile struct {
	AccountID   string    `json:"account_id" bson:"_id"`
	DisplayName string    `json:"display_name" bson:"display_name"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Role        string    `json:"role" bson:"role"`
	Disabled    bool      `json:"disabled" bson:"disabled"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// DefaultDisplayName is used when signup supplies no display name.
const DefaultDisplayName = "New User"
