package ports

import "context"

// AccountEventType discriminates lifecycle events emitted by the
// identity store.
type AccountEventType string

const (
	AccountCreated AccountEventType = "account.created"
	AccountDeleted AccountEventType = "account.deleted"
)

// AccountEvent is the snapshot delivered with a lifecycle event.
// Only ID is meaningful for deletions.
type AccountEvent struct {
	Type        AccountEventType
	ID          string
	DisplayName string
	Email       string
	AvatarURL   string
}

// SyncService keeps the identity store and the profile store consistent.
// Process reacts to lifecycle events; the remaining operations perform
// the ordered dual writes behind admin commands. The pair of writes is
// not transactional across the two stores: if the second write fails the
// first is not undone, and callers must treat the operations as
// at-least-once. All operations are safe to retry.
type SyncService interface {
	Process(ctx context.Context, event AccountEvent) error
	SetRole(ctx context.Context, accountID, role string) error
	SetEnabled(ctx context.Context, accountID string, disabled bool) error
	// DeleteAccount removes the account only. The profile is deleted by
	// the account.deleted event that follows, never directly.
	DeleteAccount(ctx context.Context, accountID string) error
}
