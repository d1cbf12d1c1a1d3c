package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumopress/user-directory/internal/core/domain"
	"github.com/lumopress/user-directory/internal/core/ports"
)

type syncService struct {
	identity ports.IdentityStore
	profiles ports.ProfileStore
	log      zerolog.Logger
}

// NewSyncService returns a SyncService implementation performing the
// ordered dual writes across the identity and profile stores.
func NewSyncService(identity ports.IdentityStore, profiles ports.ProfileStore, log zerolog.Logger) ports.SyncService {
	return &syncService{identity: identity, profiles: profiles, log: log}
}

// Process dispatches one lifecycle event. Authorization is not checked
// here: lifecycle delivery is a trusted source, verified at the
// transport boundary.
func (s *syncService) Process(ctx context.Context, event ports.AccountEvent) error {
	switch event.Type {
	case ports.AccountCreated:
		return s.onAccountCreated(ctx, event)
	case ports.AccountDeleted:
		return s.onAccountDeleted(ctx, event.ID)
	default:
		return fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidArgument, event.Type)
	}
}

// onAccountCreated attaches the default viewer role claim, then creates
// the mirrored profile document. If the profile write fails after the
// claim write succeeded, the divergence stands until the event is
// redelivered; replay overwrites the profile rather than failing.
func (s *syncService) onAccountCreated(ctx context.Context, event ports.AccountEvent) error {
	claims := map[string]string{domain.ClaimRole: domain.RoleViewer}
	if err := s.identity.SetClaims(ctx, event.ID, claims); err != nil {
		return fmt.Errorf("account created: set claims: %w", err)
	}

	displayName := event.DisplayName
	if displayName == "" {
		displayName = domain.DefaultDisplayName
	}

	profile := &domain.Profile{
		AccountID:   event.ID,
		DisplayName: displayName,
		Email:       event.Email,
		AvatarURL:   event.AvatarURL,
		Role:        domain.RoleViewer,
		Disabled:    false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return fmt.Errorf("account created: create profile: %w", err)
	}

	s.log.Info().Str("account_id", event.ID).Msg("profile created")
	return nil
}

// onAccountDeleted removes the profile document. A missing document is
// a no-op, which makes redelivery safe.
func (s *syncService) onAccountDeleted(ctx context.Context, accountID string) error {
	if err := s.profiles.Delete(ctx, accountID); err != nil {
		return fmt.Errorf("account deleted: delete profile: %w", err)
	}

	s.log.Info().Str("account_id", accountID).Msg("profile deleted")
	return nil
}

// SetRole writes the role claim first, then mirrors it onto the profile.
// No rollback on a second-write failure.
func (s *syncService) SetRole(ctx context.Context, accountID, role string) error {
	if err := s.identity.SetClaims(ctx, accountID, map[string]string{domain.ClaimRole: role}); err != nil {
		return fmt.Errorf("set role: set claims: %w", err)
	}

	if err := s.profiles.Update(ctx, accountID, ports.ProfileUpdate{Role: &role}); err != nil {
		return fmt.Errorf("set role: update profile: %w", err)
	}

	s.log.Info().Str("account_id", accountID).Str("role", role).Msg("role updated")
	return nil
}

// SetEnabled flips login on the account, then mirrors the inverted flag
// onto the profile.
func (s *syncService) SetEnabled(ctx context.Context, accountID string, disabled bool) error {
	if err := s.identity.SetLoginEnabled(ctx, accountID, !disabled); err != nil {
		return fmt.Errorf("set enabled: identity store: %w", err)
	}

	if err := s.profiles.Update(ctx, accountID, ports.ProfileUpdate{Disabled: &disabled}); err != nil {
		return fmt.Errorf("set enabled: update profile: %w", err)
	}

	s.log.Info().Str("account_id", accountID).Bool("disabled", disabled).Msg("status updated")
	return nil
}

// DeleteAccount removes the account from the identity store only. The
// profile is cleaned up by the account.deleted event that follows, so a
// successful return does not mean the profile is already gone.
func (s *syncService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.identity.Delete(ctx, accountID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.Info().Str("account_id", accountID).Msg("account deleted")
	return nil
}
