package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumopress/user-directory/internal/core/domain"
	"github.com/lumopress/user-directory/internal/core/ports"
)

// EventEmitter abstracts the lifecycle event queue (the dispatcher).
type EventEmitter interface {
	Enqueue(event ports.AccountEvent)
}

type directoryService struct {
	sync     ports.SyncService
	profiles ports.ProfileStore
	events   EventEmitter
	log      zerolog.Logger
}

// NewDirectoryService returns the admin command gateway. Every operation
// checks the actor's role claim before looking at the payload, so a
// non-admin caller learns nothing about input validation.
func NewDirectoryService(sync ports.SyncService, profiles ports.ProfileStore, events EventEmitter, log zerolog.Logger) ports.DirectoryService {
	return &directoryService{sync: sync, profiles: profiles, events: events, log: log}
}

func authorize(actor domain.AuthContext) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	return nil
}

func (d *directoryService) SetUserRole(ctx context.Context, actor domain.AuthContext, in ports.SetUserRoleInput) (*ports.CommandResult, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if in.UID == "" {
		return nil, fmt.Errorf("%w: uid is required", domain.ErrInvalidArgument)
	}
	if !domain.ValidRole(in.NewRole) {
		return nil, fmt.Errorf("%w: role must be one of admin, editor, viewer", domain.ErrInvalidArgument)
	}

	if err := d.sync.SetRole(ctx, in.UID, in.NewRole); err != nil {
		d.log.Error().Err(err).Str("actor", actor.SubjectID).Str("uid", in.UID).Msg("set role failed")
		return nil, err
	}

	return &ports.CommandResult{
		Message: fmt.Sprintf("Successfully updated role to %s for user %s.", in.NewRole, in.UID),
	}, nil
}

func (d *directoryService) ToggleUserStatus(ctx context.Context, actor domain.AuthContext, in ports.ToggleUserStatusInput) (*ports.CommandResult, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if in.UID == "" {
		return nil, fmt.Errorf("%w: uid is required", domain.ErrInvalidArgument)
	}

	if err := d.sync.SetEnabled(ctx, in.UID, in.Disabled); err != nil {
		d.log.Error().Err(err).Str("actor", actor.SubjectID).Str("uid", in.UID).Msg("toggle status failed")
		return nil, err
	}

	verb := "enabled"
	if in.Disabled {
		verb = "disabled"
	}
	return &ports.CommandResult{
		Message: fmt.Sprintf("Successfully %s user %s.", verb, in.UID),
	}, nil
}

// DeleteUser removes the account, then emits the account.deleted event
// so the profile cascade runs through the synchronizer. The profile may
// therefore still exist for a short window after this returns.
func (d *directoryService) DeleteUser(ctx context.Context, actor domain.AuthContext, uid string) (*ports.CommandResult, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", domain.ErrInvalidArgument)
	}

	if err := d.sync.DeleteAccount(ctx, uid); err != nil {
		d.log.Error().Err(err).Str("actor", actor.SubjectID).Str("uid", uid).Msg("delete user failed")
		return nil, err
	}

	d.events.Enqueue(ports.AccountEvent{Type: ports.AccountDeleted, ID: uid})

	return &ports.CommandResult{
		Message: fmt.Sprintf("Successfully deleted user %s.", uid),
	}, nil
}

func (d *directoryService) GetAllUsers(ctx context.Context, actor domain.AuthContext) ([]ports.UserRecord, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}

	profiles, err := d.profiles.List(ctx)
	if err != nil {
		d.log.Error().Err(err).Str("actor", actor.SubjectID).Msg("list users failed")
		return nil, err
	}

	records := make([]ports.UserRecord, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, toUserRecord(p))
	}
	return records, nil
}

func toUserRecord(p *domain.Profile) ports.UserRecord {
	rec := ports.UserRecord{
		UID:         p.AccountID,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		AvatarURL:   p.AvatarURL,
		Role:        p.Role,
		Disabled:    p.Disabled,
	}
	if !p.CreatedAt.IsZero() {
		ts := p.CreatedAt.UTC().Format(time.RFC3339)
		rec.CreatedAt = &ts
	}
	return rec
}
