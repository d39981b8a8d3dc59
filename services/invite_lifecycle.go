package services

import (
	"context"
	"fmt"

	"meetup_server/models"
)

// InviteLifecycleService drives invite responses. An invite moves from
// pending to accepted or declined exactly once; repeating a response
// against a terminal invite is a no-op success, except that accepting
// always re-ensures the membership row.
type InviteLifecycleService struct {
	Invites InviteStore
	Members MembershipStore
}

// Accept marks the invite accepted and joins the user to the group. A
// duplicate membership is treated as success, so accepting twice leaves
// exactly one membership row.
func (s *InviteLifecycleService) Accept(ctx context.Context, userID, inviteID string) error {
	invite, err := s.Invites.GetInvite(ctx, userID, inviteID)
	if err != nil {
		return fmt.Errorf("failed to fetch invite: %w", err)
	}

	if invite.Status == models.InviteStatusDeclined {
		return nil
	}
	if invite.Status == models.InviteStatusPending {
		if err := s.Invites.SetInviteStatus(ctx, userID, inviteID, models.InviteStatusAccepted); err != nil {
			return fmt.Errorf("failed to accept invite: %w", err)
		}
	}

	return s.Members.AddMember(ctx, invite.GroupID, userID)
}

// Decline marks the invite declined. No membership side effect; a terminal
// invite is left untouched.
func (s *InviteLifecycleService) Decline(ctx context.Context, userID, inviteID string) error {
	invite, err := s.Invites.GetInvite(ctx, userID, inviteID)
	if err != nil {
		return fmt.Errorf("failed to fetch invite: %w", err)
	}

	if invite.Terminal() {
		return nil
	}
	if err := s.Invites.SetInviteStatus(ctx, userID, inviteID, models.InviteStatusDeclined); err != nil {
		return fmt.Errorf("failed to decline invite: %w", err)
	}
	return nil
}
