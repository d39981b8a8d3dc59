package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetup_server/models"
)

// memStore is an in-memory implementation of the five store interfaces,
// shared by the orchestrator and lifecycle tests.
type memStore struct {
	profiles map[string]models.UserProfile
	pool     []models.UserProfile

	groups  []models.MatchGroup
	invites []models.MatchInvite
	members []models.GroupMember
	lastRun map[string]time.Time

	nextGroupID  int
	nextInviteID int

	failCreateGroup   error
	failCreateInvites error
	failDeleteGroups  error

	deleteGroupsCalled  bool
	deleteInvitesCalled bool
	deleteMembersCalled bool
}

func newMemStore() *memStore {
	return &memStore{
		profiles: map[string]models.UserProfile{},
		lastRun:  map[string]time.Time{},
	}
}

func (m *memStore) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &profile, nil
}

func (m *memStore) GetCandidatePool(_ context.Context, userID string) ([]models.UserProfile, error) {
	var candidates []models.UserProfile
	for _, p := range m.pool {
		if p.UserID != userID {
			candidates = append(candidates, p)
		}
	}
	return candidates, nil
}

func (m *memStore) CreateGroup(_ context.Context, initiatorID, name, activitySummary string) (string, error) {
	if m.failCreateGroup != nil {
		return "", m.failCreateGroup
	}
	m.nextGroupID++
	group := models.MatchGroup{
		GroupID:         fmt.Sprintf("group-%d", m.nextGroupID),
		InitiatorID:     initiatorID,
		Name:            name,
		ActivitySummary: activitySummary,
	}
	m.groups = append(m.groups, group)
	return group.GroupID, nil
}

func (m *memStore) DeleteGroupsByInitiator(_ context.Context, userID string) error {
	m.deleteGroupsCalled = true
	if m.failDeleteGroups != nil {
		return m.failDeleteGroups
	}
	kept := m.groups[:0]
	for _, g := range m.groups {
		if g.InitiatorID != userID {
			kept = append(kept, g)
		}
	}
	m.groups = kept
	return nil
}

func (m *memStore) CreateInvites(_ context.Context, groupID, groupActivity string, userIDs []string) error {
	if m.failCreateInvites != nil {
		return m.failCreateInvites
	}
	for _, userID := range userIDs {
		m.nextInviteID++
		m.invites = append(m.invites, models.MatchInvite{
			InvitedUserID: userID,
			InviteID:      fmt.Sprintf("invite-%d", m.nextInviteID),
			GroupID:       groupID,
			GroupActivity: groupActivity,
			Status:        models.InviteStatusPending,
		})
	}
	return nil
}

func (m *memStore) GetPendingInvites(_ context.Context, userID string) ([]models.MatchInvite, error) {
	var pending []models.MatchInvite
	for _, invite := range m.invites {
		if invite.InvitedUserID == userID && invite.Status == models.InviteStatusPending {
			pending = append(pending, invite)
		}
	}
	return pending, nil
}

func (m *memStore) GetInvite(_ context.Context, userID, inviteID string) (*models.MatchInvite, error) {
	for _, invite := range m.invites {
		if invite.InvitedUserID == userID && invite.InviteID == inviteID {
			found := invite
			return &found, nil
		}
	}
	return nil, ErrItemNotFound
}

func (m *memStore) SetInviteStatus(_ context.Context, userID, inviteID, status string) error {
	for i := range m.invites {
		if m.invites[i].InvitedUserID == userID && m.invites[i].InviteID == inviteID {
			m.invites[i].Status = status
			m.invites[i].RespondedAt = time.Now().UTC().Format(time.RFC3339)
			return nil
		}
	}
	return ErrItemNotFound
}

func (m *memStore) DeleteInvitesForUser(_ context.Context, userID string) error {
	m.deleteInvitesCalled = true
	kept := m.invites[:0]
	for _, invite := range m.invites {
		if invite.InvitedUserID != userID {
			kept = append(kept, invite)
		}
	}
	m.invites = kept
	return nil
}

func (m *memStore) AddMember(_ context.Context, groupID, userID string) error {
	for _, member := range m.members {
		if member.GroupID == groupID && member.UserID == userID {
			return nil // duplicate pair is success
		}
	}
	m.members = append(m.members, models.GroupMember{GroupID: groupID, UserID: userID})
	return nil
}

func (m *memStore) DeleteMembershipsForUser(_ context.Context, userID string) error {
	m.deleteMembersCalled = true
	kept := m.members[:0]
	for _, member := range m.members {
		if member.UserID != userID {
			kept = append(kept, member)
		}
	}
	m.members = kept
	return nil
}

func (m *memStore) GetLastRun(_ context.Context, userID string) (time.Time, bool, error) {
	t, ok := m.lastRun[userID]
	return t, ok, nil
}

func (m *memStore) SetLastRun(_ context.Context, userID string, t time.Time) error {
	m.lastRun[userID] = t
	return nil
}

var errStoreDown = errors.New("store unavailable")
