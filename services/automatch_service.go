package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"meetup_server/matching"
	"meetup_server/models"
)

// Store interfaces consumed by the auto-match workflow. The Dynamo-backed
// services implement them; tests substitute in-memory fakes.

// ProfileStore provides the caller's profile and the eligibility-filtered
// candidate pool (the eligibility policy itself lives behind the store).
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	GetCandidatePool(ctx context.Context, userID string) ([]models.UserProfile, error)
}

// GroupStore persists match groups.
type GroupStore interface {
	CreateGroup(ctx context.Context, initiatorID, name, activitySummary string) (string, error)
	DeleteGroupsByInitiator(ctx context.Context, userID string) error
}

// InviteStore persists invites and serves the pending set for dedup checks.
type InviteStore interface {
	CreateInvites(ctx context.Context, groupID, groupActivity string, userIDs []string) error
	GetPendingInvites(ctx context.Context, userID string) ([]models.MatchInvite, error)
	GetInvite(ctx context.Context, userID, inviteID string) (*models.MatchInvite, error)
	SetInviteStatus(ctx context.Context, userID, inviteID, status string) error
	DeleteInvitesForUser(ctx context.Context, userID string) error
}

// MembershipStore persists group memberships. AddMember must treat a
// duplicate (group, user) pair as success.
type MembershipStore interface {
	AddMember(ctx context.Context, groupID, userID string) error
	DeleteMembershipsForUser(ctx context.Context, userID string) error
}

// ThrottleStore bounds auto-match frequency per user. Last write wins.
type ThrottleStore interface {
	GetLastRun(ctx context.Context, userID string) (time.Time, bool, error)
	SetLastRun(ctx context.Context, userID string, t time.Time) error
}

// InviteNotifier receives a best-effort signal that a user's invite set
// changed and should be refetched.
type InviteNotifier interface {
	NotifyInviteRefresh(userID string)
}

// Run outcomes.
const (
	RunSuppressed   = "suppressed"
	RunNoCandidates = "no_candidates"
	RunNoMatches    = "no_matches"
	RunCreated      = "created"
)

// Suppression reasons.
const (
	ReasonThrottled         = "throttled"
	ReasonDuplicateActivity = "duplicate-activity"
)

// RunResult reports how an auto-match run terminated. Suppressions and
// empty pools are normal outcomes, not errors.
type RunResult struct {
	Outcome     string `json:"outcome"`
	Reason      string `json:"reason,omitempty"`
	GroupID     string `json:"groupId,omitempty"`
	InviteCount int    `json:"inviteCount,omitempty"`
}

// DefaultThrottleWindow is the minimum time between runs for a user.
// Tunable via configuration; the product iterated it from 24h down.
const DefaultThrottleWindow = 5 * time.Minute

// AutoMatchService runs the throttled, idempotent matching workflow:
// score the candidate pool against the caller, pick the best few, create a
// group and a pending invite for every member (the caller included, so the
// caller also sees a notification).
//
// Two near-simultaneous runs for the same user can both pass the throttle
// check before either writes. That race is accepted (worst case one
// duplicate group) rather than paying for distributed locking.
type AutoMatchService struct {
	Profiles ProfileStore
	Groups   GroupStore
	Invites  InviteStore
	Members  MembershipStore
	Throttle ThrottleStore
	Notifier InviteNotifier // optional

	ThrottleWindow time.Duration // defaults to DefaultThrottleWindow
	MaxMatches     int           // defaults to matching.DefaultMaxMatches
	Now            func() time.Time
}

func (s *AutoMatchService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *AutoMatchService) throttleWindow() time.Duration {
	if s.ThrottleWindow > 0 {
		return s.ThrottleWindow
	}
	return DefaultThrottleWindow
}

func (s *AutoMatchService) maxMatches() int {
	if s.MaxMatches > 0 {
		return s.MaxMatches
	}
	return matching.DefaultMaxMatches
}

// Run executes one auto-match round for userID. Store failures abort the
// run without advancing the throttle record, so the run can be retried.
func (s *AutoMatchService) Run(ctx context.Context, userID string) (RunResult, error) {
	now := s.now()

	lastRun, found, err := s.Throttle.GetLastRun(ctx, userID)
	if err != nil {
		return RunResult{}, fmt.Errorf("failed to read throttle record: %w", err)
	}
	if found && now.Sub(lastRun) < s.throttleWindow() {
		return RunResult{Outcome: RunSuppressed, Reason: ReasonThrottled}, nil
	}

	profile, err := s.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return RunResult{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	suppressed, err := s.hasPendingInviteForActivity(ctx, userID, profile.Status)
	if err != nil {
		return RunResult{}, err
	}
	if suppressed {
		return RunResult{Outcome: RunSuppressed, Reason: ReasonDuplicateActivity}, nil
	}

	candidates, err := s.Profiles.GetCandidatePool(ctx, userID)
	if err != nil {
		return RunResult{}, fmt.Errorf("failed to fetch candidate pool: %w", err)
	}
	if len(candidates) == 0 {
		return RunResult{Outcome: RunNoCandidates}, nil
	}

	best := matching.FindBestMatches(*profile, candidates, s.maxMatches())
	if len(best) == 0 {
		log.Printf("Auto-match for %s: %d candidates but no matches (status=%q)", userID, len(candidates), profile.Status)
		return RunResult{Outcome: RunNoMatches}, nil
	}

	groupName := matching.GroupNameForMatch(*profile)
	groupID, err := s.Groups.CreateGroup(ctx, userID, groupName, profile.Status)
	if err != nil {
		return RunResult{}, fmt.Errorf("failed to create group: %w", err)
	}

	// Everyone in the group gets an invite, the initiator included.
	memberIDs := make([]string, 0, len(best)+1)
	memberIDs = append(memberIDs, userID)
	for _, match := range best {
		memberIDs = append(memberIDs, match.UserID)
	}

	activityKey := matching.ActivityKey(profile.Status)
	if err := s.Invites.CreateInvites(ctx, groupID, activityKey, memberIDs); err != nil {
		return RunResult{}, fmt.Errorf("failed to create invites: %w", err)
	}

	if err := s.Throttle.SetLastRun(ctx, userID, now); err != nil {
		return RunResult{}, fmt.Errorf("failed to advance throttle record: %w", err)
	}

	if s.Notifier != nil {
		for _, memberID := range memberIDs {
			s.Notifier.NotifyInviteRefresh(memberID)
		}
	}

	log.Printf("Auto-match for %s: created group %s (%s) with %d invites", userID, groupID, groupName, len(memberIDs))
	return RunResult{Outcome: RunCreated, GroupID: groupID, InviteCount: len(memberIDs)}, nil
}

// hasPendingInviteForActivity applies the dedup guard: a new round is
// suppressed while the user holds a pending invite for the same canonical
// activity key.
func (s *AutoMatchService) hasPendingInviteForActivity(ctx context.Context, userID, status string) (bool, error) {
	key := matching.ActivityKey(status)
	if key == "" {
		return false, nil
	}

	pending, err := s.Invites.GetPendingInvites(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch pending invites: %w", err)
	}
	for _, invite := range pending {
		if invite.Status != models.InviteStatusPending {
			continue
		}
		if invite.GroupActivity == key {
			return true, nil
		}
	}
	return false, nil
}

// ClearUserData removes all groups the user initiated, all invites
// addressed to the user, and all of the user's memberships, so the user
// can start matching over. The store has no multi-table transactions, so
// the three deletions are best-effort; all are attempted even when one
// fails.
func (s *AutoMatchService) ClearUserData(ctx context.Context, userID string) error {
	var errs []error
	if err := s.Groups.DeleteGroupsByInitiator(ctx, userID); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete groups: %w", err))
	}
	if err := s.Invites.DeleteInvitesForUser(ctx, userID); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete invites: %w", err))
	}
	if err := s.Members.DeleteMembershipsForUser(ctx, userID); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete memberships: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if s.Notifier != nil {
		s.Notifier.NotifyInviteRefresh(userID)
	}
	return nil
}
