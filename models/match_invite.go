package models

// Invite Status Constants
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

// MatchInvite represents an invite for a user to join a match group.
// One invite exists per (group, user) pair; every member of a freshly
// formed group gets one, the initiator included.
type MatchInvite struct {
	InvitedUserID string `dynamodbav:"invitedUserId" json:"invitedUserId"` // Partition Key (PK)
	InviteID      string `dynamodbav:"inviteId" json:"inviteId"`           // Sort Key (SK)
	GroupID       string `dynamodbav:"groupId" json:"groupId"`
	GroupActivity string `dynamodbav:"groupActivity,omitempty" json:"groupActivity,omitempty"` // canonical activity key, used for dedup
	Status        string `dynamodbav:"status" json:"status"`                                   // "pending", "accepted", "declined"
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
	RespondedAt   string `dynamodbav:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}

// TableName returns the DynamoDB table name for the MatchInvite model
func (MatchInvite) TableName() string {
	return "MatchInvites"
}

// Terminal reports whether the invite has already been responded to.
func (i MatchInvite) Terminal() bool {
	return i.Status == InviteStatusAccepted || i.Status == InviteStatusDeclined
}
