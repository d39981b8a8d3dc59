package models

// MatchGroup represents a group created by a successful auto-match run.
// ActivitySummary is a snapshot of the initiator's status at creation time,
// not a live link to the profile.
type MatchGroup struct {
	GroupID         string `dynamodbav:"groupId" json:"groupId"`         // Partition Key (PK)
	InitiatorID     string `dynamodbav:"initiatorId" json:"initiatorId"` // User whose run created the group
	Name            string `dynamodbav:"name" json:"name"`               // Derived from the initiator's status
	ActivitySummary string `dynamodbav:"activitySummary,omitempty" json:"activitySummary,omitempty"`
	CreatedAt       string `dynamodbav:"createdAt" json:"createdAt"`
}

// TableName returns the DynamoDB table name for the MatchGroup model
func (MatchGroup) TableName() string {
	return "MatchGroups"
}

// InitiatorIndex is the GSI used to fetch groups by their initiator
const InitiatorIndex = "InitiatorIndex"
