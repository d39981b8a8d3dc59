package models

// GroupMember records that a user accepted an invite into a group.
// A membership row implies exactly one prior accepted invite for the pair.
type GroupMember struct {
	GroupID  string `dynamodbav:"groupId" json:"groupId"` // Partition Key (PK)
	UserID   string `dynamodbav:"userId" json:"userId"`   // Sort Key (SK)
	JoinedAt string `dynamodbav:"joinedAt" json:"joinedAt"`
}

// TableName returns the DynamoDB table name for the GroupMember model
func (GroupMember) TableName() string {
	return "GroupMembers"
}

// MemberUserIndex is the GSI used to fetch memberships by user
const MemberUserIndex = "MemberUserIndex"
