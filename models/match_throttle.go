package models

// MatchThrottle is the per-user record bounding auto-match frequency.
// Last write wins; concurrent runs are not locked against.
type MatchThrottle struct {
	UserID    string `dynamodbav:"userId" json:"userId"` // Partition Key (PK)
	LastRunAt string `dynamodbav:"lastRunAt" json:"lastRunAt"`
}

// TableName returns the DynamoDB table name for the MatchThrottle model
func (MatchThrottle) TableName() string {
	return "MatchThrottle"
}
