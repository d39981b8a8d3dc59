package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID    string   `dynamodbav:"userId" json:"userId"`
	FullName  string   `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	EmailID   string   `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`
	AvatarURL string   `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Status    string   `dynamodbav:"status,omitempty" json:"status,omitempty"`       // free text, "what do you want to do?" (max 100 chars)
	Interests []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"` // fixed-vocabulary tag ids picked at signup
	Languages []string `dynamodbav:"languages,omitempty" json:"languages,omitempty"`
	Latitude  float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

// MaxStatusLength caps the free-text status field
const MaxStatusLength = 100
