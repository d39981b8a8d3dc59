package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetup_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ThrottleService stores the per-user last-run timestamp that bounds
// auto-match frequency. The original kept this flag client-side; a
// server-owned record makes the guard verifiable.
type ThrottleService struct {
	Dynamo *DynamoService
}

// GetLastRun returns the user's last auto-match run time, and whether a
// record exists at all.
func (s *ThrottleService) GetLastRun(ctx context.Context, userID string) (time.Time, bool, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.MatchThrottle{}.TableName(), key)
	if errors.Is(err, ErrItemNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	var record models.MatchThrottle
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to unmarshal throttle record: %w", err)
	}

	lastRun, err := time.Parse(time.RFC3339, record.LastRunAt)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse throttle timestamp: %w", err)
	}
	return lastRun, true, nil
}

// SetLastRun records the run time. Last write wins.
func (s *ThrottleService) SetLastRun(ctx context.Context, userID string, t time.Time) error {
	record := models.MatchThrottle{
		UserID:    userID,
		LastRunAt: t.UTC().Format(time.RFC3339),
	}
	return s.Dynamo.PutItem(ctx, models.MatchThrottle{}.TableName(), record)
}
