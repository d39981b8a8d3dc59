package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetup_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// InviteService handles operations related to match invites
type InviteService struct {
	Dynamo *DynamoService
}

// CreateInvites writes one pending invite per user for a freshly created
// group, in a single batch. groupActivity is the canonical activity key
// recorded for later dedup checks.
func (s *InviteService) CreateInvites(ctx context.Context, groupID, groupActivity string, userIDs []string) error {
	createdAt := time.Now().UTC().Format(time.RFC3339)

	writeRequests := make([]types.WriteRequest, 0, len(userIDs))
	for _, userID := range userIDs {
		invite := models.MatchInvite{
			InvitedUserID: userID,
			InviteID:      uuid.New().String(),
			GroupID:       groupID,
			GroupActivity: groupActivity,
			Status:        models.InviteStatusPending,
			CreatedAt:     createdAt,
		}
		item, err := attributevalue.MarshalMap(invite)
		if err != nil {
			return fmt.Errorf("failed to marshal invite: %w", err)
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	return s.Dynamo.BatchWriteItems(ctx, models.MatchInvite{}.TableName(), writeRequests)
}

// GetPendingInvites fetches the user's invites that are still pending
func (s *InviteService) GetPendingInvites(ctx context.Context, userID string) ([]models.MatchInvite, error) {
	invites, err := s.getInvitesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending := invites[:0]
	for _, invite := range invites {
		if invite.Status == models.InviteStatusPending {
			pending = append(pending, invite)
		}
	}
	return pending, nil
}

// GetInvite fetches a single invite addressed to the user
func (s *InviteService) GetInvite(ctx context.Context, userID, inviteID string) (*models.MatchInvite, error) {
	key := map[string]types.AttributeValue{
		"invitedUserId": &types.AttributeValueMemberS{Value: userID},
		"inviteId":      &types.AttributeValueMemberS{Value: inviteID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.MatchInvite{}.TableName(), key)
	if err != nil {
		return nil, err
	}

	var invite models.MatchInvite
	if err := attributevalue.UnmarshalMap(item, &invite); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invite: %w", err)
	}
	return &invite, nil
}

// SetInviteStatus records the user's response and its timestamp
func (s *InviteService) SetInviteStatus(ctx context.Context, userID, inviteID, status string) error {
	if status != models.InviteStatusAccepted && status != models.InviteStatusDeclined {
		return errors.New("invalid status")
	}

	key := map[string]types.AttributeValue{
		"invitedUserId": &types.AttributeValueMemberS{Value: userID},
		"inviteId":      &types.AttributeValueMemberS{Value: inviteID},
	}
	expressionValues := map[string]types.AttributeValue{
		":status":      &types.AttributeValueMemberS{Value: status},
		":respondedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	expressionNames := map[string]string{
		"#s": "status",
	}

	_, err := s.Dynamo.UpdateItem(ctx, models.MatchInvite{}.TableName(),
		"SET #s = :status, respondedAt = :respondedAt", key, expressionValues, expressionNames)
	return err
}

// DeleteInvitesForUser removes every invite addressed to the user
func (s *InviteService) DeleteInvitesForUser(ctx context.Context, userID string) error {
	invites, err := s.getInvitesForUser(ctx, userID)
	if err != nil {
		return err
	}

	tableName := models.MatchInvite{}.TableName()
	for _, invite := range invites {
		key := map[string]types.AttributeValue{
			"invitedUserId": &types.AttributeValueMemberS{Value: invite.InvitedUserID},
			"inviteId":      &types.AttributeValueMemberS{Value: invite.InviteID},
		}
		if err := s.Dynamo.DeleteItem(ctx, tableName, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *InviteService) getInvitesForUser(ctx context.Context, userID string) ([]models.MatchInvite, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.MatchInvite{}.TableName(),
		"invitedUserId = :invitedUserId",
		map[string]types.AttributeValue{
			":invitedUserId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	var invites []models.MatchInvite
	if err := attributevalue.UnmarshalListOfMaps(items, &invites); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invites: %w", err)
	}
	return invites, nil
}
