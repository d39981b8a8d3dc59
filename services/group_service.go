package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"meetup_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// GroupService handles match groups and group memberships
type GroupService struct {
	Dynamo *DynamoService
}

// CreateGroup persists a new match group and returns its id. The
// activity summary snapshots the initiator's status at creation time.
func (s *GroupService) CreateGroup(ctx context.Context, initiatorID, name, activitySummary string) (string, error) {
	group := models.MatchGroup{
		GroupID:         uuid.New().String(),
		InitiatorID:     initiatorID,
		Name:            name,
		ActivitySummary: strings.TrimSpace(activitySummary),
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.MatchGroup{}.TableName(), group); err != nil {
		return "", err
	}
	return group.GroupID, nil
}

// GetGroup fetches one group by id
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.MatchGroup, error) {
	key := map[string]types.AttributeValue{
		"groupId": &types.AttributeValueMemberS{Value: groupID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.MatchGroup{}.TableName(), key)
	if err != nil {
		return nil, err
	}

	var group models.MatchGroup
	if err := attributevalue.UnmarshalMap(item, &group); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group: %w", err)
	}
	return &group, nil
}

// DeleteGroupsByInitiator removes every group the user initiated
func (s *GroupService) DeleteGroupsByInitiator(ctx context.Context, userID string) error {
	tableName := models.MatchGroup{}.TableName()
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, tableName, models.InitiatorIndex,
		"initiatorId = :initiatorId",
		map[string]types.AttributeValue{
			":initiatorId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		return err
	}

	for _, item := range items {
		var group models.MatchGroup
		if err := attributevalue.UnmarshalMap(item, &group); err != nil {
			return fmt.Errorf("failed to unmarshal group: %w", err)
		}
		key := map[string]types.AttributeValue{
			"groupId": &types.AttributeValueMemberS{Value: group.GroupID},
		}
		if err := s.Dynamo.DeleteItem(ctx, tableName, key); err != nil {
			return err
		}
	}
	return nil
}

// AddMember joins a user to a group. A duplicate (group, user) pair is
// treated as success, mirroring a unique-constraint collision.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID string) error {
	member := models.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		JoinedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err := s.Dynamo.PutItemIfAbsent(ctx, models.GroupMember{}.TableName(), "groupId", member)
	if errors.Is(err, ErrItemExists) {
		return nil
	}
	return err
}

// GetMembersForGroup lists the members of one group
func (s *GroupService) GetMembersForGroup(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.GroupMember{}.TableName(),
		"groupId = :groupId",
		map[string]types.AttributeValue{
			":groupId": &types.AttributeValueMemberS{Value: groupID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	var members []models.GroupMember
	if err := attributevalue.UnmarshalListOfMaps(items, &members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal members: %w", err)
	}
	return members, nil
}

// GetGroupsForUser lists the groups a user is a member of
func (s *GroupService) GetGroupsForUser(ctx context.Context, userID string) ([]models.MatchGroup, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.GroupMember{}.TableName(), models.MemberUserIndex,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	var memberships []models.GroupMember
	if err := attributevalue.UnmarshalListOfMaps(items, &memberships); err != nil {
		return nil, fmt.Errorf("failed to unmarshal memberships: %w", err)
	}

	groups := make([]models.MatchGroup, 0, len(memberships))
	for _, membership := range memberships {
		group, err := s.GetGroup(ctx, membership.GroupID)
		if errors.Is(err, ErrItemNotFound) {
			continue // group cleared after the membership was written
		}
		if err != nil {
			return nil, err
		}
		groups = append(groups, *group)
	}
	return groups, nil
}

// DeleteMembershipsForUser removes every membership row for a user
func (s *GroupService) DeleteMembershipsForUser(ctx context.Context, userID string) error {
	tableName := models.GroupMember{}.TableName()
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, tableName, models.MemberUserIndex,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		return err
	}

	for _, item := range items {
		var member models.GroupMember
		if err := attributevalue.UnmarshalMap(item, &member); err != nil {
			return fmt.Errorf("failed to unmarshal membership: %w", err)
		}
		key := map[string]types.AttributeValue{
			"groupId": &types.AttributeValueMemberS{Value: member.GroupID},
			"userId":  &types.AttributeValueMemberS{Value: member.UserID},
		}
		if err := s.Dynamo.DeleteItem(ctx, tableName, key); err != nil {
			return err
		}
	}
	return nil
}
