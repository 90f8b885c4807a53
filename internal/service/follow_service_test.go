package service

import (
	"context"
	"testing"

	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	toggleFn        func(context.Context, uint, uint) (bool, *models.Notification, error)
	isFollowingFn   func(context.Context, uint, uint) (bool, error)
	relationshipsFn func(context.Context, uint) (*models.Relationships, error)
}

func (s *followRepoStub) Toggle(ctx context.Context, followerID, followingID uint) (bool, *models.Notification, error) {
	return s.toggleFn(ctx, followerID, followingID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Relationships(ctx context.Context, userID uint) (*models.Relationships, error) {
	return s.relationshipsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		toggleFn:      func(_ context.Context, _, _ uint) (bool, *models.Notification, error) { return true, nil, nil },
		isFollowingFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		relationshipsFn: func(_ context.Context, _ uint) (*models.Relationships, error) {
			return &models.Relationships{}, nil
		},
	}
}

func TestFollowService_ToggleFollow_Self(t *testing.T) {
	t.Parallel()

	toggled := false
	followRepo := noopFollowRepo()
	followRepo.toggleFn = func(_ context.Context, _, _ uint) (bool, *models.Notification, error) {
		toggled = true
		return true, nil, nil
	}
	svc := NewFollowService(followRepo, nil)

	_, err := svc.ToggleFollow(context.Background(), 3, 3)
	assertValidationError(t, err)
	assert.False(t, toggled)
}

func TestFollowService_ToggleFollow_ReportsState(t *testing.T) {
	t.Parallel()

	followRepo := noopFollowRepo()
	followRepo.toggleFn = func(_ context.Context, followerID, followingID uint) (bool, *models.Notification, error) {
		assert.Equal(t, uint(1), followerID)
		assert.Equal(t, uint(2), followingID)
		return false, nil, nil
	}
	svc := NewFollowService(followRepo, nil)

	following, err := svc.ToggleFollow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowService_ToggleFollow_MissingTarget(t *testing.T) {
	t.Parallel()

	followRepo := noopFollowRepo()
	followRepo.toggleFn = func(_ context.Context, _, followingID uint) (bool, *models.Notification, error) {
		return false, nil, models.NewNotFoundError("User", followingID)
	}
	svc := NewFollowService(followRepo, nil)

	_, err := svc.ToggleFollow(context.Background(), 1, 99)
	assertNotFoundError(t, err)
}
