package service

import (
	"context"
	"log/slog"

	"github.com/Jobserd12/medium-back/internal/middleware"
	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/notifications"
	"github.com/Jobserd12/medium-back/internal/repository"
)

// FollowService exposes follow graph operations.
type FollowService struct {
	followRepo repository.FollowRepository
	notifier   *notifications.Notifier
}

func NewFollowService(followRepo repository.FollowRepository, notifier *notifications.Notifier) *FollowService {
	return &FollowService{followRepo: followRepo, notifier: notifier}
}

// ToggleFollow flips the follow state from followerID to targetID and returns
// the resulting state.
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, targetID uint) (bool, error) {
	if followerID == targetID {
		return false, models.NewValidationError("You cannot follow yourself")
	}

	following, created, err := s.followRepo.Toggle(ctx, followerID, targetID)
	if err != nil {
		return false, err
	}

	publishNotification(ctx, s.notifier, created)
	return following, nil
}

func (s *FollowService) GetRelationships(ctx context.Context, userID uint) (*models.Relationships, error) {
	return s.followRepo.Relationships(ctx, userID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, targetID)
}

// publishNotification pushes a freshly created notification row to the
// recipient's Redis channel. Delivery is best-effort; the row is already
// committed.
func publishNotification(ctx context.Context, notifier *notifications.Notifier, created *models.Notification) {
	if notifier == nil || created == nil {
		return
	}
	if err := notifier.PublishEvent(ctx, created); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to publish notification event",
			slog.String("type", created.Type),
			slog.Any("recipient_id", created.RecipientID),
			slog.String("error", err.Error()),
		)
	}
}
