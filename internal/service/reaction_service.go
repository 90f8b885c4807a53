package service

import (
	"context"

	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/notifications"
	"github.com/Jobserd12/medium-back/internal/repository"
)

// ReactionService exposes like and bookmark toggles.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
	notifier     *notifications.Notifier
}

func NewReactionService(reactionRepo repository.ReactionRepository, notifier *notifications.Notifier) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo, notifier: notifier}
}

// ToggleLike flips the like state and returns the resulting state.
func (s *ReactionService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	liked, created, err := s.reactionRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	publishNotification(ctx, s.notifier, created)
	return liked, nil
}

// ToggleBookmark flips the bookmark state and returns the resulting state.
func (s *ReactionService) ToggleBookmark(ctx context.Context, userID, postID uint) (bool, error) {
	bookmarked, created, err := s.reactionRepo.ToggleBookmark(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	publishNotification(ctx, s.notifier, created)
	return bookmarked, nil
}

func (s *ReactionService) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.reactionRepo.IsLiked(ctx, userID, postID)
}

func (s *ReactionService) IsBookmarked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.reactionRepo.IsBookmarked(ctx, userID, postID)
}

func (s *ReactionService) ListBookmarked(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.reactionRepo.ListBookmarked(ctx, userID)
}
