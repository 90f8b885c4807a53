package service

import (
	"context"

	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/notifications"
	"github.com/Jobserd12/medium-back/internal/repository"
	"github.com/Jobserd12/medium-back/internal/validation"
)

// CommentService exposes comment and reply operations.
type CommentService struct {
	commentRepo repository.CommentRepository
	notifier    *notifications.Notifier
}

func NewCommentService(commentRepo repository.CommentRepository, notifier *notifications.Notifier) *CommentService {
	return &CommentService{commentRepo: commentRepo, notifier: notifier}
}

// AddComment creates a top-level comment on a published post.
func (s *CommentService) AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  &userID,
		Content: content,
	}
	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	publishNotification(ctx, s.notifier, created)
	return comment, nil
}

// ReplyToComment creates a reply under a top-level comment. The reply lands
// on the parent's post.
func (s *CommentService) ReplyToComment(ctx context.Context, userID, parentID uint, content string) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	reply := &models.Comment{
		UserID:  &userID,
		Content: content,
	}
	created, err := s.commentRepo.CreateReply(ctx, reply, parentID)
	if err != nil {
		return nil, err
	}

	publishNotification(ctx, s.notifier, created)
	return reply, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, commentID uint, content string) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.commentRepo.Update(ctx, commentID, content)
}

// DeleteComment removes a comment. Deleting a top-level comment removes its
// replies with it.
func (s *CommentService) DeleteComment(ctx context.Context, commentID uint) error {
	return s.commentRepo.DeleteCascade(ctx, commentID)
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListReplies(ctx, parentID)
}

// ListAuthorComments returns every comment left on the author's posts,
// newest first.
func (s *CommentService) ListAuthorComments(ctx context.Context, authorID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByAuthorPosts(ctx, authorID)
}
