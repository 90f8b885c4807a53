package repository

import (
	"context"
	"errors"

	"github.com/Jobserd12/medium-back/internal/cache"
	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments and replies.
type CommentRepository interface {
	// Create inserts a top-level comment and records a Comment notification
	// for the post author in the same transaction. The created notification
	// is returned so callers can publish it.
	Create(ctx context.Context, comment *models.Comment) (*models.Notification, error)
	// CreateReply inserts a reply under parentID. The reply inherits the
	// parent's post. A Comment notification is recorded for the parent's
	// author when the parent has one.
	CreateReply(ctx context.Context, reply *models.Comment, parentID uint) (*models.Notification, error)
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error)
	// ListByAuthorPosts returns every comment left on any of the author's
	// posts, replies included.
	ListByAuthorPosts(ctx context.Context, authorID uint) ([]*models.Comment, error)
	Update(ctx context.Context, id uint, content string) (*models.Comment, error)
	// DeleteCascade removes the comment and, when it is top-level, all of its
	// replies in one transaction.
	DeleteCascade(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (*models.Notification, error) {
	var slug string
	var created *models.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "user_id", "slug").
			Where("id = ? AND status = ?", comment.PostID, models.PostStatusPublished).
			First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", comment.PostID)
			}
			return models.NewInternalError(err)
		}
		slug = post.Slug

		comment.ParentID = nil
		if err := tx.Create(comment).Error; err != nil {
			return models.NewInternalError(err)
		}

		if comment.UserID == nil {
			return nil
		}
		notification := &models.Notification{
			RecipientID: post.UserID,
			ActorID:     *comment.UserID,
			PostID:      &post.ID,
			Type:        models.NotificationComment,
		}
		if err := tx.Create(notification).Error; err != nil {
			return models.NewInternalError(err)
		}
		created = notification
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidatePost(ctx, slug)
	if created != nil {
		observability.NotificationsCreated.WithLabelValues(models.NotificationComment).Inc()
	}
	return created, nil
}

func (r *commentRepository) CreateReply(ctx context.Context, reply *models.Comment, parentID uint) (*models.Notification, error) {
	var slug string
	var created *models.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent models.Comment
		if err := tx.First(&parent, parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Comment", parentID)
			}
			return models.NewInternalError(err)
		}
		if parent.IsReply() {
			return models.NewValidationError("Cannot reply to a reply")
		}

		var post models.Post
		if err := tx.Select("id", "slug").First(&post, parent.PostID).Error; err != nil {
			return models.NewInternalError(err)
		}
		slug = post.Slug

		reply.PostID = parent.PostID
		reply.ParentID = &parent.ID
		if err := tx.Create(reply).Error; err != nil {
			return models.NewInternalError(err)
		}

		if reply.UserID == nil || parent.UserID == nil {
			return nil
		}
		notification := &models.Notification{
			RecipientID: *parent.UserID,
			ActorID:     *reply.UserID,
			PostID:      &post.ID,
			Type:        models.NotificationComment,
		}
		if err := tx.Create(notification).Error; err != nil {
			return models.NewInternalError(err)
		}
		created = notification
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidatePost(ctx, slug)
	if created != nil {
		observability.NotificationsCreated.WithLabelValues(models.NotificationComment).Inc()
	}
	return created, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

// ListByPost returns the top-level comments of a post, oldest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// ListReplies returns the replies under a top-level comment, newest first.
func (r *commentRepository) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	var replies []*models.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("parent_id = ?", parentID).
		Order("created_at DESC, id DESC").
		Find(&replies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

func (r *commentRepository) ListByAuthorPosts(ctx context.Context, authorID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("posts.user_id = ?", authorID).
		Order("comments.created_at DESC, comments.id DESC").
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, id uint, content string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}

	comment.Content = content
	if err := r.db.WithContext(ctx).Save(&comment).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Comment", id)
			}
			return models.NewInternalError(err)
		}

		if !comment.IsReply() {
			if err := tx.Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
				return models.NewInternalError(err)
			}
		}
		if err := tx.Delete(&models.Comment{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}
