package repository

import (
	"context"
	"errors"

	"github.com/Jobserd12/medium-back/internal/cache"
	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository defines persistence operations for likes and bookmarks.
type ReactionRepository interface {
	// ToggleLike flips the like state of (userID, postID) and reports the
	// resulting state. Creating a like also records a Like notification for
	// the post author in the same transaction; the created row is returned so
	// callers can publish it.
	ToggleLike(ctx context.Context, userID, postID uint) (liked bool, created *models.Notification, err error)
	// ToggleBookmark behaves like ToggleLike for bookmarks.
	ToggleBookmark(ctx context.Context, userID, postID uint) (bookmarked bool, created *models.Notification, err error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	IsBookmarked(ctx context.Context, userID, postID uint) (bool, error)
	ListBookmarked(ctx context.Context, userID uint) ([]*models.Post, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository returns a new ReactionRepository implementation.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) ToggleLike(ctx context.Context, userID, postID uint) (bool, *models.Notification, error) {
	var liked bool
	var slug string
	var created *models.Notification

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "user_id", "slug").First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", postID)
			}
			return models.NewInternalError(err)
		}
		slug = post.Slug

		// Delete-first: if a row existed this toggle is an unlike.
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		// ON CONFLICT DO NOTHING absorbs the race where a concurrent toggle
		// inserted first.
		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).Create(&models.Like{UserID: userID, PostID: postID})
		if ins.Error != nil {
			return models.NewInternalError(ins.Error)
		}
		liked = true
		if ins.RowsAffected == 0 {
			return nil
		}

		notification := &models.Notification{
			RecipientID: post.UserID,
			ActorID:     userID,
			PostID:      &post.ID,
			Type:        models.NotificationLike,
		}
		if err := tx.Create(notification).Error; err != nil {
			return models.NewInternalError(err)
		}
		created = notification
		return nil
	})
	if err != nil {
		return false, nil, err
	}

	cache.InvalidatePost(ctx, slug)
	state := "unliked"
	if liked {
		state = "liked"
	}
	if created != nil {
		observability.NotificationsCreated.WithLabelValues(models.NotificationLike).Inc()
	}
	observability.ToggleActions.WithLabelValues("like", state).Inc()
	return liked, created, nil
}

func (r *reactionRepository) ToggleBookmark(ctx context.Context, userID, postID uint) (bool, *models.Notification, error) {
	var bookmarked bool
	var slug string
	var created *models.Notification

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "user_id", "slug").First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", postID)
			}
			return models.NewInternalError(err)
		}
		slug = post.Slug

		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Bookmark{})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected > 0 {
			bookmarked = false
			return nil
		}

		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).Create(&models.Bookmark{UserID: userID, PostID: postID})
		if ins.Error != nil {
			return models.NewInternalError(ins.Error)
		}
		bookmarked = true
		if ins.RowsAffected == 0 {
			return nil
		}

		notification := &models.Notification{
			RecipientID: post.UserID,
			ActorID:     userID,
			PostID:      &post.ID,
			Type:        models.NotificationBookmark,
		}
		if err := tx.Create(notification).Error; err != nil {
			return models.NewInternalError(err)
		}
		created = notification
		return nil
	})
	if err != nil {
		return false, nil, err
	}

	cache.InvalidatePost(ctx, slug)
	state := "unbookmarked"
	if bookmarked {
		state = "bookmarked"
	}
	if created != nil {
		observability.NotificationsCreated.WithLabelValues(models.NotificationBookmark).Inc()
	}
	observability.ToggleActions.WithLabelValues("bookmark", state).Inc()
	return bookmarked, created, nil
}

func (r *reactionRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *reactionRepository) IsBookmarked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListBookmarked returns the published posts the user has bookmarked, newest
// bookmark first.
func (r *reactionRepository) ListBookmarked(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Select("posts.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count, "+
			"(SELECT COUNT(*) FROM bookmarks WHERE bookmarks.post_id = posts.id) as bookmarks_count, "+
			"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count").
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
		Where("bookmarks.user_id = ? AND posts.status = ?", userID, models.PostStatusPublished).
		Order("bookmarks.created_at DESC").
		Preload("User").
		Preload("Category").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
