package repository

import (
	"context"
	"errors"

	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence operations for the follow graph.
type FollowRepository interface {
	// Toggle flips the follow edge from followerID to followingID and reports
	// the resulting state. Creating an edge also records a Follow notification
	// for the followed user in the same transaction; the created row is
	// returned so callers can publish it.
	Toggle(ctx context.Context, followerID, followingID uint) (following bool, created *models.Notification, err error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	Relationships(ctx context.Context, userID uint) (*models.Relationships, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Toggle(ctx context.Context, followerID, followingID uint) (bool, *models.Notification, error) {
	var following bool
	var created *models.Notification

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.Select("id").First(&target, followingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", followingID)
			}
			return models.NewInternalError(err)
		}

		// Delete-first: if an edge existed this toggle is an unfollow.
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected > 0 {
			following = false
			return nil
		}

		// No edge existed; insert one. ON CONFLICT DO NOTHING absorbs the race
		// where a concurrent toggle inserted first.
		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).Create(&models.Follow{FollowerID: followerID, FollowingID: followingID})
		if ins.Error != nil {
			return models.NewInternalError(ins.Error)
		}
		following = true
		if ins.RowsAffected == 0 {
			return nil
		}

		notification := &models.Notification{
			RecipientID: followingID,
			ActorID:     followerID,
			Type:        models.NotificationFollow,
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

	state := "unfollowed"
	if following {
		state = "followed"
	}
	if created != nil {
		observability.NotificationsCreated.WithLabelValues(models.NotificationFollow).Inc()
	}
	observability.ToggleActions.WithLabelValues("follow", state).Inc()
	return following, created, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) Relationships(ctx context.Context, userID uint) (*models.Relationships, error) {
	rel := &models.Relationships{
		Followers: []models.User{},
		Following: []models.User{},
	}

	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Find(&rel.Followers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&rel.Following).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	rel.FollowersCount = int64(len(rel.Followers))
	rel.FollowingCount = int64(len(rel.Following))
	return rel, nil
}
