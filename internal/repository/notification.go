package repository

import (
	"context"
	"errors"

	"github.com/Jobserd12/medium-back/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListForUser(ctx context.Context, recipientID uint, limit, offset int) ([]*models.Notification, error)
	UnseenCount(ctx context.Context, recipientID uint) (int64, error)
	// SetSeen marks the recipient's notification as seen.
	SetSeen(ctx context.Context, id, recipientID uint) (*models.Notification, error)
	// ToggleSeen flips the seen flag of the recipient's notification.
	ToggleSeen(ctx context.Context, id, recipientID uint) (*models.Notification, error)
	Delete(ctx context.Context, id, recipientID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListForUser returns the recipient's notifications, newest first.
func (r *notificationRepository) ListForUser(ctx context.Context, recipientID uint, limit, offset int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	if err := r.db.WithContext(ctx).
		Preload("Actor").
		Preload("Post").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifications, nil
}

func (r *notificationRepository) UnseenCount(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND seen = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *notificationRepository) getForRecipient(ctx context.Context, id, recipientID uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Notification", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &notification, nil
}

func (r *notificationRepository) SetSeen(ctx context.Context, id, recipientID uint) (*models.Notification, error) {
	notification, err := r.getForRecipient(ctx, id, recipientID)
	if err != nil {
		return nil, err
	}
	if notification.Seen {
		return notification, nil
	}
	notification.Seen = true
	if err := r.db.WithContext(ctx).Model(notification).Update("seen", true).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notification, nil
}

func (r *notificationRepository) ToggleSeen(ctx context.Context, id, recipientID uint) (*models.Notification, error) {
	notification, err := r.getForRecipient(ctx, id, recipientID)
	if err != nil {
		return nil, err
	}
	notification.Seen = !notification.Seen
	if err := r.db.WithContext(ctx).Model(notification).Update("seen", notification.Seen).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notification, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id, recipientID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Notification", id)
	}
	return nil
}
