package service

import (
	"context"

	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/repository"
)

// NotificationService exposes notification inbox operations.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) List(ctx context.Context, recipientID uint, limit, offset int) ([]*models.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.notificationRepo.ListForUser(ctx, recipientID, limit, offset)
}

func (s *NotificationService) UnseenCount(ctx context.Context, recipientID uint) (int64, error) {
	return s.notificationRepo.UnseenCount(ctx, recipientID)
}

func (s *NotificationService) MarkSeen(ctx context.Context, id, recipientID uint) (*models.Notification, error) {
	return s.notificationRepo.SetSeen(ctx, id, recipientID)
}

func (s *NotificationService) ToggleSeen(ctx context.Context, id, recipientID uint) (*models.Notification, error) {
	return s.notificationRepo.ToggleSeen(ctx, id, recipientID)
}

func (s *NotificationService) Delete(ctx context.Context, id, recipientID uint) error {
	return s.notificationRepo.Delete(ctx, id, recipientID)
}
