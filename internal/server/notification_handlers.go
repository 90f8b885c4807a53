package server

import (
	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/dashboard/noti-list/:userId
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	userID, err := s.requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 20)
	notis, err := s.notificationService.List(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	unseen, err := s.notificationService.UnseenCount(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"notifications": notis,
		"unseen_count":  unseen,
		"limit":         p.Limit,
		"offset":        p.Offset,
	})
}

// GetUnseenCount handles GET /api/dashboard/noti-unseen-count
func (s *Server) GetUnseenCount(c *fiber.Ctx) error {
	count, err := s.notificationService.UnseenCount(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"unseen_count": count,
	})
}

// MarkNotificationSeen handles POST /api/dashboard/noti-mark-seen
func (s *Server) MarkNotificationSeen(c *fiber.Ctx) error {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Notification ID is required"))
	}

	noti, err := s.notificationService.MarkSeen(c.Context(), req.ID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Notification marked as seen",
		"notification": noti,
	})
}

// ToggleNotificationSeen handles POST /api/dashboard/noti-toggle-seen
func (s *Server) ToggleNotificationSeen(c *fiber.Ctx) error {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Notification ID is required"))
	}

	noti, err := s.notificationService.ToggleSeen(c.Context(), req.ID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Notification seen state toggled",
		"notification": noti,
	})
}

// DeleteNotification handles DELETE /api/dashboard/notifications/:id
func (s *Server) DeleteNotification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.notificationService.Delete(c.Context(), id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
