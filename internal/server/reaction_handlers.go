package server

import (
	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/post/like-post
func (s *Server) LikePost(c *fiber.Ctx) error {
	var req struct {
		PostID uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post ID is required"))
	}

	liked, err := s.reactionService.ToggleLike(c.Context(), currentUserID(c), req.PostID)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Like removed"
	if liked {
		status = fiber.StatusCreated
		message = "Post liked"
	}
	return c.Status(status).JSON(fiber.Map{
		"message":  message,
		"is_liked": liked,
	})
}

// BookmarkPost handles POST /api/post/bookmark-post
func (s *Server) BookmarkPost(c *fiber.Ctx) error {
	var req struct {
		PostID uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post ID is required"))
	}

	bookmarked, err := s.reactionService.ToggleBookmark(c.Context(), currentUserID(c), req.PostID)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Bookmark removed"
	if bookmarked {
		status = fiber.StatusCreated
		message = "Post bookmarked"
	}
	return c.Status(status).JSON(fiber.Map{
		"message":       message,
		"is_bookmarked": bookmarked,
	})
}

// GetBookmarkedPosts handles GET /api/post/bookmarked
func (s *Server) GetBookmarkedPosts(c *fiber.Ctx) error {
	posts, err := s.reactionService.ListBookmarked(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts": posts,
	})
}
