package server

import (
	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/post/comment-post
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		PostID  uint   `json:"post_id"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post ID is required"))
	}

	comment, err := s.commentService.AddComment(c.Context(), currentUserID(c), req.PostID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// GetComments handles GET /api/post/comment-post/:postId
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"comments": comments,
	})
}

// CreateReply handles POST /api/post/reply-comments
func (s *Server) CreateReply(c *fiber.Ctx) error {
	var req struct {
		CommentID uint   `json:"comment_id"`
		Content   string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CommentID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment ID is required"))
	}

	reply, err := s.commentService.ReplyToComment(c.Context(), currentUserID(c), req.CommentID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Reply created successfully",
		"comment": reply,
	})
}

// GetReplies handles GET /api/post/reply-comments/:commentId
func (s *Server) GetReplies(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	replies, err := s.commentService.ListReplies(c.Context(), commentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"comments": replies,
	})
}

// UpdateComment handles PUT /api/post/reply-comments/:commentId
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), commentID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

// GetDashboardComments handles GET /api/dashboard/comment-list/:userId
// It lists every comment left on the user's posts, newest first.
func (s *Server) GetDashboardComments(c *fiber.Ctx) error {
	userID, err := s.requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListAuthorComments(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"comments": comments,
	})
}

// DeleteComment handles DELETE /api/post/reply-comments/:commentId
// Deleting a top-level comment removes its replies with it.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), commentID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
