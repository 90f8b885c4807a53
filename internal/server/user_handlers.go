package server

import (
	"strings"

	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/user/profile/:username
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))

	profile, err := s.userService.GetProfile(c.Context(), username)
	if err != nil {
		return respondError(c, err)
	}

	relationships, err := s.followService.GetRelationships(c.Context(), profile.UserID)
	if err != nil {
		return respondError(c, err)
	}

	isFollowing := false
	if viewerID, ok := s.optionalUserID(c); ok && viewerID != profile.UserID {
		isFollowing, err = s.followService.IsFollowing(c.Context(), viewerID, profile.UserID)
		if err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"profile":       profile,
		"relationships": relationships,
		"is_following":  isFollowing,
	})
}

// UpdateMyProfile handles PUT /api/user/profile
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		FullName  string `json:"full_name"`
		Bio       string `json:"bio"`
		Image     string `json:"image"`
		Country   string `json:"country"`
		Facebook  string `json:"facebook"`
		Twitter   string `json:"twitter"`
		Instagram string `json:"instagram"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:    currentUserID(c),
		FullName:  req.FullName,
		Bio:       req.Bio,
		Image:     req.Image,
		Country:   req.Country,
		Facebook:  req.Facebook,
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// GetRelationships handles GET /api/user/relationships/:userId
func (s *Server) GetRelationships(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	relationships, err := s.followService.GetRelationships(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(relationships)
}

// ToggleFollow handles POST /api/follow-toggle/:userId
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	following, err := s.followService.ToggleFollow(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return respondError(c, err)
	}

	message := "User unfollowed successfully"
	if following {
		message = "User followed successfully"
	}
	return c.JSON(fiber.Map{
		"message":      message,
		"is_following": following,
	})
}
