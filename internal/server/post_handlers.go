package server

import (
	"strings"

	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Preview      string `json:"preview"`
	Image        string `json:"image"`
	Tags         string `json:"tags"`
	CategorySlug string `json:"category_slug"`
	Status       string `json:"status"`
}

// CreatePost handles POST /api/dashboard/post-create
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:       currentUserID(c),
		Title:        req.Title,
		Content:      req.Content,
		Preview:      req.Preview,
		Image:        req.Image,
		Tags:         req.Tags,
		CategorySlug: req.CategorySlug,
		Status:       req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// UpdatePost handles PUT /api/dashboard/post/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:       currentUserID(c),
		PostID:       postID,
		Title:        req.Title,
		Content:      req.Content,
		Preview:      req.Preview,
		Image:        req.Image,
		Tags:         req.Tags,
		CategorySlug: req.CategorySlug,
		Status:       req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// UpdatePostStatus handles PATCH /api/dashboard/post-status/:id
func (s *Server) UpdatePostStatus(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Status == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status is required"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID: currentUserID(c),
		PostID: postID,
		Status: req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post status updated successfully",
		"post":    post,
	})
}

// DeletePost handles DELETE /api/dashboard/post/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), postID, currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// GetAuthorPost handles GET /api/dashboard/post/:id
func (s *Server) GetAuthorPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetAuthorPost(c.Context(), postID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// GetPosts handles GET /api/post/lists
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 10)

	posts, err := s.postService.ListPosts(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":  posts,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetPopularPosts handles GET /api/post/list-popular
func (s *Server) GetPopularPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPopular(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts": posts,
	})
}

// GetPostsByCategory handles GET /api/post/category/posts/:categorySlug
func (s *Server) GetPostsByCategory(c *fiber.Ctx) error {
	categorySlug := c.Params("categorySlug")
	p := parsePagination(c, 10)

	posts, err := s.postService.ListByCategory(c.Context(), categorySlug, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":  posts,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetCategories handles GET /api/post/category/list
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.postService.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

// GetPostDetail handles GET /api/post/detail/:slug
func (s *Server) GetPostDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := s.postService.GetPostDetail(c.Context(), slug)
	if err != nil {
		return respondError(c, err)
	}

	comments, err := s.commentService.ListComments(c.Context(), post.ID)
	if err != nil {
		return respondError(c, err)
	}

	isLiked := false
	isBookmarked := false
	if viewerID, ok := s.optionalUserID(c); ok {
		if isLiked, err = s.reactionService.IsLiked(c.Context(), viewerID, post.ID); err != nil {
			return respondError(c, err)
		}
		if isBookmarked, err = s.reactionService.IsBookmarked(c.Context(), viewerID, post.ID); err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"post":          post,
		"comments":      comments,
		"is_liked":      isLiked,
		"is_bookmarked": isBookmarked,
	})
}

// IncrementView handles POST /api/post/increment-view/:slug
func (s *Server) IncrementView(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if err := s.postService.RecordView(c.Context(), slug); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "View recorded",
	})
}

// SearchPosts handles GET /api/post/search
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	p := parsePagination(c, 10)

	posts, err := s.postService.SearchPosts(c.Context(), query, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":  posts,
		"query":  query,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetDashboardStats handles GET /api/dashboard/stats/:userId
func (s *Server) GetDashboardStats(c *fiber.Ctx) error {
	userID, err := s.requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	stats, err := s.postService.GetAuthorStats(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetDashboardPosts handles GET /api/dashboard/posts/:userId
func (s *Server) GetDashboardPosts(c *fiber.Ctx) error {
	userID, err := s.requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListAuthorPosts(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts": posts,
	})
}
