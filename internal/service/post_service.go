package service

import (
	"context"
	"strings"

	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/repository"
	"github.com/Jobserd12/medium-back/internal/validation"

	"github.com/google/uuid"
)

// slugAttempts bounds the number of suffixed candidates tried before the
// create is abandoned with a conflict.
const slugAttempts = 5

// PostService exposes post lifecycle and listing operations.
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

type CreatePostInput struct {
	UserID       uint
	Title        string
	Content      string
	Preview      string
	Image        string
	Tags         string
	CategorySlug string
	Status       string
}

type UpdatePostInput struct {
	UserID       uint
	PostID       uint
	Title        string
	Content      string
	Preview      string
	Image        string
	Tags         string
	CategorySlug string
	Status       string
}

// Dashboard is the author's private view of their posts and totals.
type Dashboard struct {
	Posts []*models.Post      `json:"posts"`
	Stats *models.AuthorStats `json:"stats"`
}

func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *PostService {
	return &PostService{postRepo: postRepo, categoryRepo: categoryRepo}
}

// slugify lowercases the title and collapses every non-alphanumeric run into
// a single hyphen.
func slugify(title string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevDash = false
		} else if !prevDash {
			b.WriteByte('-')
			prevDash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		slug = "post"
	}
	return slug
}

// derivePreview takes the first 200 runes of the content.
func derivePreview(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) > 200 {
		return string(runes[:200])
	}
	return content
}

// generateSlug derives a unique slug from the title. The bare slug is tried
// first, then a bounded number of random-suffixed candidates.
func (s *PostService) generateSlug(ctx context.Context, title string) (string, error) {
	base := slugify(title)

	exists, err := s.postRepo.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}

	for i := 0; i < slugAttempts; i++ {
		candidate := base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		exists, err := s.postRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", models.NewConflictError("Could not generate a unique slug for this title")
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	status := in.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !models.ValidPostStatus(status) {
		return nil, models.NewValidationError("Invalid status")
	}

	var categoryID *uint
	if in.CategorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, in.CategorySlug)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}

	slug, err := s.generateSlug(ctx, in.Title)
	if err != nil {
		return nil, err
	}

	preview := strings.TrimSpace(in.Preview)
	if preview == "" {
		preview = derivePreview(in.Content)
	}

	post := &models.Post{
		UserID:     in.UserID,
		Title:      strings.TrimSpace(in.Title),
		Content:    in.Content,
		Preview:    preview,
		Image:      in.Image,
		Tags:       in.Tags,
		CategoryID: categoryID,
		Status:     status,
		Slug:       slug,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost applies non-empty fields to the author's post. The slug never
// changes once assigned, even when the title does.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByIDForAuthor(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		if err := validation.ValidatePostTitle(in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Title = strings.TrimSpace(in.Title)
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.Preview != "" {
		post.Preview = in.Preview
	}
	if in.Image != "" {
		post.Image = in.Image
	}
	if in.Tags != "" {
		post.Tags = in.Tags
	}
	if in.CategorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, in.CategorySlug)
		if err != nil {
			return nil, err
		}
		post.CategoryID = &category.ID
	}
	if in.Status != "" {
		if !models.ValidPostStatus(in.Status) {
			return nil, models.NewValidationError("Invalid status")
		}
		post.Status = in.Status
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	return s.postRepo.Delete(ctx, postID, userID)
}

func (s *PostService) GetPostDetail(ctx context.Context, slug string) (*models.Post, error) {
	return s.postRepo.GetBySlug(ctx, slug)
}

// RecordView counts one view on a published post.
func (s *PostService) RecordView(ctx context.Context, slug string) error {
	return s.postRepo.IncrementView(ctx, slug)
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

func (s *PostService) ListByCategory(ctx context.Context, categorySlug string, limit, offset int) ([]*models.Post, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	return s.postRepo.ListByCategory(ctx, category.ID, limit, offset)
}

// ListPopular returns the six highest scoring published posts.
func (s *PostService) ListPopular(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.ListPopular(ctx, 6)
}

func (s *PostService) SearchPosts(ctx context.Context, query string, limit, offset int) ([]*models.Post, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.postRepo.Search(ctx, query, limit, offset)
}

func (s *PostService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *PostService) GetAuthorPost(ctx context.Context, postID, userID uint) (*models.Post, error) {
	return s.postRepo.GetByIDForAuthor(ctx, postID, userID)
}

// ListAuthorPosts returns all of the author's posts regardless of status.
func (s *PostService) ListAuthorPosts(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.postRepo.ListByAuthor(ctx, userID)
}

// GetAuthorStats returns aggregate engagement totals across the author's posts.
func (s *PostService) GetAuthorStats(ctx context.Context, userID uint) (*models.AuthorStats, error) {
	return s.postRepo.AuthorStats(ctx, userID)
}

// GetDashboard returns the author's posts of every status plus aggregate
// engagement totals.
func (s *PostService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.postRepo.AuthorStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Posts: posts, Stats: stats}, nil
}
